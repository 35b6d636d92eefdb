package movingquad

import "errors"

var (
	// ErrWindow is returned when the window or its context cannot be created.
	ErrWindow = errors.New("failed to create GLFW window")

	// ErrLoader is returned when OpenGL entry points cannot be loaded.
	ErrLoader = errors.New("failed to load OpenGL functions")
)
