package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	quad "github.com/go-theft-auto/movingquad"
)

// Window wraps a GLFW window with a current OpenGL context.
// It implements quad.Window.
type Window struct {
	window *glfw.Window
}

// OpenWindow initializes GLFW, creates a window with a core-profile context
// of the configured version, makes it current and loads OpenGL.
// Call Destroy when done; it also terminates GLFW.
func OpenWindow(cfg quad.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw init: %v", quad.ErrWindow, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", quad.ErrWindow, err)
	}
	window.MakeContextCurrent()
	window.SetFramebufferSizeCallback(framebufferSizeCallback)

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", quad.ErrLoader, err)
	}
	quad.Logger().Debug("context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"width", cfg.Width, "height", cfg.Height)

	return &Window{window: window}, nil
}

// framebufferSizeCallback resets the viewport to cover the resized window.
func framebufferSizeCallback(_ *glfw.Window, width, height int) {
	setViewport(0, 0, int32(width), int32(height))
	quad.Logger().Debug("framebuffer resized", "width", width, "height", height)
}

// ShouldClose reports whether the close flag is set.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SetShouldClose sets or clears the close flag.
func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

// PollKeys copies the held state of every key the program uses into s.
func (w *Window) PollKeys(s *quad.InputState) {
	for _, k := range polledKeys {
		s.SetKey(glfwKeyToKey(k), w.window.GetKey(k) == glfw.Press)
	}
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy destroys the window and terminates GLFW.
func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

// polledKeys are the GLFW keys read every frame.
var polledKeys = []glfw.Key{
	glfw.KeyEscape,
	glfw.KeyLeft,
	glfw.KeyRight,
	glfw.KeyUp,
	glfw.KeyDown,
}

// glfwKeyToKey maps GLFW keys to program keys.
func glfwKeyToKey(key glfw.Key) quad.Key {
	switch key {
	case glfw.KeyEscape:
		return quad.KeyEscape
	case glfw.KeyLeft:
		return quad.KeyLeft
	case glfw.KeyRight:
		return quad.KeyRight
	case glfw.KeyUp:
		return quad.KeyUp
	case glfw.KeyDown:
		return quad.KeyDown
	default:
		return quad.KeyNone
	}
}
