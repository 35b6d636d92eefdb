// Package opengl provides the OpenGL 3.3 core backend: a GLFW window,
// shader program, quad mesh and per-frame renderer.
package opengl
