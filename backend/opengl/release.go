package opengl

import "github.com/go-gl/gl/v3.3-core/gl"

// Object release and resize calls made outside the per-frame path.
// Tests replace them to observe ordering without a live context.
var (
	deleteVertexArray = func(vao uint32) { gl.DeleteVertexArrays(1, &vao) }
	deleteBuffer      = func(buf uint32) { gl.DeleteBuffers(1, &buf) }
	deleteProgram     = func(program uint32) { gl.DeleteProgram(program) }
	setViewport       = func(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
)
