package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	quad "github.com/go-theft-auto/movingquad"
)

// Renderer draws the mesh with the program into a fixed-size viewport
// whose origin follows the frame offset. It implements quad.Renderer.
type Renderer struct {
	program *Program
	mesh    *Mesh
	width   int32
	height  int32
}

// NewRenderer takes ownership of program and mesh.
// The viewport size stays width x height regardless of window resizes.
func NewRenderer(program *Program, mesh *Mesh, width, height int) *Renderer {
	return &Renderer{
		program: program,
		mesh:    mesh,
		width:   int32(width),
		height:  int32(height),
	}
}

// Frame clears to quad.ClearColor and draws the mesh with the viewport
// anchored at offset. The draw is not clipped to the window by the
// viewport itself, so large offsets move the quad off-screen.
func (r *Renderer) Frame(offset quad.Offset) {
	c := quad.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.program.Use()
	gl.Viewport(int32(offset.X), int32(offset.Y), r.width, r.height)
	r.mesh.Draw()
}

// ReadPixels reads the viewport-sized region of the current framebuffer
// as bottom-up RGBA.
func (r *Renderer) ReadPixels() []byte {
	pixels := make([]byte, int(r.width)*int(r.height)*4)
	gl.ReadPixels(0, 0, r.width, r.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Size returns the viewport size.
func (r *Renderer) Size() (width, height int) {
	return int(r.width), int(r.height)
}

// Delete releases the mesh, then the program.
func (r *Renderer) Delete() {
	r.mesh.Delete()
	r.program.Delete()
}
