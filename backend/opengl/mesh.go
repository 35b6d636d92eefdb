package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	quad "github.com/go-theft-auto/movingquad"
)

// vertexStride is the byte size of one tightly packed xyz position.
const vertexStride = 3 * 4

// Mesh is a vertex array with its vertex and index buffers.
type Mesh struct {
	vao, vbo uint32
	ebo      uint32
	count    int32
}

// NewMesh uploads vertices and indices and records a single position
// attribute (3 floats, slot quad.PositionAttrib) in a new vertex array.
// Both slices must be non-empty.
func NewMesh(vertices []mgl32.Vec3, indices []uint32) *Mesh {
	m := &Mesh{count: int32(len(indices))}
	data := quad.Float32s(vertices)

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	// Bind the VAO first so it records the buffer bindings below.
	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.DYNAMIC_DRAW)

	gl.VertexAttribPointerWithOffset(quad.PositionAttrib, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(quad.PositionAttrib)

	// The element buffer binding belongs to the VAO and must stay bound
	// until the VAO itself is unbound.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

// Draw binds the vertex array and draws its indices as a triangle list.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
}

// Delete releases the vertex array, then the vertex and index buffers.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		deleteVertexArray(m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		deleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		deleteBuffer(m.ebo)
		m.ebo = 0
	}
}
