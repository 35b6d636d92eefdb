package movingquad

import "github.com/go-gl/mathgl/mgl32"

// quadVertices are the four corners of a unit square centered at the origin:
// top right, bottom right, bottom left, top left.
var quadVertices = [4]mgl32.Vec3{
	{0.5, 0.5, 0.0},
	{0.5, -0.5, 0.0},
	{-0.5, -0.5, 0.0},
	{-0.5, 0.5, 0.0},
}

// quadIndices split the square into two triangles sharing the 1-3 diagonal.
var quadIndices = [6]uint32{
	0, 1, 3,
	1, 2, 3,
}

// QuadIndexCount is the number of indices issued per draw call.
const QuadIndexCount = len(quadIndices)

// QuadVertices returns a copy of the quad's vertex positions.
func QuadVertices() []mgl32.Vec3 {
	v := make([]mgl32.Vec3, len(quadVertices))
	copy(v, quadVertices[:])
	return v
}

// QuadIndices returns a copy of the quad's triangle-list indices.
func QuadIndices() []uint32 {
	idx := make([]uint32, len(quadIndices))
	copy(idx, quadIndices[:])
	return idx
}

// QuadTriangles resolves the index list into vertex triples.
func QuadTriangles() [2][3]mgl32.Vec3 {
	var tris [2][3]mgl32.Vec3
	for i, idx := range quadIndices {
		tris[i/3][i%3] = quadVertices[idx]
	}
	return tris
}

// QuadBounds returns the axis-aligned bounding box of the quad in model space.
func QuadBounds() (lo, hi mgl32.Vec3) {
	lo, hi = quadVertices[0], quadVertices[0]
	for _, v := range quadVertices[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], v[i])
			hi[i] = max(hi[i], v[i])
		}
	}
	return lo, hi
}

// Float32s flattens vertex positions into tightly packed xyz floats,
// the layout uploaded to the vertex buffer.
func Float32s(vertices []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
