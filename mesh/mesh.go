// Package mesh handles vertex sets stored as slices of mat.Vec4.
//
// Vertices are points (w = 1) ready to be uploaded with gl.NewVec4ArrayBuffer.
package mesh

import (
	"github.com/seqsense/glmath/mat"
)

// OpenCube returns the +Z, +X and -X faces of the [-1, 1] cube as 6
// triangles. The cube is left open so flat shading still shows its shape.
func OpenCube() []mat.Vec4 {
	return []mat.Vec4{
		// +Z
		{-1, -1, 1, 1}, {1, -1, 1, 1}, {1, 1, 1, 1},
		{1, 1, 1, 1}, {-1, 1, 1, 1}, {-1, -1, 1, 1},
		// +X
		{1, -1, 1, 1}, {1, -1, -1, 1}, {1, 1, -1, 1},
		{1, 1, -1, 1}, {1, 1, 1, 1}, {1, -1, 1, 1},
		// -X
		{-1, -1, 1, 1}, {-1, -1, -1, 1}, {-1, 1, -1, 1},
		{-1, 1, -1, 1}, {-1, 1, 1, 1}, {-1, -1, 1, 1},
	}
}

// Transform returns m*v for each vertex. vs is not modified.
func Transform(vs []mat.Vec4, m mat.Mat4) []mat.Vec4 {
	out := make([]mat.Vec4, len(vs))
	for i, v := range vs {
		out[i] = m.MulVec(v)
	}
	return out
}

// PerspectiveDivide returns (x/w, y/w, z/w, 1) for each vertex.
// Vertices with w = 0 give Inf/NaN lanes.
func PerspectiveDivide(vs []mat.Vec4) []mat.Vec4 {
	out := make([]mat.Vec4, len(vs))
	for i, v := range vs {
		out[i] = v.Scale(1 / v.W())
		out[i].SetW(1)
	}
	return out
}
