package mat

import (
	pcmat "github.com/seqsense/pcgol/mat"
)

// Vec4FromVec3 extends a pcgol vector with the given w.
// Use w = 1 for points and w = 0 for directions.
func Vec4FromVec3(v pcmat.Vec3, w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Vec3 drops the w lane without dividing by it.
func (v Vec4) Vec3() pcmat.Vec3 {
	return pcmat.Vec3{v[0], v[1], v[2]}
}

func Mat4FromPCGol(m pcmat.Mat4) Mat4 {
	return FromCols(m[:])
}

// PCGol converts m to the pcgol representation used by webgl-go uniforms.
// Both are column-major so the elements are copied as is.
func (m Mat4) PCGol() pcmat.Mat4 {
	return pcmat.Mat4(m.Float32s())
}
