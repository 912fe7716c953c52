package mesh

import (
	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	glmat "github.com/seqsense/glmath/mat"
)

type transformedView struct {
	pc.Vec3RandomAccessor
	m glmat.Mat4
}

func (a *transformedView) Vec3At(i int) mat.Vec3 {
	return a.m.MulVec(glmat.Vec4FromVec3(a.Vec3RandomAccessor.Vec3At(i), 1)).Vec3()
}

// TransformedView returns ra with m applied to each point on access.
// The w lane of the result is dropped without division.
func TransformedView(ra pc.Vec3RandomAccessor, m glmat.Mat4) pc.Vec3RandomAccessor {
	return &transformedView{Vec3RandomAccessor: ra, m: m}
}

// Box is an axis aligned box. The w lanes of the corners are ignored.
type Box struct {
	Min, Max glmat.Vec4
}

// ClipVolume is the normalized device coordinate cube.
var ClipVolume = Box{
	Min: glmat.Vec4{-1, -1, -1, 1},
	Max: glmat.Vec4{1, 1, 1, 1},
}

// Intersect returns the overlap of a and b.
// It is not valid if they do not overlap.
func (b Box) Intersect(a Box) Box {
	out := Box{
		Min: glmat.Vec4{0, 0, 0, 1},
		Max: glmat.Vec4{0, 0, 0, 1},
	}
	for i := 0; i < 3; i++ {
		out.Min[i] = math32.Max(a.Min[i], b.Min[i])
		out.Max[i] = math32.Min(a.Max[i], b.Max[i])
	}
	return out
}

func (b Box) IsValid() bool {
	return !(b.Min[0] > b.Max[0] ||
		b.Min[1] > b.Max[1] ||
		b.Min[2] > b.Max[2])
}

func (b Box) Contains(v glmat.Vec4) bool {
	return !(v[0] < b.Min[0] ||
		v[1] < b.Min[1] ||
		v[2] < b.Min[2] ||
		b.Max[0] < v[0] ||
		b.Max[1] < v[1] ||
		b.Max[2] < v[2])
}

// Crop returns the vertices inside b. NaN vertices are dropped.
func Crop(vs []glmat.Vec4, b Box) []glmat.Vec4 {
	out := make([]glmat.Vec4, 0, len(vs))
	for _, v := range vs {
		// NaN lanes compare unequal.
		if b.Contains(v) && v.Equal(v) {
			out = append(out, v)
		}
	}
	return out
}
