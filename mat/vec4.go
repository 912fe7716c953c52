package mat

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec4 is a 4 lane float32 vector (x, y, z, w).
//
// Any quadruple is a valid value, NaN and Inf included.
type Vec4 [4]float32

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func (v Vec4) X() float32 { return v[0] }
func (v Vec4) Y() float32 { return v[1] }
func (v Vec4) Z() float32 { return v[2] }
func (v Vec4) W() float32 { return v[3] }

// Lane returns the i-th component. i must be in [0, 3].
func (v Vec4) Lane(i int) float32 { return v[i] }

func (v *Vec4) SetX(x float32) { v[0] = x }
func (v *Vec4) SetY(y float32) { v[1] = y }
func (v *Vec4) SetZ(z float32) { v[2] = z }
func (v *Vec4) SetW(w float32) { v[3] = w }

func (v Vec4) Add(a Vec4) Vec4 {
	return Vec4{v[0] + a[0], v[1] + a[1], v[2] + a[2], v[3] + a[3]}
}

func (v Vec4) Sub(a Vec4) Vec4 {
	return Vec4{v[0] - a[0], v[1] - a[1], v[2] - a[2], v[3] - a[3]}
}

// Mul returns the componentwise product. Use Dot for the inner product.
func (v Vec4) Mul(a Vec4) Vec4 {
	return Vec4{v[0] * a[0], v[1] * a[1], v[2] * a[2], v[3] * a[3]}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Dot sums the products of all four lanes, w included.
// Directions are expected to carry w = 0; it is not masked here.
func (v Vec4) Dot(a Vec4) float32 {
	m := v.Mul(a)
	return m[0] + m[1] + m[2] + m[3]
}

// Cross treats v and a as 3D vectors and computes
// v.yzx*a.zxy - v.zxy*a.yzx over all four lanes.
//
// The w lane of the result is v.w*a.w - v.w*a.w: 0 for finite input,
// NaN when either w is Inf or NaN. It is not forced to 0.
func (v Vec4) Cross(a Vec4) Vec4 {
	lhs := Vec4{v[1], v[2], v[0], v[3]}.Mul(Vec4{a[2], a[0], a[1], a[3]})
	rhs := Vec4{v[2], v[0], v[1], v[3]}.Mul(Vec4{a[1], a[2], a[0], a[3]})
	return lhs.Sub(rhs)
}

func (v Vec4) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length.
// A zero vector gives Inf/NaN lanes; checking for it is up to the caller.
func (v Vec4) Normalized() Vec4 {
	return v.Scale(1 / v.Len())
}

// Equal reports whether all lanes compare equal with ==.
// There is no tolerance, so this is meant for deterministic results only.
func (v Vec4) Equal(a Vec4) bool {
	return v[0] == a[0] && v[1] == a[1] && v[2] == a[2] && v[3] == a[3]
}

// EqualMask returns 1 in each lane where v and a are equal, 0 elsewhere.
func (v Vec4) EqualMask(a Vec4) Vec4 {
	var out Vec4
	for i := range out {
		if v[i] == a[i] {
			out[i] = 1
		}
	}
	return out
}

func (v Vec4) String() string {
	return fmt.Sprintf("[%.2f, %.2f, %.2f, %.2f]", v[0], v[1], v[2], v[3])
}
