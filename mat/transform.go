package mat

import (
	"github.com/chewxy/math32"
)

// Translate returns a matrix moving points by (v.x, v.y, v.z).
// The w lane of v is ignored.
func Translate(v Vec4) Mat4 {
	m := Identity()
	m[3] = Vec4{v[0], v[1], v[2], 1}
	return m
}

func Scale(x, y, z float32) Mat4 {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// Rotate returns the rotation by deg degrees about axis.
// axis is normalized here, its w lane should be 0.
func Rotate(deg float32, axis Vec4) Mat4 {
	ang := deg * math32.Pi / 180
	c := math32.Cos(ang)
	s := math32.Sin(ang)
	a := axis.Normalized()
	x, y, z := a[0], a[1], a[2]

	return FromCols([]float32{
		c + x*x*(1-c), y*x*(1-c) + z*s, z*x*(1-c) - y*s, 0,
		x*y*(1-c) - z*s, c + y*y*(1-c), z*y*(1-c) + x*s, 0,
		x*z*(1-c) + y*s, y*z*(1-c) - x*s, c + z*z*(1-c), 0,
		0, 0, 0, 1,
	})
}

// LookAt returns the view matrix of a camera at eye looking at center.
// All three vectors should have w = 0. up must not be parallel to
// center-eye; that case is not detected and yields NaN.
func LookAt(eye, center, up Vec4) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up.Normalized())
	u := s.Normalized().Cross(f)

	m := Identity()
	m[0] = s
	m[1] = u
	m[2] = f.Scale(-1)
	return m.Transpose().Mul(Translate(eye.Scale(-1)))
}
