package mat

import (
	"math"
)

// Perspective returns a symmetric perspective projection.
// fovY is the vertical field of view in degrees.
func Perspective(fovY, aspect, n, f float32) Mat4 {
	// The cotangent is evaluated in float64 so that e.g. 90 degrees gives
	// exactly 1.
	p := float32(1 / math.Tan(float64(fovY)*math.Pi/360))
	m := Scale(p/aspect, p, (f+n)/(n-f))
	m[2][3] = -1
	m[3][2] = 2 * f * n / (n - f)
	m[3][3] = 0
	return m
}
