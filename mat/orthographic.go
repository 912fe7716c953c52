package mat

// Orthographic maps the box [l, r]x[b, t]x[n, f] onto the clip cube.
func Orthographic(l, r, b, t, n, f float32) Mat4 {
	m := Scale(2/(r-l), 2/(t-b), -2/(f-n))
	m[3] = NewVec4(-(r+l)/(r-l), -(t+b)/(t-b), -(f+n)/(f-n), 1)
	return m
}
