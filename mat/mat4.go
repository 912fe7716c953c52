package mat

import (
	"strings"
)

// Mat4 is a 4x4 matrix stored as four columns.
//
// m[j][i] is the element in the i'th row and j'th column, so the memory
// layout matches a column-major [16]float32.
type Mat4 [4]Vec4

func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// FromCols reads the first 16 values of c as consecutive columns.
func FromCols(c []float32) Mat4 {
	_ = c[15]
	var m Mat4
	for j := range m {
		copy(m[j][:], c[4*j:4*j+4])
	}
	return m
}

// FromRows reads the first 16 values of r as consecutive rows.
func FromRows(r []float32) Mat4 {
	return FromCols(r).Transpose()
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

func (m Mat4) Col(j int) Vec4 {
	return m[j]
}

func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[0][i], m[1][i], m[2][i], m[3][i]}
}

func (m Mat4) At(row, col int) float32 {
	return m[col][row]
}

func (m Mat4) Add(a Mat4) Mat4 {
	var out Mat4
	for j := range m {
		out[j] = m[j].Add(a[j])
	}
	return out
}

func (m Mat4) Sub(a Mat4) Mat4 {
	var out Mat4
	for j := range m {
		out[j] = m[j].Sub(a[j])
	}
	return out
}

// Mul returns m*a.
func (m Mat4) Mul(a Mat4) Mat4 {
	// Columns of the transpose are the rows of m.
	rows := m.Transpose()
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = rows[j].Dot(a[i])
		}
	}
	return out
}

// MulVec returns m*v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	rows := m.Transpose()
	var out Vec4
	for i := range out {
		out[i] = rows[i].Dot(v)
	}
	return out
}

// Equal compares all 16 elements exactly.
func (m Mat4) Equal(a Mat4) bool {
	return m[0].Equal(a[0]) && m[1].Equal(a[1]) &&
		m[2].Equal(a[2]) && m[3].Equal(a[3])
}

// Float32s returns the elements in column-major order, ready to be
// uploaded as a mat4 uniform.
func (m Mat4) Float32s() [16]float32 {
	var out [16]float32
	for j := range m {
		copy(out[4*j:], m[j][:])
	}
	return out
}

// String prints the matrix row by row, one line per row.
func (m Mat4) String() string {
	rows := m.Transpose()
	lines := make([]string, 4)
	for i, r := range rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
