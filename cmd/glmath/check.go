package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/seqsense/glmath/mat"
)

var errCheckFailed = errors.New("check failed")

var (
	aRows = []float32{
		1, 5, 0, 0,
		2, 1, 3, 5,
		6, 9, 0, 2,
		5, 3, 8, 9,
	}
	bRows = []float32{
		4, 0, 2, 0,
		1, 2, 7, 1,
		0, 0, 2, 0,
		1, 2, 0, 1,
	}
)

type checker struct {
	w      io.Writer
	failed []string
}

func (c *checker) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.w, format, args...)
}

func (c *checker) expect(ok bool, name string) {
	if !ok {
		c.printf("%s is wrong\n", name)
		c.failed = append(c.failed, name)
	}
}

func (c *checker) err() error {
	if len(c.failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", errCheckFailed, c.failed)
}

func (c *checker) vectors() {
	a := mat.NewVec4(1, 2, 3, 4)
	b := mat.NewVec4(4, 3, 2, 1)
	c.printf("%v\n%v\n", a, b)
	c.printf("a dot b = %.2f\n", a.Dot(b))

	a = mat.NewVec4(1, 0, 0, 0)
	b = mat.NewVec4(0, 1, 0, 0)
	c.printf("a=%v\nb=%v\n", a, b)

	a = a.Cross(b)
	c.expect(a.Equal(mat.NewVec4(0, 0, 1, 0)), "cross product")
	c.printf("a = a X b=%v\n", a)

	a = a.Add(b)
	c.expect(a.Equal(mat.NewVec4(0, 1, 1, 0)), "addition")
	c.printf("a = a + b=%v\n", a)

	a = a.Scale(2)
	c.expect(a.Equal(mat.NewVec4(0, 2, 2, 0)), "scalar mult")
	c.printf("a = a * 2=%v\n", a)

	a = a.Mul(b)
	c.expect(a.Equal(mat.NewVec4(0, 2, 0, 0)), "vector mult")
	c.printf("a = a * b=%v\n", a)

	a = a.Sub(b)
	c.expect(a.Equal(mat.NewVec4(0, 1, 0, 0)), "subtraction")
	c.printf("a = a - b=%v\n", a)

	a.SetX(10)
	c.printf("%v\n", a.EqualMask(b))

	a = mat.NewVec4(5, 0, 0, 0)
	c.expect(a.Len() == 5, "length")
	c.expect(a.Normalized().Equal(mat.NewVec4(1, 0, 0, 0)), "normalize")
}

func (c *checker) matrices() {
	a := mat.FromRows(aRows)
	b := mat.FromRows(bRows)
	c.printf("Multiplying a:\n%v\nWith b:\n%v\n", a, b)
	a = a.Mul(b)
	c.printf("Multiplication result:\n%v\n", a)
	c.expect(a.Equal(mat.FromRows([]float32{
		9, 10, 37, 5,
		14, 12, 17, 6,
		35, 22, 75, 11,
		32, 24, 47, 12,
	})), "matrix mult")

	v := mat.NewVec4(1, 2, 3, 1)
	a = mat.Translate(v)
	c.printf("translation matrix for [1, 2, 3]:\n%v\n", a)
	v = a.MulVec(v)
	c.printf("Translated vector:\n%v\n", v)
	c.expect(v.Equal(mat.NewVec4(2, 4, 6, 1)), "translation")

	a = mat.Rotate(90, mat.NewVec4(1, 0, 0, 0))
	c.printf("Rotation matrix:\n%v\n", a)
	v = a.MulVec(mat.NewVec4(0, 1, 0, 0))
	c.printf("+Y vec rotated 90 deg about +X:\n%v\n", v)
	d := v.Sub(mat.NewVec4(0, 0, 1, 0))
	c.expect(d.Dot(d) < 1e-10, "rotation")
}

func (c *checker) projections() {
	m := mat.LookAt(
		mat.NewVec4(0, 0, 5, 0), mat.NewVec4(0, 0, 0, 0), mat.NewVec4(0, 1, 0, 0),
	)
	c.printf("Look at matrix:\n%v\n", m)
	c.expect(m.Equal(mat.FromRows([]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, -5,
		0, 0, 0, 1,
	})), "look at")

	m = mat.Orthographic(-1, 1, -1, 1, 1, 100)
	c.printf("ortho matrix:\n%v\n", m)
	c.expect(m.At(2, 2) == -2.0/99 && m.At(2, 3) == -101.0/99, "ortho")

	m = mat.Perspective(90, 1, 1, 100)
	c.printf("perspective:\n%v\n", m)
	c.expect(m.At(0, 0) == 1 && m.At(1, 1) == 1 && m.At(3, 2) == -1 &&
		m.At(2, 2) == -101.0/99 && m.At(2, 3) == -200.0/99 && m.At(3, 3) == 0,
		"perspective")
}

func runCheck(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c := &checker{w: w}
	c.vectors()
	c.matrices()
	c.projections()
	return c.err()
}
