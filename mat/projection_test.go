package mat

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOrthographic(t *testing.T) {
	t.Run("Literal", func(t *testing.T) {
		m := Orthographic(-1, 1, -1, 1, 1, 100)
		expected := Mat4{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, float32(-2.0 / 99), 0},
			{0, 0, float32(-101.0 / 99), 1},
		}
		if !m.Equal(expected) {
			t.Errorf("Expected:\n%v\ngot:\n%v", expected, m)
		}
	})

	testCases := map[string][6]float32{
		"Screen": {0, 640, 0, 480, -1, 1},
		"Box":    {-5, 3, -2, 8, 0.5, 50},
	}
	for name, p := range testCases {
		p := p
		t.Run(name, func(t *testing.T) {
			m := Orthographic(p[0], p[1], p[2], p[3], p[4], p[5])
			expected := mgl32.Ortho(p[0], p[1], p[2], p[3], p[4], p[5])
			if !toMGL(m).ApproxEqualThreshold(expected, 1e-6) {
				t.Errorf("Expected:\n%v\ngot:\n%v", expected, m)
			}
			// Box corners map to the clip cube corners.
			lbn := m.MulVec(NewVec4(p[0], p[2], -p[4], 1))
			rtf := m.MulVec(NewVec4(p[1], p[3], -p[5], 1))
			assertVec4InDelta(t, NewVec4(-1, -1, -1, 1), lbn, 1e-5)
			assertVec4InDelta(t, NewVec4(1, 1, 1, 1), rtf, 1e-5)
		})
	}
}

func TestPerspective(t *testing.T) {
	t.Run("Literal", func(t *testing.T) {
		m := Perspective(90, 1, 1, 100)
		expected := Mat4{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, float32(-101.0 / 99), -1},
			{0, 0, float32(-200.0 / 99), 0},
		}
		if !m.Equal(expected) {
			t.Errorf("Expected:\n%v\ngot:\n%v", expected, m)
		}
	})

	testCases := map[string]struct {
		fovY, aspect, near, far float32
	}{
		"Wide":   {90, 16.0 / 9, 0.1, 1000},
		"Narrow": {30, 4.0 / 3, 1, 100},
		"Tall":   {60, 0.5, 0.5, 20},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			m := Perspective(tt.fovY, tt.aspect, tt.near, tt.far)
			expected := mgl32.Perspective(mgl32.DegToRad(tt.fovY), tt.aspect, tt.near, tt.far)
			if !toMGL(m).ApproxEqualThreshold(expected, 1e-5) {
				t.Errorf("Expected:\n%v\ngot:\n%v", expected, m)
			}

			// Points on the near and far planes go to -1 and 1 after the
			// perspective divide.
			n := m.MulVec(NewVec4(0, 0, -tt.near, 1))
			f := m.MulVec(NewVec4(0, 0, -tt.far, 1))
			if d := n.Z()/n.W() + 1; d < -1e-4 || 1e-4 < d {
				t.Errorf("near plane maps to %f", n.Z()/n.W())
			}
			if d := f.Z()/f.W() - 1; d < -1e-3 || 1e-3 < d {
				t.Errorf("far plane maps to %f", f.Z()/f.W())
			}
		})
	}
}
