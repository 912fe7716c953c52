package mesh

import (
	"math"
	"reflect"
	"testing"

	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/glmath/mat"
)

func TestTransformedView(t *testing.T) {
	in := pc.Vec3Slice{
		{1, 2, 3},
		{2, 3, 4},
		{3, 4, 5},
	}
	ra := TransformedView(in, mat.Translate(mat.NewVec4(1, -2, -4, 0)))

	expected := pc.Vec3Slice{
		{2, 0, -1},
		{3, 1, 0},
		{4, 2, 1},
	}
	if ra.Len() != in.Len() {
		t.Fatalf("Input and output length must be same, in: %d, out: %d", in.Len(), ra.Len())
	}
	for i, e := range expected {
		v := ra.Vec3At(i)
		if !e.Equal(v) {
			t.Errorf("Expected Vec3At(%d): %v, got: %v", i, e, v)
		}
	}
}

func TestBoxIntersect(t *testing.T) {
	testCases := map[string]struct {
		a, b     Box
		expected Box
	}{
		"ABottomRight": {
			a:        Box{mat.Vec4{1, 2, 3, 1}, mat.Vec4{5, 6, 7, 1}},
			b:        Box{mat.Vec4{4, 5, 6, 1}, mat.Vec4{7, 8, 9, 1}},
			expected: Box{mat.Vec4{4, 5, 6, 1}, mat.Vec4{5, 6, 7, 1}},
		},
		"Mixed": {
			a:        Box{mat.Vec4{1, 2, 3, 1}, mat.Vec4{5, 6, 7, 1}},
			b:        Box{mat.Vec4{4, 3, 2, 1}, mat.Vec4{6, 4, 10, 1}},
			expected: Box{mat.Vec4{4, 3, 3, 1}, mat.Vec4{5, 4, 7, 1}},
		},
		"NoOverlap": {
			a:        Box{mat.Vec4{1, 2, 3, 1}, mat.Vec4{3, 4, 5, 1}},
			b:        Box{mat.Vec4{6, 7, 8, 1}, mat.Vec4{9, 10, 11, 1}},
			expected: Box{mat.Vec4{6, 7, 8, 1}, mat.Vec4{3, 4, 5, 1}},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Run("Forward", func(t *testing.T) {
				out := tt.a.Intersect(tt.b)
				if !reflect.DeepEqual(tt.expected, out) {
					t.Errorf("Expected box: %v, got: %v", tt.expected, out)
				}
			})
			t.Run("Reverse", func(t *testing.T) {
				out := tt.b.Intersect(tt.a)
				if !reflect.DeepEqual(tt.expected, out) {
					t.Errorf("Expected box: %v, got: %v", tt.expected, out)
				}
			})
		})
	}
}

func TestBox(t *testing.T) {
	testCases := map[string]struct {
		b      Box
		valid  bool
		inside []mat.Vec4
		out    []mat.Vec4
	}{
		"Valid": {
			b:      Box{mat.Vec4{4, 5, 6, 1}, mat.Vec4{5, 6, 7, 1}},
			valid:  true,
			inside: []mat.Vec4{{4.5, 5.6, 6.7, 1}, {4, 5, 6, 1}, {5, 6, 7, 0}},
			out: []mat.Vec4{
				{3.5, 5.6, 6.7, 1},
				{5.5, 5.6, 6.7, 1},
				{4.5, 6.6, 6.7, 1},
				{4.5, 5.6, 7.7, 1},
			},
		},
		"Invalid": {
			b:     Box{mat.Vec4{6, 7, 8, 1}, mat.Vec4{3, 4, 5, 1}},
			valid: false,
			out:   []mat.Vec4{{4, 5, 6, 1}, {10, 10, 10, 1}},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if ok := tt.b.IsValid(); ok != tt.valid {
				t.Errorf("IsValid expected to be %v", tt.valid)
			}
			for _, p := range tt.inside {
				if !tt.b.Contains(p) {
					t.Errorf("%v is expected to be inside", p)
				}
			}
			for _, p := range tt.out {
				if tt.b.Contains(p) {
					t.Errorf("%v is expected to be outside", p)
				}
			}
		})
	}
}

func TestCrop(t *testing.T) {
	nan := float32(math.NaN())
	vs := []mat.Vec4{
		{0, 0, 0, 1},
		{1, 1, 1, 1},
		{1.5, 0, 0, 1},
		{0, -2, 0, 1},
		{nan, 0, 0, 1},
		{0.5, -0.5, 0.9, 1},
	}
	expected := []mat.Vec4{
		{0, 0, 0, 1},
		{1, 1, 1, 1},
		{0.5, -0.5, 0.9, 1},
	}
	out := Crop(vs, ClipVolume)
	if !reflect.DeepEqual(expected, out) {
		t.Errorf("Expected %v, got %v", expected, out)
	}
}
