package mesh

import (
	"bytes"
	"errors"
	"testing"

	"github.com/seqsense/pcgol/pc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqsense/glmath/mat"
)

func TestPointCloud(t *testing.T) {
	vs := []mat.Vec4{
		{1, 2, 3, 1},
		{-4, 5, -6, 1},
		{0.5, 0.25, 0.125, 1},
	}

	t.Run("Convert", func(t *testing.T) {
		pp, err := ToPointCloud(vs)
		require.NoError(t, err)
		assert.Equal(t, 3, pp.Points)
		assert.Equal(t, 12, pp.Stride())

		out, err := FromPointCloud(pp)
		require.NoError(t, err)
		assert.Equal(t, vs, out)
	})
	t.Run("DropW", func(t *testing.T) {
		pp, err := ToPointCloud([]mat.Vec4{{2, 4, 6, 2}})
		require.NoError(t, err)
		out, err := FromPointCloud(pp)
		require.NoError(t, err)
		assert.Equal(t, []mat.Vec4{{2, 4, 6, 1}}, out)
	})
	t.Run("SaveLoad", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Save(&buf, vs))
		out, err := Load(&buf)
		require.NoError(t, err)
		assert.Equal(t, vs, out)
	})
	t.Run("LabelField", func(t *testing.T) {
		pp := &pc.PointCloud{
			PointCloudHeader: pc.PointCloudHeader{
				Fields: []string{"x", "y", "z", "label"},
				Size:   []int{4, 4, 4, 4},
				Type:   []string{"F", "F", "F", "U"},
				Count:  []int{1, 1, 1, 1},
				Width:  2,
				Height: 1,
			},
			Points: 2,
		}
		pp.Data = make([]byte, 2*pp.Stride())
		it, err := pp.Vec3Iterator()
		require.NoError(t, err)
		it.SetVec3(vs[0].Vec3())
		it.Incr()
		it.SetVec3(vs[1].Vec3())

		out, err := FromPointCloud(pp)
		require.NoError(t, err)
		assert.Equal(t, vs[:2], out)
	})
	t.Run("Empty", func(t *testing.T) {
		pp, err := ToPointCloud(nil)
		require.NoError(t, err)
		out, err := FromPointCloud(pp)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
	t.Run("Malformed", func(t *testing.T) {
		_, err := Load(bytes.NewBufferString("VERSION\n"))
		assert.Error(t, err)
	})
}

func TestBounds(t *testing.T) {
	min, max, err := Bounds(OpenCube())
	require.NoError(t, err)
	assert.Equal(t, mat.NewVec4(-1, -1, -1, 1), min)
	assert.Equal(t, mat.NewVec4(1, 1, 1, 1), max)

	m := mat.Translate(mat.NewVec4(10, 0, 0, 0)).Mul(mat.Scale(1, 2, 3))
	min, max, err = Bounds(Transform(OpenCube(), m))
	require.NoError(t, err)
	assert.Equal(t, mat.NewVec4(9, -2, -3, 1), min)
	assert.Equal(t, mat.NewVec4(11, 2, 3, 1), max)

	_, _, err = Bounds(nil)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestLoadTransformed(t *testing.T) {
	vs := []mat.Vec4{
		{1, 2, 3, 1},
		{-4, 5, -6, 1},
	}
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, vs))

	m := mat.Translate(mat.NewVec4(1, -2, -4, 0)).Mul(mat.Scale(2, 2, 2))
	out, err := LoadTransformed(&buf, m)
	require.NoError(t, err)
	assert.Equal(t, []mat.Vec4{{3, 2, 2, 1}, {-7, 8, -16, 1}}, out)
	assert.Equal(t, Transform(vs, m), out)

	_, err = LoadTransformed(bytes.NewBufferString("VERSION\n"), m)
	assert.Error(t, err)
}
