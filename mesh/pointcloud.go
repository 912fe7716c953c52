package mesh

import (
	"errors"
	"fmt"
	"io"

	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/glmath/mat"
)

var ErrEmpty = errors.New("mesh: no vertex")

// FromPointCloud reads the x, y and z fields of pp as points (w = 1).
func FromPointCloud(pp *pc.PointCloud) ([]mat.Vec4, error) {
	if pp.Points == 0 {
		return []mat.Vec4{}, nil
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	out := make([]mat.Vec4, 0, it.Len())
	for ; it.IsValid(); it.Incr() {
		out = append(out, mat.Vec4FromVec3(it.Vec3(), 1))
	}
	return out, nil
}

// LoadTransformed parses a PCD stream and applies m to each point while
// reading it. m should be affine since w is dropped without division.
func LoadTransformed(r io.Reader, m mat.Mat4) ([]mat.Vec4, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, fmt.Errorf("mesh: reading pcd: %w", err)
	}
	if pp.Points == 0 {
		return []mat.Vec4{}, nil
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	ra := TransformedView(it, m)
	out := make([]mat.Vec4, ra.Len())
	for i := range out {
		out[i] = mat.Vec4FromVec3(ra.Vec3At(i), 1)
	}
	return out, nil
}

// ToPointCloud stores x, y and z of each vertex as a float point cloud.
// w is dropped without dividing by it.
func ToPointCloud(vs []mat.Vec4) (*pc.PointCloud, error) {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z"},
			Size:      []int{4, 4, 4},
			Type:      []string{"F", "F", "F"},
			Count:     []int{1, 1, 1},
			Width:     len(vs),
			Height:    1,
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
		},
		Points: len(vs),
	}
	pp.Data = make([]byte, len(vs)*pp.Stride())
	if len(vs) == 0 {
		return pp, nil
	}

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	for _, v := range vs {
		it.SetVec3(v.Vec3())
		it.Incr()
	}
	return pp, nil
}

// Load parses a PCD stream into vertices.
func Load(r io.Reader) ([]mat.Vec4, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, fmt.Errorf("mesh: reading pcd: %w", err)
	}
	return FromPointCloud(pp)
}

// Save writes vertices as a PCD stream.
func Save(w io.Writer, vs []mat.Vec4) error {
	pp, err := ToPointCloud(vs)
	if err != nil {
		return err
	}
	if err := pc.Marshal(pp, w); err != nil {
		return fmt.Errorf("mesh: writing pcd: %w", err)
	}
	return nil
}

// Bounds returns the axis aligned box containing all vertices.
// The returned corners are points (w = 1).
func Bounds(vs []mat.Vec4) (min, max mat.Vec4, err error) {
	if len(vs) == 0 {
		return mat.Vec4{}, mat.Vec4{}, ErrEmpty
	}
	pp, err := ToPointCloud(vs)
	if err != nil {
		return mat.Vec4{}, mat.Vec4{}, err
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return mat.Vec4{}, mat.Vec4{}, fmt.Errorf("mesh: %w", err)
	}
	lo, hi, err := pc.MinMaxVec3(it)
	if err != nil {
		return mat.Vec4{}, mat.Vec4{}, fmt.Errorf("mesh: %w", err)
	}
	return mat.Vec4FromVec3(lo, 1), mat.Vec4FromVec3(hi, 1), nil
}
