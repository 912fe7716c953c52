// Package scene describes a camera, a projection and a model placement
// loaded from YAML, and turns them into matrices.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/glmath/mat"
)

var (
	ErrUnknownProjection = errors.New("scene: unknown projection type")
	ErrInvalidVector     = errors.New("scene: vector must have 3 elements")
	ErrInvalidFrustum    = errors.New("scene: invalid frustum")
)

const (
	Perspective  = "perspective"
	Orthographic = "orthographic"
)

type Config struct {
	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`
	Model      Model      `yaml:"model"`
}

type Camera struct {
	Eye    []float32 `yaml:"eye"`
	Center []float32 `yaml:"center"`
	Up     []float32 `yaml:"up"`
}

// Projection holds parameters of both projection types.
// Only the ones of Type are used.
type Projection struct {
	Type   string  `yaml:"type"`
	FovY   float32 `yaml:"fov_y"`
	Aspect float32 `yaml:"aspect"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
}

type Rotation struct {
	Angle float32   `yaml:"angle"`
	Axis  []float32 `yaml:"axis"`
}

// Model places the mesh in the world: scaled first, then rotated in
// list order, then translated.
type Model struct {
	Translate []float32  `yaml:"translate"`
	Scale     []float32  `yaml:"scale"`
	Rotate    []Rotation `yaml:"rotate"`
}

// Default returns the scene of the rotating cube demo: a 640x480
// perspective camera five units in front of the origin.
func Default() *Config {
	return &Config{
		Camera: Camera{
			Eye:    []float32{0, 0, 5},
			Center: []float32{0, 0, 0},
			Up:     []float32{0, 1, 0},
		},
		Projection: Projection{
			Type:   Perspective,
			FovY:   75,
			Aspect: 640.0 / 480,
			Near:   1,
			Far:    100,
			Left:   -1,
			Right:  1,
			Bottom: -1,
			Top:    1,
		},
		Model: Model{
			Translate: []float32{0, 2, -5},
			Scale:     []float32{2, 2, 2},
			Rotate: []Rotation{
				{Angle: 45, Axis: []float32{1, 1, 0}},
			},
		},
	}
}

// Load decodes a scene over the defaults. Unknown keys are rejected.
// An empty document gives the defaults.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: decoding: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

type namedVector struct {
	name string
	v    []float32
}

func (c *Config) Validate() error {
	vecs := []namedVector{
		{"camera.eye", c.Camera.Eye},
		{"camera.center", c.Camera.Center},
		{"camera.up", c.Camera.Up},
		{"model.translate", c.Model.Translate},
		{"model.scale", c.Model.Scale},
	}
	for i, r := range c.Model.Rotate {
		vecs = append(vecs, namedVector{fmt.Sprintf("model.rotate[%d].axis", i), r.Axis})
	}
	for _, v := range vecs {
		if len(v.v) != 3 {
			return fmt.Errorf("%s: %w, got %d", v.name, ErrInvalidVector, len(v.v))
		}
	}

	p := c.Projection
	switch p.Type {
	case Perspective:
		switch {
		case p.FovY <= 0 || p.FovY >= 180:
			return fmt.Errorf("%w: fov_y %g out of (0, 180)", ErrInvalidFrustum, p.FovY)
		case p.Aspect <= 0:
			return fmt.Errorf("%w: aspect %g", ErrInvalidFrustum, p.Aspect)
		case p.Near <= 0 || p.Far <= p.Near:
			return fmt.Errorf("%w: near %g, far %g", ErrInvalidFrustum, p.Near, p.Far)
		}
	case Orthographic:
		if p.Left == p.Right || p.Bottom == p.Top || p.Near == p.Far {
			return fmt.Errorf("%w: empty box", ErrInvalidFrustum)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProjection, p.Type)
	}
	return nil
}

func point(v []float32) mat.Vec4 {
	return mat.NewVec4(v[0], v[1], v[2], 1)
}

func direction(v []float32) mat.Vec4 {
	return mat.NewVec4(v[0], v[1], v[2], 0)
}

// View returns the camera matrix. Directions are passed to LookAt with w = 0.
func (c *Config) View() mat.Mat4 {
	return mat.LookAt(
		direction(c.Camera.Eye),
		direction(c.Camera.Center),
		direction(c.Camera.Up),
	)
}

// ProjectionMatrix returns the projection of the configured type.
// Unknown types give the identity; Validate reports them.
func (c *Config) ProjectionMatrix() mat.Mat4 {
	p := c.Projection
	switch p.Type {
	case Perspective:
		return mat.Perspective(p.FovY, p.Aspect, p.Near, p.Far)
	case Orthographic:
		return mat.Orthographic(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	}
	return mat.Identity()
}

// WithAspect returns a copy of c with the perspective aspect ratio of a
// width x height viewport.
func (c *Config) WithAspect(width, height int) *Config {
	cc := *c
	if height > 0 {
		cc.Projection.Aspect = float32(width) / float32(height)
	}
	return &cc
}

func (c *Config) ModelMatrix() mat.Mat4 {
	m := mat.Translate(point(c.Model.Translate))
	for _, r := range c.Model.Rotate {
		m = m.Mul(mat.Rotate(r.Angle, direction(r.Axis)))
	}
	s := c.Model.Scale
	return m.Mul(mat.Scale(s[0], s[1], s[2]))
}

// MVP returns projection * view * model.
func (c *Config) MVP() mat.Mat4 {
	return c.ProjectionMatrix().Mul(c.View()).Mul(c.ModelMatrix())
}
