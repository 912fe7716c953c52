package scene

import (
	"github.com/chewxy/math32"

	"github.com/seqsense/glmath/mat"
)

const (
	defaultDistance = 5
	defaultPitch    = math32.Pi / 6
	minDistance     = 0.1
	maxDistance     = 1000
	// Keeps the view direction away from the up vector.
	maxPitch  = math32.Pi/2 - 0.01
	yDeadband = 20
)

// Mouse buttons as reported by DOM mouse events.
const (
	ButtonLeft   = 0
	ButtonMiddle = 1
)

type orbitState struct {
	target   mat.Vec4
	yaw      float32
	pitch    float32
	distance float32
}

// Orbit is a camera rotating around Target.
// Yaw and Pitch are in radians. Yaw turns about the up axis starting from
// the heading the orbit was created with, Pitch is the elevation above the
// plane normal to up.
// It is driven by a single render loop and is not safe for concurrent use.
type Orbit struct {
	Target   mat.Vec4
	Yaw      float32
	Pitch    float32
	Distance float32

	up       mat.Vec4
	heading0 mat.Vec4
	heading1 mat.Vec4

	home orbitState
	// Exact eye of the camera the orbit was created from, used while
	// the state is still home.
	homeEye   mat.Vec4
	exactHome bool

	target0    mat.Vec4
	yaw0       float32
	pitch0     float32
	dragging   bool
	dragButton int
	dragX0     int
	dragY0     int
}

// NewOrbit returns a Z-up orbit around the origin.
func NewOrbit() *Orbit {
	o := &Orbit{
		up:       mat.NewVec4(0, 0, 1, 0),
		heading0: mat.NewVec4(1, 0, 0, 0),
		heading1: mat.NewVec4(0, 1, 0, 0),
		home: orbitState{
			distance: defaultDistance,
			pitch:    defaultPitch,
		},
	}
	o.Reset()
	return o
}

// OrbitFromCamera returns an orbit around center which starts at eye.
// All vectors should have w = 0. Unless the camera looks along up, the
// first View equals mat.LookAt(eye, center, up).
func OrbitFromCamera(eye, center, up mat.Vec4) *Orbit {
	u := up.Normalized()
	d := eye.Sub(center)
	dist := d.Len()

	h := d.Sub(u.Scale(d.Dot(u)))
	if hl := h.Len(); hl > 1e-6*dist {
		h = h.Scale(1 / hl)
	} else {
		// Looking along up; any heading normal to it works.
		h = u.Cross(mat.NewVec4(1, 0, 0, 0))
		if h.Len() < 0.5 {
			h = u.Cross(mat.NewVec4(0, 1, 0, 0))
		}
		h = h.Normalized()
	}

	var pitch float32
	if dist > 0 {
		pitch = math32.Asin(clamp(d.Dot(u)/dist, -1, 1))
	} else {
		dist = minDistance
	}

	clamped := clamp(pitch, -maxPitch, maxPitch)
	o := &Orbit{
		up:       up,
		heading0: h,
		heading1: u.Cross(h),
		home: orbitState{
			target:   center,
			pitch:    clamped,
			distance: dist,
		},
		homeEye: eye,
		// A camera looking along up has no usable view of its own.
		exactHome: clamped == pitch && dist == d.Len(),
	}
	o.Reset()
	return o
}

// Orbit returns an orbit camera starting at the configured camera.
func (c *Config) Orbit() *Orbit {
	return OrbitFromCamera(
		direction(c.Camera.Eye),
		direction(c.Camera.Center),
		direction(c.Camera.Up),
	)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (o *Orbit) state() orbitState {
	return orbitState{target: o.Target, yaw: o.Yaw, pitch: o.Pitch, distance: o.Distance}
}

// Reset moves the camera back to where the orbit was created.
func (o *Orbit) Reset() {
	o.Target = o.home.target
	o.Yaw = o.home.yaw
	o.Pitch = o.home.pitch
	o.Distance = o.home.distance
}

// SnapYaw rounds Yaw to the closest quarter turn.
func (o *Orbit) SnapYaw() {
	o.Yaw = math32.Floor(o.Yaw/(math32.Pi/2)+0.5) * (math32.Pi / 2)
}

// Wheel zooms in for negative deltaY and out for positive deltaY.
func (o *Orbit) Wheel(deltaY float32) {
	o.Distance = clamp(o.Distance+deltaY*(o.Distance*0.05+0.1), minDistance, maxDistance)
}

func (o *Orbit) DragStart(x, y, button int) {
	o.dragging = true
	o.dragButton = button
	o.dragX0, o.dragY0 = x, y
	o.yaw0 = o.Yaw
	o.pitch0 = o.Pitch
	o.target0 = o.Target
}

func (o *Orbit) DragEnd(x, y int) {
	if !o.dragging {
		return
	}
	o.Drag(x, y)
	o.dragging = false
}

// heading returns the unit vector normal to up pointing from the target
// to the camera.
func (o *Orbit) heading() mat.Vec4 {
	s, c := math32.Sincos(o.Yaw)
	return o.heading0.Scale(c).Add(o.heading1.Scale(s))
}

// Drag rotates the camera with the left button and pans the target in
// the plane normal to up with the middle button.
func (o *Orbit) Drag(x, y int) {
	if !o.dragging {
		return
	}
	xDiff := float32(x - o.dragX0)
	yDiff := float32(y - o.dragY0)
	switch o.dragButton {
	case ButtonLeft:
		o.Yaw = math32.Mod(o.yaw0-0.02*xDiff, 2*math32.Pi)
		if yDiff < -yDeadband {
			yDiff += yDeadband
		} else if yDiff > yDeadband {
			yDiff -= yDeadband
		} else {
			yDiff = 0
		}
		o.Pitch = clamp(o.pitch0+0.02*yDiff, -maxPitch, maxPitch)
	case ButtonMiddle:
		s, c := math32.Sincos(o.Yaw)
		side := o.heading0.Scale(s).Sub(o.heading1.Scale(c))
		o.Target = o.target0.Add(
			side.Scale(xDiff).Sub(o.heading().Scale(yDiff)).Scale(0.01 * o.Distance),
		)
	}
}

func (o *Orbit) orbitEye() mat.Vec4 {
	sp, cp := math32.Sincos(o.Pitch)
	u := o.up.Normalized()
	return o.Target.Add(o.heading().Scale(cp).Add(u.Scale(sp)).Scale(o.Distance))
}

// Eye returns the camera position, with w = 0 like the other LookAt inputs.
func (o *Orbit) Eye() mat.Vec4 {
	if o.exactHome && o.state() == o.home {
		return o.homeEye
	}
	return o.orbitEye()
}

func (o *Orbit) View() mat.Mat4 {
	return mat.LookAt(o.Eye(), o.Target, o.up)
}
