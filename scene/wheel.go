package scene

import (
	"time"
)

const (
	// Identical consecutive deltas needed to treat the device as a
	// notched wheel.
	notchDetectCount = 4
	initialPeakRate  = 10
	// Continuous deltas are scaled so that the recent peak rate maps here.
	continuousScale = 250
	maxWheelDt      = 100 * time.Millisecond
)

type wheelKind int

const (
	wheelUnknown wheelKind = iota
	wheelNotched
	wheelContinuous
)

// WheelNormalizer maps wheel deltas of different devices and browsers to
// a common scale: notched wheels give -1 or 1 per event, touchpads and
// free spinning wheels give values of a similar magnitude.
type WheelNormalizer struct {
	// Now defaults to time.Now.
	Now func() time.Time

	events int
	ready  bool

	kind     wheelKind
	peakRate float64

	sameCount int
	lastAbs   float64

	lastTime time.Time
	pending  float64
}

func (n *WheelNormalizer) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

func (n *WheelNormalizer) detect(dAbs float64) {
	if n.lastAbs == dAbs {
		n.sameCount++
	} else {
		n.sameCount = 0
	}
	n.lastAbs = dAbs

	prev := n.kind
	if n.sameCount > notchDetectCount {
		n.kind = wheelNotched
	} else {
		n.kind = wheelContinuous
	}
	if n.kind != prev {
		n.peakRate = initialPeakRate
	}
}

func (n *WheelNormalizer) trackRate(d float64) {
	t := n.now()
	dt := t.Sub(n.lastTime)
	if dt <= 0 {
		n.pending += d
		return
	}
	if dt > maxWheelDt {
		dt = maxWheelDt
	}
	rate := (n.pending + d) / dt.Seconds()
	n.pending = 0
	n.lastTime = t
	if rate < 0 {
		rate = -rate
	}
	if n.peakRate < rate {
		// Low-pass to suppress spikes.
		n.peakRate = n.peakRate*0.5 + rate*0.5
	}
	n.peakRate *= 0.95
}

// Normalize returns the normalized delta. The second value is false
// until a few events are seen and the device kind is known.
func (n *WheelNormalizer) Normalize(d float64) (float64, bool) {
	if n.events > notchDetectCount {
		n.ready = true
	} else {
		n.events++
	}

	dAbs := d
	if dAbs < 0 {
		dAbs = -d
	}
	if dAbs == 0 {
		return 0, n.ready
	}

	n.detect(dAbs)
	n.trackRate(d)
	if n.peakRate < 1 {
		n.peakRate = 1
	}

	if n.kind == wheelNotched {
		if d < 0 {
			return -1, n.ready
		}
		return 1, n.ready
	}
	return d * continuousScale / n.peakRate, n.ready
}
