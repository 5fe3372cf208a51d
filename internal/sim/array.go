package sim

import "math"

// ReceiveArray models the probe's sensing face: a fixed column of elements,
// one decaying activation value per element, indexed top to bottom. Elements
// light up when an expanding echo passes through their position.
type ReceiveArray struct {
	faceX   float64
	top     float64
	spacing float64

	gain     float64
	cap      float64
	decay    float64
	elements []float64
}

// NewReceiveArray places count elements along the probe face between top and
// bottom, at segment centers.
func NewReceiveArray(count int, faceX, top, bottom, gain, cap, decay float64) *ReceiveArray {
	if count < 1 {
		count = 1
	}
	return &ReceiveArray{
		faceX:    faceX,
		top:      top,
		spacing:  (bottom - top) / float64(count),
		gain:     gain,
		cap:      cap,
		decay:    decay,
		elements: make([]float64, count),
	}
}

// Count returns the number of elements.
func (a *ReceiveArray) Count() int { return len(a.elements) }

// ElementY returns the vertical position of element i.
func (a *ReceiveArray) ElementY(i int) float64 {
	return a.top + (float64(i)+0.5)*a.spacing
}

// Top returns the vertical position of the first element.
func (a *ReceiveArray) Top() float64 { return a.ElementY(0) }

// Bottom returns the vertical position of the last element.
func (a *ReceiveArray) Bottom() float64 { return a.ElementY(len(a.elements) - 1) }

// Activations exposes the per-element activation values. Callers must treat
// the slice as read-only.
func (a *ReceiveArray) Activations() []float64 { return a.elements }

// Reset zeroes every activation without reallocating.
func (a *ReceiveArray) Reset() {
	for i := range a.elements {
		a.elements[i] = 0
	}
}

// Decay relaxes every element toward zero by the configured rate, floored at
// zero. This runs every frame regardless of echo activity.
func (a *ReceiveArray) Decay(dt float64) {
	step := a.decay * dt
	for i, v := range a.elements {
		v -= step
		if v < 0 {
			v = 0
		}
		a.elements[i] = v
	}
}

// RegisterArrivals credits each element whose position an echo wavefront has
// just crossed this frame. The one-sided window [d, d+window) over the echo
// radius is the crossing test for a monotonically expanding circle; window
// must cover the frame's radius growth or fast echoes would skip elements.
// Echoes that have faded below minOpacity, or whose origin is not in front
// of the probe face, are ignored.
func (a *ReceiveArray) RegisterArrivals(echoes []Echo, window, minOpacity float64) {
	for i := range echoes {
		e := &echoes[i]
		if e.Opacity <= minOpacity || e.CX <= a.faceX {
			continue
		}
		dx := e.CX - a.faceX
		for j := range a.elements {
			dy := e.CY - a.ElementY(j)
			d := math.Hypot(dx, dy)
			if e.Radius < d || e.Radius-d >= window {
				continue
			}
			a.elements[j] = math.Min(a.cap, a.elements[j]+a.gain)
		}
	}
}
