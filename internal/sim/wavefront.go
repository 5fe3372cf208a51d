package sim

// Wavefront is the single planar pulse scanning the field left to right.
// There is exactly one per simulation; it is re-armed by each firing cycle.
type Wavefront struct {
	X      float64
	Active bool
}

// Fire arms the pulse at the probe face.
func (w *Wavefront) Fire(faceX float64) {
	w.X = faceX
	w.Active = true
}

// Advance moves the leading edge and deactivates the pulse once it has left
// the field by the given margin.
func (w *Wavefront) Advance(dt, speed, rightBound, margin float64) {
	if !w.Active {
		return
	}
	w.X += speed * dt
	if w.X > rightBound+margin {
		w.Active = false
	}
}

// Transmitting reports whether the pulse is still inside the emit window at
// the probe face. This only distinguishes the "emitting" from the
// "receiving" visual state; it has no effect on collision physics.
func (w *Wavefront) Transmitting(faceX, window float64) bool {
	return w.Active && w.X >= faceX && w.X <= faceX+window
}
