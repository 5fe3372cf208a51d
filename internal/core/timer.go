package core

import "time"

// FrameTimer measures the wall-clock delta between successive frames. The
// delta is clamped to an upper bound so a stalled host callback (window
// minimized, debugger pause) does not produce a catch-up jump, and the first
// frame reports a nominal default step because no previous timestamp exists.
type FrameTimer struct {
	last        time.Time
	maxStep     time.Duration
	defaultStep time.Duration

	now func() time.Time
}

// NewFrameTimer constructs a timer with the given clamp and first-frame step.
func NewFrameTimer(maxStep, defaultStep time.Duration) *FrameTimer {
	if maxStep <= 0 {
		maxStep = 250 * time.Millisecond
	}
	if defaultStep <= 0 {
		defaultStep = time.Second / 60
	}
	return &FrameTimer{
		maxStep:     maxStep,
		defaultStep: defaultStep,
		now:         time.Now,
	}
}

// Delta returns the elapsed time in seconds since the previous call, clamped
// to the configured maximum step.
func (t *FrameTimer) Delta() float64 {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		return t.defaultStep.Seconds()
	}
	delta := now.Sub(t.last)
	t.last = now
	if delta <= 0 {
		return t.defaultStep.Seconds()
	}
	if delta > t.maxStep {
		delta = t.maxStep
	}
	return delta.Seconds()
}

// Reset forgets the previous timestamp so the next Delta reports the default
// step. Used when resuming from a pause.
func (t *FrameTimer) Reset() {
	t.last = time.Time{}
}
