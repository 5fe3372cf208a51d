package core

import "math"

// Vec2 is a point or direction in field coordinates.
type Vec2 struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance to other.
func (v Vec2) Dist(other Vec2) float64 {
	return math.Hypot(other.X-v.X, other.Y-v.Y)
}

// Size describes the dimensions of the imaged field.
type Size struct {
	W float64
	H float64
}

// Diagonal returns the field diagonal, the natural upper bound for any
// expanding disturbance inside the field.
func (s Size) Diagonal() float64 {
	return math.Hypot(s.W, s.H)
}

// Wrap01 normalizes an arc parameter into [0, 1).
func Wrap01(t float64) float64 {
	t -= math.Floor(t)
	if t >= 1 {
		t = 0
	}
	return t
}

// Lerp blends linearly between a and b by weight w.
func Lerp(a, b, w float64) float64 {
	return a + (b-a)*w
}
