package vessel

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"echolab/internal/core"
)

// defaultSamplesPerSpan is the polyline density between adjacent anchors.
// Dense enough that the piecewise-linear lookup is visually smooth at any
// reasonable field size.
const defaultSamplesPerSpan = 24

// Layout describes one vessel in normalized field coordinates: anchor points
// in [0,1]x[0,1], a radius as a fraction of the field height, and the flow
// and population parameters for the particles it carries.
type Layout struct {
	Name        string
	Anchors     []core.Vec2
	Radius      float64
	FlowRate    float64
	Particles   int
	ClusterSize int
	Samples     int
}

// Build scales the layout to the field and samples a smooth centerline
// through its anchors. A natural cubic spline is fitted per coordinate over
// the anchor sequence, then sampled into a dense polyline; two anchors
// degenerate to a straight segment.
func (l Layout) Build(field core.Size) (*Path, error) {
	n := len(l.Anchors)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	knots := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, a := range l.Anchors {
		knots[i] = float64(i) / float64(n-1)
		xs[i] = a.X * field.W
		ys[i] = a.Y * field.H
	}

	var sx, sy interp.NaturalCubic
	if err := sx.Fit(knots, xs); err != nil {
		return nil, fmt.Errorf("vessel %q: fit x: %w", l.Name, err)
	}
	if err := sy.Fit(knots, ys); err != nil {
		return nil, fmt.Errorf("vessel %q: fit y: %w", l.Name, err)
	}

	samples := l.Samples
	if samples <= 0 {
		samples = defaultSamplesPerSpan
	}
	count := (n-1)*samples + 1
	pts := make([]core.Vec2, count)
	for i := range pts {
		u := float64(i) / float64(count-1)
		pts[i] = core.Vec2{X: sx.Predict(u), Y: sy.Predict(u)}
	}

	return NewPath(pts, l.Radius*field.H, l.FlowRate)
}
