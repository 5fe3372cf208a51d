// Package vessel models blood-vessel centerlines as densely sampled
// polylines. Curvature comes from how finely a Layout samples its spline,
// not from the lookup itself: PointAt stays piecewise linear.
package vessel

import (
	"errors"
	"math"

	"echolab/internal/core"
)

// ErrTooFewPoints reports a centerline that cannot be evaluated.
var ErrTooFewPoints = errors.New("vessel: path needs at least two control points")

// Path is one vessel centerline, indexed by a normalized arc parameter.
// Control points are fixed after construction.
type Path struct {
	pts      []core.Vec2
	radius   float64
	flowRate float64
}

// NewPath builds a path over the given control points. Radius is the vessel
// half-width and is purely descriptive; flowRate is the arc-parameter
// increment per second for particles riding the path.
func NewPath(pts []core.Vec2, radius, flowRate float64) (*Path, error) {
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}
	return &Path{pts: pts, radius: radius, flowRate: flowRate}, nil
}

// Points exposes the control points. Callers must treat them as read-only.
func (p *Path) Points() []core.Vec2 { return p.pts }

// Radius returns the descriptive vessel half-width.
func (p *Path) Radius() float64 { return p.radius }

// FlowRate returns the arc-parameter increment per second.
func (p *Path) FlowRate() float64 { return p.flowRate }

// PointAt maps t in [0,1) to an interpolated position on the polyline and
// the local tangent angle. Callers pre-wrap t; the segment index is clamped
// so t exactly 1 still lands on the final segment. A zero-length segment
// borrows the previous segment's direction for the tangent.
func (p *Path) PointAt(t float64) (x, y, angle float64) {
	total := float64(len(p.pts) - 1)
	idx := int(t * total)
	if idx < 0 {
		idx = 0
	}
	if idx > len(p.pts)-2 {
		idx = len(p.pts) - 2
	}
	frac := t*total - float64(idx)

	a, b := p.pts[idx], p.pts[idx+1]
	x = core.Lerp(a.X, b.X, frac)
	y = core.Lerp(a.Y, b.Y, frac)

	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 && idx > 0 {
		prev := p.pts[idx-1]
		dx, dy = a.X-prev.X, a.Y-prev.Y
	}
	angle = math.Atan2(dy, dx)
	return x, y, angle
}
