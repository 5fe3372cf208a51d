package vessel

import (
	"math"
	"testing"

	"echolab/internal/core"
)

func TestNewPathRejectsDegenerateGeometry(t *testing.T) {
	if _, err := NewPath(nil, 1, 0.1); err != ErrTooFewPoints {
		t.Fatalf("nil points: err = %v, want ErrTooFewPoints", err)
	}
	if _, err := NewPath([]core.Vec2{{X: 1, Y: 1}}, 1, 0.1); err != ErrTooFewPoints {
		t.Fatalf("one point: err = %v, want ErrTooFewPoints", err)
	}
}

func TestPointAtEndpoints(t *testing.T) {
	pts := []core.Vec2{{X: 0, Y: 50}, {X: 40, Y: 60}, {X: 100, Y: 50}}
	p, err := NewPath(pts, 5, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	x, y, _ := p.PointAt(0)
	if x != pts[0].X || y != pts[0].Y {
		t.Fatalf("PointAt(0) = (%f,%f), want first point (%f,%f)", x, y, pts[0].X, pts[0].Y)
	}

	x, y, _ = p.PointAt(0.999999)
	last := pts[len(pts)-1]
	if math.Hypot(x-last.X, y-last.Y) > 0.01 {
		t.Fatalf("PointAt(just under 1) = (%f,%f), want near last point (%f,%f)", x, y, last.X, last.Y)
	}
}

func TestPointAtStaysOnSegment(t *testing.T) {
	pts := []core.Vec2{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: 30, Y: 20}, {X: 40, Y: 0}}
	p, err := NewPath(pts, 5, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		tt := float64(i) / 100
		x, y, _ := p.PointAt(tt)
		onSegment := false
		for s := 0; s < len(pts)-1; s++ {
			a, b := pts[s], pts[s+1]
			minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
			minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
			if x >= minX-1e-9 && x <= maxX+1e-9 && y >= minY-1e-9 && y <= maxY+1e-9 {
				onSegment = true
				break
			}
		}
		if !onSegment {
			t.Fatalf("PointAt(%f) = (%f,%f) lies outside every segment box", tt, x, y)
		}
	}
}

func TestPointAtMidpointAndTangent(t *testing.T) {
	p, err := NewPath([]core.Vec2{{X: 0, Y: 50}, {X: 100, Y: 50}}, 5, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	x, y, angle := p.PointAt(0.5)
	if math.Abs(x-50) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Fatalf("midpoint = (%f,%f), want (50,50)", x, y)
	}
	if math.Abs(angle) > 1e-9 {
		t.Fatalf("tangent angle = %f, want 0 for a horizontal segment", angle)
	}
}

func TestPointAtZeroLengthSegmentBorrowsDirection(t *testing.T) {
	// Middle segment has zero length; the tangent there must come from the
	// preceding segment instead of atan2(0,0).
	pts := []core.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 10}, {X: 10, Y: 10}}
	p, err := NewPath(pts, 5, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	// t in the second of three segments.
	_, _, angle := p.PointAt(0.5)
	if math.Abs(angle-math.Pi/2) > 1e-9 {
		t.Fatalf("degenerate-segment tangent = %f, want pi/2 from previous segment", angle)
	}
}
