package vessel

import (
	"math"
	"testing"

	"echolab/internal/core"
)

func TestBuildStraightLayout(t *testing.T) {
	l := Layout{
		Name:     "straight",
		Anchors:  []core.Vec2{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}},
		Radius:   0.05,
		FlowRate: 0.1,
	}
	p, err := l.Build(core.Size{W: 100, H: 100})
	if err != nil {
		t.Fatal(err)
	}

	if got := p.Radius(); math.Abs(got-5) > 1e-9 {
		t.Fatalf("radius = %f, want 5 (0.05 of field height)", got)
	}
	if got := p.FlowRate(); got != 0.1 {
		t.Fatalf("flow rate = %f, want 0.1", got)
	}

	x, y, _ := p.PointAt(0)
	if math.Abs(x) > 1e-6 || math.Abs(y-50) > 1e-6 {
		t.Fatalf("start = (%f,%f), want (0,50)", x, y)
	}
	x, y, _ = p.PointAt(0.5)
	if math.Abs(x-50) > 1e-6 || math.Abs(y-50) > 1e-6 {
		t.Fatalf("midpoint = (%f,%f), want (50,50)", x, y)
	}
}

func TestBuildPassesThroughAnchors(t *testing.T) {
	l := Layout{
		Name:     "curved",
		Anchors:  []core.Vec2{{X: 0.1, Y: 0.2}, {X: 0.5, Y: 0.6}, {X: 0.9, Y: 0.3}},
		Radius:   0.03,
		FlowRate: 0.05,
	}
	field := core.Size{W: 200, H: 100}
	p, err := l.Build(field)
	if err != nil {
		t.Fatal(err)
	}

	pts := p.Points()
	if len(pts) != 2*defaultSamplesPerSpan+1 {
		t.Fatalf("sample count = %d, want %d", len(pts), 2*defaultSamplesPerSpan+1)
	}

	// The spline interpolates, so the sampled polyline must hit each anchor.
	for i, a := range l.Anchors {
		want := core.Vec2{X: a.X * field.W, Y: a.Y * field.H}
		best := math.Inf(1)
		for _, pt := range pts {
			if d := pt.Dist(want); d < best {
				best = d
			}
		}
		if best > 1e-6 {
			t.Fatalf("anchor %d: nearest sample is %f away from (%f,%f)", i, best, want.X, want.Y)
		}
	}
}

func TestBuildRejectsTooFewAnchors(t *testing.T) {
	l := Layout{Name: "bad", Anchors: []core.Vec2{{X: 0.5, Y: 0.5}}}
	if _, err := l.Build(core.Size{W: 100, H: 100}); err == nil {
		t.Fatal("expected an error for a single-anchor layout")
	}
}

func TestBuildCustomSampleDensity(t *testing.T) {
	l := Layout{
		Name:     "sparse",
		Anchors:  []core.Vec2{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}},
		Radius:   0.05,
		FlowRate: 0.1,
		Samples:  4,
	}
	p, err := l.Build(core.Size{W: 100, H: 100})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(p.Points()); got != 5 {
		t.Fatalf("sample count = %d, want 5", got)
	}
}
