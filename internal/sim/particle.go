package sim

import (
	"echolab/internal/core"
	"echolab/internal/vessel"
)

// Particle is one red blood cell bound to a vessel path. Position is the
// arc parameter T; the (x, y) location is always derived through the owning
// path. Rotation is cosmetic and deliberately unbounded.
type Particle struct {
	PathID       int
	T            float64
	Rotation     float64
	RotationRate float64
	Size         float64

	Hit     bool
	HitTime float64

	// GroupID marks cluster membership from seeding; -1 means solo.
	GroupID int
}

// EchoSeed is a spawn request produced by a wavefront strike: the particle's
// position at the moment of the hit plus the initial echo parameters.
type EchoSeed struct {
	CX      float64
	CY      float64
	Radius  float64
	Opacity float64
}

// Beam is the hit-test region: the probe face, the far field bound, the
// vertical extent of the active elements, and the near-field exclusion zone
// in which strikes never register.
type Beam struct {
	FaceX     float64
	Right     float64
	Top       float64
	Bottom    float64
	Exclusion float64
}

// Advance moves the particle along its path by the path's flow rate, wrapping
// the arc parameter modulo 1, and spins the cosmetic rotation.
func (p *Particle) Advance(dt, flowRate float64) {
	p.T = core.Wrap01(p.T + flowRate*dt)
	p.Rotation += p.RotationRate * dt
}

// ClearHit resets per-cycle strike bookkeeping without moving the particle.
func (p *Particle) ClearHit() {
	p.Hit = false
	p.HitTime = 0
}

// TryHit tests the particle against the pulse leading edge. It is a no-op
// once hit. A strike requires the particle past the near-field exclusion by
// its own size (no self-hits at the face), inside the field, inside the
// beam's vertical extent, and reached by the pulse accounting for the
// particle radius. On a strike the particle is marked and an echo seed is
// returned for the field to realize.
func (p *Particle) TryHit(path *vessel.Path, pulseX float64, b Beam, opacity, now float64) (EchoSeed, bool) {
	if p.Hit {
		return EchoSeed{}, false
	}

	x, y, _ := path.PointAt(p.T)
	if x < b.FaceX+b.Exclusion+p.Size || x > b.Right {
		return EchoSeed{}, false
	}
	if y < b.Top || y > b.Bottom {
		return EchoSeed{}, false
	}
	if pulseX < x-p.Size {
		return EchoSeed{}, false
	}

	p.Hit = true
	p.HitTime = now
	return EchoSeed{CX: x, CY: y, Radius: p.Size + 1, Opacity: opacity}, true
}
