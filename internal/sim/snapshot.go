package sim

import "echolab/internal/core"

// VesselView is the static geometry of one vessel for the renderer.
type VesselView struct {
	Points []core.Vec2
	Radius float64
}

// ParticleView is one particle's derived render state.
type ParticleView struct {
	X       float64
	Y       float64
	Angle   float64
	Spin    float64
	Size    float64
	Hit     bool
	HitTime float64
}

// WavefrontView is the pulse state for the renderer.
type WavefrontView struct {
	X            float64
	Active       bool
	Transmitting bool
}

// EchoView is one live echo for the renderer.
type EchoView struct {
	CX      float64
	CY      float64
	Radius  float64
	Opacity float64
}

// Snapshot is the per-frame read model handed to the renderer. Everything in
// it is a copy or a read-only view; the renderer never mutates engine state.
type Snapshot struct {
	Field       core.Size
	Vessels     []VesselView
	Particles   []ParticleView
	Pulse       WavefrontView
	Echoes      []EchoView
	Activations []float64
	Phase       Phase
	Elapsed     float64
}

// Snapshot fills dst with the current frame state, reusing dst's slices
// where capacity allows so a renderer can call it every frame without
// allocating.
func (s *Simulation) Snapshot(dst *Snapshot) {
	dst.Field = s.cfg.Field
	dst.Vessels = s.vesselViews
	dst.Phase = s.phase
	dst.Elapsed = s.elapsed

	dst.Particles = dst.Particles[:0]
	for i := range s.particles {
		p := &s.particles[i]
		x, y, angle := s.paths[p.PathID].PointAt(p.T)
		dst.Particles = append(dst.Particles, ParticleView{
			X:       x,
			Y:       y,
			Angle:   angle,
			Spin:    p.Rotation,
			Size:    p.Size,
			Hit:     p.Hit,
			HitTime: p.HitTime,
		})
	}

	dst.Pulse = WavefrontView{
		X:            s.pulse.X,
		Active:       s.pulse.Active,
		Transmitting: s.pulse.Transmitting(s.beam.FaceX, s.cfg.Params.TransmitWindow),
	}

	dst.Echoes = dst.Echoes[:0]
	for _, e := range s.echoes.Echoes() {
		dst.Echoes = append(dst.Echoes, EchoView{CX: e.CX, CY: e.CY, Radius: e.Radius, Opacity: e.Opacity})
	}

	dst.Activations = append(dst.Activations[:0], s.array.Activations()...)
}
