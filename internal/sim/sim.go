// Package sim implements the ultrasound pulse-echo engine: particles riding
// vessel paths, a planar pulse sweeping the field, expanding echoes spawned
// by strikes, and a receive array accumulating arrival energy. The engine is
// headless and single-threaded; a host drives it with one Advance per frame
// and reads the resulting Snapshot.
package sim

import (
	"math"

	"echolab/internal/core"
	"echolab/internal/vessel"
)

// Phase is the firing-cycle state.
type Phase uint8

const (
	// PhaseRunning means the pulse is in flight or echoes are still live.
	PhaseRunning Phase = iota
	// PhaseSettled means the pulse has left the field and every echo has
	// faded; the cycle is complete and awaits the next fire trigger.
	PhaseSettled
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	if p == PhaseSettled {
		return "settled"
	}
	return "running"
}

// arrivalSlack widens the arrival window slightly past the frame's radius
// growth to absorb floating-point error at the crossing boundary.
const arrivalSlack = 1e-9

// Speed multiplier clamp for the interactive frequency control.
const (
	minSpeedMultiplier = 0.25
	maxSpeedMultiplier = 4.0
)

var (
	_ core.ParameterControlsProvider = (*Simulation)(nil)
	_ core.FloatParameterSetter      = (*Simulation)(nil)
)

// Simulation owns the full state tree for one run: vessel paths, the
// particle population, the pulse, the echo field, and the receive array.
// All mutation happens inside Advance and the control-surface methods, on
// the host's frame callback; there is no internal concurrency.
type Simulation struct {
	cfg Config

	paths       []*vessel.Path
	particles   []Particle
	pulse       Wavefront
	echoes      *EchoField
	array       *ReceiveArray
	beam        Beam
	vesselViews []VesselView

	phase     Phase
	elapsed   float64
	settledAt float64
	speedMult float64
	disposed  bool
}

// New builds a simulation from the config and fires the first pulse. A
// degenerate field (zero or negative dimensions) yields an inert simulation
// rather than an error; invalid vessel layouts are rejected.
func New(cfg Config) (*Simulation, error) {
	s := &Simulation{
		cfg:       cfg,
		speedMult: 1,
	}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	s.fire()
	return s, nil
}

// rebuild constructs geometry and reseeds the particle population from the
// config. This is the heavyweight path used by New and Resize; the fire
// path never reallocates.
func (s *Simulation) rebuild() error {
	p := s.cfg.Params
	field := s.cfg.Field

	s.beam = Beam{
		FaceX:     0,
		Right:     field.W,
		Top:       p.BeamInset,
		Bottom:    field.H - p.BeamInset,
		Exclusion: p.NearFieldExclusion,
	}

	s.echoes = NewEchoField(p.MaxEchoes, field.Diagonal())
	s.array = NewReceiveArray(p.ElementCount, s.beam.FaceX, s.beam.Top, s.beam.Bottom,
		p.ElementGain, p.ElementCap, p.ElementDecay)

	s.paths = s.paths[:0]
	s.particles = s.particles[:0]
	s.vesselViews = s.vesselViews[:0]

	if field.W <= 0 || field.H <= 0 {
		// Degenerate field: inert but valid.
		return nil
	}

	rng := core.NewRNG(s.cfg.Seed)
	for _, layout := range s.cfg.Layouts {
		path, err := layout.Build(field)
		if err != nil {
			return err
		}
		pathID := len(s.paths)
		s.paths = append(s.paths, path)
		s.vesselViews = append(s.vesselViews, VesselView{Points: path.Points(), Radius: path.Radius()})
		s.seedParticles(pathID, layout, rng)
	}
	return nil
}

// seedParticles populates one vessel. Cluster sizes above one group several
// particles around a shared arc parameter, mimicking cell aggregates; the
// spread offset is only used here, at seeding time.
func (s *Simulation) seedParticles(pathID int, layout vessel.Layout, rng *core.RNG) {
	p := s.cfg.Params
	count := layout.Particles
	cluster := layout.ClusterSize

	groupID := -1
	groupT := 0.0
	for i := 0; i < count; i++ {
		t := rng.Float64()
		gid := -1
		if cluster > 1 {
			if i%cluster == 0 {
				groupID++
				groupT = rng.Float64()
			}
			gid = groupID
			t = core.Wrap01(groupT + rng.Range(-p.ClusterSpread, p.ClusterSpread))
		}
		s.particles = append(s.particles, Particle{
			PathID:       pathID,
			T:            t,
			Rotation:     rng.Range(0, 2*math.Pi),
			RotationRate: rng.Range(-p.SpinRateMax, p.SpinRateMax),
			Size:         rng.Range(p.ParticleSizeMin, p.ParticleSizeMax),
			GroupID:      gid,
		})
	}
}

// Advance runs one frame: particles move, the pulse advances and is tested
// against un-hit particles, echoes grow and fade, the receive array decays
// and registers arrivals, and the cycle state is re-evaluated. The order is
// fixed: collisions use post-advance particle positions and arrivals use
// post-growth echo radii. dt is clamped to the configured maximum step; a
// non-positive dt falls back to the nominal default.
func (s *Simulation) Advance(dt float64) {
	if s.disposed {
		return
	}
	p := s.cfg.Params
	if dt <= 0 {
		dt = p.DefaultFrameDt
	}
	if dt > p.MaxFrameDt {
		dt = p.MaxFrameDt
	}
	s.elapsed += dt
	k := s.speedMult

	for i := range s.particles {
		pt := &s.particles[i]
		pt.Advance(dt, s.paths[pt.PathID].FlowRate())
	}

	if s.pulse.Active {
		s.pulse.Advance(dt, p.PulseSpeed*k, s.beam.Right, p.FieldMargin)
		for i := range s.particles {
			pt := &s.particles[i]
			seed, ok := pt.TryHit(s.paths[pt.PathID], s.pulse.X, s.beam, p.EchoOpacity, s.elapsed)
			if ok {
				s.echoes.Spawn(seed, s.elapsed)
			}
		}
	}

	growth := p.EchoSpeed * k * dt
	s.echoes.Tick(dt, s.elapsed, p.EchoSpeed*k, p.EchoDecay, p.MinOpacity)

	s.array.Decay(dt)
	s.array.RegisterArrivals(s.echoes.Echoes(), growth+arrivalSlack, p.MinOpacity)

	switch s.phase {
	case PhaseRunning:
		if !s.pulse.Active && len(s.echoes.Echoes()) == 0 {
			s.phase = PhaseSettled
			s.settledAt = s.elapsed
		}
	case PhaseSettled:
		if p.AutoReplayDelay > 0 && s.elapsed-s.settledAt >= p.AutoReplayDelay {
			s.fire()
		}
	}
}

// Fire restarts the firing cycle immediately, preempting any pending
// auto-replay. Geometry and the particle population are untouched; only
// per-cycle state resets.
func (s *Simulation) Fire() {
	if s.disposed {
		return
	}
	s.fire()
}

func (s *Simulation) fire() {
	for i := range s.particles {
		s.particles[i].ClearHit()
	}
	s.echoes.Clear()
	s.array.Reset()
	s.pulse.Fire(s.beam.FaceX)
	s.phase = PhaseRunning
	s.elapsed = 0
	s.settledAt = 0
}

// Resize rebuilds geometry and reseeds the particle population for the new
// field dimensions, then starts a fresh firing cycle.
func (s *Simulation) Resize(field core.Size) error {
	if s.disposed {
		return nil
	}
	s.cfg.Field = field
	if err := s.rebuild(); err != nil {
		return err
	}
	s.fire()
	return nil
}

// Reseed rebuilds the particle population with a new seed on the existing
// field, then starts a fresh firing cycle.
func (s *Simulation) Reseed(seed int64) error {
	if s.disposed {
		return nil
	}
	s.cfg.Seed = seed
	if err := s.rebuild(); err != nil {
		return err
	}
	s.fire()
	return nil
}

// SetSpeedMultiplier scales pulse and echo propagation for the interactive
// frequency control. The value is clamped to a sane range. Particle flow is
// unaffected.
func (s *Simulation) SetSpeedMultiplier(k float64) {
	if s.disposed {
		return
	}
	s.speedMult = math.Min(maxSpeedMultiplier, math.Max(minSpeedMultiplier, k))
}

// SpeedMultiplier returns the current propagation scale.
func (s *Simulation) SpeedMultiplier() float64 { return s.speedMult }

// Dispose permanently stops the simulation. Every subsequent call on the
// control surface, including Advance, is a no-op; shared state is never
// mutated again.
func (s *Simulation) Dispose() {
	s.disposed = true
}

// Disposed reports whether Dispose has been called.
func (s *Simulation) Disposed() bool { return s.disposed }

// Phase returns the current firing-cycle state.
func (s *Simulation) Phase() Phase { return s.phase }

// Elapsed returns seconds of simulated time since the cycle was fired.
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Field returns the configured field dimensions.
func (s *Simulation) Field() core.Size { return s.cfg.Field }

// ParameterControls exposes the HUD-adjustable tunables.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "speed_multiplier", Label: "Speed", Type: core.ParamTypeFloat,
			Step: 0.25, Min: minSpeedMultiplier, Max: maxSpeedMultiplier, HasMin: true, HasMax: true},
		{Key: "echo_decay", Label: "Echo decay", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0.05, Max: 5, HasMin: true, HasMax: true},
		{Key: "element_decay", Label: "Element decay", Type: core.ParamTypeFloat,
			Step: 0.25, Min: 0.25, Max: 10, HasMin: true, HasMax: true},
		{Key: "auto_replay_delay", Label: "Replay delay", Type: core.ParamTypeFloat,
			Step: 0.1, Min: 0, Max: 10, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a HUD-adjustable tunable, clamping to its
// bounds. It reports whether the key was recognized.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	if s.disposed {
		return false
	}
	clamp := func(v, lo, hi float64) float64 {
		return math.Min(hi, math.Max(lo, v))
	}
	switch key {
	case "speed_multiplier":
		s.speedMult = clamp(value, minSpeedMultiplier, maxSpeedMultiplier)
	case "echo_decay":
		s.cfg.Params.EchoDecay = clamp(value, 0.05, 5)
	case "element_decay":
		s.cfg.Params.ElementDecay = clamp(value, 0.25, 10)
		s.array.decay = s.cfg.Params.ElementDecay
	case "auto_replay_delay":
		s.cfg.Params.AutoReplayDelay = clamp(value, 0, 10)
	default:
		return false
	}
	return true
}
