package sim

import "math"

// Echo is an expanding circular disturbance born from a particle strike.
// The origin never moves; the radius grows monotonically and the opacity
// fades as a linear function of age.
type Echo struct {
	CX        float64
	CY        float64
	Radius    float64
	Opacity   float64
	BirthTime float64

	opacity0 float64
}

// EchoField owns the set of live echoes: it realizes spawn requests, ages
// the set each frame, and prunes echoes that have faded out or outgrown the
// field.
type EchoField struct {
	echoes    []Echo
	maxLive   int
	maxRadius float64
}

// NewEchoField builds a field with the given live-echo cap and prune radius.
// A cap of zero means unbounded.
func NewEchoField(maxLive int, maxRadius float64) *EchoField {
	return &EchoField{
		echoes:    make([]Echo, 0, maxLive),
		maxLive:   maxLive,
		maxRadius: maxRadius,
	}
}

// Echoes exposes the live set. Callers must treat it as read-only; the slice
// is invalidated by the next Tick or Spawn.
func (f *EchoField) Echoes() []Echo { return f.echoes }

// SetMaxRadius updates the prune bound, used when the field is resized.
func (f *EchoField) SetMaxRadius(r float64) { f.maxRadius = r }

// Spawn realizes a strike as a live echo. At capacity the oldest live echo
// (smallest birth time, first-spawned on ties) is evicted to make room, so a
// fresh strike is never silently dropped.
func (f *EchoField) Spawn(seed EchoSeed, now float64) {
	if f.maxLive > 0 && len(f.echoes) >= f.maxLive {
		oldest := 0
		for i := 1; i < len(f.echoes); i++ {
			if f.echoes[i].BirthTime < f.echoes[oldest].BirthTime {
				oldest = i
			}
		}
		f.echoes = append(f.echoes[:oldest], f.echoes[oldest+1:]...)
	}
	f.echoes = append(f.echoes, Echo{
		CX:        seed.CX,
		CY:        seed.CY,
		Radius:    seed.Radius,
		Opacity:   seed.Opacity,
		BirthTime: now,
		opacity0:  seed.Opacity,
	})
}

// Tick grows and fades every live echo, then prunes the dead in place.
// Pruning runs after growth in the same tick so the receive array never sees
// one-frame-stale state.
func (f *EchoField) Tick(dt, now, speed, decay, minOpacity float64) {
	alive := 0
	for i := range f.echoes {
		e := &f.echoes[i]
		e.Radius += speed * dt
		e.Opacity = math.Max(0, e.opacity0-decay*(now-e.BirthTime))
		if e.Opacity <= minOpacity || e.Radius > f.maxRadius {
			continue
		}
		f.echoes[alive] = f.echoes[i]
		alive++
	}
	f.echoes = f.echoes[:alive]
}

// Clear empties the live set without releasing capacity.
func (f *EchoField) Clear() {
	f.echoes = f.echoes[:0]
}
