package sim

import (
	"echolab/internal/core"
	"echolab/internal/vessel"
)

// Params holds the tunable physics and receive-chain constants. Distances
// are field pixels, times are seconds, speeds are pixels per second.
type Params struct {
	// Pulse and echo propagation.
	PulseSpeed  float64
	EchoSpeed   float64
	EchoOpacity float64
	EchoDecay   float64
	MaxEchoes   int

	// Receive array.
	ElementCount int
	ElementGain  float64
	ElementCap   float64
	ElementDecay float64

	// Field geometry.
	NearFieldExclusion float64
	TransmitWindow     float64
	FieldMargin        float64
	BeamInset          float64

	// Particle population.
	ParticleSizeMin float64
	ParticleSizeMax float64
	SpinRateMax     float64
	ClusterSpread   float64

	// Frame timing and cycle control.
	MaxFrameDt      float64
	DefaultFrameDt  float64
	AutoReplayDelay float64

	// MinOpacity is the epsilon under which an echo is pruned and ignored
	// by the receive array.
	MinOpacity float64
}

// Config controls one simulation run: field dimensions, deterministic seed,
// and the vessel layouts populating the field.
type Config struct {
	Field   core.Size
	Seed    int64
	Layouts []vessel.Layout
	Params  Params
}

// DefaultParams returns the standard physics constants, tuned for a field on
// the order of 640x480.
func DefaultParams() Params {
	return Params{
		PulseSpeed:  260,
		EchoSpeed:   260,
		EchoOpacity: 1.0,
		EchoDecay:   0.55,
		MaxEchoes:   64,

		ElementCount: 32,
		ElementGain:  1.0,
		ElementCap:   4.0,
		ElementDecay: 2.5,

		NearFieldExclusion: 24,
		TransmitWindow:     14,
		FieldMargin:        40,
		BeamInset:          28,

		ParticleSizeMin: 2.5,
		ParticleSizeMax: 4.5,
		SpinRateMax:     3.0,
		ClusterSpread:   0.02,

		MaxFrameDt:      0.25,
		DefaultFrameDt:  1.0 / 60.0,
		AutoReplayDelay: 1.2,

		MinOpacity: 0.02,
	}
}

// DefaultConfig returns a configuration with standard physics and an empty
// vessel set; callers supply layouts from a scenario.
func DefaultConfig() Config {
	return Config{
		Field:  core.Size{W: 640, H: 480},
		Seed:   1337,
		Params: DefaultParams(),
	}
}
