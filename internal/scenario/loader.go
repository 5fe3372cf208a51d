package scenario

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"echolab/internal/core"
	"echolab/internal/sim"
	"echolab/internal/vessel"
)

// scenarioFile mirrors the on-disk scenario layout.
type scenarioFile struct {
	Name    string       `mapstructure:"name"`
	Vessels []vesselFile `mapstructure:"vessels"`
	Params  paramsFile   `mapstructure:"params"`
}

type vesselFile struct {
	Name        string      `mapstructure:"name"`
	Anchors     [][]float64 `mapstructure:"anchors"`
	Radius      float64     `mapstructure:"radius"`
	FlowRate    float64     `mapstructure:"flow_rate"`
	Particles   int         `mapstructure:"particles"`
	ClusterSize int         `mapstructure:"cluster_size"`
	Samples     int         `mapstructure:"samples"`
}

type paramsFile struct {
	PulseSpeed  float64 `mapstructure:"pulse_speed"`
	EchoSpeed   float64 `mapstructure:"echo_speed"`
	EchoOpacity float64 `mapstructure:"echo_opacity"`
	EchoDecay   float64 `mapstructure:"echo_decay"`
	MaxEchoes   int     `mapstructure:"max_echoes"`

	ElementCount int     `mapstructure:"element_count"`
	ElementGain  float64 `mapstructure:"element_gain"`
	ElementCap   float64 `mapstructure:"element_cap"`
	ElementDecay float64 `mapstructure:"element_decay"`

	NearFieldExclusion float64 `mapstructure:"near_field_exclusion"`
	TransmitWindow     float64 `mapstructure:"transmit_window"`
	FieldMargin        float64 `mapstructure:"field_margin"`
	BeamInset          float64 `mapstructure:"beam_inset"`

	ParticleSizeMin float64 `mapstructure:"particle_size_min"`
	ParticleSizeMax float64 `mapstructure:"particle_size_max"`
	SpinRateMax     float64 `mapstructure:"spin_rate_max"`
	ClusterSpread   float64 `mapstructure:"cluster_spread"`

	MaxFrameDt      float64 `mapstructure:"max_frame_dt"`
	DefaultFrameDt  float64 `mapstructure:"default_frame_dt"`
	AutoReplayDelay float64 `mapstructure:"auto_replay_delay"`

	MinOpacity float64 `mapstructure:"min_opacity"`
}

// Load reads a scenario description from a TOML file. Every physics
// parameter defaults to the standard set, so a file only lists what it
// overrides. Vessels with fewer than two anchors are logged and skipped;
// a file with no usable vessel is an error.
func Load(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setParamDefaults(v, sim.DefaultParams())

	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}

	var file scenarioFile
	if err := v.Unmarshal(&file); err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}

	sc := Scenario{Name: file.Name, Params: file.Params.toParams()}
	if sc.Name == "" {
		sc.Name = "custom"
	}

	for _, vf := range file.Vessels {
		if len(vf.Anchors) < 2 {
			log.Warn().Str("scenario", sc.Name).Str("vessel", vf.Name).
				Int("anchors", len(vf.Anchors)).Msg("skipping vessel with too few anchors")
			continue
		}
		anchors := make([]core.Vec2, 0, len(vf.Anchors))
		bad := false
		for _, a := range vf.Anchors {
			if len(a) != 2 {
				bad = true
				break
			}
			anchors = append(anchors, core.Vec2{X: a[0], Y: a[1]})
		}
		if bad {
			log.Warn().Str("scenario", sc.Name).Str("vessel", vf.Name).
				Msg("skipping vessel with a malformed anchor")
			continue
		}
		sc.Layouts = append(sc.Layouts, vessel.Layout{
			Name:        vf.Name,
			Anchors:     anchors,
			Radius:      vf.Radius,
			FlowRate:    vf.FlowRate,
			Particles:   vf.Particles,
			ClusterSize: vf.ClusterSize,
			Samples:     vf.Samples,
		})
	}

	if len(sc.Layouts) == 0 {
		return Scenario{}, fmt.Errorf("scenario %s: no usable vessels", path)
	}
	return sc, nil
}

func setParamDefaults(v *viper.Viper, d sim.Params) {
	v.SetDefault("params.pulse_speed", d.PulseSpeed)
	v.SetDefault("params.echo_speed", d.EchoSpeed)
	v.SetDefault("params.echo_opacity", d.EchoOpacity)
	v.SetDefault("params.echo_decay", d.EchoDecay)
	v.SetDefault("params.max_echoes", d.MaxEchoes)
	v.SetDefault("params.element_count", d.ElementCount)
	v.SetDefault("params.element_gain", d.ElementGain)
	v.SetDefault("params.element_cap", d.ElementCap)
	v.SetDefault("params.element_decay", d.ElementDecay)
	v.SetDefault("params.near_field_exclusion", d.NearFieldExclusion)
	v.SetDefault("params.transmit_window", d.TransmitWindow)
	v.SetDefault("params.field_margin", d.FieldMargin)
	v.SetDefault("params.beam_inset", d.BeamInset)
	v.SetDefault("params.particle_size_min", d.ParticleSizeMin)
	v.SetDefault("params.particle_size_max", d.ParticleSizeMax)
	v.SetDefault("params.spin_rate_max", d.SpinRateMax)
	v.SetDefault("params.cluster_spread", d.ClusterSpread)
	v.SetDefault("params.max_frame_dt", d.MaxFrameDt)
	v.SetDefault("params.default_frame_dt", d.DefaultFrameDt)
	v.SetDefault("params.auto_replay_delay", d.AutoReplayDelay)
	v.SetDefault("params.min_opacity", d.MinOpacity)
}

func (p paramsFile) toParams() sim.Params {
	return sim.Params{
		PulseSpeed:  p.PulseSpeed,
		EchoSpeed:   p.EchoSpeed,
		EchoOpacity: p.EchoOpacity,
		EchoDecay:   p.EchoDecay,
		MaxEchoes:   p.MaxEchoes,

		ElementCount: p.ElementCount,
		ElementGain:  p.ElementGain,
		ElementCap:   p.ElementCap,
		ElementDecay: p.ElementDecay,

		NearFieldExclusion: p.NearFieldExclusion,
		TransmitWindow:     p.TransmitWindow,
		FieldMargin:        p.FieldMargin,
		BeamInset:          p.BeamInset,

		ParticleSizeMin: p.ParticleSizeMin,
		ParticleSizeMax: p.ParticleSizeMax,
		SpinRateMax:     p.SpinRateMax,
		ClusterSpread:   p.ClusterSpread,

		MaxFrameDt:      p.MaxFrameDt,
		DefaultFrameDt:  p.DefaultFrameDt,
		AutoReplayDelay: p.AutoReplayDelay,

		MinOpacity: p.MinOpacity,
	}
}
