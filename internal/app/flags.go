package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Scenario string
	File     string
	Width    int
	Height   int
	Scale    int
	Seed     int64
	Replay   float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scenario: "carotid",
		Width:    640,
		Height:   480,
		Scale:    2,
		Seed:     42,
		Replay:   -1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "preset scenario to run")
	fs.StringVar(&c.File, "file", c.File, "scenario file (TOML), overrides -scenario")
	fs.IntVar(&c.Width, "width", c.Width, "field width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "field height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for particle placement")
	fs.Float64Var(&c.Replay, "replay", c.Replay, "auto-replay delay in seconds (negative keeps the scenario's value, 0 disables)")
}
