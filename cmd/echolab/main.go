//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"echolab/internal/app"
	"echolab/internal/core"
	"echolab/internal/scenario"
	"echolab/internal/sim"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var sc scenario.Scenario
	if cfg.File != "" {
		loaded, err := scenario.Load(cfg.File)
		if err != nil {
			log.Fatal().Err(err).Msg("loading scenario file")
		}
		sc = loaded
	} else {
		preset, ok := scenario.Get(cfg.Scenario)
		if !ok {
			log.Fatal().Str("scenario", cfg.Scenario).Strs("available", scenario.Names()).
				Msg("unknown scenario")
		}
		sc = preset
	}
	if cfg.Replay >= 0 {
		sc.Params.AutoReplayDelay = cfg.Replay
	}

	s, err := sim.New(sim.Config{
		Field:   core.Size{W: float64(cfg.Width), H: float64(cfg.Height)},
		Seed:    cfg.Seed,
		Layouts: sc.Layouts,
		Params:  sc.Params,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("building simulation")
	}

	log.Info().Str("scenario", sc.Name).Int("vessels", len(sc.Layouts)).
		Int("width", cfg.Width).Int("height", cfg.Height).Msg("starting")

	game := app.New(s, sc.Name, sc.Params.ElementCap)

	ebiten.SetWindowTitle("echolab — " + sc.Name)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop")
	}
}
