//go:build ebiten

// Package app adapts the simulation engine to the ebiten game loop.
package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"echolab/internal/core"
	"echolab/internal/render"
	"echolab/internal/sim"
	"echolab/internal/ui"
)

// Game drives one Simulation per frame and draws its snapshot.
type Game struct {
	sim      *sim.Simulation
	painter  *render.Painter
	hud      *ui.HUD
	timer    *core.FrameTimer
	snap     sim.Snapshot
	scenario string
	paused   bool
	stepOnce bool
}

// New constructs a Game for the provided simulation.
func New(s *sim.Simulation, scenario string, elementCap float64) *Game {
	return &Game{
		sim:      s,
		painter:  render.NewPainter(elementCap),
		hud:      ui.NewHUD(),
		timer:    core.NewFrameTimer(250*time.Millisecond, time.Second/60),
		scenario: scenario,
	}
}

// Update handles input, measures the frame delta, and advances the engine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sim.Dispose()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.timer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		log.Info().Msg("manual fire")
		g.sim.Fire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		seed := time.Now().UnixNano()
		log.Info().Int64("seed", seed).Msg("reseeding particles")
		if err := g.sim.Reseed(seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.sim.SetSpeedMultiplier(g.sim.SpeedMultiplier() + 0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.sim.SetSpeedMultiplier(g.sim.SpeedMultiplier() - 0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	if !g.paused || g.stepOnce {
		g.sim.Advance(g.timer.Delta())
		g.stepOnce = false
	}
	g.sim.Snapshot(&g.snap)
	return nil
}

// Draw renders the current snapshot and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, &g.snap)
	g.hud.Draw(screen, ui.Info{
		Scenario: g.scenario,
		Phase:    g.snap.Phase.String(),
		Elapsed:  g.snap.Elapsed,
		Speed:    g.sim.SpeedMultiplier(),
		Paused:   g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.sim.Field()
	return int(f.W), int(f.H)
}
