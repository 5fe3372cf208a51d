//go:build ebiten

// Package ui draws the heads-up overlay: cycle phase, timing, and key help.
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Info is the HUD's per-frame input.
type Info struct {
	Scenario string
	Phase    string
	Elapsed  float64
	Speed    float64
	Paused   bool
}

// HUD renders a small status overlay in the top-left corner.
type HUD struct {
	visible bool
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Draw renders the overlay when visible.
func (h *HUD) Draw(screen *ebiten.Image, info Info) {
	if !h.visible {
		return
	}
	status := info.Phase
	if info.Paused {
		status = "paused"
	}
	text := fmt.Sprintf(
		"%s | %s | t=%.2fs | speed x%.2f\n[space] pause  [f] fire  [r] reseed  [+/-] speed  [h] hud  [q] quit",
		info.Scenario, status, info.Elapsed, info.Speed)
	ebitenutil.DebugPrintAt(screen, text, 16, 8)
}
