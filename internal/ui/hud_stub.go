//go:build !ebiten

package ui

// Info is the HUD's per-frame input.
type Info struct {
	Scenario string
	Phase    string
	Elapsed  float64
	Speed    float64
	Paused   bool
}

// HUD is a placeholder for the headless build.
type HUD struct{}

// NewHUD returns an inert HUD.
func NewHUD() *HUD { return &HUD{} }

// Toggle is a no-op placeholder.
func (h *HUD) Toggle() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any, Info) {}
