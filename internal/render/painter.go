//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"echolab/internal/sim"
)

// probeWidth is the drawn thickness of the probe face column.
const probeWidth = 10

// Painter draws a simulation snapshot. It holds no simulation state; every
// Draw is a pure function of the snapshot it is handed.
type Painter struct {
	background color.RGBA
	elementCap float64
}

// NewPainter constructs a painter. elementCap is the activation value that
// maps to a fully lit element.
func NewPainter(elementCap float64) *Painter {
	return &Painter{
		background: color.RGBA{R: 0x0a, G: 0x0e, B: 0x14, A: 0xff},
		elementCap: elementCap,
	}
}

// Draw renders the full scene: vessels under particles, then the pulse,
// echo rings, and the probe element column on top.
func (p *Painter) Draw(screen *ebiten.Image, snap *sim.Snapshot) {
	screen.Fill(p.background)

	for _, v := range snap.Vessels {
		width := float32(2 * v.Radius)
		for i := 1; i < len(v.Points); i++ {
			a, b := v.Points[i-1], v.Points[i]
			vector.StrokeLine(screen,
				float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
				width, vesselColor, true)
		}
	}

	for _, e := range snap.Echoes {
		vector.StrokeCircle(screen,
			float32(e.CX), float32(e.CY), float32(e.Radius),
			1.5, EchoColor(e.Opacity), true)
	}

	for _, pt := range snap.Particles {
		vector.DrawFilledCircle(screen,
			float32(pt.X), float32(pt.Y), float32(pt.Size),
			ParticleColor(pt.Hit), true)
	}

	if snap.Pulse.Active {
		vector.StrokeLine(screen,
			float32(snap.Pulse.X), 0,
			float32(snap.Pulse.X), float32(snap.Field.H),
			2, pulseColor, true)
	}

	p.drawProbe(screen, snap)
}

// drawProbe draws the element column along the left edge, one cell per
// receive element, lit by its activation.
func (p *Painter) drawProbe(screen *ebiten.Image, snap *sim.Snapshot) {
	n := len(snap.Activations)
	if n == 0 {
		return
	}
	cellH := float32(snap.Field.H) / float32(n)
	for i, act := range snap.Activations {
		clr := ElementColor(act, p.elementCap)
		if snap.Pulse.Transmitting {
			clr = pulseColor
		}
		vector.DrawFilledRect(screen,
			0, float32(i)*cellH,
			probeWidth, cellH-1,
			clr, false)
	}
}
