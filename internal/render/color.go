// Package render turns simulation snapshots into pixels. The color math in
// this file is pure so it can be tested without a display; the ebiten-tagged
// painter builds on it.
package render

import "image/color"

// Scene palette.
var (
	vesselColor   = color.RGBA{R: 0x6e, G: 0x1f, B: 0x2a, A: 0xff}
	particleColor = color.RGBA{R: 0xd8, G: 0x3a, B: 0x45, A: 0xff}
	hitColor      = color.RGBA{R: 0xff, G: 0xc8, B: 0x5c, A: 0xff}
	pulseColor    = color.RGBA{R: 0x7f, G: 0xd4, B: 0xff, A: 0xff}
	echoColor     = color.RGBA{R: 0xaf, G: 0xe3, B: 0xff, A: 0xff}
	elementOff    = color.RGBA{R: 0x18, G: 0x20, B: 0x28, A: 0xff}
	elementOn     = color.RGBA{R: 0x46, G: 0xff, B: 0x9e, A: 0xff}
)

func lerpChannel(a, b uint8, w float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*w)
}

// ElementColor maps an element activation in [0, cap] onto the off-to-on
// gradient. Values outside the range clamp.
func ElementColor(activation, cap float64) color.RGBA {
	if cap <= 0 {
		return elementOff
	}
	w := activation / cap
	if w < 0 {
		w = 0
	}
	if w > 1 {
		w = 1
	}
	return color.RGBA{
		R: lerpChannel(elementOff.R, elementOn.R, w),
		G: lerpChannel(elementOff.G, elementOn.G, w),
		B: lerpChannel(elementOff.B, elementOn.B, w),
		A: 0xff,
	}
}

// EchoColor scales the echo ring color by the echo's remaining opacity.
func EchoColor(opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	a := uint8(opacity * 255)
	return color.RGBA{
		R: uint8(float64(echoColor.R) * opacity),
		G: uint8(float64(echoColor.G) * opacity),
		B: uint8(float64(echoColor.B) * opacity),
		A: a,
	}
}

// ParticleColor returns the fill for a particle, brightened when hit.
func ParticleColor(hit bool) color.RGBA {
	if hit {
		return hitColor
	}
	return particleColor
}
