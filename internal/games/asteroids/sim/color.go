package sim

import "image/color"

// Color is an RGB triple with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// Palette indices.
const (
	Black = iota
	Red
	Orange
	Yellow
	Chartreuse
	Green
	SpringGreen
	Cyan
	Azure
	Blue
	Violet
	Magenta
	Rose
	Grey
	White
)

var palette = [...]Color{
	Black:       {0, 0, 0},
	Red:         {1, 0, 0},
	Orange:      {1, 0.5, 0},
	Yellow:      {1, 1, 0},
	Chartreuse:  {0.5, 1, 0},
	Green:       {0, 1, 0},
	SpringGreen: {0, 1, 0.5},
	Cyan:        {0, 1, 1},
	Azure:       {0, 0.5, 1},
	Blue:        {0, 0, 1},
	Violet:      {0.5, 0, 1},
	Magenta:     {1, 0, 1},
	Rose:        {1, 0, 0.5},
	Grey:        {0.5, 0.5, 0.5},
	White:       {1, 1, 1},
}

// PaletteColor returns the color for a palette index. Out-of-range
// indices fall back to white.
func PaletteColor(index int) Color {
	if index < 0 || index >= len(palette) {
		return palette[White]
	}
	return palette[index]
}

// Dim darkens every channel by amount, clamping at zero.
func (c Color) Dim(amount float64) Color {
	return Color{R: clamp01(c.R - amount), G: clamp01(c.G - amount), B: clamp01(c.B - amount)}
}

// Scale multiplies every channel by f, clamping to [0, 1].
func (c Color) Scale(f float64) Color {
	return Color{R: clamp01(c.R * f), G: clamp01(c.G * f), B: clamp01(c.B * f)}
}

// RGBA8 converts to an opaque 8-bit color, rounding each channel.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
