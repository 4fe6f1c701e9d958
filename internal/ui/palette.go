package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps visual keys to terminal colors.
type Palette map[string]tcell.Color

// NewPalette builds a palette from a region's hex color table. Keys
// with unparseable colors are dropped and fall back at lookup time.
func NewPalette(hexColors map[string]string) Palette {
	p := make(Palette, len(hexColors))
	for key, hex := range hexColors {
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		p[key] = toTcell(c)
	}
	return p
}

// Color returns the color for a visual key, or white when the key has
// no palette entry.
func (p Palette) Color(key string) tcell.Color {
	if c, ok := p[key]; ok {
		return c
	}
	return tcell.ColorWhite
}

// Shade returns the key's color with its lightness scaled by factor,
// used to derive wall-variant and landmark shading from one base color.
func (p Palette) Shade(key string, factor float64) tcell.Color {
	c, ok := p[key]
	if !ok {
		return tcell.ColorWhite
	}
	r, g, b := c.RGB()
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := col.Hsl()
	return toTcell(colorful.Hsl(h, s, clamp01(l*factor)))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
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
