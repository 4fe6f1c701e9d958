package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/regionforge/internal/mapgen"
)

// Renderer draws a generated region map to the terminal.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map: open ground, wall and accent decorations,
// landmark footprints, item spots, and key points on top.
func (r *Renderer) Render(m *mapgen.Map, palette Palette) {
	r.screen.Clear()

	floorStyle := tcell.StyleDefault.Foreground(palette.Color("floor"))
	// Border walls in a darkened floor tone so the playfield pops.
	borderStyle := tcell.StyleDefault.Foreground(palette.Shade("floor", 0.35))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.Grid.Blocked(x, y) {
				r.screen.SetContent(x, y, '.', floorStyle)
			} else if !m.Grid.InInterior(x, y) {
				r.screen.SetContent(x, y, '#', borderStyle)
			}
		}
	}

	for _, d := range m.Decorations {
		glyph := '"'
		if d.Blocking {
			glyph = '#'
		}
		style := tcell.StyleDefault.Foreground(palette.Color(d.Key))
		r.screen.SetContent(d.X, d.Y, glyph, style)
	}

	for _, lm := range m.Landmarks {
		style := tcell.StyleDefault.Foreground(palette.Color(lm.Key)).Bold(true)
		for y := lm.Y; y < lm.Y+lm.H; y++ {
			for x := lm.X; x < lm.X+lm.W; x++ {
				r.screen.SetContent(x, y, '%', style)
			}
		}
	}

	itemStyle := tcell.StyleDefault.Foreground(palette.Color("item")).Bold(true)
	for _, item := range m.Items {
		r.screen.SetContent(item.X, item.Y, '!', itemStyle)
	}

	for _, kp := range m.KeyPoints {
		r.screen.SetContent(kp.X, kp.Y, roleGlyph(kp.Role), roleStyle(kp.Role))
	}

	r.screen.Show()
}

// RenderStatus displays a one-line status below the map.
func (r *Renderer) RenderStatus(m *mapgen.Map, seed int64) {
	msg := fmt.Sprintf("%s  seed=%d  items=%d  [r]egenerate  [q]uit", m.Region, seed, len(m.Items))
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, m.Height, ch, style)
	}
	r.screen.Show()
}

func roleGlyph(role mapgen.Role) rune {
	switch role {
	case mapgen.RoleStart:
		return '@'
	case mapgen.RoleNPC:
		return 'N'
	case mapgen.RoleBoss:
		return 'B'
	case mapgen.RoleSpawn:
		return 'e'
	default:
		return '?'
	}
}

func roleStyle(role mapgen.Role) tcell.Style {
	switch role {
	case mapgen.RoleStart:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case mapgen.RoleBoss:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case mapgen.RoleNPC:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	}
}
