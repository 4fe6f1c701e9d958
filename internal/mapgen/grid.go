package mapgen

// Grid is the blocked-tile set for one map, stored as a flat []bool
// indexed y*width+x. It is the single mutable artifact threaded through
// the pipeline: fill and set-piece footprints add blocked tiles, glades
// and corridors remove them.
type Grid struct {
	Width  int
	Height int
	Border int

	blocked []bool
}

// NewGrid returns a grid with every tile blocked: the fixed border ring
// plus a fully filled interior, ready for carving.
func NewGrid(width, height, border int) *Grid {
	g := &Grid{
		Width:   width,
		Height:  height,
		Border:  border,
		blocked: make([]bool, width*height),
	}
	for i := range g.blocked {
		g.blocked[i] = true
	}
	return g
}

// Blocked reports whether the tile is impassable. Out-of-range
// coordinates count as impassable.
func (g *Grid) Blocked(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return true
	}
	return g.blocked[y*g.Width+x]
}

// InInterior reports whether the tile lies strictly inside the border ring.
func (g *Grid) InInterior(x, y int) bool {
	return x >= g.Border && x < g.Width-g.Border &&
		y >= g.Border && y < g.Height-g.Border
}

// Clear opens a tile. Border tiles are never opened, so callers can
// sweep rectangles without clamping.
func (g *Grid) Clear(x, y int) {
	if !g.InInterior(x, y) {
		return
	}
	g.blocked[y*g.Width+x] = false
}

// Block closes a tile.
func (g *Grid) Block(x, y int) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.blocked[y*g.Width+x] = true
}

// ClearGlade opens the Chebyshev square of the given radius around p.
// Clearing is pure set removal, so overlapping glades need no special
// handling and clear order does not matter.
func (g *Grid) ClearGlade(p Point, radius int) {
	for y := p.Y - radius; y <= p.Y+radius; y++ {
		for x := p.X - radius; x <= p.X+radius; x++ {
			g.Clear(x, y)
		}
	}
}

// OpenTiles returns the number of walkable tiles.
func (g *Grid) OpenTiles() int {
	open := 0
	for _, b := range g.blocked {
		if !b {
			open++
		}
	}
	return open
}
