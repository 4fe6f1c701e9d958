package mapgen

// placeSetPiece searches the configured zones for a slot that fits the
// set-piece plus its margin, clear of every key point's safety zone.
// Zones and column offsets are scanned in an order rotated per region
// so sibling regions favor different parts of the map. Returns nil when
// no zone has room; the region simply goes without a landmark.
func placeSetPiece(g *Grid, cfg *Config, keyPoints []KeyPoint) *Landmark {
	sp := cfg.SetPiece
	if sp == nil || sp.W <= 0 || sp.H <= 0 || len(cfg.Zones) == 0 {
		return nil
	}
	for i := range cfg.Zones {
		zone := cfg.Zones[(i+cfg.ZoneRotation)%len(cfg.Zones)]
		if lm := scanZone(g, cfg, sp, zone, keyPoints); lm != nil {
			return lm
		}
	}
	return nil
}

// scanZone tries anchors inside one zone and places the set-piece at
// the first valid one.
func scanZone(g *Grid, cfg *Config, sp *SetPiece, zone Rect, keyPoints []KeyPoint) *Landmark {
	colSpan := zone.W - sp.W + 1
	rowSpan := zone.H - sp.H + 1
	if colSpan <= 0 || rowSpan <= 0 {
		return nil
	}
	for row := 0; row < rowSpan; row++ {
		y := zone.Y + row
		for i := 0; i < colSpan; i++ {
			// Rotate column offsets per region for placement variety.
			x := zone.X + (i+cfg.ZoneRotation*3)%colSpan
			if !anchorFits(g, cfg, sp, x, y, keyPoints) {
				continue
			}
			return clearAndPlace(g, sp, x, y)
		}
	}
	return nil
}

// anchorFits checks one candidate top-left anchor: the margin-expanded
// rectangle must lie inside the walkable interior and outside every key
// point's safety radius, and a blocking piece may only sit on
// still-walled tiles so it never severs an established corridor.
func anchorFits(g *Grid, cfg *Config, sp *SetPiece, ax, ay int, keyPoints []KeyPoint) bool {
	ex0 := ax - sp.Margin
	ey0 := ay - sp.Margin
	ex1 := ax + sp.W + sp.Margin - 1
	ey1 := ay + sp.H + sp.Margin - 1
	if !g.InInterior(ex0, ey0) || !g.InInterior(ex1, ey1) {
		return false
	}
	for _, kp := range keyPoints {
		if rectPointChebyshev(ex0, ey0, ex1, ey1, kp.Point) < cfg.SetPieceSafety {
			return false
		}
	}
	if sp.Blocking {
		for y := ay; y < ay+sp.H; y++ {
			for x := ax; x < ax+sp.W; x++ {
				if !g.Blocked(x, y) {
					return false
				}
			}
		}
	}
	return true
}

// clearAndPlace opens the margin-expanded rectangle, then re-blocks the
// raw footprint if the piece is marked blocking.
func clearAndPlace(g *Grid, sp *SetPiece, ax, ay int) *Landmark {
	for y := ay - sp.Margin; y < ay+sp.H+sp.Margin; y++ {
		for x := ax - sp.Margin; x < ax+sp.W+sp.Margin; x++ {
			g.Clear(x, y)
		}
	}
	if sp.Blocking {
		for y := ay; y < ay+sp.H; y++ {
			for x := ax; x < ax+sp.W; x++ {
				g.Block(x, y)
			}
		}
	}
	return &Landmark{X: ax, Y: ay, W: sp.W, H: sp.H, Key: sp.Key, Blocking: sp.Blocking}
}

// rectPointChebyshev is the Chebyshev distance from p to the closed
// rectangle [x0,x1]x[y0,y1]; zero when p is inside it.
func rectPointChebyshev(x0, y0, x1, y1 int, p Point) int {
	dx := 0
	if p.X < x0 {
		dx = x0 - p.X
	} else if p.X > x1 {
		dx = p.X - x1
	}
	dy := 0
	if p.Y < y0 {
		dy = y0 - p.Y
	} else if p.Y > y1 {
		dy = p.Y - y1
	}
	return max(dx, dy)
}
