package mapgen

// emitDecorations converts the finalized grid into display data: one
// dense wall decoration per remaining blocked interior tile, then
// sparse noise accents on open tiles. Landmark footprints are excluded
// from both passes; their visual comes from the landmark itself.
//
// Wall tiles alternate between the theme's two variants by positional
// hash, giving visual variety without consuming rng state. Accent
// layers are evaluated in order and the first qualifying layer wins the
// tile, so accents never stack.
func emitDecorations(g *Grid, cfg *Config, landmarks []Landmark) []Decoration {
	inFootprint := func(x, y int) bool {
		for _, lm := range landmarks {
			if lm.Bounds().Contains(x, y) {
				return true
			}
		}
		return false
	}

	decorations := make([]Decoration, 0, g.Width*g.Height/4)
	for y := g.Border; y < g.Height-g.Border; y++ {
		for x := g.Border; x < g.Width-g.Border; x++ {
			if inFootprint(x, y) {
				continue
			}
			if g.Blocked(x, y) {
				key := cfg.Theme.WallA
				if posHash(x, y)%2 == 1 {
					key = cfg.Theme.WallB
				}
				decorations = append(decorations, Decoration{X: x, Y: y, Key: key, Blocking: true})
				continue
			}
			for _, layer := range cfg.Accents {
				if Noise2D(float64(x), float64(y), layer.Freq, layer.Seed) >= layer.Threshold {
					decorations = append(decorations, Decoration{X: x, Y: y, Key: layer.Key, Blocking: layer.Blocking})
					break
				}
			}
		}
	}
	return decorations
}
