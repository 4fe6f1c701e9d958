package mapgen

import "math/rand"

// placeItems picks up to two pickup positions that are reachable from
// the start by 4-directional BFS over open tiles, at least
// ItemKeyPointDist from every key point, at least ItemSeparation from
// each other, and off the tiles hugging the border. Fewer valid
// candidates than requested is not an error; the map just carries fewer
// items.
func placeItems(g *Grid, cfg *Config, keyPoints []KeyPoint, rng *rand.Rand) []ItemSpot {
	if len(cfg.ItemPool) == 0 || len(keyPoints) == 0 {
		return nil
	}

	reachable := reachableFrom(g, keyPoints[0].Point)
	want := min(2, len(cfg.ItemPool))
	margin := g.Border + 1

	valid := func(p Point, picked []Point) bool {
		if p.X < margin || p.X >= g.Width-margin || p.Y < margin || p.Y >= g.Height-margin {
			return false
		}
		if !reachable[p.Y*g.Width+p.X] {
			return false
		}
		for _, kp := range keyPoints {
			if p.Manhattan(kp.Point) < cfg.ItemKeyPointDist {
				return false
			}
		}
		for _, q := range picked {
			if p.Manhattan(q) < cfg.ItemSeparation {
				return false
			}
		}
		return true
	}

	picked := make([]Point, 0, want)

	// Random probes are cheap and usually enough.
	for range itemSampleAttempts {
		if len(picked) == want {
			break
		}
		p := Point{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
		if valid(p, picked) {
			picked = append(picked, p)
		}
	}

	// Exhaustive shuffled fallback on a coarse stride.
	if len(picked) < want {
		var candidates []Point
		for y := margin; y < g.Height-margin; y += itemCandidateStride {
			for x := margin; x < g.Width-margin; x += itemCandidateStride {
				candidates = append(candidates, Point{X: x, Y: y})
			}
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, p := range candidates {
			if len(picked) == want {
				break
			}
			if valid(p, picked) {
				picked = append(picked, p)
			}
		}
	}

	items := make([]ItemSpot, len(picked))
	for i, p := range picked {
		items[i] = ItemSpot{X: p.X, Y: p.Y, ID: cfg.ItemPool[i]}
	}
	return items
}

// reachableFrom flood-fills the open tiles 4-directionally from start
// and returns the visited set indexed y*width+x. A blocked start yields
// an empty set.
func reachableFrom(g *Grid, start Point) []bool {
	seen := make([]bool, g.Width*g.Height)
	if g.Blocked(start.X, start.Y) {
		return seen
	}
	seen[start.Y*g.Width+start.X] = true
	queue := make([]Point, 0, g.Width*g.Height/2)
	queue = append(queue, start)

	steps := [4]Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range steps {
			nx := cur.X + d.X
			ny := cur.Y + d.Y
			if g.Blocked(nx, ny) {
				continue
			}
			idx := ny*g.Width + nx
			if seen[idx] {
				continue
			}
			seen[idx] = true
			queue = append(queue, Point{X: nx, Y: ny})
		}
	}
	return seen
}
