package mapgen

// carveCorridor clears an L-shaped path between the edge's endpoints: a
// horizontal leg within halfWidth of from's row spanning both columns,
// then a vertical leg within halfWidth of to's column spanning both
// rows. The legs always share the corner at (to.X, from.Y), so the path
// is connected regardless of direction. Grid.Clear keeps the border
// ring intact.
//
// The shape is deliberately simple: not shortest-path, not
// obstacle-aware. It guarantees reachability without pathfinding.
func carveCorridor(g *Grid, e edge, halfWidth int) {
	x1, x2 := minmax(e.from.X, e.to.X)
	for y := e.from.Y - halfWidth; y <= e.from.Y+halfWidth; y++ {
		for x := x1; x <= x2; x++ {
			g.Clear(x, y)
		}
	}

	y1, y2 := minmax(e.from.Y, e.to.Y)
	for x := e.to.X - halfWidth; x <= e.to.X+halfWidth; x++ {
		for y := y1; y <= y2; y++ {
			g.Clear(x, y)
		}
	}
}
