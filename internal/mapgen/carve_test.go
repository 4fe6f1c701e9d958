package mapgen

import "testing"

func TestCarveCorridorLegs(t *testing.T) {
	g := NewGrid(30, 20, 2)
	a := Point{X: 5, Y: 5}
	b := Point{X: 20, Y: 12}
	carveCorridor(g, edge{from: a, to: b}, 1)

	// Horizontal leg: within 1 of a's row, spanning both columns.
	for y := 4; y <= 6; y++ {
		for x := 5; x <= 20; x++ {
			if g.Blocked(x, y) {
				t.Errorf("horizontal leg tile (%d,%d) blocked", x, y)
			}
		}
	}
	// Vertical leg: within 1 of b's column, spanning both rows.
	for x := 19; x <= 21; x++ {
		for y := 5; y <= 12; y++ {
			if g.Blocked(x, y) {
				t.Errorf("vertical leg tile (%d,%d) blocked", x, y)
			}
		}
	}
	// The shared corner guarantees the legs connect.
	if g.Blocked(b.X, a.Y) {
		t.Error("corner tile blocked")
	}
}

func TestCarveCorridorConnectsEndpoints(t *testing.T) {
	directions := []struct {
		name string
		a, b Point
	}{
		{"right-down", Point{5, 5}, Point{24, 15}},
		{"left-up", Point{24, 15}, Point{5, 5}},
		{"right-up", Point{5, 15}, Point{24, 5}},
		{"left-down", Point{24, 5}, Point{5, 15}},
		{"same-row", Point{5, 10}, Point{24, 10}},
		{"same-col", Point{14, 4}, Point{14, 15}},
	}
	for _, tc := range directions {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(30, 20, 2)
			carveCorridor(g, edge{from: tc.a, to: tc.b}, 1)
			reachable := reachableFrom(g, tc.a)
			if !reachable[tc.b.Y*g.Width+tc.b.X] {
				t.Errorf("endpoint %v not reachable from %v", tc.b, tc.a)
			}
		})
	}
}

func TestCarveCorridorRespectsBorder(t *testing.T) {
	g := NewGrid(30, 20, 2)
	// Endpoints hugging the interior edge push the half-width sweep
	// into the border ring; Clear must clamp it.
	carveCorridor(g, edge{from: Point{2, 2}, to: Point{27, 17}}, 2)

	for x := 0; x < 30; x++ {
		for b := 0; b < 2; b++ {
			if !g.Blocked(x, b) || !g.Blocked(x, 19-b) {
				t.Fatalf("horizontal border breached at x=%d", x)
			}
		}
	}
	for y := 0; y < 20; y++ {
		for b := 0; b < 2; b++ {
			if !g.Blocked(b, y) || !g.Blocked(29-b, y) {
				t.Fatalf("vertical border breached at y=%d", y)
			}
		}
	}
}
