package mapgen

import "testing"

func TestNewGridFullyBlocked(t *testing.T) {
	g := NewGrid(20, 12, 2)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Blocked(x, y) {
				t.Fatalf("tile (%d,%d) open in a fresh grid", x, y)
			}
		}
	}
	if g.OpenTiles() != 0 {
		t.Errorf("expected 0 open tiles, got %d", g.OpenTiles())
	}
}

func TestBlockedOutOfRange(t *testing.T) {
	g := NewGrid(10, 10, 2)
	for _, p := range []Point{{-1, 0}, {0, -1}, {10, 5}, {5, 10}, {-3, -3}} {
		if !g.Blocked(p.X, p.Y) {
			t.Errorf("out-of-range tile (%d,%d) reported open", p.X, p.Y)
		}
	}
}

func TestClearNeverOpensBorder(t *testing.T) {
	g := NewGrid(10, 10, 2)
	g.Clear(0, 0)
	g.Clear(1, 1)
	g.Clear(9, 9)
	g.Clear(5, 1)
	if !g.Blocked(0, 0) || !g.Blocked(1, 1) || !g.Blocked(9, 9) || !g.Blocked(5, 1) {
		t.Error("border tile was opened")
	}

	g.Clear(2, 2)
	if g.Blocked(2, 2) {
		t.Error("interior tile (2,2) should be open")
	}
}

func TestClearGlade(t *testing.T) {
	g := NewGrid(20, 20, 2)
	p := Point{X: 10, Y: 10}
	g.ClearGlade(p, 3)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			inGlade := p.Chebyshev(Point{X: x, Y: y}) <= 3
			open := !g.Blocked(x, y)
			if inGlade && !open {
				t.Errorf("glade tile (%d,%d) still blocked", x, y)
			}
			if !inGlade && open {
				t.Errorf("tile (%d,%d) outside glade was opened", x, y)
			}
		}
	}
}

func TestClearGladeClampsAtBorder(t *testing.T) {
	g := NewGrid(20, 20, 2)
	g.ClearGlade(Point{X: 3, Y: 3}, 4)

	// The glade reaches past the border ring; the ring must survive.
	for i := 0; i < 20; i++ {
		for b := 0; b < 2; b++ {
			if !g.Blocked(i, b) || !g.Blocked(b, i) || !g.Blocked(i, 19-b) || !g.Blocked(19-b, i) {
				t.Fatalf("border breached near %d", i)
			}
		}
	}
	if g.Blocked(2, 2) {
		t.Error("interior glade tile (2,2) still blocked")
	}
}
