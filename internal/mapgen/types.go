// Package mapgen generates region maps. Each generation pass fills a
// tile grid with walls, clears glades around the supplied key points,
// carves L-shaped corridors along a minimum spanning tree of those
// points, optionally places one large set-piece, converts the remaining
// walls into themed decorations with noise-driven accents, and finally
// scatters reachable item pickups. The whole pipeline is synchronous
// and a pure function of (Config, key points, rng).
package mapgen

// Point identifies one cell in the tile grid by column and row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Manhattan returns the Manhattan distance to other.
func (p Point) Manhattan(other Point) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Chebyshev returns the Chebyshev distance to other.
func (p Point) Chebyshev(other Point) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

// Role identifies what a key point anchors in the region.
type Role string

const (
	RoleStart Role = "start"
	RoleNPC   Role = "npc"
	RoleBoss  Role = "boss"
	RoleSpawn Role = "spawn"
)

// KeyPoint is a tile coordinate that must end up cleared and reachable
// from the start. Key points are inputs; the generator never moves them.
type KeyPoint struct {
	Point
	Role Role `json:"role"`
}

// Rect is an axis-aligned tile rectangle anchored at its top-left corner.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Contains reports whether the tile lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Decoration is one display tile handed to the rendering layer: either
// a dense wall obstacle or a sparse noise accent.
type Decoration struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Key      string `json:"key"`
	Blocking bool   `json:"blocking"`
}

// Landmark describes a placed set-piece footprint.
type Landmark struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	W        int    `json:"w"`
	H        int    `json:"h"`
	Key      string `json:"key"`
	Blocking bool   `json:"blocking"`
}

// Bounds returns the landmark's raw footprint rectangle.
func (l Landmark) Bounds() Rect {
	return Rect{X: l.X, Y: l.Y, W: l.W, H: l.H}
}

// ItemSpot is one interactive pickup placement.
type ItemSpot struct {
	X  int    `json:"x"`
	Y  int    `json:"y"`
	ID string `json:"id"`
}

// Map is the result of one generation pass. It is rebuilt from scratch
// on every Generate call; nothing is updated incrementally.
type Map struct {
	ID          string
	Region      string
	Width       int
	Height      int
	Grid        *Grid
	KeyPoints   []KeyPoint
	Decorations []Decoration
	Landmarks   []Landmark
	Items       []ItemSpot
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
