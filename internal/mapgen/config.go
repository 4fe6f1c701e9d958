package mapgen

import (
	"errors"
	"fmt"
)

const (
	// Default map dimensions in tiles.
	DefaultWidth  = 70
	DefaultHeight = 50

	// DefaultBorder is the thickness of the always-blocked edge ring.
	DefaultBorder = 2

	// DefaultGladeRadius is the Chebyshev radius cleared around each key point.
	DefaultGladeRadius = 5

	// DefaultCorridorHalfWidth gives 5-tile-wide corridors.
	DefaultCorridorHalfWidth = 2

	// DefaultSetPieceSafety keeps landmarks out of glade-safety zones.
	DefaultSetPieceSafety = 7

	// Default item placement distances (Manhattan).
	DefaultItemKeyPointDist = 8
	DefaultItemSeparation   = 12

	// Item candidate search: random probes first, then an exhaustive
	// shuffled sweep on a coarse stride.
	itemSampleAttempts  = 300
	itemCandidateStride = 2
)

// ErrInvalidConfig is returned when the grid dimensions cannot hold a
// walkable interior.
var ErrInvalidConfig = errors.New("mapgen: invalid config")

// ErrKeyPointOutOfBounds is returned when a key point lies outside the
// walkable interior. Out-of-range coordinates are a contract violation,
// not something to clamp.
var ErrKeyPointOutOfBounds = errors.New("mapgen: key point outside walkable interior")

// AccentLayer is one noise-thresholded rule producing sparse decorative
// tiles on open ground. Layers are evaluated in order; the first layer
// to qualify a tile wins it.
type AccentLayer struct {
	Key       string
	Freq      float64
	Threshold float64
	Seed      uint64
	Blocking  bool
}

// SetPiece describes the one large landmark a region may place.
type SetPiece struct {
	Key      string
	W, H     int
	Margin   int
	Blocking bool
}

// Theme names the two dense wall decoration variants a region draws
// its obstacles from.
type Theme struct {
	WallA string
	WallB string
}

// Config carries every tunable a generation pass depends on. Corridor
// width, glade radius and map scale were retuned more than once during
// development, so they are deployment configuration rather than
// constants.
type Config struct {
	Region string

	Width  int
	Height int
	Border int

	GladeRadius       int
	CorridorHalfWidth int

	Theme   Theme
	Accents []AccentLayer

	// Set-piece placement. Zones are coarse candidate rectangles
	// scanned in an order rotated by ZoneRotation, so sibling regions
	// favor different corners of the map.
	SetPiece       *SetPiece
	Zones          []Rect
	ZoneRotation   int
	SetPieceSafety int

	// Item placement. ItemPool is consumed in order, at most two per map.
	ItemPool         []string
	ItemKeyPointDist int
	ItemSeparation   int
}

// Validate checks that the dimensions leave a non-empty walkable interior.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Border < 1 {
		return fmt.Errorf("%w: border %d must be at least 1", ErrInvalidConfig, c.Border)
	}
	if c.Width <= 2*c.Border || c.Height <= 2*c.Border {
		return fmt.Errorf("%w: border %d leaves no interior in %dx%d", ErrInvalidConfig, c.Border, c.Width, c.Height)
	}
	if c.GladeRadius < 0 || c.CorridorHalfWidth < 0 {
		return fmt.Errorf("%w: negative radius", ErrInvalidConfig)
	}
	return nil
}
