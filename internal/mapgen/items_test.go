package mapgen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carvedItemGrid(cfg *Config, keyPoints []KeyPoint) *Grid {
	g := NewGrid(cfg.Width, cfg.Height, cfg.Border)
	for _, kp := range keyPoints {
		g.ClearGlade(kp.Point, cfg.GladeRadius)
	}
	points := make([]Point, len(keyPoints))
	for i, kp := range keyPoints {
		points[i] = kp.Point
	}
	for _, e := range spanningEdges(points) {
		carveCorridor(g, e, cfg.CorridorHalfWidth)
	}
	return g
}

func TestPlaceItemsConstraints(t *testing.T) {
	cfg := Config{
		Width:             70,
		Height:            50,
		Border:            2,
		GladeRadius:       5,
		CorridorHalfWidth: 2,
		ItemPool:          []string{"wild_herb", "copper_coin"},
		ItemKeyPointDist:  8,
		ItemSeparation:    12,
	}
	keyPoints := []KeyPoint{
		{Point: Point{X: 10, Y: 10}, Role: RoleStart},
		{Point: Point{X: 55, Y: 40}, Role: RoleBoss},
		{Point: Point{X: 30, Y: 25}, Role: RoleSpawn},
	}
	g := carvedItemGrid(&cfg, keyPoints)
	reachable := reachableFrom(g, keyPoints[0].Point)

	rng := rand.New(rand.NewSource(4242))
	items := placeItems(g, &cfg, keyPoints, rng)
	require.NotEmpty(t, items)
	require.LessOrEqual(t, len(items), 2)

	margin := cfg.Border + 1
	for i, item := range items {
		p := Point{X: item.X, Y: item.Y}
		assert.True(t, reachable[p.Y*g.Width+p.X], "item %v unreachable", p)
		assert.GreaterOrEqual(t, p.X, margin)
		assert.GreaterOrEqual(t, p.Y, margin)
		assert.Less(t, p.X, g.Width-margin)
		assert.Less(t, p.Y, g.Height-margin)
		assert.Equal(t, cfg.ItemPool[i], item.ID, "pool consumed out of order")
		for _, kp := range keyPoints {
			assert.GreaterOrEqual(t, p.Manhattan(kp.Point), cfg.ItemKeyPointDist,
				"item %v too close to key point %v", p, kp.Point)
		}
		for j := i + 1; j < len(items); j++ {
			q := Point{X: items[j].X, Y: items[j].Y}
			assert.GreaterOrEqual(t, p.Manhattan(q), cfg.ItemSeparation,
				"items %v and %v too close", p, q)
		}
	}
}

func TestPlaceItemsEmptyPool(t *testing.T) {
	cfg := Config{Width: 30, Height: 20, Border: 2, GladeRadius: 3}
	keyPoints := []KeyPoint{{Point: Point{X: 10, Y: 10}, Role: RoleStart}}
	g := carvedItemGrid(&cfg, keyPoints)

	assert.Empty(t, placeItems(g, &cfg, keyPoints, rand.New(rand.NewSource(1))))
}

func TestPlaceItemsGivesUpGracefully(t *testing.T) {
	// A lone glade of radius 5 holds no tile 12 Manhattan away from its
	// own key point, so the exhaustive fallback must come back empty
	// rather than erroring.
	cfg := Config{
		Width:            70,
		Height:           50,
		Border:           2,
		GladeRadius:      5,
		ItemPool:         []string{"wild_herb", "copper_coin"},
		ItemKeyPointDist: 12,
		ItemSeparation:   12,
	}
	keyPoints := []KeyPoint{{Point: Point{X: 20, Y: 20}, Role: RoleStart}}
	g := carvedItemGrid(&cfg, keyPoints)

	assert.Empty(t, placeItems(g, &cfg, keyPoints, rand.New(rand.NewSource(7))))
}

func TestPlaceItemsSingleItemPool(t *testing.T) {
	cfg := Config{
		Width:             70,
		Height:            50,
		Border:            2,
		GladeRadius:       5,
		CorridorHalfWidth: 2,
		ItemPool:          []string{"old_key"},
		ItemKeyPointDist:  8,
		ItemSeparation:    12,
	}
	keyPoints := []KeyPoint{
		{Point: Point{X: 10, Y: 10}, Role: RoleStart},
		{Point: Point{X: 55, Y: 40}, Role: RoleBoss},
	}
	g := carvedItemGrid(&cfg, keyPoints)

	items := placeItems(g, &cfg, keyPoints, rand.New(rand.NewSource(11)))
	require.Len(t, items, 1)
	assert.Equal(t, "old_key", items[0].ID)
}

func TestReachableFromBlockedStart(t *testing.T) {
	g := NewGrid(10, 10, 2)
	seen := reachableFrom(g, Point{X: 5, Y: 5})
	for _, v := range seen {
		assert.False(t, v)
	}
}
