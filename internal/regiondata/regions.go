package regiondata

import (
	"math/rand"

	"github.com/samdwyer/regionforge/internal/mapgen"
)

// PointDef is a tile coordinate in a region definition.
type PointDef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Point converts the definition to a mapgen coordinate.
func (p PointDef) Point() mapgen.Point {
	return mapgen.Point{X: p.X, Y: p.Y}
}

// ThemeDef names the two dense wall decoration variants of a region.
type ThemeDef struct {
	WallA string `json:"wallA"`
	WallB string `json:"wallB"`
}

// AccentDef is one noise accent layer loaded from JSON.
type AccentDef struct {
	Key       string  `json:"key"`
	Freq      float64 `json:"freq"`
	Threshold float64 `json:"threshold"`
	Seed      uint64  `json:"seed"`
	Blocking  bool    `json:"blocking"`
}

// SetPieceDef is the region's landmark footprint.
type SetPieceDef struct {
	Key      string `json:"key"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Margin   int    `json:"margin"`
	Blocking bool   `json:"blocking"`
}

// ZoneDef is one coarse candidate rectangle for set-piece placement.
type ZoneDef struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PoolsDef holds the candidate pools key points are drawn from when the
// player enters the region. The generator itself never moves a key
// point; this selection is the caller's half of the contract.
type PoolsDef struct {
	Start      []PointDef `json:"start"`
	NPC        []PointDef `json:"npc"`
	Boss       []PointDef `json:"boss"`
	Spawns     []PointDef `json:"spawns"`
	SpawnCount int        `json:"spawnCount"`
}

// RegionDef defines one region loaded from JSON.
type RegionDef struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Theme        ThemeDef          `json:"theme"`
	Accents      []AccentDef       `json:"accents"`
	SetPiece     *SetPieceDef      `json:"setPiece"`
	Zones        []ZoneDef         `json:"zones"`
	ZoneRotation int               `json:"zoneRotation"`
	ItemPool     []string          `json:"itemPool"`
	Pools        PoolsDef          `json:"pools"`
	Palette      map[string]string `json:"palette"` // visual key -> hex color
}

// Config assembles the generation configuration for this region, using
// the package-wide map scale defaults for everything the definition
// does not carry.
func (d *RegionDef) Config() mapgen.Config {
	cfg := mapgen.Config{
		Region:            d.ID,
		Width:             mapgen.DefaultWidth,
		Height:            mapgen.DefaultHeight,
		Border:            mapgen.DefaultBorder,
		GladeRadius:       mapgen.DefaultGladeRadius,
		CorridorHalfWidth: mapgen.DefaultCorridorHalfWidth,
		Theme:             mapgen.Theme{WallA: d.Theme.WallA, WallB: d.Theme.WallB},
		ZoneRotation:      d.ZoneRotation,
		SetPieceSafety:    mapgen.DefaultSetPieceSafety,
		ItemPool:          d.ItemPool,
		ItemKeyPointDist:  mapgen.DefaultItemKeyPointDist,
		ItemSeparation:    mapgen.DefaultItemSeparation,
	}
	for _, a := range d.Accents {
		cfg.Accents = append(cfg.Accents, mapgen.AccentLayer{
			Key:       a.Key,
			Freq:      a.Freq,
			Threshold: a.Threshold,
			Seed:      a.Seed,
			Blocking:  a.Blocking,
		})
	}
	if d.SetPiece != nil {
		cfg.SetPiece = &mapgen.SetPiece{
			Key:      d.SetPiece.Key,
			W:        d.SetPiece.Width,
			H:        d.SetPiece.Height,
			Margin:   d.SetPiece.Margin,
			Blocking: d.SetPiece.Blocking,
		}
	}
	for _, z := range d.Zones {
		cfg.Zones = append(cfg.Zones, mapgen.Rect{X: z.X, Y: z.Y, W: z.Width, H: z.Height})
	}
	return cfg
}

// ResolveKeyPoints draws concrete key points from the region's
// candidate pools: one start, one NPC, one boss, then SpawnCount
// distinct enemy spawns. The start is always element 0. Empty pools
// contribute nothing.
func (d *RegionDef) ResolveKeyPoints(rng *rand.Rand) []mapgen.KeyPoint {
	var points []mapgen.KeyPoint
	pick := func(pool []PointDef, role mapgen.Role) {
		if len(pool) == 0 {
			return
		}
		p := pool[rng.Intn(len(pool))]
		points = append(points, mapgen.KeyPoint{Point: p.Point(), Role: role})
	}

	pick(d.Pools.Start, mapgen.RoleStart)
	pick(d.Pools.NPC, mapgen.RoleNPC)
	pick(d.Pools.Boss, mapgen.RoleBoss)

	count := min(d.Pools.SpawnCount, len(d.Pools.Spawns))
	for _, i := range rng.Perm(len(d.Pools.Spawns))[:count] {
		points = append(points, mapgen.KeyPoint{Point: d.Pools.Spawns[i].Point(), Role: mapgen.RoleSpawn})
	}
	return points
}

// RegionsFile represents the structure of regions.json.
type RegionsFile struct {
	Regions []RegionDef `json:"regions"`
}

// LoadRegions loads region definitions from the embedded regions.json.
func LoadRegions() ([]RegionDef, error) {
	file, err := Load[RegionsFile]("regions.json")
	if err != nil {
		return nil, err
	}
	return file.Regions, nil
}
