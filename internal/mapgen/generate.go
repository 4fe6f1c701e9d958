package mapgen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/regionforge/internal/telemetry"
)

// Generate runs the full pipeline for one region entry: wall fill,
// glade clearing, spanning-tree corridor carving, set-piece placement,
// decoration emission, item placement. keyPoints[0] is the player start
// and the root of the spanning tree; every key point must lie inside
// the walkable interior. The rng drives item placement only, so maps
// are reproducible from (Config, key points, seed).
func Generate(ctx context.Context, cfg Config, keyPoints []KeyPoint, rng *rand.Rand) (*Map, error) {
	tracer := telemetry.Tracer("mapgen")
	_, span := tracer.Start(ctx, "mapgen.generate")
	defer span.End()

	startTime := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := NewGrid(cfg.Width, cfg.Height, cfg.Border)
	for _, kp := range keyPoints {
		if !g.InInterior(kp.X, kp.Y) {
			return nil, fmt.Errorf("%w: %s at (%d,%d) in %dx%d border %d",
				ErrKeyPointOutOfBounds, kp.Role, kp.X, kp.Y, cfg.Width, cfg.Height, cfg.Border)
		}
	}

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

	var landmarks []Landmark
	if lm := placeSetPiece(g, &cfg, keyPoints); lm != nil {
		landmarks = append(landmarks, *lm)
	}

	decorations := emitDecorations(g, &cfg, landmarks)
	items := placeItems(g, &cfg, keyPoints, rng)

	m := &Map{
		ID:          uuid.NewString(),
		Region:      cfg.Region,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Grid:        g,
		KeyPoints:   keyPoints,
		Decorations: decorations,
		Landmarks:   landmarks,
		Items:       items,
	}

	span.SetAttributes(
		attribute.String("map.id", m.ID),
		attribute.String("map.region", cfg.Region),
		attribute.Int("map.key_points", len(keyPoints)),
		attribute.Int("map.open_tiles", g.OpenTiles()),
		attribute.Int("map.decorations", len(decorations)),
		attribute.Int("map.landmarks", len(landmarks)),
		attribute.Int("map.items", len(items)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m, nil
}
