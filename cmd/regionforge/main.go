// Package main is the regionforge preview tool: generate a region map
// and inspect it in the terminal, or dump it as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/samdwyer/regionforge/internal/mapgen"
	"github.com/samdwyer/regionforge/internal/mapserver"
	"github.com/samdwyer/regionforge/internal/regiondata"
	"github.com/samdwyer/regionforge/internal/telemetry"
	"github.com/samdwyer/regionforge/internal/ui"
)

func main() {
	region := flag.String("region", "meadow", "region to generate")
	seed := flag.Int64("seed", 0, "generation seed (0 picks one from the clock)")
	asJSON := flag.Bool("json", false, "print the map snapshot as JSON instead of opening the preview")
	list := flag.Bool("list", false, "list available regions and exit")
	flag.Parse()

	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry := regiondata.MustLoadRegionRegistry()

	if *list {
		for _, def := range registry.All() {
			fmt.Printf("%-10s %s\n", def.ID, def.Name)
		}
		return
	}

	def := registry.GetByID(*region)
	if def == nil {
		log.Fatalf("Unknown region %q; try -list", *region)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	m, err := generate(ctx, def, *seed)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(mapserver.NewSnapshot(m)); err != nil {
			log.Fatalf("Encoding failed: %v", err)
		}
		return
	}

	if err := preview(ctx, def, m, *seed); err != nil {
		log.Fatalf("Preview error: %v", err)
	}
}

// generate resolves key points from the region's pools and runs the
// pipeline, all from one seeded rng.
func generate(ctx context.Context, def *regiondata.RegionDef, seed int64) (*mapgen.Map, error) {
	rng := rand.New(rand.NewSource(seed))
	keyPoints := def.ResolveKeyPoints(rng)
	return mapgen.Generate(ctx, def.Config(), keyPoints, rng)
}

// preview renders the map in the terminal. 'r' regenerates with a new
// seed; 'q' or Escape quits.
func preview(ctx context.Context, def *regiondata.RegionDef, m *mapgen.Map, seed int64) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen)
	palette := ui.NewPalette(def.Palette)

	for {
		renderer.Render(m, palette)
		renderer.RenderStatus(m, seed)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
				seed = time.Now().UnixNano()
				m, err = generate(ctx, def, seed)
				if err != nil {
					return err
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
