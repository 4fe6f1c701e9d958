// Package regiondata provides embedded region definitions and utilities
// for loading them: tile themes, accent noise layers, set-piece
// footprints, placement zones, item pools, and the candidate pools key
// points are drawn from on region entry.
package regiondata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
