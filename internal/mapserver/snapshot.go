// Package mapserver serves generated region maps over HTTP and
// broadcasts every generated snapshot to websocket subscribers.
package mapserver

import (
	"strings"

	"github.com/samdwyer/regionforge/internal/mapgen"
)

// Snapshot is the wire form of one generated map.
type Snapshot struct {
	ID          string              `json:"id"`
	Region      string              `json:"region"`
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	Blocked     []string            `json:"blocked"` // one row per string, '#' blocked / '.' open
	KeyPoints   []mapgen.KeyPoint   `json:"keyPoints"`
	Decorations []mapgen.Decoration `json:"decorations"`
	Landmarks   []mapgen.Landmark   `json:"landmarks"`
	Items       []mapgen.ItemSpot   `json:"items"`
}

// NewSnapshot converts a generated map to its wire form. The blocked
// grid is encoded as one string per row, which stays compact and is
// readable in raw responses.
func NewSnapshot(m *mapgen.Map) Snapshot {
	blocked := make([]string, m.Height)
	var row strings.Builder
	for y := 0; y < m.Height; y++ {
		row.Reset()
		for x := 0; x < m.Width; x++ {
			if m.Grid.Blocked(x, y) {
				row.WriteByte('#')
			} else {
				row.WriteByte('.')
			}
		}
		blocked[y] = row.String()
	}

	return Snapshot{
		ID:          m.ID,
		Region:      m.Region,
		Width:       m.Width,
		Height:      m.Height,
		Blocked:     blocked,
		KeyPoints:   m.KeyPoints,
		Decorations: m.Decorations,
		Landmarks:   m.Landmarks,
		Items:       m.Items,
	}
}
