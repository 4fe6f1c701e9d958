package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanningEdgesTrivialInputs(t *testing.T) {
	assert.Nil(t, spanningEdges(nil))
	assert.Nil(t, spanningEdges([]Point{{X: 4, Y: 4}}))
}

func TestSpanningEdgesCount(t *testing.T) {
	points := []Point{{3, 3}, {10, 4}, {7, 12}, {20, 8}, {15, 15}, {4, 18}}
	for n := 2; n <= len(points); n++ {
		edges := spanningEdges(points[:n])
		assert.Len(t, edges, n-1, "n=%d", n)
	}
}

func TestSpanningEdgesChain(t *testing.T) {
	// Collinear points: the tree must be the chain, not a star.
	points := []Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}}
	edges := spanningEdges(points)
	require.Len(t, edges, 3)
	assert.Equal(t, edge{from: Point{0, 0}, to: Point{10, 0}}, edges[0])
	assert.Equal(t, edge{from: Point{10, 0}, to: Point{20, 0}}, edges[1])
	assert.Equal(t, edge{from: Point{20, 0}, to: Point{30, 0}}, edges[2])
}

func TestSpanningEdgesTieBreaksByIndex(t *testing.T) {
	// Both non-root points are Manhattan distance 5 from the root; the
	// lower index must join the tree first, every time.
	points := []Point{{0, 0}, {5, 0}, {0, 5}}
	for range 10 {
		edges := spanningEdges(points)
		require.Len(t, edges, 2)
		assert.Equal(t, edge{from: Point{0, 0}, to: Point{5, 0}}, edges[0])
		assert.Equal(t, edge{from: Point{0, 0}, to: Point{0, 5}}, edges[1])
	}
}

func TestSpanningEdgesConnectEveryPoint(t *testing.T) {
	points := []Point{{3, 40}, {60, 8}, {33, 25}, {12, 9}, {55, 44}, {24, 14}, {48, 30}}
	edges := spanningEdges(points)
	require.Len(t, edges, len(points)-1)

	// Union-find style check: walk the edges and collect reached points.
	reached := map[Point]bool{points[0]: true}
	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			if reached[e.from] && !reached[e.to] {
				reached[e.to] = true
				changed = true
			}
			if reached[e.to] && !reached[e.from] {
				reached[e.from] = true
				changed = true
			}
		}
	}
	for _, p := range points {
		assert.True(t, reached[p], "point %v not in spanning tree", p)
	}
}
