package mapgen

import "math"

// edge joins two key points chosen for a corridor. Edges are produced
// once by spanningEdges and consumed once by carveCorridor.
type edge struct {
	from Point
	to   Point
}

// spanningEdges runs Prim's algorithm over the key points with
// Manhattan distance as edge weight, rooted at points[0] (the player
// start). Ties go to the lowest index scanned first, so identical
// inputs always yield identical trees. Fewer than two points means no
// connectivity is needed and no edges are returned.
func spanningEdges(points []Point) []edge {
	n := len(points)
	if n < 2 {
		return nil
	}

	inTree := make([]bool, n)
	dist := make([]int, n)
	parent := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		parent[i] = -1
	}
	dist[0] = 0

	edges := make([]edge, 0, n-1)
	for range n {
		best := -1
		for i := range n {
			if inTree[i] {
				continue
			}
			if best == -1 || dist[i] < dist[best] {
				best = i
			}
		}
		inTree[best] = true
		if parent[best] >= 0 {
			edges = append(edges, edge{from: points[parent[best]], to: points[best]})
		}
		for i := range n {
			if inTree[i] {
				continue
			}
			if d := points[best].Manhattan(points[i]); d < dist[i] {
				dist[i] = d
				parent[i] = best
			}
		}
	}
	return edges
}
