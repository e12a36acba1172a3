package core

import "sort"

// Size returns the number of vertices in the graph.
//
// Complexity: O(1).
func (g *Graph) Size() int {
	return g.n
}

// inRange reports whether v is a valid vertex index.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < g.n
}

// AddEdge adds an undirected edge between u and v.
//
// Self-loops (u == v) are silently ignored. Adding an edge that already
// exists is a no-op. Returns ErrVertexOutOfRange if either endpoint is
// outside [0, Size()).
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexOutOfRange
	}
	if u == v {
		return nil
	}

	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}

	return nil
}

// HasEdge reports whether u and v are adjacent. Out-of-range vertices are
// simply reported as non-adjacent, matching the reference implementation's
// behavior of returning false rather than erroring on a read-only query.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of neighbors of v, or 0 if v is out of range.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns a sorted, freshly allocated snapshot of v's neighbors,
// or nil if v is out of range. The snapshot is safe for the caller to keep
// and does not alias the graph's internal adjacency sets.
//
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}

	out := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		out = append(out, u)
	}
	sort.Ints(out)

	return out
}

// Edges returns every undirected edge exactly once, as [2]int{u, v} with
// u < v, sorted lexicographically.
//
// Complexity: O(n + m log m).
func (g *Graph) Edges() [][2]int {
	var out [][2]int
	for u := 0; u < g.n; u++ {
		for v := range g.adj[u] {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}
