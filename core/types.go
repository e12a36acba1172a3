package core

import "errors"

// Sentinel errors for core graph construction.
var (
	// ErrNegativeSize is returned when New is called with a negative vertex count.
	ErrNegativeSize = errors.New("core: vertex count cannot be negative")

	// ErrVertexOutOfRange is returned when AddEdge references a vertex
	// outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Graph is an undirected, unweighted, simple graph on vertices 0..n-1.
//
// A Graph is built once via New and AddEdge and is read-only thereafter:
// lexbfs and mdtree never mutate a *Graph they are handed, so a single
// instance may safely be shared across concurrent decompositions.
type Graph struct {
	n   int
	adj []map[int]struct{}
}

// New allocates an edgeless graph on n vertices.
//
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	return &Graph{n: n, adj: adj}, nil
}

// NewFromEdges allocates a graph on n vertices and adds every edge in
// edges, where each element is an unordered pair {u, v}. It is a thin
// convenience wrapper around New and AddEdge for callers that already
// have the full edge list in hand (tests, benchmarks, small scripts).
//
// Complexity: O(n + len(edges)).
func NewFromEdges(n int, edges [][2]int) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
