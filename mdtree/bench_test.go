package mdtree_test

import (
	"testing"

	"github.com/modtree/chpt/core"
	"github.com/modtree/chpt/mdtree"
)

func buildCompleteGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := core.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if err := g.AddEdge(u, v); err != nil {
				b.Fatal(err)
			}
		}
	}
	return g
}

func buildPathGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := core.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for v := 0; v+1 < n; v++ {
		if err := g.AddEdge(v, v+1); err != nil {
			b.Fatal(err)
		}
	}
	return g
}

func buildSparseGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := core.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for v := 0; v < n; v++ {
		for _, step := range []int{1, 3, 7} {
			u := v + step
			if u < n {
				if err := g.AddEdge(v, u); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
	return g
}

func BenchmarkComputeComplete(b *testing.B) {
	g := buildCompleteGraph(b, 80)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mdtree.Compute(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputePath(b *testing.B) {
	g := buildPathGraph(b, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mdtree.Compute(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeSparse(b *testing.B) {
	g := buildSparseGraph(b, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mdtree.Compute(g); err != nil {
			b.Fatal(err)
		}
	}
}
