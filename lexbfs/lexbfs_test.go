package lexbfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modtree/chpt/core"
	"github.com/modtree/chpt/lexbfs"
)

// assertLexBFSProperty checks P7: for a<b<c in sigma with (a,c) an edge
// and (b,c) not, some d<a has (d,b) an edge and (d,c) not.
func assertLexBFSProperty(t *testing.T, g *core.Graph, res *lexbfs.Result) {
	t.Helper()
	n := g.Size()
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				va, vb, vc := res.Sigma[a], res.Sigma[b], res.Sigma[c]
				if !g.HasEdge(va, vc) || g.HasEdge(vb, vc) {
					continue
				}
				found := false
				for d := 0; d < a; d++ {
					vd := res.Sigma[d]
					if g.HasEdge(vd, vb) && !g.HasEdge(vd, vc) {
						found = true
						break
					}
				}
				assert.Truef(t, found, "LexBFS property violated at a=%d(v%d) b=%d(v%d) c=%d(v%d)", a, va, b, vb, c, vc)
			}
		}
	}
}

func randomGraph(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(seed))
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				require.NoError(t, g.AddEdge(u, v))
			}
		}
	}
	return g
}

func TestComputeLexBFSProperty(t *testing.T) {
	graphs := map[string]*core.Graph{}
	var err error
	graphs["K4"], err = core.NewFromEdges(4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)
	graphs["P4"], err = core.NewFromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	graphs["C5"], err = core.NewFromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	require.NoError(t, err)
	graphs["star5"], err = core.NewFromEdges(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	require.NoError(t, err)
	graphs["independent"], err = core.New(4)
	require.NoError(t, err)

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			res := lexbfs.Compute(g)
			assertLexBFSProperty(t, g, res)
		})
	}

	for seed := int64(0); seed < 20; seed++ {
		g := randomGraph(t, 8, 0.4, seed)
		res := lexbfs.Compute(g)
		assertLexBFSProperty(t, g, res)
	}
}

func TestComputeInvariants(t *testing.T) {
	g, err := core.NewFromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)

	res := lexbfs.Compute(g)
	require.Len(t, res.Sigma, 5)

	// sigma is a permutation of 0..n-1, and sigmaInv is its exact inverse.
	seen := make(map[int]bool)
	for i, v := range res.Sigma {
		assert.False(t, seen[v])
		seen[v] = true
		assert.Equal(t, i, res.SigmaInv[v])
	}

	// xsliceLen[0] covers the whole graph.
	assert.Equal(t, 5, res.XSliceLen[0])
}

func TestWithStart(t *testing.T) {
	g, err := core.NewFromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	res := lexbfs.Compute(g, lexbfs.WithStart(3))
	assert.Equal(t, 3, res.Sigma[0])
	assertLexBFSProperty(t, g, res)

	// An out-of-range start falls back to the default.
	resDefault := lexbfs.Compute(g, lexbfs.WithStart(99))
	assert.Equal(t, 0, resDefault.Sigma[0])
}

func TestComputeEmptyGraph(t *testing.T) {
	g, err := core.New(0)
	require.NoError(t, err)
	res := lexbfs.Compute(g)
	assert.Empty(t, res.Sigma)
}
