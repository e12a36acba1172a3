package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modtree/chpt/core"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr error
	}{
		{name: "zero vertices", n: 0, wantErr: nil},
		{name: "positive vertices", n: 5, wantErr: nil},
		{name: "negative vertices", n: -1, wantErr: core.ErrNegativeSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.New(tc.n)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, g)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, g)
			assert.Equal(t, tc.n, g.Size())
		})
	}
}

func TestAddEdge(t *testing.T) {
	g, err := core.New(4)
	require.NoError(t, err)

	// Idempotent insertion.
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 1, g.Degree(1))

	// Self-loops are ignored.
	require.NoError(t, g.AddEdge(2, 2))
	assert.False(t, g.HasEdge(2, 2))
	assert.Equal(t, 0, g.Degree(2))

	// Out-of-range endpoints are rejected.
	require.ErrorIs(t, g.AddEdge(0, 10), core.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(-1, 0), core.ErrVertexOutOfRange)
}

func TestHasEdgeOutOfRange(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	assert.False(t, g.HasEdge(0, 5))
	assert.False(t, g.HasEdge(-1, 0))
}

func TestNeighborsSortedSnapshot(t *testing.T) {
	g, err := core.New(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 4))

	nbrs := g.Neighbors(0)
	assert.Equal(t, []int{1, 3, 4}, nbrs)

	// Mutating the returned slice must not affect the graph.
	nbrs[0] = 99
	assert.Equal(t, []int{1, 3, 4}, g.Neighbors(0))

	assert.Nil(t, g.Neighbors(-1))
	assert.Nil(t, g.Neighbors(5))
}

func TestEdges(t *testing.T) {
	g, err := core.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 1))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 1))

	assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {1, 2}}, g.Edges())
}

func TestNewFromEdges(t *testing.T) {
	g, err := core.NewFromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	assert.True(t, g.HasEdge(1, 2))
	assert.Equal(t, 3, len(g.Edges()))

	_, err = core.NewFromEdges(2, [][2]int{{0, 5}})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}
