package hamiltonian_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snakegraph/builder"
	"github.com/katalvlaran/snakegraph/core"
	"github.com/katalvlaran/snakegraph/hamiltonian"
)

var directed = []core.GraphOption{core.WithDirected(true)}

// squareWith returns Cycle(4) on vertices 0..3 extended by extra.
func squareWith(extra func(g *core.Graph)) *core.Graph {
	g := builder.MustBuild(nil, nil, builder.Cycle(4))
	extra(g)
	return g
}

func TestFindPath_NilGraph(t *testing.T) {
	res, err := hamiltonian.FindPath(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestFindPath_UnknownEndpoint(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(1)
	g.AddEdge(1, 2)

	_, err := hamiltonian.FindPath(g)
	var ige *core.InvalidGraphError
	assert.ErrorAs(t, err, &ige)
	assert.ErrorIs(t, err, core.ErrUnknownEndpoint)
}

func TestFindPath_Empty(t *testing.T) {
	res, err := hamiltonian.FindPath(core.NewGraph())
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
}

func TestFindPath_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(42)

	res, err := hamiltonian.FindPath(g)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{42}, res.Path)
}

func TestFindPath_TwoIsolatedVertices(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(1)
	g.AddVertex(2)

	ok, err := hamiltonian.HasPath(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindPath_Table(t *testing.T) {
	tests := []struct {
		name string
		g    *core.Graph
		want bool
	}{
		{"undirected path", builder.MustBuild(nil, nil, builder.Path(6)), true},
		{"undirected cycle", builder.MustBuild(nil, nil, builder.Cycle(5)), true},
		{"undirected star 4", builder.MustBuild(nil, nil, builder.Star(4)), false},
		{"undirected star 3 is a path", builder.MustBuild(nil, nil, builder.Star(3)), true},
		{"directed star", builder.MustBuild(directed, nil, builder.Star(4)), false},
		{"directed path", builder.MustBuild(directed, nil, builder.Path(4)), true},
		{"complete", builder.MustBuild(nil, nil, builder.Complete(5)), true},
		{"hypercube 3", builder.MustBuild(nil, nil, builder.Hypercube(3)), true},
		{"hypercube 4", builder.MustBuild(nil, nil, builder.Hypercube(4)), true},
		{"square plus isolated vertex", squareWith(func(g *core.Graph) { g.AddVertex(4) }), false},
		{"two disjoint squares", squareWith(func(g *core.Graph) {
			for id := 4; id < 8; id++ {
				g.AddVertex(id)
			}
			g.AddEdge(4, 5)
			g.AddEdge(5, 6)
			g.AddEdge(6, 7)
			g.AddEdge(7, 4)
		}), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := hamiltonian.FindPath(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Found)
			if tc.want {
				assert.True(t, hamiltonian.IsHamiltonianPath(tc.g, res.Path), "witness %v", res.Path)
			}
		})
	}
}

// A directed path only works from its source; reversing the vertex list moves
// the source to the last start candidate, which must still be found.
func TestFindPath_DirectedStartOrder(t *testing.T) {
	g := builder.MustBuild(directed, []builder.BuilderOption{builder.WithReversedOrder()}, builder.Path(4))
	require.Equal(t, []int{3, 2, 1, 0}, g.VertexIDs())

	res, err := hamiltonian.FindPath(g)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
}

func TestFindPath_DeterministicWitness(t *testing.T) {
	g := builder.MustBuild(nil, nil, builder.Cycle(4))

	res, err := hamiltonian.FindPath(g)
	require.NoError(t, err)
	// start 0, neighbors in edge order: 1 then 3
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)

	again, err := hamiltonian.FindPath(g)
	require.NoError(t, err)
	assert.Equal(t, res.Path, again.Path)
}

func TestFindPath_Backtracks(t *testing.T) {
	// 0-1, 0-2, 2-3: from 0 the first branch (1) dead-ends and must be undone.
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex(i)
	}
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(2, 3)

	res, err := hamiltonian.FindPath(g)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{1, 0, 2, 3}, res.Path)
	assert.Greater(t, res.Expanded, 4)
}

func TestFindPath_WithAdjacency(t *testing.T) {
	g := builder.MustBuild(nil, nil, builder.Path(4))
	adj := core.BuildAdjacency(g)

	ok, err := hamiltonian.HasPath(g, hamiltonian.WithAdjacency(adj))
	require.NoError(t, err)
	assert.True(t, ok)

	// an adjacency that points outside the graph is rejected
	adj[0] = append(adj[0], 99)
	_, err = hamiltonian.HasPath(g, hamiltonian.WithAdjacency(adj))
	assert.ErrorIs(t, err, core.ErrUnknownEndpoint)
}

func TestFindPath_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := builder.MustBuild(nil, nil, builder.Star(6))
	res, err := hamiltonian.FindPath(g, hamiltonian.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Found)

	// nil context is ignored
	ok, err := hamiltonian.HasPath(g, hamiltonian.WithContext(nil)) //nolint:staticcheck
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindPath_DoesNotMutateInput(t *testing.T) {
	g := builder.MustBuild(nil, nil, builder.Hypercube(3))
	snapshot := g.Clone()

	_, err := hamiltonian.FindPath(g)
	require.NoError(t, err)
	assert.Equal(t, snapshot, g)
}

func TestIsHamiltonianPath(t *testing.T) {
	g := builder.MustBuild(directed, nil, builder.Path(3))
	assert.True(t, hamiltonian.IsHamiltonianPath(g, []int{0, 1, 2}))
	assert.False(t, hamiltonian.IsHamiltonianPath(g, []int{2, 1, 0}), "wrong direction")
	assert.False(t, hamiltonian.IsHamiltonianPath(g, []int{0, 1}), "too short")
	assert.False(t, hamiltonian.IsHamiltonianPath(g, []int{0, 1, 1}), "repeat")
	assert.False(t, hamiltonian.IsHamiltonianPath(g, []int{0, 1, 7}), "unknown vertex")
	assert.False(t, hamiltonian.IsHamiltonianPath(nil, nil))

	// edge 1→3 leaves the vertex set; walking it must not stand in for vertex 2
	dangling := core.NewGraph(core.WithDirected(true))
	dangling.AddVertex(1)
	dangling.AddVertex(2)
	dangling.AddEdge(1, 3)
	assert.False(t, hamiltonian.IsHamiltonianPath(dangling, []int{1, 3}), "dangling endpoint")
	assert.False(t, hamiltonian.IsHamiltonianPath(dangling, []int{1, 2}), "invalid graph")
}
