package bfs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skynet/bfs"
	"github.com/katalvlaran/skynet/core"
)

// buildBoard creates a sealed graph from pairs and gateways.
func buildBoard(t testing.TB, links [][2]int, gateways ...int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range links {
		_, err := g.AddLink(l[0], l[1])
		require.NoError(t, err)
	}
	for _, gw := range gateways {
		require.NoError(t, g.MarkGateway(gw))
	}
	require.NoError(t, g.Seal())

	return g
}

var diamond = [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}

// TestDistances_Errors verifies that invalid inputs and options are rejected.
func TestDistances_Errors(t *testing.T) {
	_, err := bfs.Distances(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, _ = g.AddLink(0, 1)
	_, err = bfs.Distances(g)
	assert.ErrorIs(t, err, bfs.ErrNoGateways)

	g = buildBoard(t, diamond, 3)
	_, err = bfs.Distances(g, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestDistances_Diamond covers the four-node board with one gateway.
func TestDistances_Diamond(t *testing.T) {
	g := buildBoard(t, diamond, 3)

	res, err := bfs.Distances(g)
	require.NoError(t, err)

	want := map[int]int{3: 0, 1: 1, 2: 1, 0: 2}
	assert.Equal(t, want, res.Distance)
	for id, d := range want {
		assert.Equal(t, d, g.Distance(id), "cache of node %d", id)
	}
	assert.Equal(t, []int{3, 1, 2, 0}, res.Order)
	assert.Equal(t, map[int]int{1: 3, 2: 3, 0: 1}, res.Next)

	path, err := res.PathToGateway(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)

	path, err = res.PathToGateway(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, path)
}

// TestDistances_RecomputeAfterCut ensures a cut invalidates the old count.
func TestDistances_RecomputeAfterCut(t *testing.T) {
	g := buildBoard(t, diamond, 3)
	_, err := bfs.Distances(g)
	require.NoError(t, err)
	require.Equal(t, 1, g.Distance(1))

	require.True(t, g.RemoveLink(1, 3))
	res, err := bfs.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Distance(1), "1 must now route 1-0-2-3")
	assert.Equal(t, 2, g.Distance(0))

	path, err := res.PathToGateway(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 3}, path)
}

// TestDistances_Unreachable covers isolated components and the reset.
func TestDistances_Unreachable(t *testing.T) {
	g := buildBoard(t, [][2]int{{0, 1}, {1, 2}, {5, 6}}, 2)
	g.SetDistance(5, 1) // stale value must be cleared

	res, err := bfs.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, core.Unreachable, g.Distance(5))
	assert.Equal(t, core.Unreachable, g.Distance(6))
	assert.False(t, res.Reachable(5))
	assert.Equal(t, core.Unreachable, res.DistanceOf(6))
	assert.Equal(t, 2, res.DistanceOf(0))

	_, err = res.PathToGateway(5)
	assert.True(t, errors.Is(err, bfs.ErrUnreachable))
}

// TestDistances_GatewaysAreSinks checks that no path crosses a gateway.
func TestDistances_GatewaysAreSinks(t *testing.T) {
	// 0 - 1(gw) - 2 - 3 - 4(gw) - 5
	g := buildBoard(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}, 1, 4)

	res, err := bfs.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 1, 1: 0, 2: 1, 3: 1, 4: 0, 5: 1}, res.Distance)

	for _, id := range g.NodeIDs() {
		path, err := res.PathToGateway(id)
		require.NoError(t, err)
		for _, step := range path[:len(path)-1] {
			assert.False(t, g.IsGateway(step), "path from %d crosses gateway %d", id, step)
		}
		assert.True(t, g.IsGateway(path[len(path)-1]))
	}
}

// TestDistances_Options covers MaxDepth, FilterLink, OnVisit and write-back.
func TestDistances_Options(t *testing.T) {
	chain := [][2]int{{0, 1}, {1, 2}, {2, 3}}

	g := buildBoard(t, chain, 3)
	res, err := bfs.Distances(g, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{3: 0, 2: 1}, res.Distance)
	assert.Equal(t, core.Unreachable, g.Distance(1))

	// hide 1-2 without mutating the board
	g = buildBoard(t, chain, 3)
	_, err = bfs.Distances(g)
	require.NoError(t, err)
	cut := core.NewLink(1, 2)
	res, err = bfs.Distances(g,
		bfs.WithoutWriteBack(),
		bfs.WithFilterLink(func(from, to int) bool { return core.NewLink(from, to) != cut }),
	)
	require.NoError(t, err)
	assert.False(t, res.Reachable(0))
	assert.Equal(t, 3, g.Distance(0), "WithoutWriteBack must keep the cache")
	assert.True(t, g.HasLink(1, 2))

	// OnVisit aborts
	stop := errors.New("stop")
	_, err = bfs.Distances(g, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestDistances_MatchesReference compares against a per-node search on
// random boards with cycles.
func TestDistances_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := 4 + rng.Intn(12)
		var links [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.3 {
					links = append(links, [2]int{i, j})
				}
			}
		}
		gateways := []int{rng.Intn(n)}
		if rng.Intn(2) == 0 {
			gateways = append(gateways, rng.Intn(n))
		}
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddNode(i))
		}
		for _, l := range links {
			_, _ = g.AddLink(l[0], l[1])
		}
		for _, gw := range gateways {
			require.NoError(t, g.MarkGateway(gw))
		}
		require.NoError(t, g.Seal())

		_, err := bfs.Distances(g)
		require.NoError(t, err)
		for _, id := range g.NodeIDs() {
			assert.Equal(t, referenceDistance(g, id), g.Distance(id), "round %d node %d", round, id)
		}
	}
}

// referenceDistance walks outward from a single node, stopping at gateways.
func referenceDistance(g *core.Graph, from int) int {
	if g.IsGateway(from) {
		return 0
	}
	seen := map[int]bool{from: true}
	frontier := []int{from}
	for depth := 1; len(frontier) > 0; depth++ {
		var next []int
		for _, v := range frontier {
			nbrs, _ := g.NeighborIDs(v)
			for _, u := range nbrs {
				if seen[u] {
					continue
				}
				if g.IsGateway(u) {
					return depth
				}
				seen[u] = true
				next = append(next, u)
			}
		}
		frontier = next
	}

	return core.Unreachable
}
