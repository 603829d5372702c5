// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for skynet/core.
//
// Purpose:
//   - Provide small, deterministic board fixtures shared across core tests.
//   - Check the symmetric adjacency / canonical list agreement in one place.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skynet/core"
)

// Common node IDs used across core tests.
const (
	Node0 = 0
	Node1 = 1
	Node2 = 2
	Node3 = 3

	NodeMissing      = 99
	NodeMissingOther = 999
)

// NewDiamond RETURNS the four-node board 0-1, 0-2, 1-3, 2-3 with gateway 3
// and the agent on 0, sealed.
func NewDiamond(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, l := range [][2]int{{Node0, Node1}, {Node0, Node2}, {Node1, Node3}, {Node2, Node3}} {
		ok, err := g.AddLink(l[0], l[1])
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.NoError(t, g.MarkGateway(Node3))
	require.NoError(t, g.PlaceAgent(Node0))
	require.NoError(t, g.Seal())

	return g
}

// RequireSymmetric ASSERTS that every listed link is mirrored in both
// adjacency sets and that the adjacency carries nothing else.
func RequireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()

	for _, l := range g.Links() {
		require.True(t, g.HasLink(l.A, l.B), "listed link %s missing forward", l)
		require.True(t, g.HasLink(l.B, l.A), "listed link %s missing backward", l)
	}
	total := 0
	for _, id := range g.NodeIDs() {
		nbrs, err := g.NeighborIDs(id)
		require.NoError(t, err)
		for _, nbr := range nbrs {
			require.True(t, g.HasLink(nbr, id), "adjacency %d-%d is one-sided", id, nbr)
		}
		total += len(nbrs)
	}
	require.Equal(t, 2*g.LinkCount(), total, "adjacency and link list disagree")
	require.NoError(t, g.Validate())
}
