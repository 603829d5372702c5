// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and structural validation of graph instances.
// Determinism:
//   - Clone preserves the canonical link order, gateway set, agent marker,
//     distance cache and the sealed flag.

package core

import "fmt"

// Clone returns a deep copy of the Graph. Mutating the clone never affects
// the source; look-ahead code severs links on clones.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := NewGraph(WithCapacity(len(g.nodes)))
	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
		adj := make(map[int]struct{}, len(g.adjacency[id]))
		for nbr := range g.adjacency[id] {
			adj[nbr] = struct{}{}
		}
		clone.adjacency[id] = adj
	}
	clone.links = g.Links()
	clone.gateways = g.GatewayIDs()
	clone.sealed = g.sealed
	clone.agent, clone.hasAgent = g.agent, g.hasAgent

	return clone
}

// Validate checks the structural invariants of the board:
//   - no node neighbors itself;
//   - adjacency is symmetric;
//   - the canonical list and adjacency describe the same link set;
//   - at most one node carries the agent marker, and it is the recorded one.
//
// Every failure wraps ErrCorrupt.
// Complexity: O(V + E)
func (g *Graph) Validate() error {
	adjCount := 0
	for a, adj := range g.adjacency {
		if _, self := adj[a]; self {
			return fmt.Errorf("node %d links to itself: %w", a, ErrCorrupt)
		}
		for b := range adj {
			if _, ok := g.adjacency[b][a]; !ok {
				return fmt.Errorf("link %d-%d is one-sided: %w", a, b, ErrCorrupt)
			}
			adjCount++
		}
	}
	if adjCount != 2*len(g.links) {
		return fmt.Errorf("adjacency holds %d links, list holds %d: %w",
			adjCount/2, len(g.links), ErrCorrupt)
	}
	for _, l := range g.links {
		if !g.HasLink(l.A, l.B) {
			return fmt.Errorf("listed link %s missing from adjacency: %w", l, ErrCorrupt)
		}
	}

	markers := 0
	for id, n := range g.nodes {
		if !n.Agent {
			continue
		}
		markers++
		if !g.hasAgent || id != g.agent {
			return fmt.Errorf("stray agent marker on %d: %w", id, ErrCorrupt)
		}
	}
	if markers > 1 || (g.hasAgent && markers == 0) {
		return fmt.Errorf("%d agent markers: %w", markers, ErrCorrupt)
	}

	return nil
}
