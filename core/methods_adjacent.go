// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, Degree, AdjacencyList, IncidentLinks).
// Determinism:
//   - NeighborIDs() returns IDs sorted ascending.
//   - AdjacencyList() returns per-node slices sorted ascending; returned
//     slices are independent (no shared backing).

package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the IDs linked to id, sorted ascending.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("neighbors of %d: %w", id, ErrNodeNotFound)
	}
	out := make([]int, 0, len(adj))
	for nbr := range adj {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of links incident to id (0 for unknown IDs).
func (g *Graph) Degree(id int) int { return len(g.adjacency[id]) }

// AdjacencyList returns a sorted copy of the whole adjacency.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[int][]int {
	out := make(map[int][]int, len(g.adjacency))
	for id := range g.adjacency {
		out[id], _ = g.NeighborIDs(id)
	}

	return out
}

// IncidentLinks returns the canonical links touching id, ordered by the
// opposite endpoint ascending.
func (g *Graph) IncidentLinks(id int) []Link {
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return nil
	}
	out := make([]Link, 0, len(nbrs))
	for _, nbr := range nbrs {
		out = append(out, NewLink(id, nbr))
	}

	return out
}
