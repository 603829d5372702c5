// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Link lifecycle & queries: AddLink/RemoveLink/HasLink/Links/LinkCount.
// Determinism:
//   - Links() returns the canonical list in insertion order; a removal keeps
//     the relative order of the remaining links.
// Consistency:
//   - Adjacency sets and the canonical list are updated in the same call, so
//     no caller can observe one without the other.

package core

import "fmt"

// AddLink creates the undirected link {a, b}, auto-adding both nodes.
//
// Steps:
//  1. Validate IDs (ErrBadNodeID).
//  2. Reject self-links and duplicates as a no-op (false, nil).
//  3. Ensure endpoints via AddNode (ErrSealed for new nodes after Seal).
//  4. Insert both mirror entries and append the canonical link.
//
// Complexity: O(1) amortized.
func (g *Graph) AddLink(a, b int) (bool, error) {
	if a < 0 || b < 0 {
		return false, fmt.Errorf("AddLink(%d,%d): %w", a, b, ErrBadNodeID)
	}
	if g.sealed {
		return false, fmt.Errorf("AddLink(%d,%d): %w", a, b, ErrSealed)
	}
	if a == b || g.HasLink(a, b) {
		return false, nil
	}
	if err := g.AddNode(a); err != nil {
		return false, err
	}
	if err := g.AddNode(b); err != nil {
		return false, err
	}

	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.links = append(g.links, NewLink(a, b))

	return true, nil
}

// RemoveLink severs {a, b} if present and reports whether a link was removed.
// Unknown IDs or absent links are a no-op returning false, never an error.
//
// Complexity: O(1) for adjacency + O(E) to compact the canonical list.
func (g *Graph) RemoveLink(a, b int) bool {
	if !g.HasLink(a, b) {
		return false
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)

	want := NewLink(a, b)
	for i, l := range g.links {
		if l == want {
			g.links = append(g.links[:i], g.links[i+1:]...)
			break
		}
	}

	return true
}

// HasLink reports whether {a, b} is currently linked. Symmetric by contract.
// Complexity: O(1).
func (g *Graph) HasLink(a, b int) bool {
	_, ok := g.adjacency[a][b]

	return ok
}

// Links returns a snapshot of the canonical link list. The slice is freshly
// allocated; mutating it never affects the graph, and later graph mutations
// never show through it.
// Complexity: O(E).
func (g *Graph) Links() []Link {
	out := make([]Link, len(g.links))
	copy(out, g.links)

	return out
}

// LinkCount returns the number of links currently present.
func (g *Graph) LinkCount() int { return len(g.links) }
