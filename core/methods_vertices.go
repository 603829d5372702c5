// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Node lifecycle & queries, gateway designation, agent marker and the
// distance cache.
//
// Determinism:
//   - NodeIDs() and GatewayIDs() return IDs sorted ascending.
//
// Lifecycle:
//   - Nodes are never destroyed; only their links mutate.
//   - Gateways are designated before Seal and frozen afterwards.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node if missing (idempotent).
//
// Behavior highlights:
//   - Adding an existing node is a no-op.
//   - New nodes start with Distance == Unreachable.
//
// Errors:
//   - ErrBadNodeID: if id < 0.
//   - ErrSealed: if the graph was sealed and id is new.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return ErrBadNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return nil
	}
	if g.sealed {
		return fmt.Errorf("AddNode(%d): %w", id, ErrSealed)
	}
	g.nodes[id] = &Node{ID: id, Distance: Unreachable}
	g.adjacency[id] = make(map[int]struct{})

	return nil
}

// HasNode reports whether the node ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]

	return ok
}

// Node returns a value copy of the node record.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
func (g *Graph) Node(id int) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}

	return *n, nil
}

// NodeIDs returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []int {
	out := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// MarkGateway designates an existing or new node as a gateway.
// Marking an existing gateway again is a no-op.
//
// Errors:
//   - ErrSealed: after Seal; the gateway set is fixed for the board's lifetime.
//   - ErrBadNodeID: if id < 0.
func (g *Graph) MarkGateway(id int) error {
	if g.sealed {
		return fmt.Errorf("MarkGateway(%d): %w", id, ErrSealed)
	}
	if err := g.AddNode(id); err != nil {
		return err
	}
	n := g.nodes[id]
	if n.Gateway {
		return nil
	}
	n.Gateway = true
	n.Distance = 0

	// keep gateways sorted for deterministic enumeration
	i := sort.SearchInts(g.gateways, id)
	g.gateways = append(g.gateways, 0)
	copy(g.gateways[i+1:], g.gateways[i:])
	g.gateways[i] = id

	return nil
}

// IsGateway reports whether id is a gateway. Unknown IDs report false.
func (g *Graph) IsGateway(id int) bool {
	n, ok := g.nodes[id]

	return ok && n.Gateway
}

// GatewayIDs returns a sorted snapshot of the gateway IDs.
func (g *Graph) GatewayIDs() []int {
	out := make([]int, len(g.gateways))
	copy(out, g.gateways)

	return out
}

// Seal freezes the gateway set and the node table. Links may still be removed.
// Sealing twice is a no-op.
//
// Errors:
//   - ErrNoGateways: if no gateway was marked.
func (g *Graph) Seal() error {
	if len(g.gateways) == 0 {
		return ErrNoGateways
	}
	g.sealed = true

	return nil
}

// Sealed reports whether Seal has completed.
func (g *Graph) Sealed() bool { return g.sealed }

// PlaceAgent moves the agent marker to id, clearing the previous holder.
// Exactly one node carries the marker afterwards.
//
// Errors:
//   - ErrNodeNotFound: if id does not exist; the marker is left untouched.
func (g *Graph) PlaceAgent(id int) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("PlaceAgent(%d): %w", id, ErrNodeNotFound)
	}
	if g.hasAgent {
		if prev, ok := g.nodes[g.agent]; ok {
			prev.Agent = false
		}
	}
	n.Agent = true
	g.agent = id
	g.hasAgent = true

	return nil
}

// AgentID returns the node currently holding the agent marker.
// The second result is false before the first PlaceAgent.
func (g *Graph) AgentID() (int, bool) { return g.agent, g.hasAgent }

// Distance returns the cached distance-to-gateway of id, or Unreachable for
// unknown IDs.
func (g *Graph) Distance(id int) int {
	n, ok := g.nodes[id]
	if !ok {
		return Unreachable
	}

	return n.Distance
}

// SetDistance overwrites the cached distance of id. Values below zero are
// stored as Unreachable. Unknown IDs are ignored.
func (g *Graph) SetDistance(id, d int) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	if d < 0 {
		d = Unreachable
	}
	n.Distance = d
}

// ResetDistances sets every cached distance to Unreachable.
// Complexity: O(V).
func (g *Graph) ResetDistances() {
	for _, n := range g.nodes {
		n.Distance = Unreachable
	}
}
