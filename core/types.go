// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Node, and Link types of the
// pursuit puzzle, and the primitives for building and mutating the board.
//
// This file declares Node, Link, Graph, GraphOption, sentinel errors,
// the Unreachable distance sentinel, and the NewGraph constructor.
//
// Errors:
//
//	ErrBadNodeID     - node ID is negative.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrSealed        - construction-only mutation attempted after Seal.
//	ErrNoGateways    - Seal called on a graph without gateways.
//	ErrCorrupt       - Validate found a broken structural invariant.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeID indicates that a negative node ID was supplied.
	ErrBadNodeID = errors.New("core: node ID is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSealed indicates a construction-only call after the gateway set was frozen.
	ErrSealed = errors.New("core: graph is sealed")

	// ErrNoGateways indicates the graph has no gateway node.
	ErrNoGateways = errors.New("core: no gateways defined")

	// ErrCorrupt indicates a broken structural invariant (asymmetric adjacency,
	// link list out of sync, several agent markers).
	ErrCorrupt = errors.New("core: graph invariant violated")
)

// Unreachable is the distance assigned to nodes with no path to any gateway.
const Unreachable = -1

// Node is a value snapshot of one board position.
//
// The live record is owned by the Graph; Node values handed out by the
// Graph are copies and never alias its internal state.
type Node struct {
	// ID is the caller-supplied, stable identifier.
	ID int

	// Gateway marks a sink node. Fixed once the graph is sealed.
	Gateway bool

	// Agent is true iff the agent currently occupies this node.
	Agent bool

	// Distance is the cached hop count to the nearest gateway,
	// or Unreachable.
	Distance int
}

// Reachable reports whether some gateway can be reached from n.
func (n Node) Reachable() bool { return n.Distance >= 0 }

// Link is an unordered pair of node IDs. The canonical form keeps A < B.
type Link struct {
	A, B int
}

// NewLink returns the canonical Link for the pair {a, b}.
func NewLink(a, b int) Link {
	return Link{A: a, B: b}.Normalize()
}

// Normalize returns l with its endpoints ordered ascending.
func (l Link) Normalize() Link {
	if l.A > l.B {
		return Link{A: l.B, B: l.A}
	}

	return l
}

// Has reports whether id is one of the endpoints.
func (l Link) Has(id int) bool { return l.A == id || l.B == id }

// Other returns the endpoint opposite to id. The second result is false
// when id is not an endpoint of l.
func (l Link) Other(id int) (int, bool) {
	switch id {
	case l.A:
		return l.B, true
	case l.B:
		return l.A, true
	}

	return 0, false
}

// String renders the link as "a-b".
func (l Link) String() string { return fmt.Sprintf("%d-%d", l.A, l.B) }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node and adjacency tables for n nodes.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the mutable puzzle board: a flat node table indexed by ID with
// adjacency stored as ID sets, plus the canonical link list.
//
// A Graph is exclusively owned by one puzzle instance and is not safe for
// concurrent use.
type Graph struct {
	capacity int

	// Storage
	nodes map[int]*Node // node ID → live record

	// adjacency[a][b] = struct{}{} iff a and b are linked; always symmetric.
	adjacency map[int]map[int]struct{}

	// links is the canonical link list in insertion order.
	links []Link

	gateways []int // sorted ascending, fixed after Seal
	sealed   bool

	agent    int
	hasAgent bool
}

// NewGraph creates an empty, unsealed Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make(map[int]*Node, g.capacity)
	g.adjacency = make(map[int]map[int]struct{}, g.capacity)

	return g
}
