// Package core provides the mutable board of the gateway pursuit puzzle:
// an undirected, unweighted graph with integer node IDs, a fixed set of
// gateway nodes, a single agent marker and a per-node distance cache.
//
// The Graph G = (V,E) is stored as a flat node table indexed by ID with
// adjacency kept as ID sets:
//
//	nodes[id]        = *Node
//	adjacency[a][b]  = struct{}{}   (mirrored as adjacency[b][a])
//	links            = []Link       (canonical list, insertion order)
//
// No node holds a reference to another; neighbors are always resolved
// through the table, so the mutual neighbor relation never forms pointer
// cycles.
//
// Guarantees:
//
//   - Deterministic iteration: NodeIDs(), GatewayIDs(), NeighborIDs() are sorted.
//   - Consistent reporting: Links() and the adjacency are updated together.
//   - Snapshot safety: Links(), Node() and GatewayIDs() return copies.
//   - Clone support: deep copies for look-ahead without touching the live board.
//
// Core Methods:
//
//	// Node lifecycle (nodes are never destroyed)
//	AddNode(id int) error                 // O(1)
//	HasNode(id int) bool                  // O(1)
//	MarkGateway(id int) error             // construction only
//	Seal() error                          // freezes gateways, needs ≥1
//
//	// Link lifecycle
//	AddLink(a, b int) (bool, error)       // false on self-link or duplicate
//	RemoveLink(a, b int) bool             // false on unknown IDs or absent link
//	HasLink(a, b int) bool                // O(1), symmetric
//
//	// Query
//	NeighborIDs(id int) ([]int, error)    // sorted
//	Links() []Link                        // canonical order snapshot
//	GatewayIDs() []int                    // sorted snapshot
//
//	// Agent & distance cache
//	PlaceAgent(id int) error
//	AgentID() (int, bool)
//	Distance(id int) int / SetDistance / ResetDistances
//
// Errors:
//
//	ErrBadNodeID    – negative node ID
//	ErrNodeNotFound – missing node
//	ErrSealed       – construction-only call after Seal
//	ErrNoGateways   – Seal without gateways
//	ErrCorrupt      – Validate found a broken invariant
//
// A Graph is owned by one puzzle instance and is not safe for concurrent use.
package core
