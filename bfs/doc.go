// Package bfs provides the distance engine of the pursuit puzzle: a
// multi-source breadth-first search that assigns every node of a core.Graph
// the minimum number of hops to the nearest gateway.
//
// What
//
//   - Seeds every gateway at distance 0 and explores outward in
//     non-decreasing distance order (FIFO queue, true level order).
//   - Gateways are sinks, not thoroughfares: they are never entered from a
//     neighbor, so a distance is never measured through one gateway to a
//     farther one.
//   - Resets every cached distance to core.Unreachable before a run and
//     writes the new values back (disable with WithoutWriteBack).
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Distance: node → hops to the nearest gateway (reached nodes only)
//   - Next: node → a neighbor one hop closer to a gateway
//
// Why
//
//   - The agent's policy needs a fresh, exact distance field after every
//     cut and every move; stale distances would let it walk in circles.
//   - Level-order processing is correct on graphs with cycles, where a
//     pruned depth-first walk can settle on a non-minimal count.
//
// Determinism
//
//	Gateways are seeded in ascending ID order and core.NeighborIDs is
//	sorted, so Order and Next are fully reproducible. Next[v] is the first
//	node of the previous layer that discovered v.
//
// Complexity (V = |Nodes|, E = |Links|)
//
//   - Time:   O(V + E log d)   (neighbor lists are sorted per expansion)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Distances(g)
//	if err != nil {
//	    // ErrGraphNil, ErrNoGateways, ErrOptionViolation, or hook errors
//	}
//	path, err := res.PathToGateway(agent)
//
//	// Evaluate a cut without mutating the board:
//	res, err = bfs.Distances(g,
//	    bfs.WithoutWriteBack(),
//	    bfs.WithFilterLink(func(from, to int) bool { return core.NewLink(from, to) != cut }),
//	)
//
// Options
//
//   - DefaultOptions():      no-op hook, no depth limit, no filtering, write-back on.
//   - WithOnVisit(fn):       hook on visit; returning error aborts the search.
//   - WithMaxDepth(d):       leave nodes beyond d hops Unreachable (d>0).
//   - WithFilterLink(fn):    skip links for which fn(from,to)==false.
//   - WithoutWriteBack():    keep the graph's distance cache untouched.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrNoGateways       if the graph has no gateway.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrUnreachable      from Result.PathToGateway for unreached nodes.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
