// Package flow measures how hard a board is to defend.
//
// MinCut runs Edmonds–Karp (BFS augmenting paths) from the agent's node to
// the merged set of gateways. Every undirected link contributes two arcs of
// capacity 1, so the flow value is the number of link-disjoint routes the
// agent has to a gateway, and by max-flow/min-cut also the fewest links that
// must be severed to trap it.
//
// The returned Result lists one minimum cut: the links leaving the set of
// nodes still reachable from the source in the final residual network.
//
//	res, err := flow.MinCut(ctx, g, agentID)
//	if err != nil { ... }
//	fmt.Println(res.Value, res.Cut)
//
// Gateways are treated as sinks exactly as in the distance engine: paths end
// at the first gateway they meet and never pass through one.
//
// Complexity: O(F · (V + E)), F ≤ degree of the source.
package flow
