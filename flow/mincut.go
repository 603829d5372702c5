package flow

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/skynet/core"
)

// MinCut computes the fewest links whose removal disconnects source from all
// gateways, using Edmonds–Karp on the undirected board: every link is a pair
// of unit-capacity arcs, and all gateways act as one merged sink.
//
// Gateways are sinks: the search never continues out of a gateway, matching
// how the agent moves. The graph is not modified.
//
// Errors: ErrGraphNil, ErrNoGateways, ErrSourceNotFound, ErrSourceIsGateway,
// or ctx.Err() when the context is canceled between augmentations.
//
// Complexity: O(F · (V + E)) with F ≤ deg(source) augmentations.
// Memory:     O(V + E) for the residual capacity map.
func MinCut(ctx context.Context, g *core.Graph, source int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(g.GatewayIDs()) == 0 {
		return nil, ErrNoGateways
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if g.IsGateway(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceIsGateway, source)
	}

	residual := buildCapMap(g)
	res := &Result{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := augmentingPath(g, residual, source)
		if path == nil {
			break
		}
		// arcs out of the source never exceed capacity 1, so every bottleneck is 1
		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			residual[u][v]--
			residual[v][u]++
		}
		res.Value++
		res.Augmentations++
	}

	res.SourceSide = reachable(g, residual, source)
	inside := make(map[int]bool, len(res.SourceSide))
	for _, id := range res.SourceSide {
		inside[id] = true
	}
	for _, l := range g.Links() {
		if inside[l.A] != inside[l.B] {
			res.Cut = append(res.Cut, l)
		}
	}
	sort.Slice(res.Cut, func(i, j int) bool {
		if res.Cut[i].A != res.Cut[j].A {
			return res.Cut[i].A < res.Cut[j].A
		}
		return res.Cut[i].B < res.Cut[j].B
	})

	return res, nil
}

// buildCapMap returns capMap[u][v] = 1 for both arcs of every link.
func buildCapMap(g *core.Graph) map[int]map[int]int {
	capMap := make(map[int]map[int]int, g.NodeCount())
	for _, id := range g.NodeIDs() {
		capMap[id] = make(map[int]int, g.Degree(id))
	}
	for _, l := range g.Links() {
		capMap[l.A][l.B] = 1
		capMap[l.B][l.A] = 1
	}

	return capMap
}

// augmentingPath finds the fewest-arc residual path from source to any
// gateway, scanning neighbors in ascending ID. Returns nil when none exists.
func augmentingPath(g *core.Graph, residual map[int]map[int]int, source int) []int {
	parent := map[int]int{source: source}
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range sortedArcs(residual[u]) {
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			if g.IsGateway(v) {
				path := []int{v}
				for cur := v; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			queue = append(queue, v)
		}
	}

	return nil
}

// reachable returns the nodes reachable from source over positive residual
// arcs without passing through a gateway, sorted ascending.
func reachable(g *core.Graph, residual map[int]map[int]int, source int) []int {
	seen := map[int]bool{source: true}
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range sortedArcs(residual[u]) {
			if seen[v] || g.IsGateway(v) {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// sortedArcs lists the heads of positive-capacity arcs in ascending order.
func sortedArcs(arcs map[int]int) []int {
	out := make([]int, 0, len(arcs))
	for v, c := range arcs {
		if c > 0 {
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out
}
