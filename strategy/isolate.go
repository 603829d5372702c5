package strategy

import (
	"context"

	"github.com/katalvlaran/skynet/backdoor"
	"github.com/katalvlaran/skynet/bfs"
	"github.com/katalvlaran/skynet/core"
	"github.com/katalvlaran/skynet/flow"
)

// Isolate works toward a minimum cut between the agent and the gateways.
// A link to an adjacent gateway is still cut first; otherwise it picks,
// among the links of a minimum cut, the one whose nearer endpoint is
// closest to a gateway. Ties go to the link whose removal leaves the agent
// farthest from a gateway, then to link order.
type Isolate struct{}

// Pick implements Strategy.
func (Isolate) Pick(p *backdoor.Puzzle) (core.Link, bool) {
	if p == nil || !p.IsMoving() {
		return core.Link{}, false
	}
	g := p.Snapshot()
	at := p.AgentPosition()

	nbrs, _ := g.NeighborIDs(at)
	for _, nbr := range nbrs {
		if g.IsGateway(nbr) {
			return core.NewLink(at, nbr), true
		}
	}

	res, err := flow.MinCut(context.Background(), g, at)
	if err != nil || len(res.Cut) == 0 {
		return Greedy{}.Pick(p)
	}
	best, bestDist, bestSlack := res.Cut[0], urgency(g, res.Cut[0]), -1
	for _, l := range res.Cut[1:] {
		d := urgency(g, l)
		if d > bestDist {
			continue
		}
		if d < bestDist {
			best, bestDist, bestSlack = l, d, -1
			continue
		}
		if bestSlack < 0 {
			bestSlack = slack(g, at, best)
		}
		if s := slack(g, at, l); s > bestSlack {
			best, bestSlack = l, s
		}
	}

	return best, true
}

// urgency is the smaller finite distance of the link's endpoints.
func urgency(g *core.Graph, l core.Link) int {
	da, db := g.Distance(l.A), g.Distance(l.B)
	switch {
	case da == core.Unreachable:
		return db
	case db == core.Unreachable:
		return da
	case da < db:
		return da
	}

	return db
}

// slack is the agent's distance to a gateway once l is gone, measured on a
// side walk that leaves the cached distances alone. A cut that strands the
// agent counts as farther than any finite distance.
func slack(g *core.Graph, at int, l core.Link) int {
	res, err := bfs.Distances(g,
		bfs.WithoutWriteBack(),
		bfs.WithFilterLink(func(from, to int) bool { return core.NewLink(from, to) != l }),
	)
	if err != nil {
		return 0
	}
	if d := res.DistanceOf(at); d != core.Unreachable {
		return d
	}

	return g.NodeCount()
}
