// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// impl_puzzle.go - gateway and agent placement for BuildPuzzle.
//
// Contract:
//   - cfg.gateways < NodeCount (else ErrTooManyGateways).
//   - Without rng: gateways are the cfg.gateways highest node IDs; the agent
//     is the smallest eligible ID.
//   - With rng: gateways are the first cfg.gateways entries of rng.Perm over
//     the sorted node IDs; the agent is drawn uniformly from eligible IDs.
//   - Eligible agent node: non-gateway, has a path to a gateway of at least
//     cfg.minAgentDistance hops. None eligible → ErrConstructFailed.
//
// Determinism:
//   - Node IDs are enumerated sorted; rng draws happen in a fixed order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skynet/bfs"
	"github.com/katalvlaran/skynet/core"
)

const methodPlace = "place"

// place marks gateways, seals g and puts the agent marker on the start node.
func place(g *core.Graph, cfg builderConfig) error {
	ids := g.NodeIDs()
	if cfg.gateways >= len(ids) {
		return wrapf(methodPlace, "gateways=%d, nodes=%d", ErrTooManyGateways, cfg.gateways, len(ids))
	}

	var chosen []int
	if cfg.rng == nil {
		chosen = ids[len(ids)-cfg.gateways:]
	} else {
		perm := cfg.rng.Perm(len(ids))
		for _, i := range perm[:cfg.gateways] {
			chosen = append(chosen, ids[i])
		}
	}
	for _, gw := range chosen {
		if err := g.MarkGateway(gw); err != nil {
			return wrapf(methodPlace, "MarkGateway(%d)", err, gw)
		}
	}
	if err := g.Seal(); err != nil {
		return wrapf(methodPlace, "Seal", err)
	}

	res, err := bfs.Distances(g)
	if err != nil {
		return wrapf(methodPlace, "distances", err)
	}
	var eligible []int
	for _, id := range ids {
		if g.IsGateway(id) || !res.Reachable(id) {
			continue
		}
		if res.Distance[id] >= cfg.minAgentDistance {
			eligible = append(eligible, id)
		}
	}
	if len(eligible) == 0 {
		return wrapf(methodPlace, "no start at ≥%d hops", ErrConstructFailed, cfg.minAgentDistance)
	}

	start := eligible[0]
	if cfg.rng != nil {
		start = eligible[cfg.rng.Intn(len(eligible))]
	}
	if err := g.PlaceAgent(start); err != nil {
		return fmt.Errorf("%s: %w", methodPlace, err)
	}

	return nil
}
