// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// impl_subnet.go - RandomSubnet(n): a complete random puzzle in which every
// non-gateway node is linked to at most one gateway.
//
// Canonical model:
//   - k gateways, k drawn from [1, n/2], chosen by rng.Perm over 0..n-1.
//   - With m = (n-k)/k, every gateway (in draw order) receives between 1 and
//     m distinct non-gateway neighbors, disjoint across gateways.
//   - Every non-gateway node u links to a random non-empty sample of the
//     non-gateway nodes after it (ascending order) while at least two remain.
//   - The agent starts on a random non-gateway node that has a link.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - WithGateways and WithMinAgentDistance are ignored.
//
// Determinism:
//   - For a fixed seed the draw order, and therefore the puzzle, is fixed.

package builder

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/skynet/loader"
)

const (
	methodRandomSubnet = "RandomSubnet"
	minSubnetNodes     = 4
)

// RandomSubnet generates a random puzzle over nodes 0..n-1.
func RandomSubnet(n int, bopts ...BuilderOption) (loader.Description, error) {
	cfg := newBuilderConfig(bopts...)
	if n < minSubnetNodes {
		return loader.Description{}, wrapf(methodRandomSubnet, "n=%d < min=%d", ErrTooFewVertices, n, minSubnetNodes)
	}
	rng := cfg.rng
	if rng == nil {
		return loader.Description{}, wrapf(methodRandomSubnet, "n=%d", ErrNeedRandSource, n)
	}

	k := 1 + rng.Intn(n/2)
	gateways := rng.Perm(n)[:k]
	isGateway := make(map[int]bool, k)
	for _, gw := range gateways {
		isGateway[gw] = true
	}
	plain := make([]int, 0, n-k)
	for id := 0; id < n; id++ {
		if !isGateway[id] {
			plain = append(plain, id)
		}
	}

	// gateway neighborhoods, disjoint
	m := len(plain) / k
	rest := append([]int(nil), plain...)
	gatewayLinks := make(map[int][]int, k)
	for _, gw := range gateways {
		picked := sample(rng, rest, 1+rng.Intn(m))
		gatewayLinks[gw] = picked
		rest = without(rest, picked)
	}

	// links among non-gateway nodes, each toward later IDs only
	nodeLinks := make(map[int][]int, len(plain))
	for i, id := range plain {
		later := plain[i+1:]
		if len(later) > 1 {
			nodeLinks[id] = sample(rng, later, 1+rng.Intn(len(later)))
		}
	}

	d := loader.Description{Gateways: append([]int(nil), gateways...)}
	linked := make(map[int]bool, n)
	for id := 0; id < n; id++ {
		for _, other := range nodeLinks[id] {
			d.Links = append(d.Links, [2]int{id, other})
			linked[id], linked[other] = true, true
		}
		for _, other := range gatewayLinks[id] {
			d.Links = append(d.Links, [2]int{id, other})
			linked[other] = true
		}
	}

	var starts []int
	for _, id := range plain {
		if linked[id] {
			starts = append(starts, id)
		}
	}
	if len(starts) == 0 {
		return loader.Description{}, wrapf(methodRandomSubnet, "no linked start node", ErrConstructFailed)
	}
	d.Agent = starts[rng.Intn(len(starts))]

	return d, nil
}

// sample draws k distinct elements of from, returned in ascending order.
func sample(rng *rand.Rand, from []int, k int) []int {
	out := make([]int, k)
	for i, j := range rng.Perm(len(from))[:k] {
		out[i] = from[j]
	}
	sort.Ints(out)

	return out
}

// without returns from minus drop, preserving order.
func without(from, drop []int) []int {
	skip := make(map[int]bool, len(drop))
	for _, id := range drop {
		skip[id] = true
	}
	out := from[:0:0]
	for _, id := range from {
		if !skip[id] {
			out = append(out, id)
		}
	}

	return out
}
