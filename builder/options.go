// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGateways sets how many gateways BuildPuzzle designates. Panics on k < 1.
func WithGateways(k int) BuilderOption {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithGateways(%d)", k))
	}
	return func(c *builderConfig) {
		c.gateways = k
	}
}

// WithMinAgentDistance requires the agent to start at least d hops from
// every gateway. Panics on d < 1.
func WithMinAgentDistance(d int) BuilderOption {
	if d < 1 {
		panic(fmt.Sprintf("builder: WithMinAgentDistance(%d)", d))
	}
	return func(c *builderConfig) {
		c.minAgentDistance = d
	}
}
