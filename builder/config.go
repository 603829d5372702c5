// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   - rng       = nil   (pure/deterministic unless seeded)
//   - gateways  = 1
//   - minAgentDistance = 1 (agent never starts next to nothing)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors and placement.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Number of gateways BuildPuzzle designates.
	gateways int
	// Minimum hop count between the agent's start and the nearest gateway.
	minAgentDistance int
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultGateways         = 1
	defaultMinAgentDistance = 1
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:              nil,
		gateways:         defaultGateways,
		minAgentDistance: defaultMinAgentDistance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
