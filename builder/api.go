// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Two orchestrators: BuildGraph(bopts, cons...) creates the topology;
//     BuildPuzzle(bopts, cons...) additionally designates gateways and the
//     agent's start and returns a loader.Description.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical puzzles.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skynet/core"
	"github.com/katalvlaran/skynet/loader"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit nodes and links in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new, unsealed core.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order. Any
// constructor error is wrapped with "BuildGraph: %w" and returned at once.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	return buildGraph(cfg, cons...)
}

func buildGraph(cfg builderConfig, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildPuzzle builds the topology and then places cfg.gateways gateways and
// the agent (see place). The returned Description always passes Validate.
func BuildPuzzle(bopts []BuilderOption, cons ...Constructor) (loader.Description, error) {
	cfg := newBuilderConfig(bopts...)
	g, err := buildGraph(cfg, cons...)
	if err != nil {
		return loader.Description{}, err
	}
	if err := place(g, cfg); err != nil {
		return loader.Description{}, fmt.Errorf("BuildPuzzle: %w", err)
	}

	return loader.FromGraph(g), nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)               ring 0-1-…-(n-1)-0 (n ≥ 3)
// Path(n)                chain 0-1-…-(n-1) (n ≥ 2)
// Star(n)                center 0 with leaves 1..n-1 (n ≥ 2)
// Complete(n)            K_n over 0..n-1 (n ≥ 2)
// Grid(rows, cols)       4-neighborhood, ID r*cols+c (rows, cols ≥ 1, rows*cols ≥ 2)
// RandomSparse(n, p)     Erdős–Rényi-like sample over 0..n-1 (needs rng for 0<p<1)
// Wheel(n)               rim 0..n-2 plus hub n-1 (n ≥ 4)
// CompleteBipartite(a,b) K_{a,b} with left 0..a-1 (a, b ≥ 1)
//
// RandomSubnet(n, opts...) is a standalone generator returning a whole
// Description; see impl_subnet.go.
