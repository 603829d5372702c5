// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - All n nodes are added in ascending order, isolated ones included.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).
//   - Deterministic outcomes for fixed seed due to fixed trial order.

package builder

import "github.com/katalvlaran/skynet/core"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a graph over n nodes with
// independent link probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return wrapf(methodRandomSparse, "n=%d < min=%d", ErrTooFewVertices, n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return wrapf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]", ErrInvalidProbability, p, probMin, probMax)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return wrapf(methodRandomSparse, "p=%.6f", ErrNeedRandSource, p)
		}

		for i := 0; i < n; i++ {
			if err := g.AddNode(i); err != nil {
				return wrapf(methodRandomSparse, "AddNode(%d)", err, i)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				if rng == nil {
					keep = p == probMax
				} else {
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				if _, err := g.AddLink(i, j); err != nil {
					return wrapf(methodRandomSparse, "AddLink(%d,%d)", err, i, j)
				}
			}
		}

		return nil
	}
}
