// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Center is node 0; emits links {0, i} for i=1..n-1.

package builder

import "github.com/katalvlaran/skynet/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
	starCenter   = 0
)

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return wrapf(methodStar, "n=%d < min=%d", ErrTooFewVertices, n, minStarNodes)
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddLink(starCenter, i); err != nil {
				return wrapf(methodStar, "AddLink(%d,%d)", err, starCenter, i)
			}
		}

		return nil
	}
}
