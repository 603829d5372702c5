// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits links {i, (i+1)%n} in stable order for i=0..n-1.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import "github.com/katalvlaran/skynet/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return wrapf(methodCycle, "n=%d < min=%d", ErrTooFewVertices, n, minCycleNodes)
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddLink(i, (i+1)%n); err != nil {
				return wrapf(methodCycle, "AddLink(%d,%d)", err, i, (i+1)%n)
			}
		}

		return nil
	}
}
