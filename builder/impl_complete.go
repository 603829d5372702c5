// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits links {i, j} for i asc, j>i asc.
//
// Complexity:
//   - Time: O(n²).

package builder

import "github.com/katalvlaran/skynet/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return wrapf(methodComplete, "n=%d < min=%d", ErrTooFewVertices, n, minCompleteNodes)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddLink(i, j); err != nil {
					return wrapf(methodComplete, "AddLink(%d,%d)", err, i, j)
				}
			}
		}

		return nil
	}
}
