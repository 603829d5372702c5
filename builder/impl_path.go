// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits links {i, i+1} for i=0..n-2.

package builder

import "github.com/katalvlaran/skynet/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the chain P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return wrapf(methodPath, "n=%d < min=%d", ErrTooFewVertices, n, minPathNodes)
		}
		for i := 0; i+1 < n; i++ {
			if _, err := g.AddLink(i, i+1); err != nil {
				return wrapf(methodPath, "AddLink(%d,%d)", err, i, i+1)
			}
		}

		return nil
	}
}
