// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left partition is 0..n1-1, right partition is n1..n1+n2-1.
//   - Emits every cross pair L_i - R_j, i asc then j asc.
//
// Complexity:
//   - Time: O(n1·n2).

package builder

import "github.com/katalvlaran/skynet/core"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return wrapf(methodCompleteBipartite, "n1=%d, n2=%d (each must be ≥ %d)",
				ErrTooFewVertices, n1, n2, minPartitionSize)
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if _, err := g.AddLink(i, j); err != nil {
					return wrapf(methodCompleteBipartite, "AddLink(%d,%d)", err, i, j)
				}
			}
		}

		return nil
	}
}
