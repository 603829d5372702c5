// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   - Node IDs are row-major: r*cols + c.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//
// Determinism:
//   - Stable link order: for each (r,c) in row-major order emit Right then Bottom.

package builder

import "github.com/katalvlaran/skynet/core"

const (
	methodGrid   = "Grid"
	minGridDim   = 1
	minGridCells = 2
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < minGridCells {
			return wrapf(methodGrid, "rows=%d cols=%d", ErrTooFewVertices, rows, cols)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					if _, err := g.AddLink(id, id+1); err != nil {
						return wrapf(methodGrid, "AddLink(%d,%d)", err, id, id+1)
					}
				}
				if r+1 < rows {
					if _, err := g.AddLink(id, id+cols); err != nil {
						return wrapf(methodGrid, "AddLink(%d,%d)", err, id, id+cols)
					}
				}
			}
		}

		return nil
	}
}
