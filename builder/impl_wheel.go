// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   - Wₙ = Cₙ₋₁ + hub, i.e. a ring over 0..n-2 plus hub node n-1.
//   - Therefore n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Builds the rim using Cycle(n-1) with the same cfg.
//   - Emits spokes hub - i in increasing rim index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skynet/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim of size n-1 must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel with hub n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return wrapf(methodWheel, "n=%d < min=%d", ErrTooFewVertices, n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		hub := n - 1
		for i := 0; i < hub; i++ {
			if _, err := g.AddLink(hub, i); err != nil {
				return wrapf(methodWheel, "AddLink(%d,%d)", err, hub, i)
			}
		}

		return nil
	}
}
