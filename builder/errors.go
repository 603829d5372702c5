// SPDX-License-Identifier: MIT
// Package: skynet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context using `%w`.
//   - Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyGateways indicates that the gateway count leaves no node for
// the agent to start on.
var ErrTooManyGateways = errors.New("builder: too many gateways")

// ErrConstructFailed indicates that no valid puzzle could be derived from
// the topology (e.g. every non-gateway node is isolated), or a nil
// constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches method context to a sentinel or lower-level error.
func wrapf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
