package flow

import (
	"errors"

	"github.com/katalvlaran/skynet/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the source node is missing.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSourceIsGateway is returned when the source is itself a gateway.
	ErrSourceIsGateway = errors.New("flow: source is a gateway")

	// ErrNoGateways is returned when the graph has no gateway to separate from.
	ErrNoGateways = errors.New("flow: graph has no gateways")
)

// Result describes a minimum set of links separating a source from every
// gateway.
//
//   - Value: number of link-disjoint source→gateway paths, equal to len(Cut).
//   - Cut: the separating links, sorted by (A, B).
//   - SourceSide: nodes still reachable from the source in the final residual
//     network, sorted ascending. Every Cut link has exactly one endpoint here.
//   - Augmentations: number of augmenting paths found.
type Result struct {
	Value         int
	Cut           []core.Link
	SourceSide    []int
	Augmentations int
}

// Separated reports whether the source is already cut off from every gateway.
func (r *Result) Separated() bool { return r.Value == 0 }
