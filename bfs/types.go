// Package bfs provides tunable options, error definitions and the result
// type for the multi-source gateway distance search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skynet/core"
)

// Sentinel errors for distance computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoGateways is returned when the graph has no gateway to seed from.
	ErrNoGateways = errors.New("bfs: graph has no gateways")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned when a path is requested from a node with
	// no route to any gateway.
	ErrUnreachable = errors.New("bfs: no gateway reachable")
)

// Option configures the search via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Distances is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// OnVisit is called when a node is dequeued, with its distance to the
	// nearest gateway. Returning an error aborts the search.
	OnVisit func(id, dist int) error

	// MaxDepth, if > 0, leaves nodes farther than this many hops at
	// core.Unreachable. A value of 0 disables the limit.
	MaxDepth int

	// FilterLink can hide links by returning false. Called for each
	// expansion from → to, where from is the node closer to a gateway.
	FilterLink func(from, to int) bool

	// WriteBack stores the computed distances into the graph's cache.
	WriteBack bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all links followed)
//   - no-op OnVisit
//   - distances written back into the graph.
func DefaultOptions() Options {
	return Options{
		OnVisit:    func(int, int) error { return nil },
		MaxDepth:   0,
		FilterLink: func(_, _ int) bool { return true },
		WriteBack:  true,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search radius around the gateways.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterLink skips links when fn returns false. Useful to evaluate a
// hypothetical cut without mutating the graph.
func WithFilterLink(fn func(from, to int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterLink = fn
		}
	}
}

// WithoutWriteBack computes distances without touching the graph's cache.
func WithoutWriteBack() Option {
	return func(o *Options) { o.WriteBack = false }
}

// Result holds the outcome of a distance search:
//   - Order: nodes in visit sequence (non-decreasing distance).
//   - Distance: node ID → hops to the nearest gateway; only reached nodes.
//   - Next: node ID → a neighbor one hop closer to a gateway (the node it
//     was discovered from). Gateways have no entry.
type Result struct {
	Order    []int
	Distance map[int]int
	Next     map[int]int
}

// DistanceOf returns the distance of id, or core.Unreachable.
func (r *Result) DistanceOf(id int) int {
	if d, ok := r.Distance[id]; ok {
		return d
	}

	return core.Unreachable
}

// Reachable reports whether some gateway can be reached from id.
func (r *Result) Reachable(id int) bool {
	_, ok := r.Distance[id]

	return ok
}

// PathToGateway follows Next from the given node to a gateway and returns
// the walk including both endpoints. A gateway yields a one-element path.
// Returns ErrUnreachable if from was not reached.
func (r *Result) PathToGateway(from int) ([]int, error) {
	d, ok := r.Distance[from]
	if !ok {
		return nil, fmt.Errorf("%w: from %d", ErrUnreachable, from)
	}
	path := make([]int, 0, d+1)
	for cur := from; ; {
		path = append(path, cur)
		nxt, ok := r.Next[cur]
		if !ok {
			break
		}
		cur = nxt
	}

	return path, nil
}
