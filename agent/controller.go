// SPDX-License-Identifier: MIT
// Package agent owns the agent's position on a core.Graph and moves it one
// hop per Advance toward the nearest reachable gateway.
//
// State machine:
//
//	Moving ──Advance──▶ Moving   (moved, still in transit)
//	Moving ──Advance──▶ Lost     (moved onto a gateway)
//	Moving ──Advance──▶ Won      (no neighbor can reach a gateway; no move)
//
// Won and Lost are terminal. Status changes only on New and Advance.
//
// Tie-breaking: among neighbors with the smallest finite distance the
// smallest node ID wins.
package agent

import (
	"fmt"

	"github.com/katalvlaran/skynet/bfs"
	"github.com/katalvlaran/skynet/core"
)

// Controller drives the agent on a single board. Not safe for concurrent use.
type Controller struct {
	graph  *core.Graph
	status Status
	moves  int
	trail  []int
}

// New places the agent on start, computes the distance field and the
// initial status. An unsealed graph is sealed.
//
// Errors: ErrGraphNil, ErrNoGateways, ErrStartNotFound, ErrStartOnGateway,
// a wrapped core.ErrCorrupt for a structurally broken board, or a wrapped
// bfs error.
func New(g *core.Graph, start int) (*Controller, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(g.GatewayIDs()) == 0 {
		return nil, ErrNoGateways
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if g.IsGateway(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartOnGateway, start)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}
	if err := g.Seal(); err != nil {
		return nil, fmt.Errorf("agent: seal: %w", err)
	}
	if err := g.PlaceAgent(start); err != nil {
		return nil, fmt.Errorf("agent: place: %w", err)
	}

	c := &Controller{graph: g, trail: []int{start}}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	c.status = c.classify()

	return c, nil
}

// Refresh recomputes every node's distance after an external mutation of
// the board. It does not change the status.
func (c *Controller) Refresh() error {
	if _, err := bfs.Distances(c.graph); err != nil {
		return fmt.Errorf("agent: distances: %w", err)
	}

	return nil
}

// classify derives the status from the current position and distance cache.
func (c *Controller) classify() Status {
	pos := c.Position()
	switch {
	case c.graph.IsGateway(pos):
		return Lost
	case c.graph.Distance(pos) == core.Unreachable:
		return Won
	}

	return Moving
}

// Advance moves the agent one hop toward the nearest gateway.
//
// Distances are recomputed before choosing, so a cut made since the last
// move is always taken into account. Returns the outcome of this step;
// calling Advance once the status is terminal returns the terminal outcome
// together with ErrTerminal and leaves the board untouched.
func (c *Controller) Advance() (Outcome, error) {
	if c.status.Terminal() {
		return outcomeOf(c.status), ErrTerminal
	}
	if err := c.Refresh(); err != nil {
		return Continuing, err
	}

	next, ok := c.NextHop()
	if !ok {
		c.status = Won
		return AgentTrapped, nil
	}
	if err := c.graph.PlaceAgent(next); err != nil {
		return Continuing, fmt.Errorf("agent: move to %d: %w", next, err)
	}
	c.moves++
	c.trail = append(c.trail, next)

	if c.graph.IsGateway(next) {
		c.status = Lost
		return GatewayReached, nil
	}
	// the next cycle starts from a fresh field
	if err := c.Refresh(); err != nil {
		return Continuing, err
	}
	c.status = Moving

	return Continuing, nil
}

// NextHop returns the neighbor Advance would move to given the current
// distance cache: the strictly smallest finite distance, smallest ID on ties.
// The second result is false when no neighbor can reach a gateway.
func (c *Controller) NextHop() (int, bool) {
	nbrs, err := c.graph.NeighborIDs(c.Position())
	if err != nil {
		return 0, false
	}
	best, bestDist := 0, core.Unreachable
	for _, nbr := range nbrs {
		d := c.graph.Distance(nbr)
		if d == core.Unreachable {
			continue
		}
		if bestDist == core.Unreachable || d < bestDist {
			best, bestDist = nbr, d
		}
	}

	return best, bestDist != core.Unreachable
}

// Position returns the node the agent occupies.
func (c *Controller) Position() int {
	id, _ := c.graph.AgentID()

	return id
}

// Status returns the current state.
func (c *Controller) Status() Status { return c.status }

// Distance returns the cached distance from the agent to the nearest gateway.
func (c *Controller) Distance() int { return c.graph.Distance(c.Position()) }

// Moves returns how many hops the agent has made.
func (c *Controller) Moves() int { return c.moves }

// Trail returns a copy of every position held, starting node first.
func (c *Controller) Trail() []int {
	out := make([]int, len(c.trail))
	copy(out, c.trail)

	return out
}
