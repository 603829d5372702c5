// Package strategy contains controllers that choose which link to sever
// each turn, and a driver that plays them against the agent.
package strategy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skynet/agent"
	"github.com/katalvlaran/skynet/backdoor"
	"github.com/katalvlaran/skynet/core"
)

var (
	// ErrTurnLimit indicates that Play stopped before the puzzle was decided.
	ErrTurnLimit = errors.New("strategy: turn limit reached")

	// ErrPuzzleNil indicates a nil puzzle or strategy argument.
	ErrPuzzleNil = errors.New("strategy: puzzle or strategy is nil")
)

// Strategy chooses the link to sever before the agent's next move.
// ok == false means "cut nothing this turn".
type Strategy interface {
	Pick(p *backdoor.Puzzle) (link core.Link, ok bool)
}

// Func adapts an ordinary function to Strategy.
type Func func(p *backdoor.Puzzle) (core.Link, bool)

// Pick calls f(p).
func (f Func) Pick(p *backdoor.Puzzle) (core.Link, bool) { return f(p) }

// Greedy cuts the most urgent link each turn:
//  1. a link between the agent and an adjacent gateway (smallest gateway ID);
//  2. otherwise the link between the agent and its next hop;
//  3. otherwise the first link touching a gateway, in gateway ID order.
//
// It never picks anything on a decided puzzle.
type Greedy struct{}

// Pick implements Strategy.
func (Greedy) Pick(p *backdoor.Puzzle) (core.Link, bool) {
	if p == nil || !p.IsMoving() {
		return core.Link{}, false
	}
	g := p.Snapshot()
	at := p.AgentPosition()

	nbrs, _ := g.NeighborIDs(at)
	for _, nbr := range nbrs {
		if g.IsGateway(nbr) {
			return core.NewLink(at, nbr), true
		}
	}
	if hop, ok := p.NextHop(); ok {
		return core.NewLink(at, hop), true
	}
	for _, gw := range g.GatewayIDs() {
		if links := g.IncidentLinks(gw); len(links) > 0 {
			return links[0], true
		}
	}

	return core.Link{}, false
}

// Play runs combined turns of s against p until the puzzle is decided and
// returns the final status. maxTurns ≤ 0 means no limit; otherwise ErrTurnLimit
// is returned with the current status once maxTurns advances were made.
func Play(p *backdoor.Puzzle, s Strategy, maxTurns int) (agent.Status, error) {
	if p == nil || s == nil {
		return agent.Moving, ErrPuzzleNil
	}
	for turns := 0; p.IsMoving(); turns++ {
		if maxTurns > 0 && turns >= maxTurns {
			return p.Status(), fmt.Errorf("after %d turns: %w", turns, ErrTurnLimit)
		}
		var err error
		if link, ok := s.Pick(p); ok {
			_, err = p.SeverAndAdvance(link.A, link.B)
		} else {
			_, err = p.Advance()
		}
		if err != nil {
			return p.Status(), fmt.Errorf("turn %d: %w", turns, err)
		}
	}

	return p.Status(), nil
}
