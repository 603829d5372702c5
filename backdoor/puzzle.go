// SPDX-License-Identifier: MIT
// Package backdoor is the operation surface of the pursuit puzzle: it owns
// the board and the agent controller and runs the turn protocol.
//
// Two usage shapes are supported on the same Puzzle:
//
//	combined:  removed, err := p.SeverAndAdvance(a, b)   // cut, then the agent always moves
//	decoupled: ok := p.Sever(a, b); out, err := p.Advance()
//
// In the decoupled shape at most one link may be cut between two advances;
// a second Sever is rejected until the agent has moved.
//
// Gameplay outcomes (the agent reaching a gateway, or being cut off) are
// reported as agent.Outcome / agent.Status values. Errors are reserved for
// broken boards (ErrInvariant) and advancing a decided puzzle
// (agent.ErrTerminal).
package backdoor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/skynet/agent"
	"github.com/katalvlaran/skynet/core"
	"github.com/katalvlaran/skynet/loader"
)

// ErrInvariant marks a board that cannot be played: no gateways, no agent,
// agent on a gateway, nil graph. It indicates a bug in whatever built the
// board, never a gameplay outcome.
var ErrInvariant = errors.New("backdoor: structural invariant violated")

// TurnRecord summarizes one advance.
type TurnRecord struct {
	Turn    int
	Cut     core.Link // link severed during the turn, if Severed
	Severed bool
	From    int
	To      int
	Outcome agent.Outcome
}

// Puzzle is one puzzle instance. Not safe for concurrent use.
type Puzzle struct {
	graph *core.Graph
	ctl   *agent.Controller

	logger    *slog.Logger
	notifiers multiNotifier
	strict    bool

	turn    int
	cut     core.Link
	severed bool // a link was cut since the last advance
	history []TurnRecord
}

// New builds the board from d and places the agent.
func New(d loader.Description, opts ...Option) (*Puzzle, error) {
	g, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	return NewFromGraph(g, d.Agent, opts...)
}

// NewFromGraph takes ownership of g and places the agent on start. The
// caller must not mutate g afterwards.
func NewFromGraph(g *core.Graph, start int, opts ...Option) (*Puzzle, error) {
	ctl, err := agent.New(g, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	p := &Puzzle{
		graph:  g,
		ctl:    ctl,
		logger: discardLogger(),
		strict: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger.Debug("puzzle ready",
		slog.Int("nodes", g.NodeCount()),
		slog.Int("links", g.LinkCount()),
		slog.Any("gateways", g.GatewayIDs()),
		slog.Int("agent", start),
		slog.String("status", ctl.Status().String()),
	)

	return p, nil
}

// Links returns a snapshot of the current links in canonical order.
func (p *Puzzle) Links() []core.Link { return p.graph.Links() }

// Gateways returns a sorted snapshot of the gateway IDs.
func (p *Puzzle) Gateways() []int { return p.graph.GatewayIDs() }

// AgentPosition returns the node the agent occupies.
func (p *Puzzle) AgentPosition() int { return p.ctl.Position() }

// Status returns the state of the agent state machine.
func (p *Puzzle) Status() agent.Status { return p.ctl.Status() }

// IsMoving reports whether the puzzle is undecided.
func (p *Puzzle) IsMoving() bool { return p.ctl.Status() == agent.Moving }

// OnGateway reports whether the agent stands on a gateway.
func (p *Puzzle) OnGateway() bool { return p.graph.IsGateway(p.ctl.Position()) }

// Distance returns the agent's current hop count to the nearest gateway,
// or core.Unreachable.
func (p *Puzzle) Distance() int { return p.ctl.Distance() }

// NextHop returns the node the agent will move to on the next advance.
func (p *Puzzle) NextHop() (int, bool) { return p.ctl.NextHop() }

// Turn returns the number of completed advances.
func (p *Puzzle) Turn() int { return p.turn }

// CanSever reports whether Sever would currently be accepted for an
// existing link.
func (p *Puzzle) CanSever() bool {
	return !p.ctl.Status().Terminal() && !(p.strict && p.severed)
}

// History returns a copy of the turn records, oldest first.
func (p *Puzzle) History() []TurnRecord {
	out := make([]TurnRecord, len(p.history))
	copy(out, p.history)

	return out
}

// Snapshot returns a deep copy of the board for look-ahead. Mutating it has
// no effect on the puzzle.
func (p *Puzzle) Snapshot() *core.Graph { return p.graph.Clone() }

// Sever removes the link {a, b} and reports whether it was removed.
//
// It returns false, without touching the board, when the puzzle is decided,
// when a link was already cut since the last advance (strict turns), or when
// the link does not exist. Only a successful cut uses up the turn. Distances
// are recomputed after every request.
func (p *Puzzle) Sever(a, b int) bool {
	if p.ctl.Status().Terminal() {
		p.logger.Debug("sever rejected: puzzle decided", slog.Int("a", a), slog.Int("b", b))
		return false
	}
	if p.strict && p.severed {
		p.logger.Debug("sever rejected: already cut this turn",
			slog.Int("a", a), slog.Int("b", b), slog.String("cut", p.cut.String()))
		return false
	}

	return p.sever(a, b)
}

// sever performs the cut without the turn check.
func (p *Puzzle) sever(a, b int) bool {
	removed := p.graph.RemoveLink(a, b)
	if err := p.ctl.Refresh(); err != nil {
		// gateways are fixed at construction, so this is unreachable on a sealed board
		p.logger.Error("distance refresh failed", slog.Any("err", err))
	}
	if !removed {
		p.logger.Debug("sever missed", slog.Int("a", a), slog.Int("b", b))
		return false
	}
	p.cut, p.severed = core.NewLink(a, b), true
	p.notify(Event{Turn: p.turn, Kind: EventSevered, Agent: p.ctl.Position(), Link: p.cut})

	return true
}

// Advance moves the agent one hop and reports the outcome. After the
// puzzle is decided it returns the terminal outcome with agent.ErrTerminal.
func (p *Puzzle) Advance() (agent.Outcome, error) {
	from := p.ctl.Position()
	out, err := p.ctl.Advance()
	if err != nil {
		return out, err
	}

	rec := TurnRecord{
		Turn:    p.turn,
		Cut:     p.cut,
		Severed: p.severed,
		From:    from,
		To:      p.ctl.Position(),
		Outcome: out,
	}
	p.history = append(p.history, rec)
	p.turn++
	p.cut, p.severed = core.Link{}, false

	kind := EventMoved
	switch out {
	case agent.AgentTrapped:
		kind = EventWon
	case agent.GatewayReached:
		kind = EventLost
	}
	p.notify(Event{Turn: rec.Turn, Kind: kind, Agent: rec.To, Outcome: out})

	return out, nil
}

// SeverAndAdvance cuts {a, b} and then advances the agent, whether or not
// the cut succeeded. It returns whether the link existed and was removed.
// The one-cut-per-turn rule does not apply: this call is a whole turn.
// On a decided puzzle nothing changes and agent.ErrTerminal is returned.
func (p *Puzzle) SeverAndAdvance(a, b int) (bool, error) {
	if p.ctl.Status().Terminal() {
		return false, agent.ErrTerminal
	}
	// a decoupled cut made earlier this turn is superseded by this one
	p.cut, p.severed = core.Link{}, false
	removed := p.sever(a, b)
	if _, err := p.Advance(); err != nil {
		return removed, err
	}

	return removed, nil
}

func (p *Puzzle) notify(e Event) {
	p.notifiers.Notify(e)
}
