// SPDX-License-Identifier: MIT
package backdoor_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/skynet/agent"
	"github.com/katalvlaran/skynet/backdoor"
	"github.com/katalvlaran/skynet/core"
	"github.com/katalvlaran/skynet/loader"
)

func diamond() loader.Description {
	return loader.Description{
		Links:    [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}},
		Gateways: []int{3},
		Agent:    0,
	}
}

// PuzzleSuite exercises the facade in both usage shapes.
type PuzzleSuite struct {
	suite.Suite
	events []backdoor.Event
	p      *backdoor.Puzzle
}

func TestPuzzleSuite(t *testing.T) {
	suite.Run(t, new(PuzzleSuite))
}

func (s *PuzzleSuite) SetupTest() {
	s.events = nil
	p, err := backdoor.New(diamond(), backdoor.WithNotifier(backdoor.NotifierFunc(func(e backdoor.Event) {
		s.events = append(s.events, e)
	})))
	s.Require().NoError(err)
	s.p = p
}

func (s *PuzzleSuite) kinds() []backdoor.EventKind {
	out := make([]backdoor.EventKind, len(s.events))
	for i, e := range s.events {
		out[i] = e.Kind
	}
	return out
}

// TestQueries covers the read-only surface.
func (s *PuzzleSuite) TestQueries() {
	s.Equal([]core.Link{{A: 0, B: 1}, {A: 0, B: 2}, {A: 1, B: 3}, {A: 2, B: 3}}, s.p.Links())
	s.Equal(s.p.Links(), s.p.Links(), "Links() must be idempotent")
	s.Equal([]int{3}, s.p.Gateways())
	s.Equal(0, s.p.AgentPosition())
	s.Equal(2, s.p.Distance())
	s.True(s.p.IsMoving())
	s.False(s.p.OnGateway())
	s.Equal(agent.Moving, s.p.Status())
	s.True(s.p.CanSever())
	s.Zero(s.p.Turn())

	hop, ok := s.p.NextHop()
	s.True(ok)
	s.Equal(1, hop)

	snap := s.p.Snapshot()
	s.Require().True(snap.RemoveLink(0, 1))
	s.Len(s.p.Links(), 4, "snapshot mutation leaked into the puzzle")
}

// TestTurnDiscipline: a second Sever before an Advance always fails.
func (s *PuzzleSuite) TestTurnDiscipline() {
	s.True(s.p.Sever(1, 3))
	s.False(s.p.CanSever())
	s.False(s.p.Sever(2, 3), "second cut in the same turn")
	s.True(s.p.Snapshot().HasLink(2, 3))

	out, err := s.p.Advance()
	s.Require().NoError(err)
	s.Equal(agent.Continuing, out)
	s.Equal(2, s.p.AgentPosition(), "cut of 1-3 sends the agent through 2")

	s.True(s.p.CanSever())
	s.True(s.p.Sever(2, 3))
	out, err = s.p.Advance()
	s.Require().NoError(err)
	s.Equal(agent.AgentTrapped, out)
	s.Equal(agent.Won, s.p.Status())
	s.False(s.p.IsMoving())
	s.Equal(core.Unreachable, s.p.Distance())

	s.Equal([]backdoor.EventKind{
		backdoor.EventSevered, backdoor.EventMoved, backdoor.EventSevered, backdoor.EventWon,
	}, s.kinds())
}

// TestMissedSeverKeepsTurn: cutting an absent link does not use the turn.
func (s *PuzzleSuite) TestMissedSeverKeepsTurn() {
	s.False(s.p.Sever(0, 3))
	s.False(s.p.Sever(99, 999))
	s.True(s.p.CanSever())
	s.True(s.p.Sever(3, 1))
	s.Empty(s.p.History())
}

// TestCombinedShape plays the diamond to a win with SeverAndAdvance.
func (s *PuzzleSuite) TestCombinedShape() {
	removed, err := s.p.SeverAndAdvance(1, 3)
	s.Require().NoError(err)
	s.True(removed)
	s.Equal(2, s.p.AgentPosition())

	removed, err = s.p.SeverAndAdvance(2, 3)
	s.Require().NoError(err)
	s.True(removed)
	s.Equal(agent.Won, s.p.Status())
	s.Equal(2, s.p.AgentPosition())

	removed, err = s.p.SeverAndAdvance(0, 1)
	s.ErrorIs(err, agent.ErrTerminal)
	s.False(removed)
	s.True(s.p.Snapshot().HasLink(0, 1), "decided puzzle must not change")

	s.Equal([]backdoor.TurnRecord{
		{Turn: 0, Cut: core.Link{A: 1, B: 3}, Severed: true, From: 0, To: 2, Outcome: agent.Continuing},
		{Turn: 1, Cut: core.Link{A: 2, B: 3}, Severed: true, From: 2, To: 2, Outcome: agent.AgentTrapped},
	}, s.p.History())
	s.Equal(2, s.p.Turn())
}

// TestScenarioBogusLink: a missing link fails but the agent still advances.
func (s *PuzzleSuite) TestScenarioBogusLink() {
	removed, err := s.p.SeverAndAdvance(99, 999)
	s.Require().NoError(err)
	s.False(removed)
	s.Equal(1, s.p.AgentPosition())
	s.Len(s.p.Links(), 4)
	s.Equal([]backdoor.EventKind{backdoor.EventMoved}, s.kinds())
}

// TestScenarioLoss advances without cutting until the agent wins its race.
func (s *PuzzleSuite) TestScenarioLoss() {
	out, err := s.p.Advance()
	s.Require().NoError(err)
	s.Equal(agent.Continuing, out)

	out, err = s.p.Advance()
	s.Require().NoError(err)
	s.Equal(agent.GatewayReached, out)
	s.True(s.p.OnGateway())
	s.Equal(agent.Lost, s.p.Status())
	s.False(s.p.CanSever())
	s.False(s.p.Sever(0, 1))

	out, err = s.p.Advance()
	s.ErrorIs(err, agent.ErrTerminal)
	s.Equal(agent.GatewayReached, out)
	s.Equal(2, s.p.Turn())
	s.Equal(backdoor.EventLost, s.events[len(s.events)-1].Kind)
}

// TestRelaxedTurns allows several cuts per advance when strict turns are off.
func TestRelaxedTurns(t *testing.T) {
	p, err := backdoor.New(diamond(), backdoor.WithStrictTurns(false))
	require.NoError(t, err)

	assert.True(t, p.Sever(1, 3))
	assert.True(t, p.Sever(2, 3))
	out, err := p.Advance()
	require.NoError(t, err)
	assert.Equal(t, agent.AgentTrapped, out)
}

// TestNew_Invariants: broken boards are rejected distinctly from outcomes.
func TestNew_Invariants(t *testing.T) {
	d := diamond()
	d.Gateways = nil
	_, err := backdoor.New(d)
	assert.ErrorIs(t, err, backdoor.ErrInvariant)
	assert.ErrorIs(t, err, loader.ErrNoGateways)

	d = diamond()
	d.Agent = 3
	_, err = backdoor.New(d)
	assert.ErrorIs(t, err, backdoor.ErrInvariant)

	_, err = backdoor.NewFromGraph(nil, 0)
	assert.ErrorIs(t, err, backdoor.ErrInvariant)
	assert.ErrorIs(t, err, agent.ErrGraphNil)

	g := core.NewGraph()
	_, _ = g.AddLink(0, 1)
	_, err = backdoor.NewFromGraph(g, 0)
	assert.ErrorIs(t, err, agent.ErrNoGateways)
}

// TestLogNotifier writes structured records through slog.
func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p, err := backdoor.New(diamond(),
		backdoor.WithLogger(logger),
		backdoor.WithNotifier(backdoor.LogNotifier{Logger: logger}),
	)
	require.NoError(t, err)
	_, err = p.SeverAndAdvance(1, 3)
	require.NoError(t, err)

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		msgs = append(msgs, rec["msg"].(string))
		if rec["msg"] == "severed" {
			assert.Equal(t, "1-3", rec["link"])
		}
		if rec["msg"] == "moved" {
			assert.Equal(t, "continuing", rec["outcome"])
			assert.EqualValues(t, 2, rec["agent"])
		}
	}
	assert.Equal(t, []string{"puzzle ready", "severed", "moved"}, msgs)

	// a nil logger is a silent sink
	backdoor.LogNotifier{}.Notify(backdoor.Event{Kind: backdoor.EventWon})
}

// TestEventKindString locks in event names.
func TestEventKindString(t *testing.T) {
	assert.Equal(t, "severed", backdoor.EventSevered.String())
	assert.Equal(t, "moved", backdoor.EventMoved.String())
	assert.Equal(t, "won", backdoor.EventWon.String())
	assert.Equal(t, "lost", backdoor.EventLost.String())
	assert.Equal(t, "unknown", backdoor.EventKind(7).String())
}
