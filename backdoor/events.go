// SPDX-License-Identifier: MIT
package backdoor

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/skynet/agent"
	"github.com/katalvlaran/skynet/core"
)

// EventKind classifies a notification.
type EventKind int

const (
	// EventSevered: a link was removed.
	EventSevered EventKind = iota
	// EventMoved: the agent advanced and is still in transit.
	EventMoved
	// EventWon: the agent can no longer reach any gateway.
	EventWon
	// EventLost: the agent reached a gateway.
	EventLost
)

// String returns the lower-case event name.
func (k EventKind) String() string {
	switch k {
	case EventSevered:
		return "severed"
	case EventMoved:
		return "moved"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	}

	return "unknown"
}

// Event is one notification of the turn protocol. Rendering it as text is
// left to the Notifier.
type Event struct {
	Turn    int
	Kind    EventKind
	Agent   int       // agent position after the event
	Link    core.Link // set for EventSevered
	Outcome agent.Outcome
}

// Notifier receives events as they happen, synchronously.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) { f(e) }

// LogNotifier writes every event to a slog.Logger. Terminal outcomes are
// logged at Info, everything else at Debug.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify logs e.
func (n LogNotifier) Notify(e Event) {
	if n.Logger == nil {
		return
	}
	level := slog.LevelDebug
	if e.Kind == EventWon || e.Kind == EventLost {
		level = slog.LevelInfo
	}
	attrs := []slog.Attr{
		slog.Int("turn", e.Turn),
		slog.Int("agent", e.Agent),
	}
	if e.Kind == EventSevered {
		attrs = append(attrs, slog.String("link", e.Link.String()))
	} else {
		attrs = append(attrs, slog.String("outcome", e.Outcome.String()))
	}
	n.Logger.LogAttrs(context.Background(), level, e.Kind.String(), attrs...)
}

// multiNotifier fans an event out in registration order.
type multiNotifier []Notifier

func (m multiNotifier) Notify(e Event) {
	for _, n := range m {
		n.Notify(e)
	}
}
