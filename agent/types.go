// SPDX-License-Identifier: MIT
// Package agent: status, outcome and error definitions for the agent
// controller.
package agent

import "errors"

// Sentinel errors. Construction errors indicate a bug in whatever built the
// board; ErrTerminal is the only error normal play can produce.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("agent: graph is nil")

	// ErrNoGateways is returned when the board has no gateway.
	ErrNoGateways = errors.New("agent: no gateways defined")

	// ErrStartNotFound is returned when the start node does not exist.
	ErrStartNotFound = errors.New("agent: start node not found")

	// ErrStartOnGateway is returned when the agent would start on a gateway.
	ErrStartOnGateway = errors.New("agent: start node is a gateway")

	// ErrTerminal is returned by Advance once the puzzle is decided.
	ErrTerminal = errors.New("agent: puzzle already decided")
)

// Status is the state of the agent state machine.
type Status int

const (
	// Moving: the agent is on a non-gateway node and some gateway is reachable.
	Moving Status = iota
	// Won: the agent is on a non-gateway node and no gateway is reachable.
	// The controller has succeeded.
	Won
	// Lost: the agent occupies a gateway.
	Lost
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Moving:
		return "moving"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}

	return "unknown"
}

// Terminal reports whether no further movement can happen.
func (s Status) Terminal() bool { return s == Won || s == Lost }

// Outcome is the signal returned by one Advance.
type Outcome int

const (
	// Continuing: the agent moved and is still in transit.
	Continuing Outcome = iota
	// AgentTrapped: no gateway is reachable; the agent stays put.
	AgentTrapped
	// GatewayReached: the agent stands on a gateway.
	GatewayReached
)

// String returns a short description of the outcome.
func (o Outcome) String() string {
	switch o {
	case Continuing:
		return "continuing"
	case AgentTrapped:
		return "agent trapped"
	case GatewayReached:
		return "gateway reached"
	}

	return "unknown"
}

// Status maps the outcome onto the state machine.
func (o Outcome) Status() Status {
	switch o {
	case AgentTrapped:
		return Won
	case GatewayReached:
		return Lost
	}

	return Moving
}

// outcomeOf maps a status back onto the outcome reported for it.
func outcomeOf(s Status) Outcome {
	switch s {
	case Won:
		return AgentTrapped
	case Lost:
		return GatewayReached
	}

	return Continuing
}
