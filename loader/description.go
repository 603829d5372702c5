// SPDX-License-Identifier: MIT
// Package loader reads and writes puzzle descriptions: the initial links,
// the gateway IDs and the agent's starting node.
//
// Two encodings are supported:
//
//	ints: whitespace separated integers: L G, then L pairs, then G gateway
//	      IDs, then the agent node (".txt", ".in" or anything not YAML).
//	yaml: {links: [[a,b],...], gateways: [...], agent: n} (".yaml", ".yml").
package loader

import (
	"fmt"

	"github.com/katalvlaran/skynet/core"
)

// Description is the initial state of a puzzle.
type Description struct {
	Links    [][2]int `yaml:"links"`
	Gateways []int    `yaml:"gateways"`
	Agent    int      `yaml:"agent"`
}

// Validate checks what the board needs to be playable:
//   - no negative IDs (ErrNegative);
//   - at least one gateway (ErrNoGateways);
//   - the agent is not a gateway (ErrAgentOnGateway);
//   - the agent node exists on the board (ErrUnknownAgent).
//
// Self-links and duplicate links are accepted and dropped by Build.
func (d Description) Validate() error {
	known := make(map[int]bool, 2*len(d.Links))
	for i, l := range d.Links {
		if l[0] < 0 || l[1] < 0 {
			return fmt.Errorf("link #%d (%d,%d): %w", i, l[0], l[1], ErrNegative)
		}
		if l[0] != l[1] {
			known[l[0]], known[l[1]] = true, true
		}
	}
	if len(d.Gateways) == 0 {
		return ErrNoGateways
	}
	for _, gw := range d.Gateways {
		if gw < 0 {
			return fmt.Errorf("gateway %d: %w", gw, ErrNegative)
		}
		if gw == d.Agent {
			return fmt.Errorf("node %d: %w", gw, ErrAgentOnGateway)
		}
		known[gw] = true
	}
	if d.Agent < 0 {
		return fmt.Errorf("agent %d: %w", d.Agent, ErrNegative)
	}
	if !known[d.Agent] {
		return fmt.Errorf("node %d: %w", d.Agent, ErrUnknownAgent)
	}

	return nil
}

// Build validates d and creates the sealed board it describes. The agent
// marker is not placed; that belongs to the agent controller.
func (d Description) Build() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := core.NewGraph(core.WithCapacity(2 * len(d.Links)))
	for _, l := range d.Links {
		if _, err := g.AddLink(l[0], l[1]); err != nil {
			return nil, fmt.Errorf("loader: build: %w", err)
		}
	}
	for _, gw := range d.Gateways {
		if err := g.MarkGateway(gw); err != nil {
			return nil, fmt.Errorf("loader: build: %w", err)
		}
	}
	if err := g.Seal(); err != nil {
		return nil, fmt.Errorf("loader: build: %w", err)
	}

	return g, nil
}

// FromGraph describes the current state of g: its links in canonical order,
// its gateways and its agent position.
func FromGraph(g *core.Graph) Description {
	links := g.Links()
	d := Description{
		Links:    make([][2]int, len(links)),
		Gateways: g.GatewayIDs(),
	}
	for i, l := range links {
		d.Links[i] = [2]int{l.A, l.B}
	}
	d.Agent, _ = g.AgentID()

	return d
}
