// SPDX-License-Identifier: MIT
package core

// Test bridge: lets core_test build boards that break the structural
// invariants, which the public API never allows.

// AddOneSidedLinkTestOnly records b in a's neighbor set without the mirror
// entry or the canonical link. Both nodes must exist.
func (g *Graph) AddOneSidedLinkTestOnly(a, b int) {
	g.adjacency[a][b] = struct{}{}
}

// MarkAgentTestOnly sets the agent flag on id without moving the recorded
// agent.
func (g *Graph) MarkAgentTestOnly(id int) {
	g.nodes[id].Agent = true
}
