// SPDX-License-Identifier: MIT
// Package core_test verifies the value types Link and Node.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/skynet/core"
)

// TestLink_Canonical locks in the A < B canonical form.
func TestLink_Canonical(t *testing.T) {
	assert.Equal(t, core.Link{A: 1, B: 4}, core.NewLink(4, 1))
	assert.Equal(t, core.Link{A: 1, B: 4}, core.NewLink(1, 4))
	assert.Equal(t, core.Link{A: 2, B: 7}, core.Link{A: 7, B: 2}.Normalize())
	assert.Equal(t, "1-4", core.NewLink(4, 1).String())
}

// TestLink_Endpoints covers Has and Other.
func TestLink_Endpoints(t *testing.T) {
	l := core.NewLink(3, 5)

	assert.True(t, l.Has(3))
	assert.True(t, l.Has(5))
	assert.False(t, l.Has(4))

	other, ok := l.Other(3)
	assert.True(t, ok)
	assert.Equal(t, 5, other)

	other, ok = l.Other(5)
	assert.True(t, ok)
	assert.Equal(t, 3, other)

	_, ok = l.Other(9)
	assert.False(t, ok)
}

// TestNode_Reachable checks the Unreachable sentinel.
func TestNode_Reachable(t *testing.T) {
	assert.False(t, core.Node{Distance: core.Unreachable}.Reachable())
	assert.True(t, core.Node{Distance: 0}.Reachable())
	assert.True(t, core.Node{Distance: 3}.Reachable())
}

// TestGraph_WithCapacity ensures the option only pre-sizes storage.
func TestGraph_WithCapacity(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(16), core.WithCapacity(-1))
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.LinkCount())
	assert.False(t, g.Sealed())
}
