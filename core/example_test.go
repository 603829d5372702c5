package core_test

import (
	"fmt"

	"github.com/katalvlaran/skynet/core"
)

// ExampleGraph builds a small board, severs a link and inspects it.
func ExampleGraph() {
	// 0───1
	// │   │
	// 2───3 (gateway)
	g := core.NewGraph()
	g.AddLink(0, 1)
	g.AddLink(0, 2)
	g.AddLink(1, 3)
	g.AddLink(2, 3)
	g.MarkGateway(3)
	g.PlaceAgent(0)
	g.Seal()

	fmt.Println("links:", g.Links())
	fmt.Println("removed 3-1:", g.RemoveLink(3, 1))
	fmt.Println("removed 3-1 again:", g.RemoveLink(3, 1))
	fmt.Println("links:", g.Links())
	nbrs, _ := g.NeighborIDs(3)
	fmt.Println("gateway neighbors:", nbrs)

	// Output:
	// links: [0-1 0-2 1-3 2-3]
	// removed 3-1: true
	// removed 3-1 again: false
	// links: [0-1 0-2 2-3]
	// gateway neighbors: [2]
}
