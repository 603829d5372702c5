package backdoor_test

import (
	"fmt"

	"github.com/katalvlaran/skynet/backdoor"
	"github.com/katalvlaran/skynet/loader"
)

// ExamplePuzzle_SeverAndAdvance plays the combined shape: every call is one
// whole turn and the agent always moves afterwards.
func ExamplePuzzle_SeverAndAdvance() {
	p, err := backdoor.New(loader.Description{
		Links:    [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}},
		Gateways: []int{3},
		Agent:    0,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, cut := range [][2]int{{99, 999}, {1, 3}} {
		removed, _ := p.SeverAndAdvance(cut[0], cut[1])
		fmt.Printf("cut %v removed=%v agent=%d status=%s\n", cut, removed, p.AgentPosition(), p.Status())
	}

	// Output:
	// cut [99 999] removed=false agent=1 status=moving
	// cut [1 3] removed=true agent=0 status=moving
}

// ExamplePuzzle_Advance plays the decoupled shape.
func ExamplePuzzle_Advance() {
	p, _ := backdoor.New(loader.Description{
		Links:    [][2]int{{0, 1}, {1, 2}, {1, 3}},
		Gateways: []int{2, 3},
		Agent:    0,
	})

	fmt.Println(p.Sever(1, 2), p.Sever(1, 3))
	out, _ := p.Advance()
	fmt.Println(out, p.AgentPosition())
	fmt.Println(p.Sever(1, 3))
	out, _ = p.Advance()
	fmt.Println(out, p.Status())

	// Output:
	// true false
	// continuing 1
	// true
	// agent trapped won
}
