package builder_test

import (
	"fmt"

	"github.com/katalvlaran/skynet/builder"
)

func ExampleBuildPuzzle() {
	d, err := builder.BuildPuzzle(
		[]builder.BuilderOption{builder.WithGateways(2), builder.WithMinAgentDistance(2)},
		builder.Cycle(6),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("links:", len(d.Links), "gateways:", d.Gateways, "agent:", d.Agent)
	// Output:
	// links: 6 gateways: [4 5] agent: 1
}
