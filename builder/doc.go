// Package builder generates puzzle boards from parameterized topologies.
//
// A build is a sequence of Constructor values applied to a fresh core.Graph
// under one resolved configuration:
//
//	g, err := builder.BuildGraph(nil, builder.Grid(4, 4))
//
//	d, err := builder.BuildPuzzle(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithGateways(2)},
//	    builder.RandomSparse(20, 0.15),
//	)
//
// BuildPuzzle additionally designates gateways and picks the agent's start
// so that the agent can reach a gateway at least WithMinAgentDistance hops
// away. The result is a loader.Description ready for backdoor.New or for
// serialization.
//
// Options:
//
//	WithSeed(seed) / WithRand(r)  – source for stochastic choices
//	WithGateways(k)               – number of gateways (default 1)
//	WithMinAgentDistance(d)       – start at least d hops from any gateway (default 1)
//
// Option constructors panic on meaningless arguments. Constructors and the
// Build functions never panic; they return errors wrapping the package
// sentinels (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrTooManyGateways, ErrConstructFailed).
//
// Without an rng every result is fully deterministic: gateways are the
// highest node IDs and the agent starts on the smallest eligible ID.
package builder
