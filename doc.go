// Package skynet is an in-memory playground for the gateway pursuit puzzle:
// an agent walks an undirected network toward the nearest gateway, one hop
// per turn, while a controller severs one link per turn to trap it.
//
// What is in the box?
//
//	core/      the board: integer node IDs, symmetric links, gateways, agent marker
//	bfs/       multi-source distances from every gateway (gateways are sinks)
//	agent/     the agent state machine (moving, won, lost) and its move rule
//	backdoor/  the turn protocol facade, in combined and decoupled shapes
//	loader/    integer-sequence and YAML puzzle descriptions
//	builder/   topology constructors and seeded random puzzles
//	flow/      minimum link cut between the agent and the gateways
//	strategy/  controllers that pick the next link to sever
//	cmd/skynet the command line: play, generate, validate
//
// Quick start:
//
//	d, _ := loader.LoadFile("subnet.txt")
//	p, _ := backdoor.New(d)
//	for p.IsMoving() {
//	    link, ok := strategy.Greedy{}.Pick(p)
//	    if !ok {
//	        _, _ = p.Advance()
//	        continue
//	    }
//	    _, _ = p.SeverAndAdvance(link.A, link.B)
//	}
//	fmt.Println(p.Status())
//
// A puzzle is owned by one caller and is not safe for concurrent use.
package skynet
