// Package bfs computes, for every node of a core.Graph, the minimum number
// of hops to the nearest gateway.
//
// The search is a multi-source breadth-first search seeded from every
// gateway at distance 0. Gateways are sinks: they are never entered from
// another node, so no distance is ever measured through a gateway.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/skynet/core"
)

// queueItem pairs a node ID with its distance and the node it was reached from.
type queueItem struct {
	id     int
	depth  int
	parent int
	root   bool // gateway seed, no parent
}

// walker encapsulates mutable search state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// Distances runs the multi-source search on g, applying any number of
// functional Options. Unless WithoutWriteBack is given, every node's cached
// distance is first reset to core.Unreachable and then overwritten for each
// reached node.
//
// Returns ErrGraphNil, ErrNoGateways, ErrOptionViolation, or any
// user-supplied hook error (wrapped).
func Distances(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	gateways := g.GatewayIDs()
	if len(gateways) == 0 {
		return nil, ErrNoGateways
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Order:    make([]int, 0, n),
			Distance: make(map[int]int, n),
			Next:     make(map[int]int, n),
		},
	}
	if o.WriteBack {
		g.ResetDistances()
	}

	// Seed all gateways at depth 0, ascending ID
	for _, gw := range gateways {
		w.enqueue(queueItem{id: gw, root: true})
	}

	return w.res, w.loop()
}

// enqueue marks the item visited, records its distance and predecessor,
// and appends it to the queue.
func (w *walker) enqueue(item queueItem) {
	w.visited[item.id] = true
	w.res.Distance[item.id] = item.depth
	if !item.root {
		w.res.Next[item.id] = item.parent
	}
	if w.opts.WriteBack {
		w.graph.SetDistance(item.id, item.depth)
	}
	w.queue = append(w.queue, item)
}

// loop processes the queue in FIFO order until empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors expands item one hop outward, honoring the filter and
// MaxDepth. Gateways are never entered from another node.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || w.graph.IsGateway(nbr) {
			continue
		}
		if !w.opts.FilterLink(item.id, nbr) {
			continue
		}
		w.enqueue(queueItem{id: nbr, depth: nextDepth, parent: item.id})
	}

	return nil
}
