// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

// Engine runs the five search algorithms against one bound Graph.
//
// The Engine keeps only the graph and its immutable Options; every visited
// set, frontier and predecessor map lives inside a single call. Results
// therefore never leak between calls, and one Engine may serve concurrent
// searches as long as the Graph itself is read-only.
type Engine struct {
	graph Graph
	opts  Options
}

// New binds an Engine to g.
// Returns ErrNilGraph for a nil graph or ErrOptionViolation for bad options.
func New(g Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{graph: g, opts: o}, nil
}

// Graph returns the bound graph.
func (e *Engine) Graph() Graph { return e.graph }

// Search selects an algorithm by exact identifier and runs it from start to end.
// Unknown identifiers yield ErrUnknownAlgorithm.
func (e *Engine) Search(name, start, end string) (*Result, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return e.Run(alg, start, end)
}

// Run executes alg from start to end.
//
// Contract shared by all algorithms:
//   - start and end must exist (ErrUnknownNode otherwise).
//   - start == end yields VisitOrder == Path == [start] without traversal.
//   - exhausting the frontier yields Found == false and an empty Path; this is not an error.
//   - hitting the expansion cap returns the partial Result and ErrExpansionLimit.
func (e *Engine) Run(alg Algorithm, start, end string) (*Result, error) {
	var fn func(w *walk) error
	switch alg {
	case DepthFirst:
		fn = runDFS
	case BreadthFirst:
		fn = runBFS
	case GreedyBestFirst:
		fn = runGreedy
	case AStar:
		fn = runAStar
	case Dijkstra:
		fn = runDijkstra
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}

	if !e.graph.HasNode(start) {
		return nil, fmt.Errorf("%w: %w: start %q", ErrUnknownNode, core.ErrUnknownNode, start)
	}
	if !e.graph.HasNode(end) {
		return nil, fmt.Errorf("%w: %w: end %q", ErrUnknownNode, core.ErrUnknownNode, end)
	}

	res := &Result{Algorithm: alg, VisitOrder: []string{}, Path: []string{}}
	if start == end {
		res.VisitOrder = []string{start}
		res.Path = []string{start}
		res.Found = true
		e.opts.OnExpand(start, 0)
		return res, nil
	}

	w := newWalk(e.graph, e.opts, start, end, res)
	err := fn(w)
	if err == nil && res.Found {
		if res.Cost, err = e.graph.PathCost(res.Path); err != nil {
			err = fmt.Errorf("search: cost of %v: %w", res.Path, err)
		}
	}

	e.opts.Logger.Debug("search finished",
		"algorithm", string(alg),
		"start", start,
		"end", end,
		"expanded", len(res.VisitOrder),
		"found", res.Found,
		"cost", res.Cost,
		"limited", errors.Is(err, ErrExpansionLimit),
	)

	return res, err
}

// DFS runs depth-first search from start to end.
func (e *Engine) DFS(start, end string) (*Result, error) { return e.Run(DepthFirst, start, end) }

// BFS runs breadth-first search from start to end.
func (e *Engine) BFS(start, end string) (*Result, error) { return e.Run(BreadthFirst, start, end) }

// Greedy runs greedy best-first search from start to end.
func (e *Engine) Greedy(start, end string) (*Result, error) {
	return e.Run(GreedyBestFirst, start, end)
}

// AStar runs A* search from start to end.
func (e *Engine) AStar(start, end string) (*Result, error) { return e.Run(AStar, start, end) }

// Dijkstra runs Dijkstra's algorithm from start to end.
func (e *Engine) Dijkstra(start, end string) (*Result, error) { return e.Run(Dijkstra, start, end) }

// walk is the per-call mutable state shared by all algorithms:
// the visited set and the result being filled in.
type walk struct {
	graph   Graph
	opts    Options
	start   string
	end     string
	visited map[string]bool
	res     *Result
}

func newWalk(g Graph, o Options, start, end string, res *Result) *walk {
	return &walk{
		graph:   g,
		opts:    o,
		start:   start,
		end:     end,
		visited: make(map[string]bool),
		res:     res,
	}
}

// expand marks name visited, appends it to VisitOrder and fires OnExpand.
// It refuses with ErrExpansionLimit once the cap is reached.
func (w *walk) expand(name string) error {
	if w.opts.MaxExpansions > 0 && len(w.res.VisitOrder) >= w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d expansions before reaching %q", ErrExpansionLimit, w.opts.MaxExpansions, name)
	}
	w.visited[name] = true
	w.res.VisitOrder = append(w.res.VisitOrder, name)
	w.opts.OnExpand(name, len(w.res.VisitOrder)-1)

	return nil
}

// succeed records path as the found path.
func (w *walk) succeed(path []string) {
	w.res.Path = path
	w.res.Found = true
}

// neighbors fetches the outgoing neighbors of name with context on failure.
func (w *walk) neighbors(name string) ([]string, error) {
	nbrs, err := w.graph.Neighbors(name)
	if err != nil {
		return nil, fmt.Errorf("search: neighbors of %q: %w", name, err)
	}

	return nbrs, nil
}

// heuristic fetches the heuristic of name with context on failure.
func (w *walk) heuristic(name string) (float64, error) {
	h, err := w.graph.Heuristic(name)
	if err != nil {
		return 0, fmt.Errorf("search: heuristic of %q: %w", name, err)
	}

	return h, nil
}
