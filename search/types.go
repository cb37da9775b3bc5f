// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned by New when no graph is supplied.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrUnknownNode is returned when start or end is not a node of the bound graph.
	ErrUnknownNode = errors.New("search: unknown node")

	// ErrUnknownAlgorithm is returned by dispatch for a name outside Algorithms().
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrExpansionLimit is returned, together with the partial Result, when a
	// search would expand more nodes than WithMaxExpansions allows.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Graph is the read-only view the engine needs. *core.Graph satisfies it.
type Graph interface {
	// HasNode reports whether name is a node of the graph.
	HasNode(name string) bool

	// Neighbors returns the outgoing neighbors of name in declaration order.
	Neighbors(name string) ([]string, error)

	// Cost returns the weight of the directed edge from→to.
	Cost(from, to string) (float64, error)

	// Heuristic returns the heuristic estimate stored on name.
	Heuristic(name string) (float64, error)

	// PathCost sums the edge weights along path.
	PathCost(path []string) (float64, error)
}

// Algorithm is the stable internal identifier of a search algorithm.
type Algorithm string

// The five supported algorithms, in menu order.
const (
	DepthFirst      Algorithm = "dfs"
	BreadthFirst    Algorithm = "bfs"
	GreedyBestFirst Algorithm = "greedy"
	AStar           Algorithm = "astar"
	Dijkstra        Algorithm = "dijkstra"
)

var algorithms = []Algorithm{DepthFirst, BreadthFirst, GreedyBestFirst, AStar, Dijkstra}

var labels = map[Algorithm]string{
	DepthFirst:      "Depth-First Search",
	BreadthFirst:    "Breadth-First Search",
	GreedyBestFirst: "Greedy Best-First Search",
	AStar:           "A*",
	Dijkstra:        "Dijkstra",
}

// Algorithms returns the fixed, ordered list of algorithm identifiers, for
// populating menus. The returned slice is a copy.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)

	return out
}

// ParseAlgorithm matches name exactly against the identifiers in Algorithms().
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if string(a) == name {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Label returns a human-readable label, or the identifier itself if unknown.
func (a Algorithm) Label() string {
	if l, ok := labels[a]; ok {
		return l
	}

	return string(a)
}

// Informed reports whether the algorithm reads node heuristics.
func (a Algorithm) Informed() bool {
	return a == GreedyBestFirst || a == AStar
}

// Result holds the outcome of one search:
//   - VisitOrder: nodes in the order they were expanded (popped), never repeated.
//   - Path: start..end inclusive when Found, otherwise empty.
//   - Cost: total edge weight of Path (0 when not found).
type Result struct {
	Algorithm  Algorithm `json:"algorithm"`
	VisitOrder []string  `json:"visitOrder"`
	Path       []string  `json:"path"`
	Found      bool      `json:"found"`
	Cost       float64   `json:"cost"`
}

// Expanded returns the number of expanded nodes.
func (r *Result) Expanded() int { return len(r.VisitOrder) }
