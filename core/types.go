// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Declares Node, Edge, Graph, GraphOption and the sentinel errors.
//
// Errors:
//
//	ErrMalformedGraph - the dataset cannot produce a valid Graph.
//	ErrUnknownNode    - requested node does not exist.
//	ErrNoSuchEdge     - requested directed edge does not exist.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrMalformedGraph indicates that a Dataset failed validation: a missing
	// start/end node, an empty node name, or a negative or non-finite weight
	// or heuristic. No Graph is returned alongside it.
	ErrMalformedGraph = errors.New("core: malformed graph")

	// ErrUnknownNode indicates an operation referenced a node name absent from the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrNoSuchEdge indicates that no directed edge exists between the given nodes.
	ErrNoSuchEdge = errors.New("core: no such edge")
)

// Node is a named vertex.
//
// Name is unique within its Graph and stable for the Graph's lifetime.
// Heuristic is a non-negative estimate of the remaining cost to the end node
// (0 when the source data did not supply one).
type Node struct {
	// Name uniquely identifies the node.
	Name string

	// Heuristic is the estimated remaining cost to the end node.
	Heuristic float64
}

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source node name.
	From string

	// To is the target node name.
	To string

	// Weight is the non-negative traversal cost.
	Weight float64
}

// GraphOption configures a Graph while it is being built.
type GraphOption func(g *Graph)

// WithName overrides the display name taken from Dataset.Name.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is an immutable directed weighted graph.
//
// A Graph is produced once by Build and never mutated afterwards; reloading
// data means building a new Graph. Every query is therefore safe for
// concurrent use without locking.
//
// Ordering: nodes are kept in first-seen order (declared or referenced as a
// neighbor, whichever happens first) and each node's outgoing edges are kept
// in declaration order.
type Graph struct {
	name string

	// Storage
	nodes map[string]*Node // node name → Node (exactly one instance per name)
	order []string         // node names in first-seen order

	// adjacency[from] lists outgoing edges in declaration order;
	// position[from][to] is the index of that edge in adjacency[from].
	adjacency map[string][]*Edge
	position  map[string]map[string]int
	edgeCount int

	start string
	end   string
}

// newGraph allocates an empty Graph. Only Build populates it.
func newGraph(name string) *Graph {
	return &Graph{
		name:      name,
		nodes:     make(map[string]*Node),
		adjacency: make(map[string][]*Edge),
		position:  make(map[string]map[string]int),
	}
}

// Name returns the display name of the graph (usually the source file name).
func (g *Graph) Name() string { return g.name }

// Start returns the designated start node name.
func (g *Graph) Start() string { return g.start }

// End returns the designated end node name.
func (g *Graph) End() string { return g.end }
