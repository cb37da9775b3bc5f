// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node queries.
//
// Determinism:
//   - Nodes() returns nodes in first-seen order.
//
// Concurrency:
//   - The Graph is immutable after Build; every method is a lock-free read.

package core

import "fmt"

// HasNode reports whether a node called name exists (empty name ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasNode(name string) bool {
	if name == "" {
		return false
	}
	_, ok := g.nodes[name]

	return ok
}

// Node returns a copy of the node called name.
//
// Errors:
//   - ErrUnknownNode: if the node does not exist.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Node(name string) (Node, error) {
	n, ok := g.nodes[name]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return *n, nil
}

// Heuristic returns the heuristic value of the node called name.
//
// Errors:
//   - ErrUnknownNode: if the node does not exist.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Heuristic(name string) (float64, error) {
	n, ok := g.nodes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return n.Heuristic, nil
}

// Nodes returns copies of all nodes in first-seen order.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, *g.nodes[name])
	}

	return out
}

// NodeNames returns all node names in first-seen order.
func (g *Graph) NodeNames() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }
