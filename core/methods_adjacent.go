// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborNodes, OutEdges).
// Determinism:
//   - All three return outgoing neighbors in edge declaration order.
//   - Returned slices are fresh copies; callers may modify them freely.

package core

import "fmt"

// Neighbors returns the names of all nodes reachable from name over a single
// outgoing edge, in the order those edges were declared.
//
// Behavior highlights:
//   - Only outgoing edges count: A→B makes B a neighbor of A, not the reverse.
//   - A node without outgoing edges yields an empty, non-nil slice.
//
// Errors:
//   - ErrUnknownNode: if name does not exist.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree of name.
func (g *Graph) Neighbors(name string) ([]string, error) {
	if _, ok := g.nodes[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	out := g.adjacency[name]
	ids := make([]string, len(out))
	for i, e := range out {
		ids[i] = e.To
	}

	return ids, nil
}

// NeighborNodes is Neighbors returning node copies (name and heuristic).
func (g *Graph) NeighborNodes(name string) ([]Node, error) {
	if _, ok := g.nodes[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	out := g.adjacency[name]
	nodes := make([]Node, len(out))
	for i, e := range out {
		nodes[i] = *g.nodes[e.To]
	}

	return nodes, nil
}

// OutEdges returns copies of the outgoing edges of name in declaration order.
func (g *Graph) OutEdges(name string) ([]Edge, error) {
	if _, ok := g.nodes[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	out := g.adjacency[name]
	edges := make([]Edge, len(out))
	for i, e := range out {
		edges[i] = *e
	}

	return edges, nil
}
