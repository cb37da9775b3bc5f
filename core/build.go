// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: The only constructor of Graph. Turns a Dataset into an immutable Graph.
// Determinism:
//   - Node order is first-seen order; edge order is declaration order.
//   - A duplicated edge From→To keeps its first position and takes the last weight.

package core

import "fmt"

// Build constructs a Graph from ds.
//
// Implementation:
//   - Stage 1: Validate field rules (names present, weights and heuristics finite and ≥ 0).
//   - Stage 2: Walk NodeSpecs in order, creating nodes on first sight (declared or
//     referenced) and recording edges. A NodeSpec sets the heuristic of its node,
//     correcting the 0 default of an earlier neighbor-only reference.
//   - Stage 3: Verify that Start and End name existing nodes.
//
// Errors:
//   - ErrMalformedGraph (wrapped with the offending field or name).
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func Build(ds Dataset, opts ...GraphOption) (*Graph, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	g := newGraph(ds.Name)
	for _, opt := range opts {
		opt(g)
	}

	for _, ns := range ds.Nodes {
		n := g.ensureNode(ns.Name)
		if !ns.NoHeuristic {
			n.Heuristic = ns.Heuristic
		}
		for _, es := range ns.Edges {
			g.ensureNode(es.To)
			g.putEdge(ns.Name, es.To, es.Weight)
		}
	}

	if _, ok := g.nodes[ds.Start]; !ok {
		return nil, fmt.Errorf("%w: start node %q is not in the node set", ErrMalformedGraph, ds.Start)
	}
	if _, ok := g.nodes[ds.End]; !ok {
		return nil, fmt.Errorf("%w: end node %q is not in the node set", ErrMalformedGraph, ds.End)
	}
	g.start, g.end = ds.Start, ds.End

	return g, nil
}

// ensureNode returns the node called name, creating a heuristic-0 stub if missing.
func (g *Graph) ensureNode(name string) *Node {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := &Node{Name: name}
	g.nodes[name] = n
	g.order = append(g.order, name)

	return n
}

// putEdge records from→to with weight w. Last write wins on duplicates.
func (g *Graph) putEdge(from, to string, w float64) {
	pos, ok := g.position[from]
	if !ok {
		pos = make(map[string]int)
		g.position[from] = pos
	}
	if i, dup := pos[to]; dup {
		g.adjacency[from][i].Weight = w
		return
	}
	pos[to] = len(g.adjacency[from])
	g.adjacency[from] = append(g.adjacency[from], &Edge{From: from, To: to, Weight: w})
	g.edgeCount++
}

// Dataset converts g back into loader form. Building the returned Dataset
// yields a Graph equal to g (same nodes, order, edges, start and end).
// Nodes without outgoing edges and with zero heuristic are still listed so
// that node order survives the round trip.
func (g *Graph) Dataset() Dataset {
	ds := Dataset{
		Name:  g.name,
		Nodes: make([]NodeSpec, 0, len(g.order)),
		Start: g.start,
		End:   g.end,
	}
	for _, name := range g.order {
		out := g.adjacency[name]
		ns := NodeSpec{
			Name:      name,
			Edges:     make([]EdgeSpec, 0, len(out)),
			Heuristic: g.nodes[name].Heuristic,
		}
		for _, e := range out {
			ns.Edges = append(ns.Edges, EdgeSpec{To: e.To, Weight: e.Weight})
		}
		ds.Nodes = append(ds.Nodes, ns)
	}

	return ds
}
