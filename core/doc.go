// SPDX-License-Identifier: MIT

// Package core provides the immutable directed weighted Graph that every
// search algorithm in pathsearch runs against.
//
// The Graph G = (V,E) has:
//
//   - Named nodes, each carrying a non-negative Heuristic (estimated remaining
//     cost to the end node; 0 when the source data omits it).
//   - Directed edges with non-negative float64 weights. A→B does not imply B→A.
//   - A designated start node and end node, both guaranteed to exist.
//   - Cycles and disconnected components.
//
// Construction
//
// A Graph is built once from a Dataset, the already-parsed output of a loader
// (see package graphfile):
//
//	g, err := core.Build(core.Dataset{
//	    Nodes: []core.NodeSpec{
//	        {Name: "A", Edges: []core.EdgeSpec{{To: "B", Weight: 1}, {To: "C", Weight: 5}}, Heuristic: 2},
//	        {Name: "B", Edges: []core.EdgeSpec{{To: "C", Weight: 1}}, Heuristic: 1},
//	    },
//	    Start: "A",
//	    End:   "C",
//	})
//
// Node "C" above is never declared; it is created on first reference with
// heuristic 0. Had it been declared later, its heuristic would be corrected.
// Build fails with ErrMalformedGraph when start/end are missing, a name is
// empty, or any weight or heuristic is negative, NaN or infinite. A failed
// Build never returns a partial Graph.
//
// Queries
//
//	Neighbors(name)    outgoing neighbor names, declaration order
//	Cost(from, to)     edge weight, ErrNoSuchEdge if absent
//	Heuristic(name)    node heuristic
//
// Unknown names yield ErrUnknownNode. Errors are sentinels wrapped with
// context; test them with errors.Is.
//
// Determinism
//
// Nodes() keeps first-seen order and Neighbors() keeps edge declaration order,
// so every traversal built on top of the Graph is reproducible.
//
// Concurrency
//
// There is no mutation API. Reloading data means building a new Graph, so a
// Graph may be shared freely between goroutines without locks.
package core
