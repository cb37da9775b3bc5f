// SPDX-License-Identifier: MIT

// Package search runs path-search algorithms over a read-only weighted,
// directed graph and reports both the order nodes were expanded in and the
// path found from start to end.
//
// Algorithms:
//
//   - DepthFirst ("dfs"): explicit frame stack, neighbors in declaration order,
//     first neighbor explored first. Finds some path, not the shortest.
//   - BreadthFirst ("bfs"): FIFO arena of (node, parent) entries. Finds a path
//     with the fewest edges; weights are ignored.
//   - GreedyBestFirst ("greedy"): priority frontier keyed by node heuristic only.
//     Not optimal.
//   - AStar ("astar"): priority frontier keyed by g + h. Cost-optimal whenever the
//     heuristic is admissible; a settled node reached again more cheaply is
//     reopened without being listed twice in VisitOrder.
//   - Dijkstra ("dijkstra"): A* with h forced to zero. Cost-optimal for any
//     non-negative weights.
//
// Shared contract:
//
//   - VisitOrder lists nodes in the order they were popped for expansion;
//     a node is never expanded twice.
//   - start == end yields VisitOrder == Path == [start] without traversal.
//   - An unreachable end yields Found == false, an empty Path and a nil error.
//   - Priority ties pop in insertion order, so every result is deterministic.
//
// Error handling (sentinel errors, test with errors.Is):
//
//   - ErrNilGraph: New was given a nil Graph.
//   - ErrOptionViolation: an Option was invalid (e.g. negative expansion cap).
//   - ErrUnknownAlgorithm: Search was given a name outside Algorithms().
//   - ErrUnknownNode: start or end is not a node of the bound Graph.
//   - ErrExpansionLimit: WithMaxExpansions cap reached; the partial Result
//     is returned alongside the error.
//
// Complexity:
//
//   - DFS, BFS: O(V + E) time, O(V + E) space.
//   - Greedy, A*, Dijkstra: O((V + E) log E) time with lazy decrease-key,
//     O(V + E) space.
//
// Concurrency:
//
// An Engine stores only its Graph and Options. All per-search state is local
// to one call, so a single Engine may serve concurrent searches over a
// read-only Graph.
//
// Example:
//
//	g, _ := core.Build(ds)
//	eng, _ := search.New(g, search.WithMaxExpansions(10_000))
//	res, err := eng.Search("astar", g.Start(), g.End())
package search
