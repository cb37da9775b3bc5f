// Package pathsearch compares classic graph search algorithms on small
// directed, weighted graphs whose nodes carry a heuristic estimate.
//
// Subpackages:
//
//	core/      immutable Graph built from a loader-form Dataset
//	search/    Engine running DFS, BFS, Greedy best-first, A* and Dijkstra
//	graphfile/ JSON adjacency files and the compact msgpack+zstd format
//	builder/   deterministic generated datasets (grids, chains, random graphs)
//	render/    PNG snapshots of a search: visited, path, start and goal
//	httpapi/   JSON + PNG API for a browser visualizer
//	config/    environment-driven server settings
//
// Commands:
//
//	cmd/pathsearch         run searches from the terminal
//	cmd/pathsearch-server  serve httpapi
//
// Quick example:
//
//	g, _ := graphfile.Load("graphs/romania.json")
//	eng, _ := search.New(g)
//	res, _ := eng.AStar(g.Start(), g.End())
//	fmt.Println(res.Path, res.Cost) // [Arad Sibiu Rimnicu Vilcea Pitesti Bucharest] 418
//
// Every search returns the nodes in expansion order (VisitOrder) next to the
// found path, so the two can be replayed step by step.
package pathsearch
