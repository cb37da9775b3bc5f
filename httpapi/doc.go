// SPDX-License-Identifier: MIT

// Package httpapi exposes a loaded graph and the search engine over HTTP for
// a browser visualizer.
//
// Routes:
//
//	GET  /healthz            liveness probe
//	GET  /api/algorithms     ordered {id,label} menu
//	GET  /api/graph          nodes, heuristics, edges and default endpoints
//	POST /api/search         {algorithm,start,end} → search result
//	GET  /api/render.png     PNG snapshot of the graph and an optional search
//	POST /api/reload         re-read the graph source and swap it in
//
// The served graph is immutable. Reloading builds a new Graph and Engine and
// swaps the pair atomically, so in-flight requests keep the snapshot they
// started with.
//
// Every response carries an X-Request-ID header; an incoming value is kept,
// otherwise a random UUID is assigned.
package httpapi
