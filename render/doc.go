// SPDX-License-Identifier: MIT

// Package render draws a search graph, optionally overlaid with a search
// result, into a PNG snapshot.
//
// Nodes are placed on a circle in declaration order unless a layout is
// supplied (positions in the unit square, e.g. projected map coordinates).
// Directed edges are drawn as arrows labelled with their weight; when both
// u→v and v→u exist the two arrows are offset so each stays visible.
//
// Node colors follow the visualizer legend:
//
//	start      black
//	goal       red
//	unvisited  blue
//	visited    green
//	path       yellow
//
// Each node's name is drawn above it and, once expanded, its zero-based
// expansion index below it. WithStep renders an intermediate animation frame
// showing only the first k expansions.
package render
