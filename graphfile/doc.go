// SPDX-License-Identifier: MIT

// Package graphfile reads and writes search graphs on disk.
//
// Two formats are supported:
//
//   - JSON (".json"): an object mapping each node name to its outgoing edges
//     followed by its heuristic, plus the reserved "start" and "end" keys:
//
//     {
//     "A": [["B", 1], ["C", 5], 3],
//     "B": [["C", 1], 2],
//     "C": [0],
//     "start": "A",
//     "end": "C"
//     }
//
//     Object key order and edge order are preserved, because neighbor order
//     drives traversal order. A trailing heuristic may be omitted (it defaults
//     to 0).
//
//   - Compact (".mpz"): the core.Dataset encoded with msgpack and compressed
//     with zstd. It carries the dataset name and loads faster on large maps.
//
// Load and Save pick the format from the file extension. Load builds a
// *core.Graph whose name defaults to the file base name.
//
// Errors:
//
//   - ErrBadFormat: syntactically invalid input or a non-numeric weight/heuristic.
//   - ErrUnsupportedFormat: unknown file extension.
//   - core.ErrMalformedGraph: the decoded data violates graph invariants.
package graphfile
