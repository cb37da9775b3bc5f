// SPDX-License-Identifier: MIT

package graphfile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/pathsearch/core"
)

// Reserved top-level keys naming the search endpoints.
const (
	keyStart = "start"
	keyEnd   = "end"
)

// Decode reads the JSON graph format from r.
//
// The top-level object is walked token by token so that node order survives
// decoding. Structural validation (endpoint existence, non-negative values) is
// left to core.Build.
func Decode(r io.Reader) (core.Dataset, error) {
	var ds core.Dataset
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return ds, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return ds, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		key, ok := tok.(string)
		if !ok {
			return ds, fmt.Errorf("%w: unexpected token %v", ErrBadFormat, tok)
		}

		switch key {
		case keyStart, keyEnd:
			var name string
			if err = dec.Decode(&name); err != nil {
				return ds, fmt.Errorf("%w: %q must be a node name: %v", ErrBadFormat, key, err)
			}
			if key == keyStart {
				ds.Start = name
			} else {
				ds.End = name
			}
		default:
			var entry []json.RawMessage
			if err = dec.Decode(&entry); err != nil {
				return ds, fmt.Errorf("%w: node %q: %v", ErrBadFormat, key, err)
			}
			ns, err := decodeEntry(key, entry)
			if err != nil {
				return ds, err
			}
			ds.Nodes = append(ds.Nodes, ns)
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return ds, err
	}

	return ds, nil
}

// decodeEntry parses [[nbr, w], ..., heuristic]. The heuristic is optional;
// an entry without one is marked NoHeuristic.
func decodeEntry(name string, entry []json.RawMessage) (core.NodeSpec, error) {
	ns := core.NodeSpec{Name: name, NoHeuristic: true}
	pairs := entry
	if n := len(entry); n > 0 && !isArray(entry[n-1]) {
		if err := json.Unmarshal(entry[n-1], &ns.Heuristic); err != nil {
			return ns, fmt.Errorf("%w: node %q: heuristic %s is not a number", ErrBadFormat, name, entry[n-1])
		}
		ns.NoHeuristic = false
		pairs = entry[:n-1]
	}

	ns.Edges = make([]core.EdgeSpec, 0, len(pairs))
	for i, raw := range pairs {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
			return ns, fmt.Errorf("%w: node %q: edge %d must be [neighbor, weight], got %s", ErrBadFormat, name, i, raw)
		}
		var es core.EdgeSpec
		if err := json.Unmarshal(pair[0], &es.To); err != nil {
			return ns, fmt.Errorf("%w: node %q: edge %d neighbor %s is not a string", ErrBadFormat, name, i, pair[0])
		}
		if err := json.Unmarshal(pair[1], &es.Weight); err != nil {
			return ns, fmt.Errorf("%w: node %q: edge %d weight %s is not a number", ErrBadFormat, name, i, pair[1])
		}
		ns.Edges = append(ns.Edges, es)
	}

	return ns, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected end of input, want %q", ErrBadFormat, want)
		}
		return fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: got %v, want %q", ErrBadFormat, tok, want)
	}

	return nil
}

// Encode writes ds in the JSON graph format, one node per line, preserving
// node and edge order. The dataset name is not part of this format.
func Encode(w io.Writer, ds core.Dataset) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("{\n")
	for _, ns := range ds.Nodes {
		key, err := json.Marshal(ns.Name)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "  %s: [", key)
		for i, es := range ns.Edges {
			pair, err := json.Marshal([]interface{}{es.To, es.Weight})
			if err != nil {
				return fmt.Errorf("%w: node %q: %v", ErrBadFormat, ns.Name, err)
			}
			if i > 0 {
				bw.WriteString(", ")
			}
			bw.Write(pair)
		}
		if ns.NoHeuristic {
			bw.WriteString("],\n")
			continue
		}
		if len(ns.Edges) > 0 {
			bw.WriteString(", ")
		}
		h, err := json.Marshal(ns.Heuristic)
		if err != nil {
			return fmt.Errorf("%w: node %q: %v", ErrBadFormat, ns.Name, err)
		}
		bw.Write(h)
		bw.WriteString("],\n")
	}
	start, _ := json.Marshal(ds.Start)
	end, _ := json.Marshal(ds.End)
	fmt.Fprintf(bw, "  %q: %s,\n  %q: %s\n}\n", keyStart, start, keyEnd, end)

	return bw.Flush()
}
