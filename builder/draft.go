// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

// draft accumulates nodes and edges in insertion order.
// Re-adding a node is a no-op; re-adding an edge overwrites its weight in place.
type draft struct {
	name  string
	nodes []core.NodeSpec
	index map[string]int
	edges map[[2]string]int
}

func newDraft(name string) *draft {
	return &draft{
		name:  name,
		index: make(map[string]int),
		edges: make(map[[2]string]int),
	}
}

// addNode inserts id with heuristic h unless already present.
func (d *draft) addNode(id string, h float64) {
	if _, ok := d.index[id]; ok {
		return
	}
	d.index[id] = len(d.nodes)
	d.nodes = append(d.nodes, core.NodeSpec{Name: id, Heuristic: h})
}

// addEdge appends from→to. Both endpoints must already exist.
func (d *draft) addEdge(from, to string, w float64) error {
	i, ok := d.index[from]
	if !ok {
		return fmt.Errorf("addEdge: unknown node %q: %w", from, ErrConstructFailed)
	}
	if _, ok = d.index[to]; !ok {
		return fmt.Errorf("addEdge: unknown node %q: %w", to, ErrConstructFailed)
	}
	key := [2]string{from, to}
	if pos, dup := d.edges[key]; dup {
		d.nodes[i].Edges[pos].Weight = w
		return nil
	}
	d.edges[key] = len(d.nodes[i].Edges)
	d.nodes[i].Edges = append(d.nodes[i].Edges, core.EdgeSpec{To: to, Weight: w})

	return nil
}

// dataset snapshots the draft. Empty start/end fall back to the first/last node.
func (d *draft) dataset(start, end string) core.Dataset {
	if start == "" {
		start = d.nodes[0].Name
	}
	if end == "" {
		end = d.nodes[len(d.nodes)-1].Name
	}
	nodes := make([]core.NodeSpec, len(d.nodes))
	for i, n := range d.nodes {
		n.Edges = append([]core.EdgeSpec(nil), n.Edges...)
		nodes[i] = n
	}

	return core.Dataset{Name: d.name, Nodes: nodes, Start: start, End: end}
}

// addIndexed adds n nodes named cfg.idFn(0..n-1) with heuristics from cfg.
func addIndexed(d *draft, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		d.addNode(ids[i], cfg.heuristicFn(i, ids[i]))
	}

	return ids
}
