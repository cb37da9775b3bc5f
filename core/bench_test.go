// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pathsearch/core"
)

// chainDataset returns a directed chain N0→N1→…→N(n-1).
func chainDataset(n int) core.Dataset {
	ds := core.Dataset{Nodes: make([]core.NodeSpec, 0, n), Start: "N0", End: fmt.Sprintf("N%d", n-1)}
	for i := 0; i < n; i++ {
		ns := core.NodeSpec{Name: fmt.Sprintf("N%d", i), Heuristic: float64(n - 1 - i)}
		if i+1 < n {
			ns.Edges = []core.EdgeSpec{{To: fmt.Sprintf("N%d", i+1), Weight: 1}}
		}
		ds.Nodes = append(ds.Nodes, ns)
	}

	return ds
}

// BenchmarkBuild measures Graph construction from a 10k-node chain dataset.
func BenchmarkBuild(b *testing.B) {
	ds := chainDataset(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.Build(ds)
	}
}

// BenchmarkNeighbors measures neighbor lookup on a star with 1000 spokes.
func BenchmarkNeighbors(b *testing.B) {
	hub := core.NodeSpec{Name: "Hub"}
	for i := 0; i < 1000; i++ {
		hub.Edges = append(hub.Edges, core.EdgeSpec{To: fmt.Sprintf("S%d", i), Weight: float64(i)})
	}
	g, err := core.Build(core.Dataset{Nodes: []core.NodeSpec{hub}, Start: "Hub", End: "S0"})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("Hub")
	}
}

// BenchmarkCost measures edge-weight lookup.
func BenchmarkCost(b *testing.B) {
	g, err := core.Build(chainDataset(1000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Cost("N500", "N501")
	}
}
