package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/core"
)

// node is a compact fixture row: name, heuristic, then (neighbor, weight) pairs.
type node struct {
	name  string
	h     float64
	edges []core.EdgeSpec
}

func e(to string, w float64) core.EdgeSpec { return core.EdgeSpec{To: to, Weight: w} }

func mustGraph(t testing.TB, start, end string, rows ...node) *core.Graph {
	t.Helper()
	ds := core.Dataset{Start: start, End: end}
	for _, r := range rows {
		ds.Nodes = append(ds.Nodes, core.NodeSpec{Name: r.name, Heuristic: r.h, Edges: r.edges})
	}
	g, err := core.Build(ds)
	require.NoError(t, err)

	return g
}

// diamond is the shared fixture:
//
//	A→B(1) A→C(5) B→C(1) B→D(4) C→D(1), E isolated
//	h: A=3 B=2 C=1 D=0 E=0
//
// Cheapest A→D is A,B,C,D (3); fewest edges is A,B,D; greedy takes A,C,D.
func diamond(t testing.TB) *core.Graph {
	return mustGraph(t, "A", "D",
		node{"A", 3, []core.EdgeSpec{e("B", 1), e("C", 5)}},
		node{"B", 2, []core.EdgeSpec{e("C", 1), e("D", 4)}},
		node{"C", 1, []core.EdgeSpec{e("D", 1)}},
		node{"D", 0, nil},
		node{"E", 0, nil},
	)
}
