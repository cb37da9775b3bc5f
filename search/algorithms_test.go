package search_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/search"
)

// TestAlgorithms_Diamond pins exact visit orders and paths on the shared fixture.
func TestAlgorithms_Diamond(t *testing.T) {
	cases := []struct {
		alg   search.Algorithm
		order []string
		path  []string
		cost  float64
	}{
		{search.DepthFirst, []string{"A", "B", "C", "D"}, []string{"A", "B", "C", "D"}, 3},
		{search.BreadthFirst, []string{"A", "B", "C", "D"}, []string{"A", "B", "D"}, 5},
		{search.GreedyBestFirst, []string{"A", "C", "D"}, []string{"A", "C", "D"}, 6},
		{search.AStar, []string{"A", "B", "C", "D"}, []string{"A", "B", "C", "D"}, 3},
		{search.Dijkstra, []string{"A", "B", "C", "D"}, []string{"A", "B", "C", "D"}, 3},
	}
	eng, err := search.New(diamond(t))
	require.NoError(t, err)

	for _, tc := range cases {
		t.Run(string(tc.alg), func(t *testing.T) {
			res, err := eng.Run(tc.alg, "A", "D")
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, tc.order, res.VisitOrder)
			assert.Equal(t, tc.path, res.Path)
			assert.Equal(t, tc.cost, res.Cost)
		})
	}
}

// TestWeightVersusEdgeCount: A→B(1) B→C(1) A→C(5), all h=0.
func TestWeightVersusEdgeCount(t *testing.T) {
	g := mustGraph(t, "A", "C",
		node{"A", 0, []core.EdgeSpec{e("B", 1), e("C", 5)}},
		node{"B", 0, []core.EdgeSpec{e("C", 1)}},
	)
	eng, err := search.New(g)
	require.NoError(t, err)

	for _, a := range []search.Algorithm{search.Dijkstra, search.AStar} {
		res, err := eng.Run(a, "A", "C")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, res.Path, a)
		assert.Equal(t, 2.0, res.Cost)
	}

	res, err := eng.BFS("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.Equal(t, 5.0, res.Cost)
}

func TestDFS_FirstNeighborExploredFirst(t *testing.T) {
	// A has two branches; DFS must dive into X's subtree before touching Y.
	g := mustGraph(t, "A", "G",
		node{"A", 0, []core.EdgeSpec{e("X", 1), e("Y", 1)}},
		node{"X", 0, []core.EdgeSpec{e("X1", 1), e("X2", 1)}},
		node{"X1", 0, nil},
		node{"X2", 0, nil},
		node{"Y", 0, []core.EdgeSpec{e("G", 1)}},
		node{"G", 0, nil},
	)
	eng, err := search.New(g)
	require.NoError(t, err)

	res, err := eng.DFS("A", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "X", "X1", "X2", "Y", "G"}, res.VisitOrder)
	assert.Equal(t, []string{"A", "Y", "G"}, res.Path, "backtracked frames must leave the path")
}

func TestDFS_CyclesTerminate(t *testing.T) {
	g := mustGraph(t, "A", "Z",
		node{"A", 0, []core.EdgeSpec{e("B", 1)}},
		node{"B", 0, []core.EdgeSpec{e("C", 1), e("A", 1)}},
		node{"C", 0, []core.EdgeSpec{e("A", 1), e("B", 1), e("C", 1)}},
		node{"Z", 0, nil},
	)
	eng, err := search.New(g)
	require.NoError(t, err)

	for _, a := range search.Algorithms() {
		res, err := eng.Run(a, "A", "Z")
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.ElementsMatch(t, []string{"A", "B", "C"}, res.VisitOrder, a)
	}
}

func TestDFS_DeepChainDoesNotRecurse(t *testing.T) {
	const n = 200_000
	ds := core.Dataset{Start: "v0", End: fmt.Sprintf("v%d", n-1)}
	for i := 0; i < n; i++ {
		ns := core.NodeSpec{Name: fmt.Sprintf("v%d", i)}
		if i+1 < n {
			ns.Edges = []core.EdgeSpec{{To: fmt.Sprintf("v%d", i+1), Weight: 1}}
		}
		ds.Nodes = append(ds.Nodes, ns)
	}
	g, err := core.Build(ds)
	require.NoError(t, err)
	eng, err := search.New(g)
	require.NoError(t, err)

	res, err := eng.DFS(g.Start(), g.End())
	require.NoError(t, err)
	assert.Len(t, res.Path, n)
	assert.Equal(t, float64(n-1), res.Cost)
}

func TestBFS_VisitedOnDequeue(t *testing.T) {
	// D is queued twice (via B and via C); it is expanded once.
	g := mustGraph(t, "A", "Z",
		node{"A", 0, []core.EdgeSpec{e("B", 1), e("C", 1)}},
		node{"B", 0, []core.EdgeSpec{e("D", 1)}},
		node{"C", 0, []core.EdgeSpec{e("D", 1)}},
		node{"D", 0, []core.EdgeSpec{e("Z", 1)}},
		node{"Z", 0, nil},
	)
	eng, err := search.New(g)
	require.NoError(t, err)

	res, err := eng.BFS("A", "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "Z"}, res.VisitOrder)
	assert.Equal(t, []string{"A", "B", "D", "Z"}, res.Path)
}

func TestGreedy_IgnoresCostAndKeepsFirstPredecessor(t *testing.T) {
	// S→A(1,h=5) S→B(1,h=1) A→G(1) B→A(100) B→G(50), h(G)=0.
	// Greedy pops S, B (h=1), G (h=0). G's predecessor is B.
	g := mustGraph(t, "S", "G",
		node{"S", 9, []core.EdgeSpec{e("A", 1), e("B", 1)}},
		node{"A", 5, []core.EdgeSpec{e("G", 1)}},
		node{"B", 1, []core.EdgeSpec{e("A", 100), e("G", 50)}},
		node{"G", 0, nil},
	)
	eng, err := search.New(g)
	require.NoError(t, err)

	res, err := eng.Greedy("S", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "G"}, res.VisitOrder)
	assert.Equal(t, []string{"S", "B", "G"}, res.Path)
	assert.Equal(t, 51.0, res.Cost)

	opt, err := eng.Dijkstra("S", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "G"}, opt.Path)
	assert.Equal(t, 2.0, opt.Cost)
}

func TestPriority_TiesPopInInsertionOrder(t *testing.T) {
	build := func(first, second string) *core.Graph {
		return mustGraph(t, "A", "D",
			node{"A", 0, []core.EdgeSpec{e(first, 1), e(second, 1)}},
			node{"B", 0, []core.EdgeSpec{e("D", 1)}},
			node{"C", 0, []core.EdgeSpec{e("D", 1)}},
			node{"D", 0, nil},
		)
	}
	for _, a := range []search.Algorithm{search.GreedyBestFirst, search.AStar, search.Dijkstra} {
		eng, err := search.New(build("B", "C"))
		require.NoError(t, err)
		res, err := eng.Run(a, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D"}, res.Path, a)

		eng, err = search.New(build("C", "B"))
		require.NoError(t, err)
		res, err = eng.Run(a, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "C", "D"}, res.Path, a)
	}
}

func TestAStar_HeuristicPrunesExpansions(t *testing.T) {
	// Two equal-cost branches; h steers A* down one and Dijkstra explores both.
	g := mustGraph(t, "S", "G",
		node{"S", 2, []core.EdgeSpec{e("L", 1), e("R", 1)}},
		node{"L", 5, []core.EdgeSpec{e("L2", 1)}},
		node{"L2", 5, nil},
		node{"R", 1, []core.EdgeSpec{e("G", 1)}},
		node{"G", 0, nil},
	)
	eng, err := search.New(g)
	require.NoError(t, err)

	a, err := eng.AStar("S", "G")
	require.NoError(t, err)
	d, err := eng.Dijkstra("S", "G")
	require.NoError(t, err)

	assert.Equal(t, []string{"S", "R", "G"}, a.VisitOrder)
	assert.Equal(t, []string{"S", "L", "R", "L2", "G"}, d.VisitOrder)
	assert.Equal(t, a.Cost, d.Cost)
}

func TestCostOrdered_StaleEntriesSkipped(t *testing.T) {
	// C is first queued at g=10 then improved to g=2; the stale entry never expands C twice.
	g := mustGraph(t, "A", "Z",
		node{"A", 0, []core.EdgeSpec{e("C", 10), e("B", 1)}},
		node{"B", 0, []core.EdgeSpec{e("C", 1)}},
		node{"C", 0, []core.EdgeSpec{e("Z", 1)}},
		node{"Z", 0, nil},
	)
	eng, err := search.New(g)
	require.NoError(t, err)

	res, err := eng.Dijkstra("A", "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Z"}, res.VisitOrder)
	assert.Equal(t, []string{"A", "B", "C", "Z"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
}

func TestAStar_ReopensSettledNodeOnCheaperPath(t *testing.T) {
	// h(A)=6 is admissible (A→B→G costs 6) but inconsistent, so B is settled
	// via S at g=3 before A offers g=2. B must be reopened, not listed twice.
	g := mustGraph(t, "S", "G",
		node{"S", 0, []core.EdgeSpec{e("A", 1), e("B", 3)}},
		node{"A", 6, []core.EdgeSpec{e("B", 1)}},
		node{"B", 0, []core.EdgeSpec{e("G", 5)}},
		node{"G", 0, nil},
	)
	eng, err := search.New(g)
	require.NoError(t, err)

	a, err := eng.AStar("S", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "A", "G"}, a.VisitOrder)
	assert.Equal(t, []string{"S", "A", "B", "G"}, a.Path)
	assert.Equal(t, 7.0, a.Cost)

	d, err := eng.Dijkstra("S", "G")
	require.NoError(t, err)
	assert.Equal(t, d.Path, a.Path)
	assert.Equal(t, d.Cost, a.Cost)
}
