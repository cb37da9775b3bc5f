package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/search"
)

func TestConstructors_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{"Chain(5)", builder.Chain(5), 5, 4},
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Star(5)", builder.Star(5), 5, 8},
		{"Complete(4)", builder.Complete(4), 4, 12},
		{"Complete(1)", builder.Complete(1), 1, 0},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 2 * (3*3 + 2*4)},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0},
		{"RandomSparse(6,1)", builder.RandomSparse(6, 1), 6, 30},
		{"RandomSparse(6,0)", builder.RandomSparse(6, 0), 6, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

func TestConstructors_ParameterErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Chain(1)", builder.Chain(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, .5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(4, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(4, 1.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildDataset(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildDataset(nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed, "no constructors means no nodes")
}

func TestBuildDataset_EndpointsAndName(t *testing.T) {
	ds, err := builder.BuildDataset([]builder.BuilderOption{builder.WithLetterIDs(), builder.WithName("chain")}, builder.Chain(4))
	require.NoError(t, err)
	assert.Equal(t, "chain", ds.Name)
	assert.Equal(t, "A", ds.Start)
	assert.Equal(t, "D", ds.End)

	ds, err = builder.BuildDataset([]builder.BuilderOption{builder.WithLetterIDs(), builder.WithEndpoints("B", "")}, builder.Chain(4))
	require.NoError(t, err)
	assert.Equal(t, "B", ds.Start)
	assert.Equal(t, "D", ds.End)

	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithEndpoints("A", "nowhere")}, nil, builder.Chain(3))
	assert.ErrorIs(t, err, core.ErrMalformedGraph)
}

func TestBuildDataset_InvalidWeightRejected(t *testing.T) {
	_, err := builder.BuildDataset([]builder.BuilderOption{builder.WithWeightFn(negativeWeight)}, builder.Chain(3))
	assert.ErrorIs(t, err, core.ErrMalformedGraph)
}

func TestGrid_LayoutAndSymmetry(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	require.NoError(t, err)

	assert.Equal(t, []string{"0,0", "0,1", "0,2", "1,0", "1,1", "1,2"}, g.NodeNames())
	assert.Equal(t, "0,0", g.Start())
	assert.Equal(t, "1,2", g.End())

	nbrs, err := g.Neighbors("0,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,1", "1,0"}, nbrs)
	for _, e := range g.Edges() {
		assert.True(t, g.HasEdge(e.To, e.From), "missing reverse of %s→%s", e.From, e.To)
	}
}

func TestGrid_ManhattanHeuristicIsAdmissible(t *testing.T) {
	const rows, cols = 6, 7
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(3),
		builder.WithIntWeight(2, 9),
		builder.WithGridManhattan(rows, cols, 2),
	}, nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	h, err := g.Heuristic(builder.GridID(0, 0))
	require.NoError(t, err)
	assert.Equal(t, float64((rows-1+cols-1)*2), h)

	eng, err := search.New(g)
	require.NoError(t, err)
	a, err := eng.AStar(g.Start(), g.End())
	require.NoError(t, err)
	d, err := eng.Dijkstra(g.Start(), g.End())
	require.NoError(t, err)
	assert.Equal(t, d.Cost, a.Cost)
}

func TestRandomSparse_DeterministicPerSeed(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(99), builder.WithIntWeight(0, 9), builder.WithPrefixIDs("n")}
	}
	a, err := builder.BuildDataset(opts(), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildDataset(opts(), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "n0", a.Start)
	assert.Equal(t, "n11", a.End)

	c, err := builder.BuildDataset([]builder.BuilderOption{builder.WithSeed(100), builder.WithIntWeight(0, 9)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.NotEqual(t, a.Nodes, c.Nodes)
}

func TestCompose_MergesByName(t *testing.T) {
	// Chain(3) then Cycle(3) over the same IDs: 0→1 and 1→2 are shared, 2→0 is new.
	ds, err := builder.BuildDataset([]builder.BuilderOption{builder.WithConstantWeight(4)}, builder.Chain(3), builder.Cycle(3))
	require.NoError(t, err)
	require.Len(t, ds.Nodes, 3)
	assert.Len(t, ds.Nodes[0].Edges, 1)
	assert.Len(t, ds.Nodes[2].Edges, 1)
	assert.Equal(t, core.EdgeSpec{To: "0", Weight: 4}, ds.Nodes[2].Edges[0])
}

func TestStar_HubFirst(t *testing.T) {
	ds, err := builder.BuildDataset(nil, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, builder.CenterNodeID, ds.Start)
	assert.Equal(t, "1", ds.End)
	assert.Equal(t, []core.EdgeSpec{{To: "0", Weight: 1}, {To: "1", Weight: 1}}, ds.Nodes[0].Edges)
}

func negativeWeight(*rand.Rand) float64 { return -1 }
