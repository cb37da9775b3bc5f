package graphfile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/graphfile"
)

func TestDecode_PreservesOrder(t *testing.T) {
	// Keys deliberately out of alphabetical order.
	src := `{
		"Z": [["M", 2], ["A", 1], 4],
		"M": [["A", 3], 1],
		"start": "Z",
		"A": [0],
		"end": "A"
	}`
	ds, err := graphfile.Decode(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, ds.Nodes, 3)
	assert.Equal(t, "Z", ds.Nodes[0].Name)
	assert.Equal(t, "M", ds.Nodes[1].Name)
	assert.Equal(t, "A", ds.Nodes[2].Name)
	assert.Equal(t, []core.EdgeSpec{{To: "M", Weight: 2}, {To: "A", Weight: 1}}, ds.Nodes[0].Edges)
	assert.Equal(t, 4.0, ds.Nodes[0].Heuristic)
	assert.Equal(t, "Z", ds.Start)
	assert.Equal(t, "A", ds.End)

	g, err := core.Build(ds)
	require.NoError(t, err)
	nbrs, err := g.Neighbors("Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"M", "A"}, nbrs)
}

func TestDecode_OptionalHeuristicAndStubs(t *testing.T) {
	src := `{"A": [["B", 1], ["C", 2]], "B": [], "start": "A", "end": "C"}`
	ds, err := graphfile.Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Zero(t, ds.Nodes[0].Heuristic)
	assert.True(t, ds.Nodes[0].NoHeuristic)
	assert.Len(t, ds.Nodes[0].Edges, 2)
	assert.Empty(t, ds.Nodes[1].Edges)

	g, err := core.Build(ds)
	require.NoError(t, err)
	assert.True(t, g.HasNode("C"), "neighbor-only nodes become stubs")
}

func TestDecode_RepeatedKeyWithoutHeuristic(t *testing.T) {
	src := `{"A": [["B", 1], 4], "A": [["C", 2]], "start": "A", "end": "C"}`
	ds, err := graphfile.Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, ds.Nodes, 2)
	assert.False(t, ds.Nodes[0].NoHeuristic)
	assert.True(t, ds.Nodes[1].NoHeuristic)

	g, err := core.Build(ds)
	require.NoError(t, err)
	h, err := g.Heuristic("A")
	require.NoError(t, err)
	assert.Equal(t, 4.0, h)
	nbrs, _ := g.Neighbors("A")
	assert.Equal(t, []string{"B", "C"}, nbrs)
}

func TestDecode_BadFormat(t *testing.T) {
	cases := map[string]string{
		"empty":              ``,
		"not an object":      `[1, 2]`,
		"truncated":          `{"A": [["B", 1], 0]`,
		"entry not array":    `{"A": 5, "start": "A", "end": "A"}`,
		"string heuristic":   `{"A": ["high"], "start": "A", "end": "A"}`,
		"string weight":      `{"A": [["B", "far"], 0], "start": "A", "end": "B"}`,
		"numeric neighbor":   `{"A": [[2, 1], 0], "start": "A", "end": "A"}`,
		"short pair":         `{"A": [["B"], 0], "start": "A", "end": "B"}`,
		"long pair":          `{"A": [["B", 1, 2], 0], "start": "A", "end": "B"}`,
		"numeric start":      `{"A": [0], "start": 1, "end": "A"}`,
		"heuristic mid-list": `{"A": [["B", 1], 7, ["C", 1], 0], "start": "A", "end": "B"}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphfile.Decode(strings.NewReader(src))
			assert.ErrorIs(t, err, graphfile.ErrBadFormat)
		})
	}
}

func TestDecode_NegativeValuesRejectedByBuild(t *testing.T) {
	ds, err := graphfile.Decode(strings.NewReader(`{"A": [["B", -1], 0], "start": "A", "end": "B"}`))
	require.NoError(t, err)
	_, err = core.Build(ds)
	assert.ErrorIs(t, err, core.ErrMalformedGraph)
}

func TestEncode_Layout(t *testing.T) {
	ds := core.Dataset{
		Nodes: []core.NodeSpec{
			{Name: "A", Edges: []core.EdgeSpec{{To: "B", Weight: 1.5}}, Heuristic: 3},
			{Name: "B"},
		},
		Start: "A",
		End:   "B",
	}
	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, ds))
	assert.Equal(t, "{\n  \"A\": [[\"B\",1.5], 3],\n  \"B\": [0],\n  \"start\": \"A\",\n  \"end\": \"B\"\n}\n", buf.String())

	back, err := graphfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, ds.Nodes[0], back.Nodes[0])
	assert.Equal(t, "B", back.Nodes[1].Name)
	assert.Equal(t, ds.Start, back.Start)
	assert.Equal(t, ds.End, back.End)
}

func TestEncode_NoHeuristicOmitted(t *testing.T) {
	ds := core.Dataset{
		Nodes: []core.NodeSpec{
			{Name: "A", Edges: []core.EdgeSpec{{To: "B", Weight: 1}}, Heuristic: 2},
			{Name: "A", Edges: []core.EdgeSpec{{To: "C", Weight: 1}}, NoHeuristic: true},
			{Name: "B", Edges: []core.EdgeSpec{}, NoHeuristic: true},
		},
		Start: "A",
		End:   "C",
	}
	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, ds))
	assert.Contains(t, buf.String(), "  \"A\": [[\"C\",1]],\n")
	assert.Contains(t, buf.String(), "  \"B\": [],\n")

	back, err := graphfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, ds.Nodes, back.Nodes)
}
