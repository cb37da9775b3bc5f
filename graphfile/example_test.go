package graphfile_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/graphfile"
	"github.com/katalvlaran/pathsearch/search"
)

// ExampleDecode reads the JSON graph format and runs A* on it.
func ExampleDecode() {
	src := `{
		"A": [["B", 1], ["C", 5], 2],
		"B": [["C", 1], 1],
		"C": [0],
		"start": "A",
		"end": "C"
	}`
	ds, err := graphfile.Decode(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := core.Build(ds)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	eng, _ := search.New(g)
	res, _ := eng.AStar(g.Start(), g.End())
	fmt.Println(res.Path, res.Cost)
	// Output:
	// [A B C] 2
}

// ExampleLoad loads the bundled Romania road map.
func ExampleLoad() {
	g, err := graphfile.Load("testdata/romania.json")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	eng, _ := search.New(g)
	res, _ := eng.Greedy(g.Start(), g.End())
	fmt.Println(g.Name(), g.NodeCount(), res.Path, res.Cost)
	// Output:
	// romania.json 20 [Arad Sibiu Fagaras Bucharest] 450
}
