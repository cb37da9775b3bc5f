// SPDX-License-Identifier: MIT

// Command pathsearch runs one or all search algorithms over a graph file or a
// generated graph and prints the visit order, path and cost.
//
// Usage:
//
//	pathsearch -graph graphs/romania.json -algorithm astar
//	pathsearch -graph graphs/romania.json -algorithm all -end Craiova
//	pathsearch -generate grid:5x5 -algorithm dijkstra -png grid.png
//	pathsearch -graph graphs/romania.json -pack romania.mpz
//	pathsearch -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/graphfile"
	"github.com/katalvlaran/pathsearch/render"
	"github.com/katalvlaran/pathsearch/search"
)

const algorithmAll = "all"

type cliFlags struct {
	graph         string
	generate      string
	seed          int64
	algorithm     string
	start, end    string
	png           string
	step          int
	pack          string
	maxExpansions int
	list          bool
	verbose       bool
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, search.ErrExpansionLimit):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "pathsearch:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("pathsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.graph, "graph", "", "graph file (.json or .mpz)")
	fs.StringVar(&f.generate, "generate", "", "generate a graph instead: grid:RxC, chain:N, cycle:N, star:N, complete:N or random:N:P")
	fs.Int64Var(&f.seed, "seed", 1, "random seed for -generate random")
	fs.StringVar(&f.algorithm, "algorithm", string(search.AStar), "algorithm id, or \"all\"")
	fs.StringVar(&f.start, "start", "", "start node (default: the graph's)")
	fs.StringVar(&f.end, "end", "", "end node (default: the graph's)")
	fs.StringVar(&f.png, "png", "", "write a PNG snapshot of the search to this path")
	fs.IntVar(&f.step, "step", -1, "with -png, draw the frame after this many expansions")
	fs.StringVar(&f.pack, "pack", "", "write the dataset to this path (.mpz or .json) and exit")
	fs.IntVar(&f.maxExpansions, "max-expansions", 0, "cap expansions per search (0 = no cap)")
	fs.BoolVar(&f.list, "list", false, "list algorithms and exit")
	fs.BoolVar(&f.verbose, "v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	if !f.list && (f.graph == "") == (f.generate == "") {
		return f, errors.New("exactly one of -graph or -generate is required")
	}
	if f.png != "" && f.algorithm == algorithmAll {
		return f, errors.New("-png needs a single -algorithm")
	}

	return f, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if f.list {
		for _, a := range search.Algorithms() {
			fmt.Fprintf(stdout, "%-9s %s\n", a, a.Label())
		}
		return nil
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g, err := loadGraph(f, logger)
	if err != nil {
		return err
	}
	if f.pack != "" {
		if err = graphfile.Save(f.pack, g.Dataset(), graphfile.WithLogger(logger)); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s (%d nodes, %d edges)\n", f.pack, g.NodeCount(), g.EdgeCount())
		return nil
	}

	eng, err := search.New(g, search.WithMaxExpansions(f.maxExpansions), search.WithLogger(logger))
	if err != nil {
		return err
	}
	start, end := f.start, f.end
	if start == "" {
		start = g.Start()
	}
	if end == "" {
		end = g.End()
	}

	algs := search.Algorithms()
	if f.algorithm != algorithmAll {
		alg, err := search.ParseAlgorithm(f.algorithm)
		if err != nil {
			return err
		}
		algs = []search.Algorithm{alg}
	}

	fmt.Fprintf(stdout, "graph %s: %d nodes, %d edges, %s -> %s\n", g.Name(), g.NodeCount(), g.EdgeCount(), start, end)
	var limited error
	for _, alg := range algs {
		res, err := eng.Run(alg, start, end)
		if err != nil && !errors.Is(err, search.ErrExpansionLimit) {
			return err
		}
		printResult(stdout, res, err)
		if err != nil {
			limited = err
		}
		if f.png != "" {
			if err := writePNG(f.png, g, res, start, end, f.step); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "  snapshot: %s\n", f.png)
		}
	}

	return limited
}

func loadGraph(f cliFlags, logger *slog.Logger) (*core.Graph, error) {
	if f.generate != "" {
		return generate(f.generate, f.seed)
	}

	return graphfile.Load(f.graph, graphfile.WithLogger(logger))
}

func printResult(w io.Writer, res *search.Result, err error) {
	fmt.Fprintf(w, "\n%s (%s)\n", res.Algorithm.Label(), res.Algorithm)
	fmt.Fprintf(w, "  visited:  %s\n", strings.Join(res.VisitOrder, ", "))
	switch {
	case err != nil:
		fmt.Fprintf(w, "  stopped:  %v\n", err)
	case res.Found:
		fmt.Fprintf(w, "  path:     %s\n", strings.Join(res.Path, " -> "))
		fmt.Fprintf(w, "  cost:     %g\n", res.Cost)
	default:
		fmt.Fprintln(w, "  path:     (unreachable)")
	}
	fmt.Fprintf(w, "  expanded: %d\n", res.Expanded())
}

func writePNG(path string, g *core.Graph, res *search.Result, start, end string, step int) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return render.WritePNG(out, g, res, render.WithEndpoints(start, end), render.WithStep(step))
}
