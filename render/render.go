// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/search"
)

// ErrNilGraph is returned when Render is called without a graph.
var ErrNilGraph = errors.New("render: graph is nil")

// Legend colors.
var (
	ColorStart     = color.RGBA{0, 0, 0, 255}
	ColorGoal      = color.RGBA{220, 20, 20, 255}
	ColorUnvisited = color.RGBA{40, 90, 220, 255}
	ColorVisited   = color.RGBA{30, 170, 60, 255}
	ColorPath      = color.RGBA{245, 200, 20, 255}

	colorBackground = color.White
	colorEdge       = color.RGBA{150, 150, 150, 255}
	colorText       = color.Black
)

const (
	margin       = 40.0
	legendHeight = 30.0
	arrowLen     = 9.0
	arrowHalf    = 4.0
	pairOffset   = 4.0
)

// State classifies a node for coloring.
type State int

const (
	Unvisited State = iota
	Visited
	OnPath
	Start
	Goal
)

// Color returns the legend color of s.
func (s State) Color() color.Color {
	switch s {
	case Start:
		return ColorStart
	case Goal:
		return ColorGoal
	case OnPath:
		return ColorPath
	case Visited:
		return ColorVisited
	default:
		return ColorUnvisited
	}
}

// frame is the search overlay reduced to what one snapshot shows.
type frame struct {
	start, goal string
	step        map[string]int
	path        map[string]bool
	pathEdges   map[[2]string]bool
}

func newFrame(g *core.Graph, res *search.Result, o options) frame {
	f := frame{
		start:     g.Start(),
		goal:      g.End(),
		step:      map[string]int{},
		path:      map[string]bool{},
		pathEdges: map[[2]string]bool{},
	}
	if res != nil {
		f.overlay(res, o.step)
	}
	if o.start != "" {
		f.start = o.start
	}
	if o.end != "" {
		f.goal = o.end
	}

	return f
}

// overlay applies the first k expansions of res (all of them when k < 0)
// and, on the final frame, its path.
func (f *frame) overlay(res *search.Result, k int) {
	visits := res.VisitOrder
	if k >= 0 && k < len(visits) {
		visits = visits[:k]
	}
	for i, n := range visits {
		f.step[n] = i
	}
	if len(res.VisitOrder) > 0 {
		f.start = res.VisitOrder[0]
	}
	if len(res.Path) > 0 {
		f.start, f.goal = res.Path[0], res.Path[len(res.Path)-1]
	}
	if len(visits) < len(res.VisitOrder) {
		return
	}
	for i, n := range res.Path {
		f.path[n] = true
		if i > 0 {
			f.pathEdges[[2]string{res.Path[i-1], n}] = true
		}
	}
}

func (f frame) state(name string) State {
	switch {
	case name == f.start:
		return Start
	case name == f.goal:
		return Goal
	case f.path[name]:
		return OnPath
	}
	if _, ok := f.step[name]; ok {
		return Visited
	}

	return Unvisited
}

// Render draws g and the optional result res. res may be nil.
func Render(g *core.Graph, res *search.Result, opts ...Option) (image.Image, error) {
	dc, err := draw(g, res, opts...)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// WritePNG renders g and res and encodes the snapshot as PNG into w.
func WritePNG(w io.Writer, g *core.Graph, res *search.Result, opts ...Option) error {
	dc, err := draw(g, res, opts...)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

func draw(g *core.Graph, res *search.Result, opts ...Option) (*gg.Context, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}

	dc := gg.NewContext(o.width, o.height)
	dc.SetColor(colorBackground)
	dc.Clear()

	pos := project(g, o)
	f := newFrame(g, res, o)

	drawEdges(dc, g, pos, f, o.radius)
	drawNodes(dc, g, pos, f, o.radius)
	if o.legend {
		drawLegend(dc, o)
	}

	return dc, nil
}

// project maps unit-square positions onto the canvas, inside the margins and
// above the legend strip.
func project(g *core.Graph, o options) map[string]Point {
	names := g.NodeNames()
	unit := CircularLayout(names)
	for name, p := range o.layout {
		if _, ok := unit[name]; ok {
			unit[name] = p
		}
	}

	bottom := float64(o.height) - margin
	if o.legend {
		bottom -= legendHeight
	}
	w := math.Max(1, float64(o.width)-2*margin)
	h := math.Max(1, bottom-margin)
	out := make(map[string]Point, len(unit))
	for name, p := range unit {
		out[name] = Point{X: margin + p.X*w, Y: margin + p.Y*h}
	}

	return out
}

func drawEdges(dc *gg.Context, g *core.Graph, pos map[string]Point, f frame, radius float64) {
	for _, e := range g.Edges() {
		a, b := pos[e.From], pos[e.To]
		dx, dy := b.X-a.X, b.Y-a.Y
		d := math.Hypot(dx, dy)
		if d <= 2*radius {
			continue
		}
		ux, uy := dx/d, dy/d
		// shift to the right of travel so u→v and v→u do not overlap
		var ox, oy float64
		if g.HasEdge(e.To, e.From) {
			ox, oy = -uy*pairOffset, ux*pairOffset
		}
		x1, y1 := a.X+ux*radius+ox, a.Y+uy*radius+oy
		x2, y2 := b.X-ux*radius+ox, b.Y-uy*radius+oy

		onPath := f.pathEdges[[2]string{e.From, e.To}]
		if onPath {
			dc.SetColor(ColorPath)
			dc.SetLineWidth(4)
		} else {
			dc.SetColor(colorEdge)
			dc.SetLineWidth(1.5)
		}
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()

		dc.MoveTo(x2, y2)
		dc.LineTo(x2-ux*arrowLen-uy*arrowHalf, y2-uy*arrowLen+ux*arrowHalf)
		dc.LineTo(x2-ux*arrowLen+uy*arrowHalf, y2-uy*arrowLen-ux*arrowHalf)
		dc.ClosePath()
		dc.Fill()

		dc.SetColor(colorText)
		dc.DrawStringAnchored(strconv.FormatFloat(e.Weight, 'g', -1, 64),
			(x1+x2)/2+ox*2, (y1+y2)/2+oy*2, 0.5, 0.5)
	}
}

func drawNodes(dc *gg.Context, g *core.Graph, pos map[string]Point, f frame, radius float64) {
	for _, name := range g.NodeNames() {
		p := pos[name]
		dc.SetColor(f.state(name).Color())
		dc.DrawCircle(p.X, p.Y, radius)
		dc.Fill()

		dc.SetColor(colorText)
		dc.DrawStringAnchored(name, p.X, p.Y-radius-4, 0.5, 0)
		if i, ok := f.step[name]; ok {
			dc.DrawStringAnchored(strconv.Itoa(i), p.X, p.Y+radius+4, 0.5, 1)
		}
	}
}

var legend = []struct {
	state State
	label string
}{
	{Start, "Initial node"},
	{Goal, "Goal node"},
	{Unvisited, "Unvisited node"},
	{Visited, "Visited node"},
	{OnPath, "Path node"},
}

func drawLegend(dc *gg.Context, o options) {
	const box, gap = 14.0, 125.0
	y := float64(o.height) - legendHeight/2 - margin/2
	x := margin
	for _, item := range legend {
		dc.SetColor(item.state.Color())
		dc.DrawRectangle(x, y-box/2, box, box)
		dc.Fill()
		dc.SetColor(colorText)
		dc.DrawStringAnchored(item.label, x+box+6, y, 0, 0.5)
		x += gap
	}
}
