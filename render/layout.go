// SPDX-License-Identifier: MIT

package render

import "math"

// CircularLayout spreads names evenly on a circle inside the unit square,
// starting at twelve o'clock and running clockwise.
func CircularLayout(names []string) map[string]Point {
	out := make(map[string]Point, len(names))
	n := float64(len(names))
	for i, name := range names {
		theta := 2*math.Pi*float64(i)/n - math.Pi/2
		out[name] = Point{X: 0.5 + 0.5*math.Cos(theta), Y: 0.5 + 0.5*math.Sin(theta)}
	}

	return out
}

// FitLayout rescales arbitrary coordinates (e.g. longitude/latitude) into the
// unit square, preserving aspect ratio. Y grows downward, so callers passing
// latitudes should negate them.
func FitLayout(coords map[string]Point) map[string]Point {
	if len(coords) == 0 {
		return map[string]Point{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range coords {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	out := make(map[string]Point, len(coords))
	for name, p := range coords {
		out[name] = Point{X: (p.X - minX) / span, Y: (p.Y - minY) / span}
	}

	return out
}
