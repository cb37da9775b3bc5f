// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
)

// ErrBadOption is returned by Render when an Option carries an invalid value.
var ErrBadOption = errors.New("render: invalid option")

// Default canvas, matching the desktop visualizer window.
const (
	DefaultWidth  = 960
	DefaultHeight = 740
	DefaultRadius = 14.0
)

// Point is a position in the unit square; (0,0) is the top-left corner.
type Point struct {
	X, Y float64
}

// Option configures a rendering.
type Option func(*options)

type options struct {
	width, height int
	radius        float64
	layout        map[string]Point
	step          int
	legend        bool
	start, end    string
	err           error
}

func newOptions(opts ...Option) options {
	o := options{
		width:  DefaultWidth,
		height: DefaultHeight,
		radius: DefaultRadius,
		step:   -1,
		legend: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width <= 0 || height <= 0 {
			o.err = fmt.Errorf("%w: size %dx%d", ErrBadOption, width, height)
			return
		}
		o.width, o.height = width, height
	}
}

// WithRadius sets the node radius in pixels.
func WithRadius(r float64) Option {
	return func(o *options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: radius %g", ErrBadOption, r)
			return
		}
		o.radius = r
	}
}

// WithLayout places nodes at the given unit-square positions. Nodes missing
// from layout keep their circular position.
func WithLayout(layout map[string]Point) Option {
	return func(o *options) {
		o.layout = layout
	}
}

// WithStep renders the frame after the first k expansions. The path is only
// drawn once k covers the whole visit order. Negative k means "final frame".
func WithStep(k int) Option {
	return func(o *options) {
		o.step = k
	}
}

// WithEndpoints marks the start and goal nodes explicitly. By default they
// are taken from the result path, then the graph.
func WithEndpoints(start, end string) Option {
	return func(o *options) {
		o.start, o.end = start, end
	}
}

// WithoutLegend hides the color legend strip.
func WithoutLegend() Option {
	return func(o *options) {
		o.legend = false
	}
}
