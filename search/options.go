// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"io"
	"log/slog"
)

// Option configures an Engine via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds engine-wide configuration. Options are immutable once the
// Engine is built, so they never carry per-search state.
type Options struct {
	// MaxExpansions, if > 0, caps the number of expansions per search.
	// A value of 0 disables the cap.
	MaxExpansions int

	// OnExpand is called every time a node is expanded, with its zero-based
	// position in VisitOrder.
	OnExpand func(name string, step int)

	// Logger receives a debug record per finished search.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no expansion cap
//   - a no-op OnExpand hook
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		OnExpand:      func(string, int) {},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxExpansions caps expansions per search.
//
//	n > 0: at most n nodes are expanded; the next one yields ErrExpansionLimit
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(name string, step int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
