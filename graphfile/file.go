// SPDX-License-Identifier: MIT

package graphfile

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
)

// File extensions recognised by Load and Save.
const (
	ExtJSON    = ".json"
	ExtCompact = ".mpz"
)

// Option configures Load and Save.
type Option func(*options)

type options struct {
	logger *slog.Logger
	gopts  []core.GraphOption
}

func newOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes load/save records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithGraphOptions forwards options to core.Build.
func WithGraphOptions(gopts ...core.GraphOption) Option {
	return func(o *options) {
		o.gopts = append(o.gopts, gopts...)
	}
}

// ReadDataset opens path and decodes it according to its extension.
// An unnamed dataset is named after the file base name.
func ReadDataset(path string) (core.Dataset, error) {
	var decode func(io.Reader) (core.Dataset, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtJSON:
		decode = Decode
	case ExtCompact:
		decode = DecodeCompact
	default:
		return core.Dataset{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return core.Dataset{}, err
	}
	defer f.Close()

	ds, err := decode(f)
	if err != nil {
		return core.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = filepath.Base(path)
	}

	return ds, nil
}

// Load reads path and builds an immutable graph from it.
func Load(path string, opts ...Option) (*core.Graph, error) {
	o := newOptions(opts...)
	o.logger.Info("loading graph file", "path", path)

	ds, err := ReadDataset(path)
	if err != nil {
		return nil, err
	}
	gopts := append([]core.GraphOption{core.WithName(ds.Name)}, o.gopts...)
	g, err := core.Build(ds, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	o.logger.Info("graph file loaded",
		"path", path,
		"name", g.Name(),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"start", g.Start(),
		"end", g.End(),
	)

	return g, nil
}

// Save validates ds and writes it to path in the format implied by the extension.
func Save(path string, ds core.Dataset, opts ...Option) (err error) {
	o := newOptions(opts...)

	var encode func(io.Writer, core.Dataset) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtJSON:
		encode = Encode
	case ExtCompact:
		encode = EncodeCompact
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err = ds.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = encode(f, ds); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	o.logger.Info("graph file saved", "path", path, "nodes", len(ds.Nodes))

	return nil
}
