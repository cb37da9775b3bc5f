// SPDX-License-Identifier: MIT

package httpapi

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/render"
	"github.com/katalvlaran/pathsearch/search"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned by New and Swap without a graph.
	ErrNilGraph = errors.New("httpapi: graph is nil")

	// ErrNoLoader is returned by Reload when the server has no Loader.
	ErrNoLoader = errors.New("httpapi: reload not configured")
)

// Loader produces a fresh Graph, typically by re-reading a file.
type Loader func() (*core.Graph, error)

// snapshot is one immutable Graph together with the Engine bound to it.
type snapshot struct {
	graph    *core.Graph
	engine   *search.Engine
	loadedAt time.Time
}

// Server serves one swappable graph snapshot.
type Server struct {
	current atomic.Pointer[snapshot]

	loader      Loader
	logger      *slog.Logger
	searchOpts  []search.Option
	renderOpts  []render.Option
	corsOrigins []string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and reload logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoader enables POST /api/reload.
func WithLoader(fn Loader) Option {
	return func(s *Server) { s.loader = fn }
}

// WithSearchOptions applies opts to every Engine the server builds.
func WithSearchOptions(opts ...search.Option) Option {
	return func(s *Server) { s.searchOpts = append(s.searchOpts, opts...) }
}

// WithRenderOptions applies opts to every PNG snapshot.
func WithRenderOptions(opts ...render.Option) Option {
	return func(s *Server) { s.renderOpts = append(s.renderOpts, opts...) }
}

// WithCORSOrigins restricts cross-origin access. "*" or no origins allows all.
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) { s.corsOrigins = origins }
}

// New serves g. Search options are checked here, so a bad cap fails fast.
func New(g *core.Graph, opts ...Option) (*Server, error) {
	s := &Server{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Swap(g); err != nil {
		return nil, err
	}

	return s, nil
}

// Swap replaces the served graph. Requests already running keep the old one.
func (s *Server) Swap(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	eng, err := search.New(g, append([]search.Option{search.WithLogger(s.logger)}, s.searchOpts...)...)
	if err != nil {
		return err
	}
	s.current.Store(&snapshot{graph: g, engine: eng, loadedAt: time.Now()})

	return nil
}

// Reload calls the Loader and swaps in its graph. On failure the current
// graph stays in place.
func (s *Server) Reload() (*core.Graph, error) {
	if s.loader == nil {
		return nil, ErrNoLoader
	}
	g, err := s.loader()
	if err != nil {
		return nil, fmt.Errorf("httpapi: reload: %w", err)
	}
	if err = s.Swap(g); err != nil {
		return nil, err
	}
	s.logger.Info("graph reloaded", "graph", g.Name(), "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, nil
}

// Graph returns the graph currently served.
func (s *Server) Graph() *core.Graph { return s.current.Load().graph }

// Handler builds the gin router. It fails when the CORS origins are invalid.
func (s *Server) Handler() (http.Handler, error) {
	corsCfg := cors.DefaultConfig()
	if len(s.corsOrigins) == 0 || (len(s.corsOrigins) == 1 && s.corsOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.corsOrigins
	}
	corsCfg.AddExposeHeaders(HeaderRequestID)
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("httpapi: cors: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger), cors.New(corsCfg))

	r.GET("/healthz", s.handleHealth)
	api := r.Group("/api")
	api.GET("/algorithms", s.handleAlgorithms)
	api.GET("/graph", s.handleGraph)
	api.POST("/search", s.handleSearch)
	api.GET("/render.png", s.handleRender)
	api.POST("/reload", s.handleReload)

	return r, nil
}
