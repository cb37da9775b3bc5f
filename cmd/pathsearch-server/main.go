// SPDX-License-Identifier: MIT

// Command pathsearch-server serves a graph file over the httpapi routes.
//
// Configuration comes from PATHSEARCH_* environment variables, optionally
// seeded from a .env file in the working directory:
//
//	PATHSEARCH_GRAPH=graphs/romania.json PATHSEARCH_ADDR=:8080 pathsearch-server
//
// SIGINT or SIGTERM drains in-flight requests before exiting. SIGHUP reloads
// the graph file.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/pathsearch/config"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/graphfile"
	"github.com/katalvlaran/pathsearch/httpapi"
	"github.com/katalvlaran/pathsearch/render"
	"github.com/katalvlaran/pathsearch/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathsearch-server:", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stderr)
	if cfg.SlogLevel() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := serve(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func serve(cfg *config.Config, logger *slog.Logger) error {
	load := func() (*core.Graph, error) {
		return graphfile.Load(cfg.GraphPath, graphfile.WithLogger(logger))
	}
	g, err := load()
	if err != nil {
		return err
	}

	srv, err := httpapi.New(g,
		httpapi.WithLogger(logger),
		httpapi.WithLoader(load),
		httpapi.WithCORSOrigins(cfg.CORSOrigins...),
		httpapi.WithSearchOptions(search.WithMaxExpansions(cfg.MaxExpansions)),
		httpapi.WithRenderOptions(render.WithSize(cfg.RenderWidth, cfg.RenderHeight)),
	)
	if err != nil {
		return err
	}
	handler, err := srv.Handler()
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				if _, err := srv.Reload(); err != nil {
					logger.Error("reload failed", "error", err)
				}
			}
		}
	}()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "graph", g.Name())
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err = <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err = httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
