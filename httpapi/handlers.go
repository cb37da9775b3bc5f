// SPDX-License-Identifier: MIT

package httpapi

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/pathsearch/render"
	"github.com/katalvlaran/pathsearch/search"
)

// AlgorithmInfo is one entry of the algorithm menu.
type AlgorithmInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NodeView describes a node for the visualizer.
type NodeView struct {
	Name      string  `json:"name"`
	Heuristic float64 `json:"heuristic"`
}

// EdgeView describes a directed edge for the visualizer.
type EdgeView struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// GraphView is the body of GET /api/graph.
type GraphView struct {
	Name     string     `json:"name"`
	Start    string     `json:"start"`
	End      string     `json:"end"`
	Nodes    []NodeView `json:"nodes"`
	Edges    []EdgeView `json:"edges"`
	LoadedAt time.Time  `json:"loadedAt"`
}

// SearchRequest is the body of POST /api/search. Empty endpoints default to
// the graph's start and end.
type SearchRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	Start     string `json:"start" binding:"max=256"`
	End       string `json:"end" binding:"max=256"`
}

// SearchResponse wraps a result with the endpoints that were actually used.
type SearchResponse struct {
	*search.Result
	Start    string `json:"start"`
	End      string `json:"end"`
	Expanded int    `json:"expanded"`
}

// ErrorResponse is the body of every failed request. Result is set when a
// search stopped at the expansion cap.
type ErrorResponse struct {
	Error     string          `json:"error"`
	RequestID string          `json:"requestId,omitempty"`
	Result    *SearchResponse `json:"result,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "graph": s.Graph().Name()})
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	algs := search.Algorithms()
	out := make([]AlgorithmInfo, len(algs))
	for i, a := range algs {
		out[i] = AlgorithmInfo{ID: string(a), Label: a.Label()}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGraph(c *gin.Context) {
	snap := s.current.Load()
	g := snap.graph

	view := GraphView{
		Name:     g.Name(),
		Start:    g.Start(),
		End:      g.End(),
		Nodes:    make([]NodeView, 0, g.NodeCount()),
		Edges:    make([]EdgeView, 0, g.EdgeCount()),
		LoadedAt: snap.loadedAt,
	}
	for _, n := range g.Nodes() {
		view.Nodes = append(view.Nodes, NodeView{Name: n.Name, Heuristic: n.Heuristic})
	}
	for _, e := range g.Edges() {
		view.Edges = append(view.Edges, EdgeView{From: e.From, To: e.To, Weight: e.Weight})
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	snap := s.current.Load()
	start, end := endpoints(snap, req.Start, req.End)
	res, err := snap.engine.Search(req.Algorithm, start, end)
	if err != nil && !errors.Is(err, search.ErrExpansionLimit) {
		s.fail(c, statusOf(err), err)
		return
	}

	body := &SearchResponse{Result: res, Start: start, End: end, Expanded: res.Expanded()}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:     err.Error(),
			RequestID: c.GetString(ctxRequestID),
			Result:    body,
		})
		return
	}
	c.JSON(http.StatusOK, body)
}

// handleRender draws the graph alone, or with the outcome of ?algorithm=.
// ?step=k limits the overlay to the first k expansions.
func (s *Server) handleRender(c *gin.Context) {
	snap := s.current.Load()
	start, end := endpoints(snap, c.Query("start"), c.Query("end"))

	opts := append([]render.Option{render.WithEndpoints(start, end)}, s.renderOpts...)
	if raw := c.Query("step"); raw != "" {
		k, err := strconv.Atoi(raw)
		if err != nil {
			s.fail(c, http.StatusBadRequest, errors.New("httpapi: step must be an integer"))
			return
		}
		opts = append(opts, render.WithStep(k))
	}

	var res *search.Result
	if name := c.Query("algorithm"); name != "" {
		var err error
		res, err = snap.engine.Search(name, start, end)
		if err != nil && !errors.Is(err, search.ErrExpansionLimit) {
			s.fail(c, statusOf(err), err)
			return
		}
	}

	var buf bytes.Buffer
	if err := render.WritePNG(&buf, snap.graph, res, opts...); err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleReload(c *gin.Context) {
	g, err := s.Reload()
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"graph": g.Name(), "nodes": g.NodeCount(), "edges": g.EdgeCount()})
}

// endpoints fills empty start/end from the graph.
func endpoints(snap *snapshot, start, end string) (string, string) {
	if start == "" {
		start = snap.graph.Start()
	}
	if end == "" {
		end = snap.graph.End()
	}

	return start, end
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, search.ErrUnknownNode),
		errors.Is(err, render.ErrBadOption):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoLoader):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", c.GetString(ctxRequestID), "error", err)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), RequestID: c.GetString(ctxRequestID)})
}
