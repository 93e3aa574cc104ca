// Package server exposes the steppers as a JSON API over chi.
//
// Routes:
//
//	POST /v1/run/{algorithm}  — algorithm ∈ bfs | dfs | articulation;
//	                            body {nodes, edges, start} → {algorithm, steps}
//	GET  /healthz             — liveness probe
//	GET  /metrics             — Prometheus metrics
//
// The engine is stateless, so a Server holds no graph data: every request
// carries its own graph snapshot and receives the fully materialized step
// sequence back. A missing start falls back to the first node, mirroring
// the authoring layer's policy.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/stepgraph/articulation"
	"github.com/katalvlaran/stepgraph/bfs"
	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/dfs"
)

// Algorithm names accepted by the run endpoint.
const (
	AlgoBFS          = "bfs"
	AlgoDFS          = "dfs"
	AlgoArticulation = "articulation"
)

// Server handles step-generation requests.
type Server struct {
	log     *slog.Logger
	metrics *metrics
}

// New returns a Server logging to log (nil defaults to slog.Default()).
func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	return &Server{log: log, metrics: newMetrics()}
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	r.Post("/v1/run/{algorithm}", s.handleRun)

	return r
}

// runRequest is one graph snapshot plus an optional start node.
type runRequest struct {
	Nodes []core.Node `json:"nodes"`
	Edges []core.Edge `json:"edges"`
	Start string      `json:"start,omitempty"`
}

// runResponse carries the materialized sequence back to the caller.
type runResponse struct {
	Algorithm string            `json:"algorithm"`
	Steps     core.StepSequence `json:"steps"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	algo := chi.URLParam(r, "algorithm")

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)

		return
	}

	// Start-node fallback lives here, not in the engine.
	start := req.Start
	if start == "" && len(req.Nodes) > 0 {
		start = req.Nodes[0].ID
	}

	began := time.Now()
	var steps core.StepSequence
	switch algo {
	case AlgoBFS:
		steps = bfs.Run(req.Nodes, req.Edges, start)
	case AlgoDFS:
		steps = dfs.Run(req.Nodes, req.Edges, start)
	case AlgoArticulation:
		steps = articulation.Run(req.Nodes, req.Edges)
	default:
		http.Error(w, fmt.Sprintf("unknown algorithm %q", algo), http.StatusBadRequest)

		return
	}
	s.metrics.observe(algo, len(steps), time.Since(began))
	s.log.Info("run complete",
		"algorithm", algo,
		"nodes", len(req.Nodes),
		"edges", len(req.Edges),
		"steps", len(steps),
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(runResponse{Algorithm: algo, Steps: steps}); err != nil {
		s.log.Error("encode response", "error", err)
	}
}
