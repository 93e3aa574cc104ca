package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics bundles the per-Server Prometheus collectors on a private
// registry, so multiple Servers (and tests) never collide.
type metrics struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	steps    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepgraph_runs_total",
				Help: "Total number of step-generation runs",
			},
			[]string{"algorithm"},
		),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepgraph_steps_generated_total",
				Help: "Total number of steps generated",
			},
			[]string{"algorithm"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "stepgraph_run_duration_seconds",
				Help: "Duration of step-generation runs",
			},
			[]string{"algorithm"},
		),
	}
	m.registry.MustRegister(m.runs, m.steps, m.duration)

	return m
}

func (m *metrics) observe(algorithm string, steps int, d time.Duration) {
	m.runs.WithLabelValues(algorithm).Inc()
	m.steps.WithLabelValues(algorithm).Add(float64(steps))
	m.duration.WithLabelValues(algorithm).Observe(d.Seconds())
}
