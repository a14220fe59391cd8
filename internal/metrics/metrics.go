// Package metrics exposes solver observability on a private Prometheus
// registry, served by the HTTP adapter under /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

type Metrics struct {
	registry *prometheus.Registry

	solves        *prometheus.CounterVec
	solveDuration prometheus.Histogram
	searchNodes   prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sudoku",
			Name:      "solves_total",
			Help:      "Solve calls by verdict.",
		}, []string{"verdict"}),
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sudoku",
			Name:      "solve_duration_seconds",
			Help:      "Wall time per solve call.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		searchNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sudoku",
			Name:      "search_nodes",
			Help:      "Search nodes expanded per solve call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
}

// ObserveSolve records one finished solve call.
func (m *Metrics) ObserveSolve(verdict domain.Verdict, st ports.Stats) {
	m.solves.WithLabelValues(verdict.String()).Inc()
	m.solveDuration.Observe(st.Duration.Seconds())
	m.searchNodes.Observe(float64(st.Nodes))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
