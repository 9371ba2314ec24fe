// Package metrics exports simulation-run counters and histograms via a
// Prometheus HTTP endpoint: an exporter producing metrics about this
// process's own simulation workload (battles run, battle length, optimizer
// wall-clock), built with the promauto registration style.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every counter/histogram this process exports. The `run`
// subcommand creates one Metrics value when --metrics-addr is set; the
// `optimize` subcommand creates none.
type Metrics struct {
	registry *prometheus.Registry

	BattlesRun       prometheus.Counter
	BattleLength     prometheus.Histogram
	RunOutcomes      *prometheus.CounterVec
	OptimizerRuntime prometheus.Histogram
}

// New creates and registers a fresh metric set against its own registry,
// so multiple independent runs (e.g. in tests) never collide on global
// registration.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry:         reg,
		BattlesRun: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "battlesim",
			Name:      "battles_run_total",
			Help:      "Total number of individual battles simulated.",
		}),
		BattleLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "battlesim",
			Name:      "battle_length_rounds",
			Help:      "Number of attack rounds a battle took to resolve.",
			Buckets:   prometheus.LinearBuckets(1, 5, 10),
		}),
		RunOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "battlesim",
			Name:      "run_outcomes_total",
			Help:      "Count of simulation runs by objective and outcome.",
		}, []string{"objective", "outcome"}),
		OptimizerRuntime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "battlesim",
			Name:      "optimizer_permutation_seconds",
			Help:      "Wall-clock time spent evaluating one board permutation during optimization.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Registry returns the registry m's metrics were registered against, for
// handing to NewServer.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveBattle records one completed battle's length in attack rounds.
func (m *Metrics) ObserveBattle(rounds int) {
	m.BattlesRun.Inc()
	m.BattleLength.Observe(float64(rounds))
}

// ObserveOutcome records one simulation run's outcome under the given
// objective ("score", "winrate", "damagetaken", "deathrate") as
// "win"/"draw"/"loss" from player 0's perspective.
func (m *Metrics) ObserveOutcome(objective, outcome string) {
	m.RunOutcomes.WithLabelValues(objective, outcome).Inc()
}

// ObserveOptimizerPermutation records how long one permutation's evaluation
// took during OptimizeMinionOrder.
func (m *Metrics) ObserveOptimizerPermutation(elapsed time.Duration) {
	m.OptimizerRuntime.Observe(elapsed.Seconds())
}

// Server serves /metrics on addr until ctx is cancelled: a context-scoped
// background server rather than a bare http.ListenAndServe call.
type Server struct {
	httpServer *http.Server
}

// NewServer builds an HTTP server exposing m's registry at /metrics.
func NewServer(addr string, reg *prometheus.Registry) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &Server{httpServer: &http.Server{Addr: addr, Handler: mux}}
}

// Run starts serving and blocks until ctx is cancelled or the server fails.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
