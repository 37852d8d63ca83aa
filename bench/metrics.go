package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of a benchmark session in a
// private registry. A nil *Metrics records nothing.
type Metrics struct {
	reg *prometheus.Registry

	// runs counts finished runs. Labels: variant
	runs *prometheus.CounterVec
	// iterations counts main-loop iterations. Labels: variant
	iterations *prometheus.CounterVec
	// improvements counts incumbent replacements. Labels: variant
	improvements *prometheus.CounterVec
	// infeasible counts runs whose best solution violates the constraints. Labels: variant
	infeasible *prometheus.CounterVec
	// duration measures wall time per run. Labels: variant
	duration *prometheus.HistogramVec
	// bestCost is the best cost of the latest record. Labels: variant, case
	bestCost *prometheus.GaugeVec
}

// NewMetrics registers the collectors under namespace in a new registry.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grasp",
			Name:      "runs_total",
			Help:      "Total finished GRASP runs",
		}, []string{"variant"}),
		iterations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grasp",
			Name:      "iterations_total",
			Help:      "Total GRASP main-loop iterations",
		}, []string{"variant"}),
		improvements: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grasp",
			Name:      "improvements_total",
			Help:      "Total incumbent replacements",
		}, []string{"variant"}),
		infeasible: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grasp",
			Name:      "infeasible_runs_total",
			Help:      "Total runs whose best solution is infeasible",
		}, []string{"variant"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "grasp",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one GRASP run in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"variant"}),
		bestCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "grasp",
			Name:      "best_cost",
			Help:      "Best cost of the latest benchmark record",
		}, []string{"variant", "case"}),
	}
}

// Registry returns the private registry, for scraping or testing.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile writes every collected metric to path in the text
// exposition format used by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

func (m *Metrics) observeRun(variant string, o runOutcome) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(variant).Inc()
	m.iterations.WithLabelValues(variant).Add(float64(o.iterations))
	m.improvements.WithLabelValues(variant).Add(float64(o.improved))
	if !o.feasible {
		m.infeasible.WithLabelValues(variant).Inc()
	}
	m.duration.WithLabelValues(variant).Observe(o.ms / 1000.0)
}

func (m *Metrics) observeRecord(r Record) {
	if m == nil {
		return
	}
	m.bestCost.WithLabelValues(r.Variant, r.Case).Set(r.BestCost)
}
