package output

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/sweep"
)

// Metrics collects batch statistics for a Prometheus textfile collector.
type Metrics struct {
	registry *prometheus.Registry
	points   *prometheus.CounterVec
	warnings *prometheus.CounterVec
	failures *prometheus.CounterVec
	modes    prometheus.Histogram
	duration *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seaecho_points_total",
			Help: "Evaluated sweep points.",
		}, []string{"sweep", "model"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seaecho_warnings_total",
			Help: "Advisory conditions attached to results.",
		}, []string{"sweep", "reason"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seaecho_failures_total",
			Help: "Sweep points that produced no result.",
		}, []string{"sweep", "reason"}),
		modes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "seaecho_modes_used",
			Help:    "Partial-wave modes summed per modal evaluation.",
			Buckets: prometheus.ExponentialBuckets(2, 2, 9),
		}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "seaecho_sweep_duration_seconds",
			Help: "Wall time of a sweep.",
		}, []string{"sweep"}),
	}
	m.registry.MustRegister(m.points, m.warnings, m.failures, m.modes, m.duration)
	return m
}

func reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, acoustic.ErrOutOfValidityRange):
		return "validity"
	case errors.Is(err, acoustic.ErrConvergenceIncomplete):
		return "convergence"
	case errors.Is(err, acoustic.ErrNumericalInstability):
		return "instability"
	case errors.Is(err, acoustic.ErrInvalidMaterial), errors.Is(err, acoustic.ErrInvalidScattererGeometry):
		return "input"
	default:
		return "other"
	}
}

// Observe records the rows of one sweep.
func (m *Metrics) Observe(name string, rows []sweep.Row, seconds float64) {
	for _, r := range rows {
		if r.Err != nil {
			m.failures.WithLabelValues(name, reason(r.Err)).Inc()
			continue
		}
		m.points.WithLabelValues(name, r.Model).Inc()
		for _, w := range r.Record.Warnings {
			m.warnings.WithLabelValues(name, reason(w)).Inc()
		}
		if r.Record.ModesUsed > 0 {
			m.modes.Observe(float64(r.Record.ModesUsed))
		}
	}
	m.duration.WithLabelValues(name).Set(seconds)
}

func (m *Metrics) Write(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
