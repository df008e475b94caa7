package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"campaignclean/internal/config"
)

const metricsNamespace = "campaignclean"

// RunMetrics collects counters for a single normalizer run. They are written
// once at the end of the run in the node_exporter textfile format.
type RunMetrics struct {
	registry *prometheus.Registry

	ArchivesRead    prometheus.Counter
	MembersParsed   *prometheus.CounterVec
	RowsLoaded      prometheus.Counter
	RowsWritten     *prometheus.CounterVec
	StepDuration    *prometheus.GaugeVec
	StepFailures    *prometheus.CounterVec
	LastSuccessTime prometheus.Gauge
}

// NewRunMetrics registers the run metrics on a private registry
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		ArchivesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "archives_read_total",
			Help:      "Number of input archives opened.",
		}),
		MembersParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "members_parsed_total",
			Help:      "Number of tabular archive members parsed, by format.",
		}, []string{"format"}),
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rows_loaded_total",
			Help:      "Number of rows in the unified record set.",
		}),
		RowsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rows_written_total",
			Help:      "Number of data rows written, by output table.",
		}, []string{"table"}),
		StepDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "step_duration_seconds",
			Help:      "Wall time spent in each run step.",
		}, []string{"step"}),
		StepFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "step_failures_total",
			Help:      "Number of failed run steps, by step and error type.",
		}, []string{"step", "error_type"}),
		LastSuccessTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run.",
		}),
	}

	m.registry.MustRegister(
		m.ArchivesRead,
		m.MembersParsed,
		m.RowsLoaded,
		m.RowsWritten,
		m.StepDuration,
		m.StepFailures,
		m.LastSuccessTime,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveStep records how long a step took
func (m *RunMetrics) ObserveStep(step string, d time.Duration) {
	m.StepDuration.WithLabelValues(step).Set(d.Seconds())
}

// MarkSuccess stamps the last-success gauge
func (m *RunMetrics) MarkSuccess(now time.Time) {
	m.LastSuccessTime.Set(float64(now.Unix()))
}

// WriteTextfile writes all metrics to path. The write is atomic, so a
// collector never sees a half-written file.
func (m *RunMetrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), config.DirPerm); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
