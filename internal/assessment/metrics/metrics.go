package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the assessment subsystem.
type Metrics struct {
	Submitted       prometheus.Counter
	Rejected        prometheus.Counter
	HistoryArchived prometheus.Counter
	SubmitDuration  prometheus.Histogram
}

// New creates and registers assessment metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		Submitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "assure_assessments_submitted_total",
			Help: "Total assessments successfully written.",
		}),
		Rejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "assure_assessments_rejected_total",
			Help: "Total assessment submissions rejected by validation.",
		}),
		HistoryArchived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "assure_history_entries_archived_total",
			Help: "Total history entries archived.",
		}),
		SubmitDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "assure_assessment_submit_duration_seconds",
			Help:    "Latency of the assessment write path.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// All recorders are nil-safe so tests can run without a registry.

func (m *Metrics) IncSubmitted() {
	if m == nil {
		return
	}
	m.Submitted.Inc()
}

func (m *Metrics) IncRejected() {
	if m == nil {
		return
	}
	m.Rejected.Inc()
}

func (m *Metrics) IncHistoryArchived() {
	if m == nil {
		return
	}
	m.HistoryArchived.Inc()
}

func (m *Metrics) ObserveSubmit(seconds float64) {
	if m == nil {
		return
	}
	m.SubmitDuration.Observe(seconds)
}
