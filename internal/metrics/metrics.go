package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	EvaluationsTotal   *prometheus.CounterVec
	AnnouncementsTotal *prometheus.CounterVec
	ContrastRatio      prometheus.Histogram
	AuditEntriesTotal  *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		EvaluationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "contrastcheck_evaluations_total",
				Help: "Total number of contrast evaluations by outcome",
			},
			[]string{"outcome"}, // outcome: pass, fail, no_assessment
		),

		AnnouncementsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "contrastcheck_announcements_total",
				Help: "Total number of accessibility announcements by status",
			},
			[]string{"status"}, // status: sent, failed, skipped
		),

		ContrastRatio: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "contrastcheck_contrast_ratio",
				Help:    "Distribution of computed contrast ratios for opaque pairs",
				Buckets: []float64{1.5, 2, 3, 4.5, 7, 10, 15, 21},
			},
		),

		AuditEntriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "contrastcheck_audit_entries_total",
				Help: "Total number of palette entries processed by audits",
			},
			[]string{"outcome"},
		),
	}
}

// RecordEvaluation counts one evaluation. ratio is ignored when negative.
func (m *Metrics) RecordEvaluation(outcome string, ratio float64) {
	if m == nil {
		return
	}
	m.EvaluationsTotal.WithLabelValues(outcome).Inc()
	if ratio >= 0 {
		m.ContrastRatio.Observe(ratio)
	}
}

// RecordAnnouncement counts one announcement attempt.
func (m *Metrics) RecordAnnouncement(status string) {
	if m == nil {
		return
	}
	m.AnnouncementsTotal.WithLabelValues(status).Inc()
}

// RecordAuditEntry counts one audited palette entry.
func (m *Metrics) RecordAuditEntry(outcome string) {
	if m == nil {
		return
	}
	m.AuditEntriesTotal.WithLabelValues(outcome).Inc()
}
