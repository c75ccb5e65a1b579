package observability

import (
	"github.com/couchcryptid/polar-risk-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "polar_risk"

// Metrics holds the Prometheus collectors for risk assessments.
type Metrics struct {
	Assessments        prometheus.Counter
	AssessmentErrors   prometheus.Counter
	AssessmentDuration prometheus.Histogram
	RiskIndex          prometheus.Gauge
	RiskStatus         *prometheus.GaugeVec // labels: status={Low,Moderate,High,Extreme}

	// Publishing metrics.
	PublishErrors  prometheus.Counter
	PublishEnabled prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Assessments,
		m.AssessmentErrors,
		m.AssessmentDuration,
		m.RiskIndex,
		m.RiskStatus,
		m.PublishErrors,
		m.PublishEnabled,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Assessments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Total successful risk assessments.",
		}),
		AssessmentErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessment_errors_total",
			Help:      "Total assessments aborted by a reading or configuration error.",
		}),
		AssessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assessment_duration_seconds",
			Help:      "Duration of a read-assess-publish cycle.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		RiskIndex: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "risk_index",
			Help:      "Most recent composite risk index (0-100).",
		}),
		RiskStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "risk_status",
			Help:      "1 for the most recent risk status, 0 for the others.",
		}, []string{"status"}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Total assessment events that failed to publish.",
		}),
		PublishEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "publish_enabled",
			Help:      "1 when assessment publishing is enabled, 0 otherwise.",
		}),
	}
}

// ObserveAssessment records the index and flips the status gauges.
func (m *Metrics) ObserveAssessment(a domain.Assessment) {
	m.Assessments.Inc()
	m.RiskIndex.Set(a.RiskIndex)
	for _, s := range domain.Statuses() {
		v := 0.0
		if s == a.Status {
			v = 1
		}
		m.RiskStatus.WithLabelValues(s.String()).Set(v)
	}
}
