package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpilot/internal/core/domain"
)

// Collector owns the service's prometheus registry and the evaluation
// metrics. A nil *Collector is a no-op, so metrics stay optional in tests.
type Collector struct {
	registry           *prometheus.Registry
	evaluationsTotal   *prometheus.CounterVec
	evaluationDuration prometheus.Histogram
	bulkSize           prometheus.Histogram
}

// NewCollector builds a collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		evaluationsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "campaign_evaluations_total",
			Help: "Total number of campaign rule evaluations by triggered rule",
		}, []string{"rule"}),
		evaluationDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "campaign_evaluation_duration_seconds",
			Help:    "Time taken to evaluate and persist a single campaign",
			Buckets: prometheus.DefBuckets,
		}),
		bulkSize: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "campaign_bulk_evaluation_size",
			Help:    "Number of campaigns covered by a bulk evaluation run",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000},
		}),
	}
}

// RecordEvaluation counts one evaluation outcome. An empty rule is reported
// under the no_restrictions label.
func (c *Collector) RecordEvaluation(rule domain.RuleName) {
	if c == nil {
		return
	}
	if rule == "" {
		rule = domain.RuleNoRestrictions
	}
	c.evaluationsTotal.WithLabelValues(string(rule)).Inc()
}

// RecordDuration tracks how long a single-campaign evaluation round trip
// took, persistence included.
func (c *Collector) RecordDuration(d time.Duration) {
	if c == nil {
		return
	}
	c.evaluationDuration.Observe(d.Seconds())
}

// RecordBulk records the size of a bulk run.
func (c *Collector) RecordBulk(campaigns int) {
	if c == nil {
		return
	}
	c.bulkSize.Observe(float64(campaigns))
}

// Handler serves the registry in the prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
