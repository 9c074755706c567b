// Package metrics holds the Prometheus collectors for the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TDEE evaluation outcomes.
const (
	OutcomeOK               = "ok"
	OutcomeInsufficientData = "insufficient_data"
	OutcomeError            = "error"
)

// Collector provides application metrics collection. A nil *Collector is
// valid and records nothing.
type Collector struct {
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec

	TdeeEvaluationsTotal *prometheus.CounterVec
	TdeeLastEstimate     prometheus.Gauge

	StoreQueryDuration *prometheus.HistogramVec
	StoreErrorsTotal   *prometheus.CounterVec
}

// NewCollector creates the collectors and registers them on reg.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		APIRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests by route, method, and status",
			},
			[]string{"route", "method", "status"},
		),

		APIRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
			},
			[]string{"route"},
		),

		TdeeEvaluationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tdee_evaluations_total",
				Help:      "Total number of TDEE evaluations by outcome",
			},
			[]string{"outcome"},
		),

		TdeeLastEstimate: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tdee_last_estimate_kcal",
				Help:      "Most recent successful TDEE estimate in kcal per day",
			},
		),

		StoreQueryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "store_query_duration_seconds",
				Help:      "Store query duration in seconds by operation",
				Buckets:   []float64{0.0005, 0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5},
			},
			[]string{"operation"},
		),

		StoreErrorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_errors_total",
				Help:      "Total number of store errors by operation",
			},
			[]string{"operation"},
		),
	}
}

// RecordAPIRequest records one served request.
func (c *Collector) RecordAPIRequest(route, method, status string, d time.Duration) {
	if c == nil {
		return
	}
	c.APIRequestsTotal.WithLabelValues(route, method, status).Inc()
	c.APIRequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// RecordTdee records the outcome of one evaluation. amount is only used
// when outcome is OutcomeOK.
func (c *Collector) RecordTdee(outcome string, amount int) {
	if c == nil {
		return
	}
	c.TdeeEvaluationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		c.TdeeLastEstimate.Set(float64(amount))
	}
}

// ObserveStoreQuery records the duration of a store operation started at
// start, counting it as an error when err is non-nil.
func (c *Collector) ObserveStoreQuery(op string, start time.Time, err error) {
	if c == nil {
		return
	}
	c.StoreQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		c.StoreErrorsTotal.WithLabelValues(op).Inc()
	}
}
