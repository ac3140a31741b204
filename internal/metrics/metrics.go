// Package metrics provides Prometheus metric collection for the API
// gateway's upstream calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the collection interface the gateway client uses.
type Recorder interface {
	RecordUpstreamCall(service, outcome string)
	RecordUpstreamLatency(service string, duration time.Duration)
}

// Upstream call outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeNotFound    = "not_found"
	OutcomeError       = "error"
	OutcomeUnreachable = "unreachable"
)

// Collector collects Prometheus metrics for upstream calls.
type Collector struct {
	upstreamCalls   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

// NewCollector creates a new Collector and registers its metrics with
// the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_upstream_calls_total",
			Help: "Upstream service calls by service and outcome",
		}, []string{"service", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_upstream_latency_seconds",
			Help:    "Upstream service call latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service"}),
	}

	reg.MustRegister(
		c.upstreamCalls,
		c.upstreamLatency,
	)

	return c
}

// RecordUpstreamCall records one upstream call with its outcome.
func (c *Collector) RecordUpstreamCall(service, outcome string) {
	c.upstreamCalls.WithLabelValues(service, outcome).Inc()
}

// RecordUpstreamLatency records the latency of one upstream call.
func (c *Collector) RecordUpstreamLatency(service string, duration time.Duration) {
	c.upstreamLatency.WithLabelValues(service).Observe(duration.Seconds())
}

// Handler returns an HTTP handler exposing the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// NopRecorder discards all metrics. Used in tests.
type NopRecorder struct{}

// RecordUpstreamCall implements Recorder.
func (NopRecorder) RecordUpstreamCall(service, outcome string) {}

// RecordUpstreamLatency implements Recorder.
func (NopRecorder) RecordUpstreamLatency(service string, duration time.Duration) {}
