// Package metrics exposes Prometheus collectors for the order workflow engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WorkflowMetrics counts workflow actions and measures order-service round trips.
type WorkflowMetrics struct {
	Actions        *prometheus.CounterVec
	GatewayLatency *prometheus.HistogramVec
}

// NewWorkflowMetrics creates and registers the workflow collectors on reg.
// Pass prometheus.DefaultRegisterer in production; tests use a private registry
// so repeated construction does not panic on duplicate registration.
func NewWorkflowMetrics(reg prometheus.Registerer) *WorkflowMetrics {
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "console",
		Subsystem: "orders",
		Name:      "workflow_actions_total",
		Help:      "Workflow actions by kind and outcome.",
	}, []string{"action", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "console",
		Subsystem: "orders",
		Name:      "gateway_request_duration_ms",
		Help:      "Order-service request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"endpoint"})

	reg.MustRegister(actions, latency)
	return &WorkflowMetrics{Actions: actions, GatewayLatency: latency}
}

// ObserveAction records one workflow action with its outcome ("ok", "rejected" or "error").
func (m *WorkflowMetrics) ObserveAction(action, outcome string) {
	if m == nil {
		return
	}
	m.Actions.WithLabelValues(action, outcome).Inc()
}

// ObserveGateway records one order-service round trip.
func (m *WorkflowMetrics) ObserveGateway(endpoint string, durationMS float64) {
	if m == nil {
		return
	}
	m.GatewayLatency.WithLabelValues(endpoint).Observe(durationMS)
}

// Handler returns the scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
