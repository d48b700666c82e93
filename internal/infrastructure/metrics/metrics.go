// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "seguros"

// Recorder implements interfaces.IMetrics on Prometheus counters.
type Recorder struct {
	simulationsSubmitted *prometheus.CounterVec
	policyTransitions    *prometheus.CounterVec
	documentsUploaded    *prometheus.CounterVec
	duplicatesSuppressed *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
	listsDegraded        *prometheus.CounterVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge
}

var _ interfaces.IMetrics = (*Recorder)(nil)

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		simulationsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_submitted_total",
			Help:      "Simulation submissions by type and outcome (accepted, rejected).",
		}, []string{"type", "outcome"}),
		policyTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_transitions_total",
			Help:      "Policy status transitions.",
		}, []string{"from", "to"}),
		documentsUploaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_uploaded_total",
			Help:      "Documents stored by entity kind and slot.",
		}, []string{"kind", "slot"}),
		duplicatesSuppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_requests_suppressed_total",
			Help:      "Mutations acknowledged without rewriting because the idempotency key was already seen.",
		}, []string{"operation"}),
		notificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Owner notifications that could not be delivered.",
		}, []string{"slot"}),
		listsDegraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_observers_degraded_total",
			Help:      "List views served as a one-time snapshot instead of live updates.",
		}, []string{"kind"}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			r.simulationsSubmitted,
			r.policyTransitions,
			r.documentsUploaded,
			r.duplicatesSuppressed,
			r.notificationFailures,
			r.listsDegraded,
			r.HTTPRequests,
			r.HTTPDuration,
			r.HTTPInFlight,
		)
	}
	return r
}

func (r *Recorder) SimulationSubmitted(simType string, outcome string) {
	r.simulationsSubmitted.WithLabelValues(simType, outcome).Inc()
}

// PolicyTransition counts a status change; an empty from is a new policy.
func (r *Recorder) PolicyTransition(from, to string) {
	if from == "" {
		from = "none"
	}
	r.policyTransitions.WithLabelValues(from, to).Inc()
}

func (r *Recorder) DocumentUploaded(kind, slot string) {
	r.documentsUploaded.WithLabelValues(kind, slot).Inc()
}

func (r *Recorder) DuplicateSuppressed(operation string) {
	r.duplicatesSuppressed.WithLabelValues(operation).Inc()
}

func (r *Recorder) NotificationFailed(slot string) {
	r.notificationFailures.WithLabelValues(slot).Inc()
}

func (r *Recorder) ListDegraded(kind string) {
	r.listsDegraded.WithLabelValues(kind).Inc()
}
