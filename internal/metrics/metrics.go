// Package metrics provides Prometheus metrics for credential verification.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ericfisherdev/credcheck/internal/domain/model"
	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
)

var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credcheck_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "credcheck_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// VerificationsTotal counts verification outcomes by result.
	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credcheck_verifications_total",
			Help: "Total number of credential verifications by result",
		},
		[]string{"result"},
	)

	// LookupDuration measures CredentialStore lookup latency by backend and outcome.
	LookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "credcheck_store_lookup_duration_seconds",
			Help:    "Credential store lookup duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"backend", "outcome"},
	)
)

// RecordVerification increments the counter for result.
func RecordVerification(result model.VerificationResult) {
	VerificationsTotal.WithLabelValues(string(result)).Inc()
}

// RecordHTTPRequest records metrics for an HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*InstrumentedStore)(nil)

// InstrumentedStore decorates a CredentialStore with lookup latency metrics.
// It adds no state of its own and passes answers through untouched.
type InstrumentedStore struct {
	next    driven.CredentialStore
	backend string
}

// NewInstrumentedStore wraps next, labelling its observations with backend.
func NewInstrumentedStore(next driven.CredentialStore, backend model.Backend) *InstrumentedStore {
	return &InstrumentedStore{next: next, backend: string(backend)}
}

// Lookup delegates to the wrapped store and observes its duration.
func (s *InstrumentedStore) Lookup(ctx context.Context, username, password string) (bool, error) {
	start := time.Now()
	found, err := s.next.Lookup(ctx, username, password)

	outcome := "miss"
	switch {
	case err != nil:
		outcome = "error"
	case found:
		outcome = "hit"
	}
	LookupDuration.WithLabelValues(s.backend, outcome).Observe(time.Since(start).Seconds())

	return found, err
}
