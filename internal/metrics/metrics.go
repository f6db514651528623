// Package metrics holds the process-wide request and error counters.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestMetrics counts handled requests and request-level errors for the
// lifetime of the process. The counters are guarded by a single mutex so that
// no two concurrent callers observe the same post-increment value; they reset
// only on restart.
//
// The same increments are mirrored into Prometheus counters for scraping. The
// mutex-guarded values remain authoritative for span attributes, which need
// the exact post-increment number.
type RequestMetrics struct {
	mu            sync.Mutex
	requestsCount int64
	errorCount    int64

	requestsTotal prometheus.Counter
	errorsTotal   prometheus.Counter
}

// New creates the counter set and registers its Prometheus mirrors.
func New(reg prometheus.Registerer) *RequestMetrics {
	factory := promauto.With(reg)
	return &RequestMetrics{
		requestsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "coursecat_requests_total",
			Help: "Total HTTP requests handled.",
		}),
		errorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "coursecat_request_errors_total",
			Help: "Total request-level errors (validation failures).",
		}),
	}
}

// IncrementRequests bumps the request counter and returns the new total.
func (m *RequestMetrics) IncrementRequests() int64 {
	m.mu.Lock()
	m.requestsCount++
	n := m.requestsCount
	m.mu.Unlock()

	m.requestsTotal.Inc()
	return n
}

// IncrementErrors bumps the error counter and returns the new total.
func (m *RequestMetrics) IncrementErrors() int64 {
	m.mu.Lock()
	m.errorCount++
	n := m.errorCount
	m.mu.Unlock()

	m.errorsTotal.Inc()
	return n
}
