// internal/app/system/metrics/metrics.go

// Package metrics exposes Prometheus counters for the matching workflows and
// an HTTP middleware for request accounting. A dedicated registry keeps the
// default Go collectors out of the scrape.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds this service's collectors.
type Registry struct {
	reg *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	assignmentsRequested prometheus.Counter
	assignmentsAccepted  prometheus.Counter
	assignmentsRejected  prometheus.Counter
	assignmentConflicts  prometheus.Counter
	impactLogsCreated    prometheus.Counter
	profilesCreated      prometheus.Counter
}

// New creates the registry and registers all collectors.
func New() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern, and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mentorhub",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		assignmentsRequested: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "assignments_requested_total",
			Help:      "Assignment requests that created a pending pairing.",
		}),
		assignmentsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "assignments_accepted_total",
			Help:      "Assignments transitioned to active.",
		}),
		assignmentsRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "assignments_rejected_total",
			Help:      "Assignments transitioned to rejected.",
		}),
		assignmentConflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "assignment_conflicts_total",
			Help:      "Assignment requests blocked by the pair uniqueness check.",
		}),
		impactLogsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "impact_logs_created_total",
			Help:      "Impact logs appended under founder namespaces.",
		}),
		profilesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "mentor_profiles_created_total",
			Help:      "Mentor profiles created.",
		}),
	}
}

// Handler serves the scrape endpoint for this registry.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Domain counter increments. All are nil-safe so handlers can run without a
// registry in tests.

func (m *Registry) AssignmentRequested() { inc(m, func() { m.assignmentsRequested.Inc() }) }
func (m *Registry) AssignmentAccepted()  { inc(m, func() { m.assignmentsAccepted.Inc() }) }
func (m *Registry) AssignmentRejected()  { inc(m, func() { m.assignmentsRejected.Inc() }) }
func (m *Registry) AssignmentConflict()  { inc(m, func() { m.assignmentConflicts.Inc() }) }
func (m *Registry) ImpactLogCreated()    { inc(m, func() { m.impactLogsCreated.Inc() }) }
func (m *Registry) ProfileCreated()      { inc(m, func() { m.profilesCreated.Inc() }) }

func inc(m *Registry, f func()) {
	if m == nil {
		return
	}
	f()
}

// Middleware records request counts and latency. route should be the mount
// pattern, not the raw path, to keep cardinality bounded.
func (m *Registry) Middleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			m.httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
