// Package metrics owns the prometheus registry, HTTP instrumentation and entry operation counters
package metrics

import (
	"net/http"
	"strconv"
	"time"

	perr "astroref/internal/platform/errors"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "astroref"

var (
	// Registry holds the service collectors; it is private to keep /metrics free of global state
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.ExponentialBuckets(0.002, 2, 12),
		},
		[]string{"method", "route"},
	)

	entryOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entry",
			Name:      "ops_total",
			Help:      "Entry list operations by taxonomy kind, operation and outcome.",
		},
		[]string{"kind", "op", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		entryOps,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler records request counts and latency labelled by chi route pattern
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordEntryOp counts one entry operation; outcome is "ok" or the error class
func RecordEntryOp(kind, op string, err error) {
	entryOps.WithLabelValues(kind, op, Outcome(err)).Inc()
}

// Outcome maps an error to a low-cardinality label
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	switch perr.CodeOf(err) {
	case perr.ErrorCodeNotFound:
		return "not_found"
	case perr.ErrorCodeValidation, perr.ErrorCodeJSON:
		return "invalid"
	case perr.ErrorCodeForbidden:
		return "forbidden"
	default:
		return "error"
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
