package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "subsage",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "subsage",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10),
		},
		[]string{"method", "path"},
	)

	subscriptionsStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "subsage",
			Subsystem: "store",
			Name:      "subscriptions",
			Help:      "Number of subscriptions currently held in memory.",
		},
	)

	subscriptionOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "subsage",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Subscription store mutations by operation and result.",
		},
		[]string{"op", "result"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		subscriptionsStored,
		subscriptionOps,
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// SetSubscriptionCount records the current store size.
func SetSubscriptionCount(n int) {
	subscriptionsStored.Set(float64(n))
}

// RecordStoreOp counts a create or delete attempt.
func RecordStoreOp(op string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	subscriptionOps.WithLabelValues(op, result).Inc()
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// canonicalPath keeps label cardinality bounded: subscription ids collapse
// to a placeholder and anything outside the known surface becomes "other".
func canonicalPath(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	switch {
	case parts[0] == "swagger":
		return "/swagger"
	case parts[0] != "api" || len(parts) < 2:
		return "other"
	case parts[1] == "subscriptions" && len(parts) == 3:
		return "/api/subscriptions/:id"
	case len(parts) == 2:
		return "/api/" + parts[1]
	}
	return "other"
}
