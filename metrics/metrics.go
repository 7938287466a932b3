package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded against transitions
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_transitions_total",
			Help: "Total number of payment and return transitions attempted",
		},
		[]string{"entity", "transition", "outcome"},
	)

	stockRestorationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_restorations_total",
			Help: "Total number of inventory increments attempted for refunded returns",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(transitionsTotal)
	prometheus.MustRegister(stockRestorationsTotal)
}

// RecordTransition counts one attempted transition of a payment or return request
func RecordTransition(entity, transition, outcome string) {
	transitionsTotal.WithLabelValues(entity, transition, outcome).Inc()
}

// RecordStockRestoration counts one inventory increment attempt
func RecordStockRestoration(outcome string) {
	stockRestorationsTotal.WithLabelValues(outcome).Inc()
}

// Handler exposes the registered metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and durations against the matched route template
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, req)

		path := req.URL.Path
		if route := mux.CurrentRoute(req); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}

		httpRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(recorder.status)).Inc()
		httpRequestDuration.WithLabelValues(req.Method, path).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
