// Package metrics instruments the minting service with Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusHandler returns the standard /metrics http.Handler.
func PrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// Recorder holds the service's metric families.
type Recorder struct {
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	minted    prometheus.Counter
}

// NewRecorder registers the metric families. Consumers may pass a custom
// registerer (e.g. for testing); nil means the default Prometheus registerer.
func NewRecorder(registerer prometheus.Registerer) *Recorder {
	reg := registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	auto := promauto.With(reg)
	return &Recorder{
		requests: auto.NewCounterVec(prometheus.CounterOpts{
			Name: "ulidd_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		durations: auto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ulidd_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route", "status"}),
		minted: auto.NewCounter(prometheus.CounterOpts{
			Name: "ulidd_ids_minted_total",
			Help: "Total number of ULIDs generated",
		}),
	}
}

// AddMinted counts n freshly generated identifiers.
func (rec *Recorder) AddMinted(n int) {
	if rec != nil && n > 0 {
		rec.minted.Add(float64(n))
	}
}

// Middleware instruments HTTP traffic using the recorder.
type Middleware struct {
	R *Recorder
}

// New constructs a metrics middleware.
func New(rec *Recorder) *Middleware { return &Middleware{R: rec} }

// Handler wraps the next handler to record counters and duration.
func (mw *Middleware) Handler(next http.Handler) http.Handler {
	if mw.R == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &respWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(ww, r)

		status := strconv.Itoa(ww.status)
		mw.R.requests.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		mw.R.durations.WithLabelValues(r.Method, r.URL.Path, status).
			Observe(time.Since(start).Seconds())
	})
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
