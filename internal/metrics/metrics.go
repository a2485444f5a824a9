package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline names used as the "pipeline" label value.
const (
	PipelineSearch   = "search"
	PipelineEpisodes = "episodes"
)

// Pipeline outcomes used as the "status" label value.
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusCacheHit = "cache_hit"
)

var (
	// PipelineRunsTotal counts search and episode lookups by outcome.
	PipelineRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "showsearch",
			Name:      "pipeline_runs_total",
			Help:      "Total number of show searches and episode lookups.",
		},
		[]string{"pipeline", "status"},
	)

	// PipelineResults observes how many records a successful run produced.
	PipelineResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "showsearch",
			Name:      "pipeline_results",
			Help:      "Number of normalized records returned per run.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"pipeline"},
	)

	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "showsearch",
			Name:      "api_requests_total",
			Help:      "Total number of HTTP requests sent to the TV directory.",
		},
		[]string{"code", "method"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "showsearch",
			Name:      "api_request_duration_seconds",
			Help:      "Latency of HTTP requests sent to the TV directory.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(
		PipelineRunsTotal,
		PipelineResults,
		APIRequestsTotal,
		APIRequestDuration,
	)
}

// InstrumentRoundTripper records request counts and latencies of every call made through next.
func InstrumentRoundTripper(next http.RoundTripper) http.RoundTripper {
	return promhttp.InstrumentRoundTripperCounter(APIRequestsTotal,
		promhttp.InstrumentRoundTripperDuration(APIRequestDuration, next),
	)
}

// RecordPipeline increments the run counter and, on success, observes the result count.
func RecordPipeline(pipeline, status string, results int) {
	PipelineRunsTotal.WithLabelValues(pipeline, status).Inc()
	if status != StatusError {
		PipelineResults.WithLabelValues(pipeline).Observe(float64(results))
	}
}
