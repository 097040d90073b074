package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Request volume by route and status
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of API requests received.",
	}, []string{"method", "path", "status"})

	// Concurrency (in flight)
	ActiveRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_active_requests",
		Help: "Current number of in-flight requests.",
	})

	// Request latency (handler duration)
	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "End-to-end handler duration for API requests.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "path"})

	// Domain volume
	CompletionsRecordedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "activity_completions_recorded_total",
		Help: "Total number of activity completions recorded.",
	})

	EnrollmentsStartedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "program_enrollments_started_total",
		Help: "Total number of program enrollments started.",
	})
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		RequestsTotal,
		ActiveRequests,
		RequestDurationSeconds,
		CompletionsRecordedTotal,
		EnrollmentsStartedTotal,
	)
}
