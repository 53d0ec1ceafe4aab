package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for form submissions.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
	OutcomeBusy    = "busy"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterFormSubmissions    *prometheus.CounterVec
	CounterWorkoutsRecorded   prometheus.Counter
	CounterWorkoutsDeleted    prometheus.Counter
	CounterHandleRequestPanic prometheus.Counter
	CounterRateLimited        *prometheus.CounterVec

	// gauges
	GaugeRequests         prometheus.Gauge
	GaugeActiveWorkspaces prometheus.Gauge

	// histograms
	HistRequestDuration    prometheus.Histogram
	HistSubmissionDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("sculpt", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("sculpt", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterFormSubmissions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "form_submissions",
		Help:      "Form submissions by form and outcome",
	}, []string{"form", "outcome"})
	counterWorkoutsRecorded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_recorded",
		Help:      "The total number of stored workouts",
	})
	counterWorkoutsDeleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_deleted",
		Help:      "The total number of deleted workouts",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimited := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited",
		Help:      "Requests rejected by the per-client rate limiter",
	}, []string{"path"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeActiveWorkspaces := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_workspaces",
		Help:      "Browser sessions holding workout form state",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 10, 60},
			Name:      "request_duration_seconds",
			Help:      "Total duration of requests in seconds",
		},
	)
	histSubmissionDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10, 30},
			Name:      "workout_submission_duration_seconds",
			Help:      "Duration of workout POSTs to the workout data service",
		},
	)

	return &Manager{
		CounterRequests:           counterRequests,
		CounterFormSubmissions:    counterFormSubmissions,
		CounterWorkoutsRecorded:   counterWorkoutsRecorded,
		CounterWorkoutsDeleted:    counterWorkoutsDeleted,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		CounterRateLimited:        counterRateLimited,
		GaugeRequests:             gaugeRequests,
		GaugeActiveWorkspaces:     gaugeActiveWorkspaces,
		HistRequestDuration:       histReqDuration,
		HistSubmissionDuration:    histSubmissionDuration,
	}
}
