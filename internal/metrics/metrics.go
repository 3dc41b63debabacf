package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymbook_reservations_total",
			Help: "Total number of reservation attempts by outcome",
		},
		[]string{"outcome"},
	)

	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymbook_cancellations_total",
			Help: "Total number of cancellation attempts by outcome",
		},
		[]string{"outcome"},
	)

	CompensationReleasesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymbook_compensation_releases_total",
			Help: "Slot releases performed to roll back a failed booking persist",
		},
	)

	SlotsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymbook_slots_created_total",
			Help: "Total number of time slots created",
		},
	)

	GymsRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymbook_gyms_registered_total",
			Help: "Total number of gyms registered",
		},
	)

	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymbook_search_requests_total",
			Help: "Total number of gym searches by cache result",
		},
		[]string{"cache"},
	)
)

// Reservation outcomes: confirmed, conflict, not_found, error.
func RecordReservation(outcome string) {
	ReservationsTotal.WithLabelValues(outcome).Inc()
}

// Cancellation outcomes: cancelled, already_cancelled, not_found, error.
func RecordCancellation(outcome string) {
	CancellationsTotal.WithLabelValues(outcome).Inc()
}

func RecordCompensationRelease() {
	CompensationReleasesTotal.Inc()
}

func RecordSlotCreated() {
	SlotsCreatedTotal.Inc()
}

func RecordGymRegistered() {
	GymsRegisteredTotal.Inc()
}

// Search cache results: hit, miss, bypass.
func RecordSearch(cacheResult string) {
	SearchRequestsTotal.WithLabelValues(cacheResult).Inc()
}

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}
