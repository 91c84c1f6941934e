package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Appointment lifecycle metrics
	appointmentTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointment_transitions_total",
			Help: "Total number of appointment state transitions",
		},
		[]string{"transition", "status"},
	)

	// Notification metrics
	notificationsPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_published_total",
			Help: "Total number of notifications published to subscribers",
		},
		[]string{"source"},
	)

	// Inventory metrics
	prescriptionsDispensedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prescriptions_dispensed_total",
			Help: "Total number of prescriptions dispensed",
		},
	)

	replenishmentRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replenishment_requests_total",
			Help: "Total number of medicine replenishment requests",
		},
		[]string{"action"},
	)

	// Authentication metrics
	authAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		appointmentTransitionsTotal,
		notificationsPublishedTotal,
		prescriptionsDispensedTotal,
		replenishmentRequestsTotal,
		authAttemptsTotal,
	)
}

// RecordHTTPRequest records an HTTP request observation.
func RecordHTTPRequest(method, endpoint, statusCode string, durationSeconds float64) {
	httpRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// RecordAppointmentTransition records an appointment state transition. The
// transition label names the operation (schedule, accept, decline, cancel,
// reschedule, complete), status is "success" or "failure".
func RecordAppointmentTransition(transition, status string) {
	appointmentTransitionsTotal.WithLabelValues(transition, status).Inc()
}

// RecordNotificationPublished records a notification fan-out from a source
// publisher (appointment, appointment_store, outcome_record_store).
func RecordNotificationPublished(source string) {
	notificationsPublishedTotal.WithLabelValues(source).Inc()
}

// RecordPrescriptionDispensed records a prescription dispense.
func RecordPrescriptionDispensed() {
	prescriptionsDispensedTotal.Inc()
}

// RecordReplenishmentRequest records a replenishment action, "submitted" or
// "approved".
func RecordReplenishmentRequest(action string) {
	replenishmentRequestsTotal.WithLabelValues(action).Inc()
}

// RecordAuthAttempt records a login attempt, "success" or "failure".
func RecordAuthAttempt(status string) {
	authAttemptsTotal.WithLabelValues(status).Inc()
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
