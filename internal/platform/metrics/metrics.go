package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	BookingsConfirmed       *prometheus.CounterVec
	MappingFailures         prometheus.Counter
	MissingFieldRejections  *prometheus.CounterVec
	NSADerivations          *prometheus.CounterVec
	NSABatchUpdated         prometheus.Counter
	SessionResets           *prometheus.CounterVec
	BookingMappingDurationS prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		BookingsConfirmed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ftts_bookings_confirmed_total",
			Help: "Bookings written to the CRM, labelled standard or nsa",
		}, []string{"kind"}),
		MappingFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ftts_mapping_precondition_failures_total",
			Help: "CRM mapping calls rejected by a precondition check",
		}),
		MissingFieldRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ftts_missing_field_rejections_total",
			Help: "Inbound CRM payloads rejected for missing fields, by profile",
		}, []string{"profile"}),
		NSADerivations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ftts_nsa_status_derivations_total",
			Help: "NSA status derivations by resulting status",
		}, []string{"status"}),
		NSABatchUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ftts_nsa_batch_updated_total",
			Help: "Resolved NSA bookings moved to standard-test-booked",
		}),
		SessionResets: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ftts_session_resets_total",
			Help: "Session resets by kind (full, booking, keep_support)",
		}, []string{"kind"}),
		BookingMappingDurationS: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ftts_booking_details_mapping_duration_seconds",
			Help:    "Latency of validating and mapping one booking-details payload",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// IncrementBookingsConfirmed bumps the confirmed-bookings counter for a kind.
func (m *Metrics) IncrementBookingsConfirmed(kind string) {
	m.BookingsConfirmed.WithLabelValues(kind).Inc()
}

// IncrementMissingFieldRejections bumps the rejection counter for a profile.
func (m *Metrics) IncrementMissingFieldRejections(profile string) {
	m.MissingFieldRejections.WithLabelValues(profile).Inc()
}
