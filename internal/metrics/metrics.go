// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BookingRecorder records booking outcomes. Used by the reservation service.
type BookingRecorder interface {
	RecordBooking()
	RecordBookingConflict()
}

// Collector registers and records the service's Prometheus metrics.
type Collector struct {
	bookings    prometheus.Counter
	conflicts   prometheus.Counter
	slotsAdded  prometheus.Counter
	httpStatus  *prometheus.CounterVec
	registry    *prometheus.Registry
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		bookings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tutorly_bookings_total",
			Help: "Total successful slot bookings.",
		}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tutorly_booking_conflicts_total",
			Help: "Booking attempts rejected because the slot was already booked.",
		}),
		slotsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tutorly_slots_added_total",
			Help: "Total availability slots added by tutors.",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutorly_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		registry: reg,
	}
	reg.MustRegister(c.bookings, c.conflicts, c.slotsAdded, c.httpStatus)
	return c
}

func (c *Collector) RecordBooking()         { c.bookings.Inc() }
func (c *Collector) RecordBookingConflict() { c.conflicts.Inc() }
func (c *Collector) RecordSlotAdded()       { c.slotsAdded.Inc() }

// RecordHTTPStatus counts a response by status code. Used by the HTTP middleware.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler returns the /metrics endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
