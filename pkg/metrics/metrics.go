package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service: the HTTP layer
// (request counts and latency, observed by the middleware) and the parking
// domain (occupancy, charges, rejected park attempts).
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ParkedVehicles prometheus.Gauge
	AvailableSlots prometheus.Gauge
	ChargesTotal   prometheus.Counter
	ParkRejections *prometheus.CounterVec
}

// New registers and returns the service collectors
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of processed HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		ParkedVehicles: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "parking_parked_vehicles",
			Help:        "Number of currently parked vehicles",
			ConstLabels: labels,
		}),
		AvailableSlots: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "parking_available_slots",
			Help:        "Number of currently available slots",
			ConstLabels: labels,
		}),
		ChargesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_charges_total",
			Help:        "Total amount charged on unpark",
			ConstLabels: labels,
		}),
		ParkRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "parking_park_rejections_total",
			Help:        "Park attempts rejected, by reason",
			ConstLabels: labels,
		}, []string{"reason"}),
	}
}

// SetOccupancy records the current session and pool sizes
func (m *Metrics) SetOccupancy(parked, available int) {
	m.ParkedVehicles.Set(float64(parked))
	m.AvailableSlots.Set(float64(available))
}

// ObserveCharge adds an unpark charge to the running total
func (m *Metrics) ObserveCharge(amount float64) {
	if amount > 0 {
		m.ChargesTotal.Add(amount)
	}
}

// IncParkRejection counts a rejected park attempt
func (m *Metrics) IncParkRejection(reason string) {
	m.ParkRejections.WithLabelValues(reason).Inc()
}
