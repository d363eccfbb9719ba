package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the counters.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics provides observability for the address store.
// Tracks operation counts and durations, cache effectiveness and event delivery.
type Metrics struct {
	Operations         *prometheus.CounterVec
	OperationDuration  *prometheus.HistogramVec
	ValidationFailures prometheus.Counter
	AddressesDeleted   *prometheus.CounterVec
	CacheLookups       *prometheus.CounterVec
	EventsPublished    *prometheus.CounterVec
	DBPoolWaits        prometheus.Counter
}

// New creates a Metrics instance registered on the default Prometheus registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates a Metrics instance registered on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "addressbook_operations_total",
			Help: "Total number of address operations by operation and outcome",
		}, []string{"operation", "outcome"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "addressbook_operation_duration_seconds",
			Help:    "Duration of address operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "addressbook_validation_failures_total",
			Help: "Total number of rejected address payloads",
		}),
		AddressesDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "addressbook_addresses_deleted_total",
			Help: "Total number of deleted addresses by delete mode",
		}, []string{"mode"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "addressbook_cache_lookups_total",
			Help: "Owner address cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "addressbook_events_published_total",
			Help: "Address events handed to the publisher by type and outcome",
		}, []string{"type", "outcome"}),
		DBPoolWaits: factory.NewCounter(prometheus.CounterOpts{
			Name: "addressbook_db_pool_waits_total",
			Help: "Connections the Postgres pool had to wait for",
		}),
	}
}

// ObserveOperation records the outcome and duration of an address operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}

	m.Operations.WithLabelValues(operation, outcome).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// IncrementValidationFailure records a rejected payload.
func (m *Metrics) IncrementValidationFailure() {
	if m == nil {
		return
	}
	m.ValidationFailures.Inc()
}

// AddDeleted records removed addresses for a delete mode.
func (m *Metrics) AddDeleted(mode string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.AddressesDeleted.WithLabelValues(mode).Add(float64(count))
}

// IncrementCacheLookup records a cache hit, miss or error.
func (m *Metrics) IncrementCacheLookup(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// IncrementEventPublished records a publish attempt.
func (m *Metrics) IncrementEventPublished(eventType string, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.EventsPublished.WithLabelValues(eventType, outcome).Inc()
}

// AddDBPoolWaits records pool waits observed since the last sample.
func (m *Metrics) AddDBPoolWaits(count int64) {
	if m == nil || count <= 0 {
		return
	}
	m.DBPoolWaits.Add(float64(count))
}
