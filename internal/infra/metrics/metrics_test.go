package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.ObserveOperation("add", time.Now(), nil)
	m.ObserveOperation("add", time.Now(), nil)
	m.ObserveOperation("add", time.Now(), errors.New("boom"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.Operations.WithLabelValues("add", OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Operations.WithLabelValues("add", OutcomeFailure)), 0)
}

func TestCounters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.AddDeleted("soft", 3)
	m.AddDeleted("soft", 0)
	m.IncrementCacheLookup("hit")
	m.IncrementValidationFailure()
	m.IncrementEventPublished("address.created", nil)
	m.AddDBPoolWaits(4)

	assert.InDelta(t, 3, testutil.ToFloat64(m.AddressesDeleted.WithLabelValues("soft")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ValidationFailures), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsPublished.WithLabelValues("address.created", OutcomeSuccess)), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(m.DBPoolWaits), 0)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveOperation("add", time.Now(), nil)
		m.IncrementCacheLookup("miss")
		m.AddDeleted("force", 1)
	})
}
