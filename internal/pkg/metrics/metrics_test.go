package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveOutcome("arrival_late")
	m.ObserveOutcome("arrival_late")
	m.ObserveOutcome("no_pending_action")
	m.ObserveDeclared("arrive")
	m.IncrementReports()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LocationOutcomes.WithLabelValues("arrival_late")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LocationOutcomes.WithLabelValues("no_pending_action")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeclaredActions.WithLabelValues("arrive")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsGenerated))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveOutcome("arrival_accepted")
		m.ObserveDeclared("leave")
		m.ObserveArrivalDistance(12)
		m.ObserveDelay(7)
		m.IncrementReports()
	})
}
