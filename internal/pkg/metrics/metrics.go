package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	LocationOutcomes *prometheus.CounterVec
	DeclaredActions  *prometheus.CounterVec
	ArrivalDistance  prometheus.Histogram
	DelayMinutes     prometheus.Histogram
	ReportsGenerated prometheus.Counter
}

// New registers the presence metrics on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LocationOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_location_outcomes_total",
			Help: "Processed location reports by outcome",
		}, []string{"outcome"}),
		DeclaredActions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_declared_actions_total",
			Help: "Declared arrive/leave actions",
		}, []string{"action"}),
		ArrivalDistance: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "presence_arrival_distance_meters",
			Help:    "Distance from the office reported with arrivals",
			Buckets: []float64{10, 25, 50, 75, 100, 150, 250, 500, 1000, 5000},
		}),
		DelayMinutes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "presence_tardiness_delay_minutes",
			Help:    "Delay of arrivals recorded as tardiness events",
			Buckets: []float64{5, 10, 15, 30, 60, 120, 240},
		}),
		ReportsGenerated: f.NewCounter(prometheus.CounterOpts{
			Name: "presence_reports_generated_total",
			Help: "Tardiness reports generated",
		}),
	}
}

func (m *Metrics) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.LocationOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveDeclared(action string) {
	if m == nil {
		return
	}
	m.DeclaredActions.WithLabelValues(action).Inc()
}

func (m *Metrics) ObserveArrivalDistance(meters float64) {
	if m == nil {
		return
	}
	m.ArrivalDistance.Observe(meters)
}

func (m *Metrics) ObserveDelay(minutes int) {
	if m == nil {
		return
	}
	m.DelayMinutes.Observe(float64(minutes))
}

func (m *Metrics) IncrementReports() {
	if m == nil {
		return
	}
	m.ReportsGenerated.Inc()
}
