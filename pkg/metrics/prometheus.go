package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FlightsIngested     prometheus.Counter
	IngestionRejected   *prometheus.CounterVec
	StatusTransitions   *prometheus.CounterVec
	PersistenceErrors   *prometheus.CounterVec
	LookupDuration      prometheus.Histogram
	TrackedFlights      prometheus.Gauge
	SimulatorTicksTotal prometheus.Counter
}

// NewMetrics creates new prometheus metrics registered on reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FlightsIngested: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_ingested_total",
			Help:      "The total number of flights added through ingestion",
		}),
		IngestionRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingestion_rejected_total",
			Help:      "The total number of rejected ingestion submissions",
		}, []string{"reason"}),
		StatusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "The total number of simulated status transitions",
		}, []string{"from", "to"}),
		PersistenceErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_errors_total",
			Help:      "The total number of failed collection writes",
		}, []string{"operation"}),
		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flight_lookup_duration_seconds",
			Help:      "Time taken by the flight lookup service",
			Buckets:   prometheus.DefBuckets,
		}),
		TrackedFlights: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tracked_flights",
			Help:      "The current number of tracked flights",
		}),
		SimulatorTicksTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulator_ticks_total",
			Help:      "The total number of status simulator ticks",
		}),
	}
}
