package usecase

import (
	"time"

	"flight-tracker-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultTimeLayout formats lastUpdated stamps
const DefaultTimeLayout = "2006-01-02 03:04:05 PM"

// Clock returns the current wall-clock time
type Clock func() time.Time

// engineOptions are shared by the store, ingestion workflow and simulator
type engineOptions struct {
	clock      Clock
	timeLayout string
	metrics    *metrics.Metrics
}

// Option configures an engine component
type Option func(*engineOptions)

// WithClock overrides time.Now, mostly for tests
func WithClock(clock Clock) Option {
	return func(o *engineOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithTimeLayout sets the layout used for lastUpdated stamps
func WithTimeLayout(layout string) Option {
	return func(o *engineOptions) {
		if layout != "" {
			o.timeLayout = layout
		}
	}
}

// WithMetrics wires in prometheus metrics.
// If omitted, metrics go to a private registry nobody scrapes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *engineOptions) {
		if m != nil {
			o.metrics = m
		}
	}
}

func newEngineOptions(opts []Option) engineOptions {
	o := engineOptions{
		clock:      time.Now,
		timeLayout: DefaultTimeLayout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = metrics.NewMetrics("flight_tracker", prometheus.NewRegistry())
	}
	return o
}

func (o engineOptions) stamp() string {
	return o.clock().Format(o.timeLayout)
}
