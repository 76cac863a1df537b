package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/pkg/logger"
)

// StatusSimulator periodically moves flights along their lifecycle using a
// rule table keyed by flight id. A rule fires only while the flight is in the
// rule's source status, so each rule applies at most once per flight.
type StatusSimulator struct {
	store    *FlightStore
	rules    map[string][]entity.TransitionRule
	interval time.Duration
	logger   logger.Logger
	opts     engineOptions
}

// NewStatusSimulator creates a simulator. Rules outside the flight lifecycle are rejected.
func NewStatusSimulator(
	store *FlightStore,
	rules []entity.TransitionRule,
	interval time.Duration,
	logger logger.Logger,
	opts ...Option,
) (*StatusSimulator, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: simulation interval must be positive", entity.ErrValidation)
	}

	table := make(map[string][]entity.TransitionRule)
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		table[rule.FlightID] = append(table[rule.FlightID], rule)
	}

	return &StatusSimulator{
		store:    store,
		rules:    table,
		interval: interval,
		logger:   logger,
		opts:     newEngineOptions(opts),
	}, nil
}

// Run ticks every interval until ctx is cancelled
func (s *StatusSimulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Status simulator started", "interval", s.interval.String(), "rules", len(s.rules))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Status simulator stopped")
			return
		case <-ticker.C:
			// a tick may race with cancellation in select; never apply after it
			if ctx.Err() != nil {
				s.logger.Info("Status simulator stopped")
				return
			}
			if _, err := s.Tick(ctx); err != nil {
				s.logger.Warn("Status simulation tick finished with errors", "error", err)
			}
		}
	}
}

// Tick evaluates the rule table once against the current collection and
// returns the number of flights that changed. Flights without a matching
// rule are not touched.
func (s *StatusSimulator) Tick(ctx context.Context) (int, error) {
	s.opts.metrics.SimulatorTicksTotal.Inc()

	stamp := s.opts.stamp()
	applied := 0
	var errs []error

	for _, flight := range s.store.List() {
		rule, ok := s.match(flight)
		if !ok {
			continue
		}

		updated, err := s.store.UpdateStatus(ctx, flight.ID, rule.Patch(stamp))
		if errors.Is(err, entity.ErrNotFound) {
			// removed since the snapshot was taken
			continue
		}
		if updated == nil {
			errs = append(errs, err)
			continue
		}
		if err != nil {
			errs = append(errs, err)
		}

		applied++
		s.opts.metrics.StatusTransitions.WithLabelValues(string(rule.From), string(rule.To)).Inc()
		s.logger.Info("Flight status changed",
			"id", updated.ID,
			"flightNumber", updated.FlightNumber,
			"from", rule.From,
			"to", rule.To,
			"estimatedDeparture", updated.EstimatedDeparture,
			"estimatedArrival", updated.EstimatedArrival)
	}

	return applied, errors.Join(errs...)
}

// match returns the first rule for flight whose source status matches
func (s *StatusSimulator) match(flight *entity.Flight) (entity.TransitionRule, bool) {
	for _, rule := range s.rules[flight.ID] {
		if rule.Matches(flight) {
			return rule, true
		}
	}
	return entity.TransitionRule{}, false
}
