package usecase

import (
	"context"
	"fmt"
	"sync"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/internal/domain/repository"
	"flight-tracker-service/pkg/logger"
)

// FlightStore owns the in-memory collection of tracked flights. Every
// mutation is written through to the collection repository before it
// returns. The store does not enforce the status lifecycle; callers do.
type FlightStore struct {
	mu      sync.Mutex
	repo    repository.FlightCollectionRepository
	flights []*entity.Flight
	logger  logger.Logger
	opts    engineOptions
}

// NewFlightStore creates an empty store. Call Initialize before use.
func NewFlightStore(repo repository.FlightCollectionRepository, logger logger.Logger, opts ...Option) *FlightStore {
	return &FlightStore{
		repo:    repo,
		flights: []*entity.Flight{},
		logger:  logger,
		opts:    newEngineOptions(opts),
	}
}

// Initialize loads the persisted collection, or seeds and persists the
// bootstrap flights when nothing has been stored yet. Only a failed load is
// returned: a failed seed write leaves the seeded flights in memory and is
// retried by the next mutation.
func (s *FlightStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights, found, err := s.repo.Load(ctx)
	if err != nil {
		s.opts.metrics.PersistenceErrors.WithLabelValues("load").Inc()
		return fmt.Errorf("%w: load: %w", entity.ErrPersistence, err)
	}

	if found {
		s.flights = make([]*entity.Flight, 0, len(flights))
		for _, f := range flights {
			s.flights = append(s.flights, f.Clone())
		}
		s.logger.Info("Loaded tracked flights", "count", len(s.flights))
		s.opts.metrics.TrackedFlights.Set(float64(len(s.flights)))
		return nil
	}

	s.flights = BootstrapFlights(s.opts.stamp())
	s.logger.Info("No stored flights found, seeded bootstrap flights", "count", len(s.flights))
	if err := s.persist(ctx, "seed"); err != nil {
		s.logger.Warn("Continuing with unsaved bootstrap flights", "error", err)
	}
	return nil
}

// Add appends a fully formed flight
func (s *FlightStore) Add(ctx context.Context, flight *entity.Flight) error {
	if flight == nil || flight.ID == "" {
		return fmt.Errorf("%w: flight id is required", entity.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(flight.ID) >= 0 {
		return fmt.Errorf("%w: flight %s already exists", entity.ErrValidation, flight.ID)
	}

	s.flights = append(s.flights, flight.Clone())
	s.logger.Info("Flight added", "id", flight.ID, "flightNumber", flight.FlightNumber)
	return s.persist(ctx, "add")
}

// Remove deletes the flight with id. Removing an unknown id is a no-op.
func (s *FlightStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("Remove of unknown flight ignored", "id", id)
		return nil
	}

	s.flights = append(s.flights[:i], s.flights[i+1:]...)
	s.logger.Info("Flight removed", "id", id)
	return s.persist(ctx, "remove")
}

// UpdateStatus applies patch to the flight with id and returns the updated copy.
// On ErrPersistence the returned flight reflects the applied in-memory change.
func (s *FlightStore) UpdateStatus(ctx context.Context, id string, patch entity.StatusPatch) (*entity.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrNotFound, id)
	}

	patch.Apply(s.flights[i])
	updated := s.flights[i].Clone()
	return updated, s.persist(ctx, "update")
}

// List returns a copy of the collection in insertion order
func (s *FlightStore) List() []*entity.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Get returns a copy of the flight with id
func (s *FlightStore) Get(id string) (*entity.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrNotFound, id)
	}
	return s.flights[i].Clone(), nil
}

// Len returns the number of tracked flights
func (s *FlightStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.flights)
}

func (s *FlightStore) indexOf(id string) int {
	for i, f := range s.flights {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func (s *FlightStore) snapshot() []*entity.Flight {
	out := make([]*entity.Flight, len(s.flights))
	for i, f := range s.flights {
		out[i] = f.Clone()
	}
	return out
}

// persist must be called with mu held so writes stay ordered with mutations
func (s *FlightStore) persist(ctx context.Context, op string) error {
	s.opts.metrics.TrackedFlights.Set(float64(len(s.flights)))

	if err := s.repo.Save(ctx, s.snapshot()); err != nil {
		s.opts.metrics.PersistenceErrors.WithLabelValues(op).Inc()
		s.logger.Warn("Failed to persist tracked flights, keeping in-memory state",
			"operation", op,
			"error", err)
		return fmt.Errorf("%w: %s: %w", entity.ErrPersistence, op, err)
	}
	return nil
}
