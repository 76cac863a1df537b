package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/internal/domain/repository"
	"flight-tracker-service/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// FlightIngestion runs the add-flight workflow: validate, resolve details
// through the lookup service, then commit a new Scheduled flight to the store.
// At most one submission is in flight at a time.
type FlightIngestion struct {
	store    *FlightStore
	lookup   repository.FlightLookupRepository
	ids      *SequentialIDGenerator
	validate *validator.Validate
	logger   logger.Logger
	opts     engineOptions

	pending atomic.Bool

	draftMu sync.Mutex
	draft   entity.LookupRequest
}

// NewFlightIngestion creates a new ingestion workflow
func NewFlightIngestion(
	store *FlightStore,
	lookup repository.FlightLookupRepository,
	logger logger.Logger,
	opts ...Option,
) *FlightIngestion {
	return &FlightIngestion{
		store:    store,
		lookup:   lookup,
		ids:      NewSequentialIDGenerator("F", 3),
		validate: validator.New(),
		logger:   logger,
		opts:     newEngineOptions(opts),
	}
}

// IsPending reports whether a submission is waiting on the lookup service
func (w *FlightIngestion) IsPending() bool {
	return w.pending.Load()
}

// Draft returns the current form input
func (w *FlightIngestion) Draft() entity.LookupRequest {
	w.draftMu.Lock()
	defer w.draftMu.Unlock()
	return w.draft
}

// SetDraft replaces the current form input
func (w *FlightIngestion) SetDraft(req entity.LookupRequest) {
	w.draftMu.Lock()
	defer w.draftMu.Unlock()
	w.draft = req
}

// SubmitDraft submits the current form input
func (w *FlightIngestion) SubmitDraft(ctx context.Context) (*entity.Flight, error) {
	return w.Submit(ctx, w.Draft())
}

// Submit validates req, resolves it and commits the new flight.
//
// Errors: ErrValidation for empty input, ErrBusy while another submission is
// pending, ErrLookup when resolution fails. ErrPersistence is returned together
// with the created flight, since the flight is tracked in memory regardless.
// The draft is cleared only when a flight was created.
func (w *FlightIngestion) Submit(ctx context.Context, req entity.LookupRequest) (*entity.Flight, error) {
	// whitespace-only input counts as empty
	req.FlightNumber = strings.TrimSpace(req.FlightNumber)
	req.Airline = strings.TrimSpace(req.Airline)
	req.Date = strings.TrimSpace(req.Date)

	if err := w.validate.Struct(req); err != nil {
		w.opts.metrics.IngestionRejected.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, describeValidation(err))
	}

	if !w.pending.CompareAndSwap(false, true) {
		w.opts.metrics.IngestionRejected.WithLabelValues("busy").Inc()
		return nil, entity.ErrBusy
	}
	defer w.pending.Store(false)

	req.FlightNumber = strings.ToUpper(req.FlightNumber)
	log := w.logger.With("flightNumber", req.FlightNumber, "airline", req.Airline, "date", req.Date)
	log.Info("Resolving flight details")

	start := time.Now()
	details, err := w.lookup.Lookup(ctx, req)
	w.opts.metrics.LookupDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		w.opts.metrics.IngestionRejected.WithLabelValues("lookup").Inc()
		log.Error("Flight lookup failed", "error", err)
		return nil, fmt.Errorf("%w: %w", entity.ErrLookup, err)
	}

	flight := newScheduledFlight(w.ids.Next(w.store.List()), req, details, w.opts.stamp())

	err = w.store.Add(ctx, flight)
	if err != nil && !errors.Is(err, entity.ErrPersistence) {
		log.Error("Failed to commit flight", "id", flight.ID, "error", err)
		return nil, err
	}

	w.SetDraft(entity.LookupRequest{})
	w.opts.metrics.FlightsIngested.Inc()
	log.Info("Flight added to tracking", "id", flight.ID)

	return flight, err
}

// newScheduledFlight builds a flight from a possibly partial lookup result
func newScheduledFlight(id string, req entity.LookupRequest, details *entity.FlightDetails, lastUpdated string) *entity.Flight {
	if details == nil {
		details = &entity.FlightDetails{}
	}

	departure := details.DepartureTime
	arrival := details.ArrivalTime

	return &entity.Flight{
		ID:                 id,
		FlightNumber:       req.FlightNumber,
		Airline:            req.Airline,
		Origin:             orDefault(details.Origin, entity.PlaceholderLocation),
		Destination:        orDefault(details.Destination, entity.PlaceholderLocation),
		DepartureTime:      departure,
		ArrivalTime:        arrival,
		EstimatedDeparture: orDefault(details.EstimatedDeparture, departure),
		EstimatedArrival:   orDefault(details.EstimatedArrival, arrival),
		Status:             entity.StatusScheduled,
		Gate:               orDefault(details.Gate, entity.PlaceholderGate),
		Terminal:           orDefault(details.Terminal, entity.PlaceholderGate),
		BaggageClaim:       orDefault(details.BaggageClaim, entity.PlaceholderGate),
		LastUpdated:        lastUpdated,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return "missing required fields: " + strings.Join(fields, ", ")
}
