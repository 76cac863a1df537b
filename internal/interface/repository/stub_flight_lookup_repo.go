package repository

import (
	"context"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/internal/domain/repository"
)

// StubFlightLookupRepository stands in for a real lookup service. It only
// derives schedule placeholders from the requested date and leaves the route
// and gate unresolved.
type StubFlightLookupRepository struct{}

// NewStubFlightLookupRepository creates a stub lookup repository
func NewStubFlightLookupRepository() repository.FlightLookupRepository {
	return &StubFlightLookupRepository{}
}

// Lookup returns placeholder schedule times for req.Date
func (r *StubFlightLookupRepository) Lookup(ctx context.Context, req entity.LookupRequest) (*entity.FlightDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	departure := req.Date + " 00:00 AM"
	arrival := req.Date + " 00:00 PM"

	return &entity.FlightDetails{
		DepartureTime:      departure,
		ArrivalTime:        arrival,
		EstimatedDeparture: departure,
		EstimatedArrival:   arrival,
	}, nil
}
