package repository

import (
	"context"

	"flight-tracker-service/internal/domain/entity"
)

// FlightLookupRepository resolves flight details from an external source
type FlightLookupRepository interface {
	Lookup(ctx context.Context, req entity.LookupRequest) (*entity.FlightDetails, error)
}
