package repository

import (
	"context"

	"flight-tracker-service/internal/domain/entity"
)

// FlightCollectionRepository persists the whole tracked flight collection
// as a single blob under one key
type FlightCollectionRepository interface {
	// Load returns the stored collection; found is false if nothing was saved yet
	Load(ctx context.Context) (flights []*entity.Flight, found bool, err error)

	// Save replaces the stored collection
	Save(ctx context.Context, flights []*entity.Flight) error
}
