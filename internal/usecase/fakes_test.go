package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"flight-tracker-service/internal/domain/entity"
)

var errDiskFull = errors.New("disk full")

// memoryCollectionRepo is an in-memory FlightCollectionRepository
type memoryCollectionRepo struct {
	mu      sync.Mutex
	stored  []*entity.Flight
	found   bool
	saves   int
	loadErr error
	saveErr error
}

func (r *memoryCollectionRepo) Load(ctx context.Context) ([]*entity.Flight, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, false, r.loadErr
	}
	if !r.found {
		return nil, false, nil
	}
	return cloneAll(r.stored), true, nil
}

func (r *memoryCollectionRepo) Save(ctx context.Context, flights []*entity.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.stored = cloneAll(flights)
	r.found = true
	return nil
}

func (r *memoryCollectionRepo) snapshot() []*entity.Flight {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.stored)
}

func (r *memoryCollectionRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func cloneAll(flights []*entity.Flight) []*entity.Flight {
	out := make([]*entity.Flight, len(flights))
	for i, f := range flights {
		out[i] = f.Clone()
	}
	return out
}

// funcLookupRepo delegates to lookupFunc and counts calls
type funcLookupRepo struct {
	mu         sync.Mutex
	calls      int
	lastReq    entity.LookupRequest
	lookupFunc func(ctx context.Context, req entity.LookupRequest) (*entity.FlightDetails, error)
}

func (r *funcLookupRepo) Lookup(ctx context.Context, req entity.LookupRequest) (*entity.FlightDetails, error) {
	r.mu.Lock()
	r.calls++
	r.lastReq = req
	r.mu.Unlock()

	if r.lookupFunc == nil {
		return &entity.FlightDetails{}, nil
	}
	return r.lookupFunc(ctx, req)
}

func (r *funcLookupRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func fixedClock() Clock {
	t := time.Date(2025, 8, 10, 7, 30, 0, 0, time.UTC)
	return func() time.Time { return t }
}

const fixedStamp = "2025-08-10 07:30:00 AM"
