package repository

import (
	"context"
	"strings"
	"time"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/internal/domain/repository"

	"github.com/patrickmn/go-cache"
)

// CachedFlightLookupRepository memoizes successful lookups in memory.
// Failures are never cached.
type CachedFlightLookupRepository struct {
	next  repository.FlightLookupRepository
	cache *cache.Cache
}

// NewCachedFlightLookupRepository wraps next with a cache holding entries for ttl
func NewCachedFlightLookupRepository(next repository.FlightLookupRepository, ttl time.Duration) repository.FlightLookupRepository {
	return &CachedFlightLookupRepository{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Lookup serves from cache when possible, otherwise delegates
func (r *CachedFlightLookupRepository) Lookup(ctx context.Context, req entity.LookupRequest) (*entity.FlightDetails, error) {
	key := lookupCacheKey(req)
	if val, found := r.cache.Get(key); found {
		details := *val.(*entity.FlightDetails)
		return &details, nil
	}

	details, err := r.next.Lookup(ctx, req)
	if err != nil {
		return nil, err
	}

	if details == nil {
		details = &entity.FlightDetails{}
	}

	stored := *details
	r.cache.SetDefault(key, &stored)
	return details, nil
}

func lookupCacheKey(req entity.LookupRequest) string {
	return strings.Join([]string{
		strings.ToUpper(req.FlightNumber),
		strings.ToLower(req.Airline),
		req.Date,
	}, "|")
}
