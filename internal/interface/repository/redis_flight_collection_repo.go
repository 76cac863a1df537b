package repository

import (
	"context"
	"errors"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// RedisFlightCollectionRepository stores the collection as a JSON string under one Redis key
type RedisFlightCollectionRepository struct {
	client redis.Cmdable
	key    string
}

// NewRedisFlightCollectionRepository creates a new Redis flight collection repository
func NewRedisFlightCollectionRepository(client redis.Cmdable, key string) repository.FlightCollectionRepository {
	return &RedisFlightCollectionRepository{
		client: client,
		key:    key,
	}
}

// Load reads the collection; a missing key means nothing was saved yet
func (r *RedisFlightCollectionRepository) Load(ctx context.Context) ([]*entity.Flight, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	flights, err := decodeFlights(data)
	if err != nil {
		return nil, false, err
	}
	return flights, true, nil
}

// Save overwrites the key without expiry
func (r *RedisFlightCollectionRepository) Save(ctx context.Context, flights []*entity.Flight) error {
	data, err := encodeFlights(flights)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}
