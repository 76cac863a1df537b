package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"flight-tracker-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightLookupRepository struct {
	mock.Mock
}

func (m *MockFlightLookupRepository) Lookup(ctx context.Context, req entity.LookupRequest) (*entity.FlightDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FlightDetails), args.Error(1)
}

func TestCachedFlightLookupRepository_CachesSuccess(t *testing.T) {
	next := new(MockFlightLookupRepository)
	req := entity.LookupRequest{FlightNumber: "UA234", Airline: "United Airlines", Date: "2025-09-01"}
	next.On("Lookup", mock.Anything, req).Return(&entity.FlightDetails{Origin: "SFO"}, nil).Once()

	repo := NewCachedFlightLookupRepository(next, time.Minute)

	first, err := repo.Lookup(context.Background(), req)
	require.NoError(t, err)
	second, err := repo.Lookup(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "SFO", first.Origin)
	assert.Equal(t, "SFO", second.Origin)

	// callers get independent copies
	first.Origin = "changed"
	third, err := repo.Lookup(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "SFO", third.Origin)

	next.AssertExpectations(t)
}

func TestCachedFlightLookupRepository_DoesNotCacheFailures(t *testing.T) {
	next := new(MockFlightLookupRepository)
	req := entity.LookupRequest{FlightNumber: "UA234", Airline: "United Airlines", Date: "2025-09-01"}
	next.On("Lookup", mock.Anything, req).Return(nil, errors.New("boom")).Once()
	next.On("Lookup", mock.Anything, req).Return(&entity.FlightDetails{Gate: "A1"}, nil).Once()

	repo := NewCachedFlightLookupRepository(next, time.Minute)

	_, err := repo.Lookup(context.Background(), req)
	require.Error(t, err)

	details, err := repo.Lookup(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "A1", details.Gate)

	next.AssertExpectations(t)
}

func TestCachedFlightLookupRepository_NilDetails(t *testing.T) {
	next := new(MockFlightLookupRepository)
	req := entity.LookupRequest{FlightNumber: "UA234", Airline: "United Airlines", Date: "2025-09-01"}
	next.On("Lookup", mock.Anything, req).Return(nil, nil).Once()

	repo := NewCachedFlightLookupRepository(next, time.Minute)

	var details *entity.FlightDetails
	var err error
	require.NotPanics(t, func() {
		details, err = repo.Lookup(context.Background(), req)
	})
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, entity.FlightDetails{}, *details)

	// the empty record is cached like any other result
	cached, err := repo.Lookup(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, entity.FlightDetails{}, *cached)

	next.AssertExpectations(t)
}
