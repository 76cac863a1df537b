package repository

import (
	"context"
	"testing"

	"flight-tracker-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoFlightCollectionRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("load missing", func(mt *mtest.T) {
		repo := NewMongoFlightCollectionRepository(mt.DB, "trackedFlights")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.flight_collections", mtest.FirstBatch))

		flights, found, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, flights)
	})

	mt.Run("load stored", func(mt *mtest.T) {
		repo := NewMongoFlightCollectionRepository(mt.DB, "trackedFlights")
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.flight_collections", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "trackedFlights"},
			{Key: "flights", Value: bson.A{
				bson.D{
					{Key: "id", Value: "F001"},
					{Key: "flightNumber", Value: "UA234"},
					{Key: "status", Value: "Delayed"},
					{Key: "estimatedDeparture", Value: "2025-08-10 09:00 AM"},
				},
			}},
		}))

		flights, found, err := repo.Load(context.Background())
		require.NoError(t, err)
		require.True(t, found)
		require.Len(t, flights, 1)
		assert.Equal(t, "F001", flights[0].ID)
		assert.Equal(t, entity.StatusDelayed, flights[0].Status)
		assert.Equal(t, "2025-08-10 09:00 AM", flights[0].EstimatedDeparture)
	})

	mt.Run("load stored empty", func(mt *mtest.T) {
		repo := NewMongoFlightCollectionRepository(mt.DB, "trackedFlights")
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.flight_collections", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "trackedFlights"},
		}))

		flights, found, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.True(t, found)
		assert.NotNil(t, flights)
		assert.Empty(t, flights)
	})

	mt.Run("save", func(mt *mtest.T) {
		repo := NewMongoFlightCollectionRepository(mt.DB, "trackedFlights")
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(t, repo.Save(context.Background(), sampleFlights()))
	})

	mt.Run("save error", func(mt *mtest.T) {
		repo := NewMongoFlightCollectionRepository(mt.DB, "trackedFlights")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		assert.Error(t, repo.Save(context.Background(), sampleFlights()))
	})
}
