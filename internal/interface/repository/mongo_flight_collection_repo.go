package repository

import (
	"context"
	"errors"
	"time"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// flightCollectionDocument is the single document holding a collection
type flightCollectionDocument struct {
	Key       string           `bson:"_id"`
	Flights   []*entity.Flight `bson:"flights"`
	UpdatedAt time.Time        `bson:"updatedAt"`
}

// MongoFlightCollectionRepository implements FlightCollectionRepository
type MongoFlightCollectionRepository struct {
	collection *mongo.Collection
	key        string
}

// NewMongoFlightCollectionRepository creates a new flight collection repository
func NewMongoFlightCollectionRepository(db *mongo.Database, key string) repository.FlightCollectionRepository {
	return &MongoFlightCollectionRepository{
		collection: db.Collection("flight_collections"),
		key:        key,
	}
}

// Load reads the collection document
func (r *MongoFlightCollectionRepository) Load(ctx context.Context) ([]*entity.Flight, bool, error) {
	var doc flightCollectionDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": r.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if doc.Flights == nil {
		doc.Flights = []*entity.Flight{}
	}
	return doc.Flights, true, nil
}

// Save upserts the collection document
func (r *MongoFlightCollectionRepository) Save(ctx context.Context, flights []*entity.Flight) error {
	if flights == nil {
		flights = []*entity.Flight{}
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": r.key},
		bson.M{"$set": bson.M{
			"flights":   flights,
			"updatedAt": time.Now(),
		}},
		opts,
	)
	return err
}
