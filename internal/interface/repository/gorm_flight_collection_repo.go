package repository

import (
	"context"
	"errors"
	"time"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFlightCollectionRepository stores the collection as a JSON value in a key-value table
type GormFlightCollectionRepository struct {
	db  *gorm.DB
	key string
}

// KVEntries GORM model for database mapping
type KVEntries struct {
	Key       string `gorm:"column:entry_key;primaryKey"`
	Value     string `gorm:"column:value;type:text"`
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (KVEntries) TableName() string {
	return "kv_entries"
}

// NewGormFlightCollectionRepository creates a new GORM flight collection repository
// and makes sure the key-value table exists
func NewGormFlightCollectionRepository(db *gorm.DB, key string) (repository.FlightCollectionRepository, error) {
	if err := db.AutoMigrate(&KVEntries{}); err != nil {
		return nil, err
	}

	return &GormFlightCollectionRepository{
		db:  db,
		key: key,
	}, nil
}

// Load reads and decodes the stored collection
func (r *GormFlightCollectionRepository) Load(ctx context.Context) ([]*entity.Flight, bool, error) {
	var entry KVEntries
	result := r.db.WithContext(ctx).Where("entry_key = ?", r.key).First(&entry)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if result.Error != nil {
		return nil, false, result.Error
	}

	flights, err := decodeFlights([]byte(entry.Value))
	if err != nil {
		return nil, false, err
	}
	return flights, true, nil
}

// Save encodes the collection and upserts it under the repository key
func (r *GormFlightCollectionRepository) Save(ctx context.Context, flights []*entity.Flight) error {
	data, err := encodeFlights(flights)
	if err != nil {
		return err
	}

	entry := KVEntries{
		Key:       r.key,
		Value:     string(data),
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
