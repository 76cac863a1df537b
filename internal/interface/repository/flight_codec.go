package repository

import (
	"encoding/json"
	"fmt"

	"flight-tracker-service/internal/domain/entity"
)

// encodeFlights serializes the collection as an ordered JSON array
func encodeFlights(flights []*entity.Flight) ([]byte, error) {
	if flights == nil {
		flights = []*entity.Flight{}
	}
	data, err := json.Marshal(flights)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal flights: %w", err)
	}
	return data, nil
}

func decodeFlights(data []byte) ([]*entity.Flight, error) {
	var flights []*entity.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flights: %w", err)
	}
	if flights == nil {
		flights = []*entity.Flight{}
	}
	return flights, nil
}
