package entity

// LookupRequest is the input of an add-flight submission
type LookupRequest struct {
	FlightNumber string `json:"flightNumber" validate:"required"`
	Airline      string `json:"airline" validate:"required"`
	Date         string `json:"date" validate:"required"`
}

// FlightDetails is a possibly partial record returned by the lookup service.
// Empty fields are filled with placeholders when the flight is created.
type FlightDetails struct {
	Origin             string `json:"origin,omitempty"`
	Destination        string `json:"destination,omitempty"`
	DepartureTime      string `json:"departureTime,omitempty"`
	ArrivalTime        string `json:"arrivalTime,omitempty"`
	EstimatedDeparture string `json:"estimatedDeparture,omitempty"`
	EstimatedArrival   string `json:"estimatedArrival,omitempty"`
	Gate               string `json:"gate,omitempty"`
	Terminal           string `json:"terminal,omitempty"`
	BaggageClaim       string `json:"baggageClaim,omitempty"`
}
