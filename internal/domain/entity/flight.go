// internal/domain/entity/flight.go
package entity

// FlightStatus is the lifecycle status of a tracked flight
type FlightStatus string

const (
	StatusScheduled FlightStatus = "Scheduled"
	StatusOnTime    FlightStatus = "On Time"
	StatusDelayed   FlightStatus = "Delayed"
	StatusDeparted  FlightStatus = "Departed"
	StatusArrived   FlightStatus = "Arrived"
	StatusCancelled FlightStatus = "Cancelled"
)

// Placeholders used until the lookup service resolves a field
const (
	PlaceholderLocation = "N/A"
	PlaceholderGate     = "TBD"
)

// transitions lists the statuses reachable from each status
var transitions = map[FlightStatus][]FlightStatus{
	StatusScheduled: {StatusOnTime},
	StatusOnTime:    {StatusDelayed, StatusDeparted, StatusCancelled},
	StatusDelayed:   {StatusDeparted, StatusCancelled},
	StatusDeparted:  {StatusArrived},
	StatusArrived:   nil,
	StatusCancelled: nil,
}

// Valid reports whether s is one of the known statuses
func (s FlightStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition is possible from s
func (s FlightStatus) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransition reports whether the lifecycle allows moving from one status to another
func CanTransition(from, to FlightStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Flight represents a tracked flight itinerary
type Flight struct {
	ID                 string       `json:"id" bson:"id"`
	FlightNumber       string       `json:"flightNumber" bson:"flightNumber"`
	Airline            string       `json:"airline" bson:"airline"`
	Origin             string       `json:"origin" bson:"origin"`
	Destination        string       `json:"destination" bson:"destination"`
	DepartureTime      string       `json:"departureTime" bson:"departureTime"`
	ArrivalTime        string       `json:"arrivalTime" bson:"arrivalTime"`
	EstimatedDeparture string       `json:"estimatedDeparture" bson:"estimatedDeparture"`
	EstimatedArrival   string       `json:"estimatedArrival" bson:"estimatedArrival"`
	Status             FlightStatus `json:"status" bson:"status"`
	Gate               string       `json:"gate" bson:"gate"`
	Terminal           string       `json:"terminal" bson:"terminal"`
	BaggageClaim       string       `json:"baggageClaim" bson:"baggageClaim"`
	LastUpdated        string       `json:"lastUpdated" bson:"lastUpdated"`
}

// Clone returns a copy of the flight
func (f *Flight) Clone() *Flight {
	c := *f
	return &c
}

// StatusPatch is a partial update applied by the status simulator.
// Nil fields are left unchanged.
type StatusPatch struct {
	Status             *FlightStatus `json:"status,omitempty"`
	EstimatedDeparture *string       `json:"estimatedDeparture,omitempty"`
	EstimatedArrival   *string       `json:"estimatedArrival,omitempty"`
	LastUpdated        *string       `json:"lastUpdated,omitempty"`
}

// Apply writes the non-nil patch fields onto f
func (p StatusPatch) Apply(f *Flight) {
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.EstimatedDeparture != nil {
		f.EstimatedDeparture = *p.EstimatedDeparture
	}
	if p.EstimatedArrival != nil {
		f.EstimatedArrival = *p.EstimatedArrival
	}
	if p.LastUpdated != nil {
		f.LastUpdated = *p.LastUpdated
	}
}
