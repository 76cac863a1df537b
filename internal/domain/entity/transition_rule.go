package entity

import "fmt"

// TransitionRule moves one flight from a source status to a target status,
// optionally overwriting its estimated times
type TransitionRule struct {
	FlightID           string       `json:"flightId"`
	From               FlightStatus `json:"from"`
	To                 FlightStatus `json:"to"`
	EstimatedDeparture string       `json:"estimatedDeparture,omitempty"`
	EstimatedArrival   string       `json:"estimatedArrival,omitempty"`
}

// Validate checks that the rule names a flight and a lifecycle-legal transition
func (r TransitionRule) Validate() error {
	if r.FlightID == "" {
		return fmt.Errorf("%w: rule without flightId", ErrValidation)
	}
	if !r.From.Valid() || !r.To.Valid() {
		return fmt.Errorf("%w: unknown status in rule for %s (%q -> %q)", ErrValidation, r.FlightID, r.From, r.To)
	}
	if !CanTransition(r.From, r.To) {
		return fmt.Errorf("%w: %s -> %s for %s", ErrInvalidTransition, r.From, r.To, r.FlightID)
	}
	return nil
}

// Matches reports whether the rule applies to the flight in its current state
func (r TransitionRule) Matches(f *Flight) bool {
	return f.ID == r.FlightID && f.Status == r.From
}

// Patch builds the status patch for this rule stamped with lastUpdated
func (r TransitionRule) Patch(lastUpdated string) StatusPatch {
	to := r.To
	patch := StatusPatch{
		Status:      &to,
		LastUpdated: &lastUpdated,
	}
	if r.EstimatedDeparture != "" {
		dep := r.EstimatedDeparture
		patch.EstimatedDeparture = &dep
	}
	if r.EstimatedArrival != "" {
		arr := r.EstimatedArrival
		patch.EstimatedArrival = &arr
	}
	return patch
}
