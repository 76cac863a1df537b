package usecase

import (
	"encoding/json"
	"fmt"
	"os"

	"flight-tracker-service/internal/domain/entity"
)

// DefaultTransitionRules delays F001 by an hour and departs F002
func DefaultTransitionRules() []entity.TransitionRule {
	return []entity.TransitionRule{
		{
			FlightID:           "F001",
			From:               entity.StatusOnTime,
			To:                 entity.StatusDelayed,
			EstimatedDeparture: "2025-08-10 09:00 AM",
			EstimatedArrival:   "2025-08-10 05:30 PM",
		},
		{
			FlightID: "F002",
			From:     entity.StatusOnTime,
			To:       entity.StatusDeparted,
		},
	}
}

// LoadTransitionRules reads a JSON array of rules from path and validates each one
func LoadTransitionRules(path string) ([]entity.TransitionRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules []entity.TransitionRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	for i, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return rules, nil
}
