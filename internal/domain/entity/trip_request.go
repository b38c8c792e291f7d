// internal/domain/entity/trip_request.go
package entity

import (
	"fmt"
	"strings"
)

// Trip types
const (
	TripTypeFormal   = "formal"
	TripTypeInformal = "informal"
)

// TripRequest is the immutable user input for one planning session.
type TripRequest struct {
	Destination  string   `json:"destination" bson:"destination"`
	DurationDays int      `json:"durationDays" bson:"durationDays"`
	PeopleCount  int      `json:"peopleCount" bson:"peopleCount"`
	BudgetINR    float64  `json:"budgetInr" bson:"budgetInr"`
	TripType     string   `json:"tripType" bson:"tripType"`
	TravelDates  string   `json:"travelDates" bson:"travelDates"`
	Preferences  []string `json:"preferences" bson:"preferences"`
	RoundTrip    bool     `json:"roundTrip" bson:"roundTrip"`
}

// Validate checks the request before any agent sees it.
func (r *TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("destination is required")
	}
	if r.DurationDays < 1 {
		return fmt.Errorf("duration must be at least 1 day, got %d", r.DurationDays)
	}
	if r.PeopleCount < 1 {
		return fmt.Errorf("people count must be at least 1, got %d", r.PeopleCount)
	}
	if r.BudgetINR <= 0 {
		return fmt.Errorf("budget must be positive, got %.2f", r.BudgetINR)
	}
	if t := r.TripTypeOrDefault(); t != TripTypeFormal && t != TripTypeInformal {
		return fmt.Errorf("trip type must be %q or %q, got %q", TripTypeFormal, TripTypeInformal, r.TripType)
	}
	return nil
}

// TripTypeOrDefault returns the trip type, defaulting to informal.
func (r *TripRequest) TripTypeOrDefault() string {
	if r.TripType == "" {
		return TripTypeInformal
	}
	return r.TripType
}

// Nights returns the billable night count for the trip, floored at 1.
func (r *TripRequest) Nights() int {
	return NightCount(r.DurationDays)
}

// NightCount converts a trip duration in days into a night count.
// A day trip still pays for one night.
func NightCount(durationDays int) int {
	if durationDays <= 1 {
		return 1
	}
	return durationDays - 1
}
