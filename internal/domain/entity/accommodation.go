// internal/domain/entity/accommodation.go
package entity

import (
	"fmt"
	"strings"
)

// HotelLocation places a hotel within the destination.
type HotelLocation struct {
	Area             string `json:"area" bson:"area"`
	DistanceToCenter string `json:"distanceToCenter" bson:"distanceToCenter"`
}

// Hotel is one concrete lodging option. Which hotel is the selected stay
// lives in session state, never on the entity.
type Hotel struct {
	ID           string        `json:"id" bson:"id"`
	Name         string        `json:"name" bson:"name"`
	Category     string        `json:"category" bson:"category"`
	Rating       float64       `json:"rating" bson:"rating"`
	CostPerNight float64       `json:"costPerNight" bson:"costPerNight"`
	BookingLink  string        `json:"bookingLink" bson:"bookingLink"`
	SafetyScore  float64       `json:"safetyScore" bson:"safetyScore"`
	Review       Review        `json:"review" bson:"review"`
	Location     HotelLocation `json:"location" bson:"location"`
	Amenities    []string      `json:"amenities" bson:"amenities"`
}

// Validate checks the hotel's schema invariants.
func (h *Hotel) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return fmt.Errorf("hotel has no id")
	}
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("hotel %s has no name", h.ID)
	}
	if h.CostPerNight < 0 {
		return fmt.Errorf("hotel %q has negative nightly cost %.2f", h.Name, h.CostPerNight)
	}
	if err := validateScore(fmt.Sprintf("hotel %q safety score", h.Name), h.SafetyScore); err != nil {
		return err
	}
	return nil
}

// Option list cardinality for hotels and commute options per itinerary.
const (
	MinOptions = 3
	MaxOptions = 8
)

// AccommodationReport is the Phase 2 accommodation-search output.
type AccommodationReport struct {
	Destination string   `json:"destination" bson:"destination"`
	Options     []Hotel  `json:"options" bson:"options"`
	AreaAdvice  []string `json:"areaAdvice" bson:"areaAdvice"`
	BookingTips []string `json:"bookingTips" bson:"bookingTips"`
}

// Validate checks the report and every hotel in it.
func (r *AccommodationReport) Validate() error {
	if len(r.Options) < MinOptions || len(r.Options) > MaxOptions {
		return fmt.Errorf("expected %d-%d accommodation options, got %d", MinOptions, MaxOptions, len(r.Options))
	}
	seen := make(map[string]bool)
	for i := range r.Options {
		h := &r.Options[i]
		if err := h.Validate(); err != nil {
			return err
		}
		if seen[h.ID] {
			return fmt.Errorf("duplicate hotel id %s", h.ID)
		}
		seen[h.ID] = true
	}
	return nil
}
