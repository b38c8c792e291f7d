// internal/domain/entity/itinerary.go
package entity

import (
	"fmt"
	"strings"
)

// CommuteOption is one way to get around for the whole trip. Cost is per
// day. Which option is selected lives in session state, not here.
type CommuteOption struct {
	Type         string   `json:"type" bson:"type"`
	ID           string   `json:"id" bson:"id"`
	Cost         float64  `json:"cost" bson:"cost"`
	InfoLink     string   `json:"infoLink" bson:"infoLink"`
	Pros         []string `json:"pros" bson:"pros"`
	Cons         []string `json:"cons" bson:"cons"`
	SafetyScore  float64  `json:"safetyScore" bson:"safetyScore"`
	Availability string   `json:"availability" bson:"availability"`
	BookingInfo  string   `json:"bookingInfo" bson:"bookingInfo"`
}

// Validate checks the commute option's schema invariants.
func (c *CommuteOption) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("commute option has no id")
	}
	if strings.TrimSpace(c.Type) == "" {
		return fmt.Errorf("commute option %s has no type", c.ID)
	}
	if c.Cost < 0 {
		return fmt.Errorf("commute option %q has negative cost %.2f", c.Type, c.Cost)
	}
	if err := validateScore(fmt.Sprintf("commute option %q safety score", c.Type), c.SafetyScore); err != nil {
		return err
	}
	return nil
}

// DailyPlan is the ordered schedule for one day of the trip.
type DailyPlan struct {
	Day             int        `json:"day" bson:"day"`
	Title           string     `json:"title" bson:"title"`
	Theme           string     `json:"theme" bson:"theme"`
	Activities      []Activity `json:"activities" bson:"activities"`
	LogisticalNotes []string   `json:"logisticalNotes" bson:"logisticalNotes"`
}

// Itinerary is one complete candidate trip plan.
type Itinerary struct {
	ID                 string          `json:"id" bson:"id"`
	Vibe               string          `json:"vibe" bson:"vibe"`
	Title              string          `json:"title" bson:"title"`
	Description        string          `json:"description" bson:"description"`
	DailyPlan          []DailyPlan     `json:"dailyPlan" bson:"dailyPlan"`
	HotelOptions       []Hotel         `json:"hotelOptions" bson:"hotelOptions"`
	CommuteOptions     []CommuteOption `json:"commuteOptions" bson:"commuteOptions"`
	Cost               CostBreakdown   `json:"cost" bson:"cost"`
	OverallSafetyScore float64         `json:"overallSafetyScore" bson:"overallSafetyScore"`
	UniqueExperiences  []string        `json:"uniqueExperiences" bson:"uniqueExperiences"`
	LocalInsights      []string        `json:"localInsights" bson:"localInsights"`
}

// Validate checks the itinerary against its invariants for the requested
// trip duration: contiguous day indices 1..duration, option cardinality,
// and per-entity schema checks.
func (it *Itinerary) Validate(durationDays int) error {
	if strings.TrimSpace(it.ID) == "" {
		return fmt.Errorf("itinerary has no id")
	}
	if strings.TrimSpace(it.Vibe) == "" {
		return fmt.Errorf("itinerary %s has no vibe", it.ID)
	}
	if len(it.DailyPlan) != durationDays {
		return fmt.Errorf("itinerary %q has %d daily plans, expected %d", it.Vibe, len(it.DailyPlan), durationDays)
	}
	seenDays := make(map[int]bool)
	for _, day := range it.DailyPlan {
		if day.Day < 1 || day.Day > durationDays {
			return fmt.Errorf("itinerary %q has out-of-range day %d", it.Vibe, day.Day)
		}
		if seenDays[day.Day] {
			return fmt.Errorf("itinerary %q has duplicate day %d", it.Vibe, day.Day)
		}
		seenDays[day.Day] = true
		for i := range day.Activities {
			if err := day.Activities[i].Validate(); err != nil {
				return fmt.Errorf("itinerary %q day %d: %w", it.Vibe, day.Day, err)
			}
		}
	}
	if len(it.HotelOptions) < MinOptions || len(it.HotelOptions) > MaxOptions {
		return fmt.Errorf("itinerary %q has %d hotel options, expected %d-%d", it.Vibe, len(it.HotelOptions), MinOptions, MaxOptions)
	}
	for i := range it.HotelOptions {
		if err := it.HotelOptions[i].Validate(); err != nil {
			return fmt.Errorf("itinerary %q: %w", it.Vibe, err)
		}
	}
	if len(it.CommuteOptions) < MinOptions || len(it.CommuteOptions) > MaxOptions {
		return fmt.Errorf("itinerary %q has %d commute options, expected %d-%d", it.Vibe, len(it.CommuteOptions), MinOptions, MaxOptions)
	}
	for i := range it.CommuteOptions {
		if err := it.CommuteOptions[i].Validate(); err != nil {
			return fmt.Errorf("itinerary %q: %w", it.Vibe, err)
		}
	}
	if it.Cost.Flights < 0 || it.Cost.Food < 0 {
		return fmt.Errorf("itinerary %q has negative baseline costs", it.Vibe)
	}
	if err := validateScore(fmt.Sprintf("itinerary %q overall safety score", it.Vibe), it.OverallSafetyScore); err != nil {
		return err
	}
	return nil
}

// HotelByID returns the hotel option with the given id, or nil.
func (it *Itinerary) HotelByID(id string) *Hotel {
	for i := range it.HotelOptions {
		if it.HotelOptions[i].ID == id {
			return &it.HotelOptions[i]
		}
	}
	return nil
}

// CommuteByID returns the commute option with the given id, or nil.
func (it *Itinerary) CommuteByID(id string) *CommuteOption {
	for i := range it.CommuteOptions {
		if it.CommuteOptions[i].ID == id {
			return &it.CommuteOptions[i]
		}
	}
	return nil
}

// Activities returns every activity across all daily plans, in day order.
func (it *Itinerary) Activities() []Activity {
	var all []Activity
	for _, day := range it.DailyPlan {
		all = append(all, day.Activities...)
	}
	return all
}

// ItineraryCount is the number of variants produced per planning session.
const ItineraryCount = 3

// DestinationOverview is the bundle-level destination summary.
type DestinationOverview struct {
	Destination     string   `json:"destination" bson:"destination"`
	BestTimeToVisit string   `json:"bestTimeToVisit" bson:"bestTimeToVisit"`
	Currency        string   `json:"currency" bson:"currency"`
	Language        string   `json:"language" bson:"language"`
	SafetyOverview  string   `json:"safetyOverview" bson:"safetyOverview"`
	CulturalTips    []string `json:"culturalTips" bson:"culturalTips"`
}

// ItineraryBundle is the full orchestrator output: exactly three itinerary
// variants with distinct vibes, plus destination and budget summaries.
type ItineraryBundle struct {
	Itineraries         []Itinerary         `json:"itineraries" bson:"itineraries"`
	DestinationOverview DestinationOverview `json:"destinationOverview" bson:"destinationOverview"`
	BudgetGuidance      BudgetGuidance      `json:"budgetGuidance" bson:"budgetGuidance"`
}

// Validate checks the bundle: exactly three itineraries with pairwise
// distinct vibes, each valid for the requested duration.
func (b *ItineraryBundle) Validate(durationDays int) error {
	if len(b.Itineraries) != ItineraryCount {
		return fmt.Errorf("expected exactly %d itineraries, got %d", ItineraryCount, len(b.Itineraries))
	}
	vibes := make(map[string]bool)
	ids := make(map[string]bool)
	for i := range b.Itineraries {
		it := &b.Itineraries[i]
		if err := it.Validate(durationDays); err != nil {
			return err
		}
		if vibes[it.Vibe] {
			return fmt.Errorf("duplicate itinerary vibe %q", it.Vibe)
		}
		vibes[it.Vibe] = true
		if ids[it.ID] {
			return fmt.Errorf("duplicate itinerary id %s", it.ID)
		}
		ids[it.ID] = true
	}
	return nil
}

// ItineraryByID returns the itinerary with the given id, or nil.
func (b *ItineraryBundle) ItineraryByID(id string) *Itinerary {
	for i := range b.Itineraries {
		if b.Itineraries[i].ID == id {
			return &b.Itineraries[i]
		}
	}
	return nil
}
