// internal/domain/entity/destination.go
package entity

import (
	"fmt"
	"strings"
)

// Climate describes expected weather during the travel dates.
type Climate struct {
	Season      string   `json:"season" bson:"season"`
	Temperature string   `json:"temperature" bson:"temperature"`
	Rainfall    string   `json:"rainfall" bson:"rainfall"`
	Clothing    []string `json:"clothing" bson:"clothing"`
}

// Currency is the local currency with an approximate INR exchange rate.
type Currency struct {
	Local        string  `json:"local" bson:"local"`
	ExchangeRate float64 `json:"exchangeRate" bson:"exchangeRate"`
}

// Language describes the primary language and English proficiency.
type Language struct {
	Primary      string   `json:"primary" bson:"primary"`
	EnglishLevel string   `json:"englishLevel" bson:"englishLevel"`
	KeyPhrases   []string `json:"keyPhrases" bson:"keyPhrases"`
}

// SafetyOverview is the destination-level safety assessment.
type SafetyOverview struct {
	OverallScore float64  `json:"overallScore" bson:"overallScore"`
	Concerns     []string `json:"concerns" bson:"concerns"`
	Tips         []string `json:"tips" bson:"tips"`
}

// Culture carries customs, etiquette, and festivals during the travel period.
type Culture struct {
	Customs   []string `json:"customs" bson:"customs"`
	Etiquette []string `json:"etiquette" bson:"etiquette"`
	Festivals []string `json:"festivals" bson:"festivals"`
}

// CostRange is a min/max band in INR.
type CostRange struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// LocalTransportOption is one destination-specific way of getting around.
type LocalTransportOption struct {
	Type         string    `json:"type" bson:"type"`
	Availability string    `json:"availability" bson:"availability"`
	CostRange    CostRange `json:"costRange" bson:"costRange"`
	Pros         []string  `json:"pros" bson:"pros"`
	Cons         []string  `json:"cons" bson:"cons"`
	SafetyScore  float64   `json:"safetyScore" bson:"safetyScore"`
	BookingInfo  string    `json:"bookingInfo" bson:"bookingInfo"`
}

// AccommodationCategory is one lodging tier available at the destination.
type AccommodationCategory struct {
	Category            string   `json:"category" bson:"category"`
	AverageCostPerNight float64  `json:"averageCostPerNight" bson:"averageCostPerNight"`
	PopularAreas        []string `json:"popularAreas" bson:"popularAreas"`
	Amenities           []string `json:"amenities" bson:"amenities"`
	SafetyScore         float64  `json:"safetyScore" bson:"safetyScore"`
}

// MealTiers holds daily meal costs per spending tier, in INR.
type MealTiers struct {
	Budget   float64 `json:"budget" bson:"budget"`
	MidRange float64 `json:"midRange" bson:"midRange"`
	Luxury   float64 `json:"luxury" bson:"luxury"`
}

// LocalCostProfile summarizes what things cost on the ground.
type LocalCostProfile struct {
	Meals             MealTiers `json:"meals" bson:"meals"`
	FreeActivities    []string  `json:"freeActivities" bson:"freeActivities"`
	ActivityCostRange CostRange `json:"activityCostRange" bson:"activityCostRange"`
}

// DestinationProfile is the Phase 1 output: everything downstream agents
// need to know about the destination. Read-only after creation.
type DestinationProfile struct {
	Destination     string                  `json:"destination" bson:"destination"`
	Country         string                  `json:"country" bson:"country"`
	Region          string                  `json:"region" bson:"region"`
	Climate         Climate                 `json:"climate" bson:"climate"`
	Currency        Currency                `json:"currency" bson:"currency"`
	Language        Language                `json:"language" bson:"language"`
	Transportation  []LocalTransportOption  `json:"transportation" bson:"transportation"`
	Accommodation   []AccommodationCategory `json:"accommodation" bson:"accommodation"`
	Costs           LocalCostProfile        `json:"costs" bson:"costs"`
	Safety          SafetyOverview          `json:"safety" bson:"safety"`
	Culture         Culture                 `json:"culture" bson:"culture"`
	BestTimeToVisit string                  `json:"bestTimeToVisit" bson:"bestTimeToVisit"`
}

// Validate checks the generated profile against its schema invariants.
func (p *DestinationProfile) Validate() error {
	if strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("destination name is empty")
	}
	if p.Currency.Local == "" {
		return fmt.Errorf("local currency is empty")
	}
	if p.Currency.ExchangeRate <= 0 {
		return fmt.Errorf("exchange rate must be positive, got %.4f", p.Currency.ExchangeRate)
	}
	if err := validateScore("overall safety score", p.Safety.OverallScore); err != nil {
		return err
	}
	if len(p.Transportation) == 0 {
		return fmt.Errorf("no transportation options returned")
	}
	for i, t := range p.Transportation {
		if t.Type == "" {
			return fmt.Errorf("transport option %d has no type", i)
		}
		if t.CostRange.Min < 0 || t.CostRange.Max < t.CostRange.Min {
			return fmt.Errorf("transport option %q has invalid cost range [%.2f, %.2f]", t.Type, t.CostRange.Min, t.CostRange.Max)
		}
		if err := validateScore(fmt.Sprintf("transport option %q safety score", t.Type), t.SafetyScore); err != nil {
			return err
		}
	}
	if len(p.Accommodation) == 0 {
		return fmt.Errorf("no accommodation categories returned")
	}
	for i, a := range p.Accommodation {
		if a.Category == "" {
			return fmt.Errorf("accommodation category %d has no name", i)
		}
		if a.AverageCostPerNight < 0 {
			return fmt.Errorf("accommodation category %q has negative nightly cost", a.Category)
		}
		if err := validateScore(fmt.Sprintf("accommodation category %q safety score", a.Category), a.SafetyScore); err != nil {
			return err
		}
	}
	if p.Costs.Meals.Budget < 0 || p.Costs.Meals.MidRange < 0 || p.Costs.Meals.Luxury < 0 {
		return fmt.Errorf("meal tier costs must be non-negative")
	}
	return nil
}

// validateScore enforces the 0-100 safety score band.
func validateScore(field string, score float64) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%s out of range: %.2f", field, score)
	}
	return nil
}
