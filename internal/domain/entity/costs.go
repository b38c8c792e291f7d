// internal/domain/entity/costs.go
package entity

import "fmt"

// CostBand is a budget/midRange/luxury price triple in INR.
type CostBand struct {
	Budget   float64 `json:"budget" bson:"budget"`
	MidRange float64 `json:"midRange" bson:"midRange"`
	Luxury   float64 `json:"luxury" bson:"luxury"`
}

// FlightEstimate is the estimated round-trip flight cost.
type FlightEstimate struct {
	Route       string   `json:"route" bson:"route"`
	Airline     string   `json:"airline" bson:"airline"`
	EconomyAvg  float64  `json:"economyAvg" bson:"economyAvg"`
	BusinessAvg float64  `json:"businessAvg" bson:"businessAvg"`
	BookingTips []string `json:"bookingTips" bson:"bookingTips"`
}

// HiddenCost is an expense travelers tend to forget.
type HiddenCost struct {
	Type          string  `json:"type" bson:"type"`
	Description   string  `json:"description" bson:"description"`
	EstimatedCost float64 `json:"estimatedCost" bson:"estimatedCost"`
}

// CostEstimate is the Phase 3 output: realistic budget bands for the trip.
type CostEstimate struct {
	Destination    string         `json:"destination" bson:"destination"`
	TotalTripCost  CostBand       `json:"totalTripCost" bson:"totalTripCost"`
	Flights        FlightEstimate `json:"flights" bson:"flights"`
	DailyFood      CostBand       `json:"dailyFood" bson:"dailyFood"`
	HiddenCosts    []HiddenCost   `json:"hiddenCosts" bson:"hiddenCosts"`
	CostSavingTips []string       `json:"costSavingTips" bson:"costSavingTips"`
}

// Validate checks the estimate's schema invariants.
func (e *CostEstimate) Validate() error {
	if e.Flights.EconomyAvg < 0 {
		return fmt.Errorf("flight estimate is negative: %.2f", e.Flights.EconomyAvg)
	}
	if e.DailyFood.Budget < 0 || e.DailyFood.MidRange < 0 || e.DailyFood.Luxury < 0 {
		return fmt.Errorf("daily food estimates must be non-negative")
	}
	if e.TotalTripCost.Budget < 0 {
		return fmt.Errorf("total trip cost band is negative")
	}
	for _, h := range e.HiddenCosts {
		if h.EstimatedCost < 0 {
			return fmt.Errorf("hidden cost %q is negative", h.Type)
		}
	}
	return nil
}

// CostBreakdown is attached to each itinerary. Flights and Food are fixed
// baselines from generation; Accommodation, Activities, Commute, and Total
// are derived and must come from the recalculation engine only. They are
// zeroed right after generation so stale generated values never leak out.
type CostBreakdown struct {
	Flights       float64 `json:"flights" bson:"flights"`
	Food          float64 `json:"food" bson:"food"` // per-day rate
	Accommodation float64 `json:"accommodation" bson:"accommodation"`
	Activities    float64 `json:"activities" bson:"activities"`
	Commute       float64 `json:"commute" bson:"commute"`
	Total         float64 `json:"total" bson:"total"`
}

// ResetDerived zeroes the fields owned by the recalculation engine.
func (b *CostBreakdown) ResetDerived() {
	b.Accommodation = 0
	b.Activities = 0
	b.Commute = 0
	b.Total = 0
}

// CostSummary is the recalculation engine output for one itinerary under
// the current selection state.
type CostSummary struct {
	AccommodationCost  float64 `json:"accommodationCost" bson:"accommodationCost"`
	ActivitiesCost     float64 `json:"activitiesCost" bson:"activitiesCost"`
	CommuteCost        float64 `json:"commuteCost" bson:"commuteCost"`
	FoodCost           float64 `json:"foodCost" bson:"foodCost"`
	FlightsCost        float64 `json:"flightsCost" bson:"flightsCost"`
	TotalCost          float64 `json:"totalCost" bson:"totalCost"`
	RemainingBudget    float64 `json:"remainingBudget" bson:"remainingBudget"`
	OverallSafetyScore float64 `json:"overallSafetyScore" bson:"overallSafetyScore"`
}

// BudgetGuidance is advice that accompanies the itinerary bundle.
type BudgetGuidance struct {
	RecommendedBudget CostBand `json:"recommendedBudget" bson:"recommendedBudget"`
	CostSavingTips    []string `json:"costSavingTips" bson:"costSavingTips"`
	HiddenCosts       []string `json:"hiddenCosts" bson:"hiddenCosts"`
}
