package usecase

import "tripgenie-service/internal/domain/entity"

// Recalculate derives the live cost and safety numbers for one itinerary
// under the given selection state. Pure and synchronous: identical inputs
// always yield identical output, and the order in which selections were
// made cannot matter because only the final selection set is consulted.
//
// Missing or unknown hotel/commute ids are treated as "nothing selected"
// and contribute zero cost; they are never an error. An over-budget total
// simply yields a negative remaining budget.
func Recalculate(it *entity.Itinerary, sel entity.Selection, durationDays int, budgetINR float64) entity.CostSummary {
	nights := entity.NightCount(durationDays)

	var summary entity.CostSummary
	summary.FlightsCost = it.Cost.Flights
	summary.FoodCost = it.Cost.Food * float64(durationDays)

	var safetyScores []float64

	if hotel := it.HotelByID(sel.HotelID); hotel != nil {
		summary.AccommodationCost = hotel.CostPerNight * float64(nights)
		if hotel.SafetyScore > 0 {
			safetyScores = append(safetyScores, hotel.SafetyScore)
		}
	}

	// Commute is billed per trip day, not per night.
	if commute := it.CommuteByID(sel.CommuteID); commute != nil {
		summary.CommuteCost = commute.Cost * float64(durationDays)
	}

	for _, act := range it.Activities() {
		if !sel.ActivitySelections[act.ID] {
			continue
		}
		summary.ActivitiesCost += act.Cost
		if act.SafetyScore > 0 {
			safetyScores = append(safetyScores, act.SafetyScore)
		}
	}

	summary.TotalCost = summary.FlightsCost +
		summary.AccommodationCost +
		summary.ActivitiesCost +
		summary.CommuteCost +
		summary.FoodCost
	summary.RemainingBudget = budgetINR - summary.TotalCost

	if len(safetyScores) > 0 {
		var sum float64
		for _, s := range safetyScores {
			sum += s
		}
		summary.OverallSafetyScore = sum / float64(len(safetyScores))
	}

	return summary
}
