package entity_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenie-service/internal/domain/entity"
)

func validItinerary(id, vibe string, days int) entity.Itinerary {
	it := entity.Itinerary{
		ID:   id,
		Vibe: vibe,
		HotelOptions: []entity.Hotel{
			{ID: id + "-h1", Name: "One", CostPerNight: 2000, SafetyScore: 80},
			{ID: id + "-h2", Name: "Two", CostPerNight: 3500, SafetyScore: 85},
			{ID: id + "-h3", Name: "Three", CostPerNight: 5000, SafetyScore: 95},
		},
		CommuteOptions: []entity.CommuteOption{
			{ID: id + "-c1", Type: "Scooter", Cost: 400, SafetyScore: 70},
			{ID: id + "-c2", Type: "Taxi", Cost: 1200, SafetyScore: 92},
			{ID: id + "-c3", Type: "Bus", Cost: 150, SafetyScore: 80},
		},
		Cost:               entity.CostBreakdown{Flights: 12000, Food: 1500},
		OverallSafetyScore: 85,
	}
	for d := 1; d <= days; d++ {
		it.DailyPlan = append(it.DailyPlan, entity.DailyPlan{
			Day: d,
			Activities: []entity.Activity{
				{ID: fmt.Sprintf("%s-act-%d", id, d), Name: "Activity", Cost: 500, SafetyScore: 85, Difficulty: entity.DifficultyEasy},
			},
		})
	}
	return it
}

func validBundle(days int) entity.ItineraryBundle {
	return entity.ItineraryBundle{
		Itineraries: []entity.Itinerary{
			validItinerary("it-1", "Cultural Immersion", days),
			validItinerary("it-2", "Adventure & Leisure", days),
			validItinerary("it-3", "Hidden Gems", days),
		},
	}
}

func TestTripRequestValidate(t *testing.T) {
	valid := entity.TripRequest{
		Destination:  "Goa",
		DurationDays: 3,
		PeopleCount:  2,
		BudgetINR:    50000,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*entity.TripRequest)
	}{
		{"empty destination", func(r *entity.TripRequest) { r.Destination = "  " }},
		{"zero duration", func(r *entity.TripRequest) { r.DurationDays = 0 }},
		{"zero people", func(r *entity.TripRequest) { r.PeopleCount = 0 }},
		{"zero budget", func(r *entity.TripRequest) { r.BudgetINR = 0 }},
		{"negative budget", func(r *entity.TripRequest) { r.BudgetINR = -100 }},
		{"bad trip type", func(r *entity.TripRequest) { r.TripType = "business" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestTripRequestTripTypeDefaultsToInformal(t *testing.T) {
	req := entity.TripRequest{
		Destination:  "Goa",
		DurationDays: 3,
		PeopleCount:  2,
		BudgetINR:    50000,
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, entity.TripTypeInformal, req.TripTypeOrDefault())

	req.TripType = entity.TripTypeFormal
	require.NoError(t, req.Validate())
	assert.Equal(t, entity.TripTypeFormal, req.TripTypeOrDefault())
}

func TestItineraryValidate(t *testing.T) {
	require.NoError(t, func() error {
		it := validItinerary("it-1", "Cultural Immersion", 3)
		return it.Validate(3)
	}())

	tests := []struct {
		name   string
		mutate func(*entity.Itinerary)
	}{
		{"missing vibe", func(it *entity.Itinerary) { it.Vibe = "" }},
		{"too few days", func(it *entity.Itinerary) { it.DailyPlan = it.DailyPlan[:2] }},
		{"duplicate day", func(it *entity.Itinerary) { it.DailyPlan[1].Day = 1 }},
		{"day out of range", func(it *entity.Itinerary) { it.DailyPlan[2].Day = 9 }},
		{"too few hotels", func(it *entity.Itinerary) { it.HotelOptions = it.HotelOptions[:2] }},
		{"too few commutes", func(it *entity.Itinerary) { it.CommuteOptions = it.CommuteOptions[:1] }},
		{"negative flights", func(it *entity.Itinerary) { it.Cost.Flights = -1 }},
		{"safety out of range", func(it *entity.Itinerary) { it.OverallSafetyScore = 120 }},
		{"negative activity cost", func(it *entity.Itinerary) { it.DailyPlan[0].Activities[0].Cost = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := validItinerary("it-1", "Cultural Immersion", 3)
			tt.mutate(&it)
			assert.Error(t, it.Validate(3))
		})
	}
}

func TestBundleValidate(t *testing.T) {
	bundle := validBundle(3)
	require.NoError(t, bundle.Validate(3))

	t.Run("wrong count", func(t *testing.T) {
		b := validBundle(3)
		b.Itineraries = b.Itineraries[:2]
		assert.Error(t, b.Validate(3))
	})

	t.Run("duplicate vibe", func(t *testing.T) {
		b := validBundle(3)
		b.Itineraries[2].Vibe = b.Itineraries[0].Vibe
		assert.Error(t, b.Validate(3))
	})

	t.Run("duplicate id", func(t *testing.T) {
		b := validBundle(3)
		b.Itineraries[2].ID = b.Itineraries[0].ID
		assert.Error(t, b.Validate(3))
	})

	t.Run("duration mismatch", func(t *testing.T) {
		b := validBundle(3)
		assert.Error(t, b.Validate(4))
	})
}

func TestItineraryLookups(t *testing.T) {
	it := validItinerary("it-1", "Cultural Immersion", 3)

	require.NotNil(t, it.HotelByID("it-1-h2"))
	assert.Nil(t, it.HotelByID("missing"))
	require.NotNil(t, it.CommuteByID("it-1-c3"))
	assert.Nil(t, it.CommuteByID("missing"))

	acts := it.Activities()
	require.Len(t, acts, 3)
	assert.Equal(t, "it-1-act-1", acts[0].ID)
	assert.Equal(t, "it-1-act-3", acts[2].ID)
}

func TestCostBreakdownResetDerived(t *testing.T) {
	b := entity.CostBreakdown{
		Flights:       12000,
		Food:          1500,
		Accommodation: 9000,
		Activities:    4500,
		Commute:       1200,
		Total:         28200,
	}
	b.ResetDerived()

	assert.Equal(t, 12000.0, b.Flights)
	assert.Equal(t, 1500.0, b.Food)
	assert.Zero(t, b.Accommodation)
	assert.Zero(t, b.Activities)
	assert.Zero(t, b.Commute)
	assert.Zero(t, b.Total)
}

func TestSessionActiveSelection(t *testing.T) {
	session := entity.PlanningSession{
		Bundle:            validBundle(3),
		ActiveItineraryID: "it-2",
		Selections: map[string]entity.Selection{
			"it-2": {HotelID: "it-2-h1", ActivitySelections: map[string]bool{"it-2-act-1": true}},
		},
	}

	require.NotNil(t, session.ActiveItinerary())
	assert.Equal(t, "it-2", session.ActiveItinerary().ID)
	assert.Equal(t, "it-2-h1", session.ActiveSelection().HotelID)

	// Missing selection entries yield a usable empty selection.
	session.ActiveItineraryID = "it-3"
	sel := session.ActiveSelection()
	assert.Empty(t, sel.HotelID)
	assert.NotNil(t, sel.ActivitySelections)
}

func TestSelectionSelectedActivityIDs(t *testing.T) {
	sel := entity.Selection{ActivitySelections: map[string]bool{
		"a": true,
		"b": false,
		"c": true,
	}}
	ids := sel.SelectedActivityIDs()
	assert.ElementsMatch(t, []string{"a", "c"}, ids)
}

func TestAccommodationReportValidate(t *testing.T) {
	report := entity.AccommodationReport{
		Options: []entity.Hotel{
			{ID: "h1", Name: "One", CostPerNight: 2000, SafetyScore: 80},
			{ID: "h2", Name: "Two", CostPerNight: 3500, SafetyScore: 85},
			{ID: "h3", Name: "Three", CostPerNight: 5000, SafetyScore: 95},
		},
	}
	require.NoError(t, report.Validate())

	report.Options[2].ID = "h1"
	assert.Error(t, report.Validate(), "duplicate hotel ids must be rejected")
}

func TestActivityCatalogFlatten(t *testing.T) {
	catalog := entity.ActivityCatalog{
		Categories: []entity.ActivityCategory{
			{Category: "Watersports", Activities: []entity.Activity{{ID: "a1", Name: "Surf"}}},
			{Category: "Culture", Activities: []entity.Activity{{ID: "a2", Name: "Walk", Category: "Heritage"}}},
		},
	}
	flat := catalog.Flatten()
	require.Len(t, flat, 2)
	assert.Equal(t, "Watersports", flat[0].Category, "missing category is filled from the group")
	assert.Equal(t, "Heritage", flat[1].Category, "explicit category is preserved")
}
