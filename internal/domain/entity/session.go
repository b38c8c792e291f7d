// internal/domain/entity/session.go
package entity

import "time"

// Planning session statuses
const (
	SessionReady     = "READY"
	SessionFinalized = "FINALIZED"
)

// Selection is the per-itinerary mutable selection state. It lives in the
// session, never on the generated entities.
type Selection struct {
	HotelID            string          `json:"hotelId" bson:"hotelId"`
	CommuteID          string          `json:"commuteId" bson:"commuteId"`
	ActivitySelections map[string]bool `json:"activitySelections" bson:"activitySelections"`
}

// SelectedActivityIDs returns the ids of currently selected activities.
func (s *Selection) SelectedActivityIDs() []string {
	var ids []string
	for id, on := range s.ActivitySelections {
		if on {
			ids = append(ids, id)
		}
	}
	return ids
}

// PlanningSession holds everything for one planning run: the immutable
// request, the generated bundle, and the mutable selection state keyed by
// itinerary id. Discarded (or TTL-expired) when the session ends.
type PlanningSession struct {
	ID                string               `json:"id" bson:"_id"`
	Request           TripRequest          `json:"request" bson:"request"`
	Bundle            ItineraryBundle      `json:"bundle" bson:"bundle"`
	ActiveItineraryID string               `json:"activeItineraryId" bson:"activeItineraryId"`
	Selections        map[string]Selection `json:"selections" bson:"selections"`
	Status            string               `json:"status" bson:"status"`
	CreatedAt         time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// ActiveItinerary returns the currently active itinerary, or nil.
func (s *PlanningSession) ActiveItinerary() *Itinerary {
	return s.Bundle.ItineraryByID(s.ActiveItineraryID)
}

// ActiveSelection returns the selection state for the active itinerary.
// A missing entry yields an empty selection rather than a nil map access.
func (s *PlanningSession) ActiveSelection() Selection {
	sel, ok := s.Selections[s.ActiveItineraryID]
	if !ok {
		return Selection{ActivitySelections: map[string]bool{}}
	}
	if sel.ActivitySelections == nil {
		sel.ActivitySelections = map[string]bool{}
	}
	return sel
}

// FinalTripSummary is the frozen record produced at finalize time.
type FinalTripSummary struct {
	SessionID          string         `json:"sessionId" bson:"sessionId"`
	Request            TripRequest    `json:"request" bson:"request"`
	Itinerary          Itinerary      `json:"itinerary" bson:"itinerary"`
	SelectedHotel      *Hotel         `json:"selectedHotel,omitempty" bson:"selectedHotel,omitempty"`
	SelectedCommute    *CommuteOption `json:"selectedCommute,omitempty" bson:"selectedCommute,omitempty"`
	SelectedActivities []Activity     `json:"selectedActivities" bson:"selectedActivities"`
	Costs              CostSummary    `json:"costs" bson:"costs"`
	FinalizedAt        time.Time      `json:"finalizedAt" bson:"finalizedAt"`
}
