package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/internal/domain/repository"
	"tripgenie-service/internal/usecase"
	"tripgenie-service/pkg/logger"
	"tripgenie-service/pkg/utils"
)

// TripHandler exposes the planning workflow over HTTP
type TripHandler struct {
	planner *usecase.TripPlanner
	logger  logger.Logger
}

// NewTripHandler creates a new trip handler
func NewTripHandler(planner *usecase.TripPlanner, logger logger.Logger) *TripHandler {
	return &TripHandler{
		planner: planner,
		logger:  logger,
	}
}

type selectItineraryRequest struct {
	ItineraryID string `json:"itineraryId"`
}

type selectHotelRequest struct {
	HotelID string `json:"hotelId"`
}

type selectCommuteRequest struct {
	CommuteID string `json:"commuteId"`
}

// sessionResponse pairs the session snapshot with the live cost summary so
// clients never render stale totals after a selection change.
type sessionResponse struct {
	Session *entity.PlanningSession `json:"session"`
	Costs   entity.CostSummary      `json:"costs"`
}

func (h *TripHandler) writeSession(w http.ResponseWriter, status int, session *entity.PlanningSession) {
	utils.JSON(w, status, sessionResponse{
		Session: session,
		Costs:   h.planner.Summarize(session),
	})
}

// CreateTrip runs the full generation pipeline and opens a planning session.
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req entity.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.planner.Plan(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSession(w, http.StatusCreated, session)
}

// ListTrips returns recently archived sessions, newest first.
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	sessions, err := h.planner.Recent(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if sessions == nil {
		sessions = []*entity.PlanningSession{}
	}
	utils.JSON(w, http.StatusOK, sessions)
}

// GetTrip returns the current session snapshot.
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, err := h.planner.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSession(w, http.StatusOK, session)
}

// SelectItinerary switches the session's active itinerary variant.
func (h *TripHandler) SelectItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req selectItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItineraryID == "" {
		utils.Error(w, http.StatusBadRequest, "itineraryId is required")
		return
	}

	session, err := h.planner.SelectItinerary(r.Context(), ps.ByName("id"), req.ItineraryID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSession(w, http.StatusOK, session)
}

// SelectHotel picks the stay for the active itinerary.
func (h *TripHandler) SelectHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req selectHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.HotelID == "" {
		utils.Error(w, http.StatusBadRequest, "hotelId is required")
		return
	}

	session, err := h.planner.SelectHotel(r.Context(), ps.ByName("id"), req.HotelID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSession(w, http.StatusOK, session)
}

// SelectCommute picks the commute option for the active itinerary.
func (h *TripHandler) SelectCommute(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req selectCommuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CommuteID == "" {
		utils.Error(w, http.StatusBadRequest, "commuteId is required")
		return
	}

	session, err := h.planner.SelectCommute(r.Context(), ps.ByName("id"), req.CommuteID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSession(w, http.StatusOK, session)
}

// ToggleActivity flips one activity in or out of the active itinerary.
func (h *TripHandler) ToggleActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, err := h.planner.ToggleActivity(r.Context(), ps.ByName("id"), ps.ByName("activityId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSession(w, http.StatusOK, session)
}

// GetSummary recalculates the cost summary for the current selections.
func (h *TripHandler) GetSummary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	summary, err := h.planner.Summary(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}

// FinalizeTrip freezes the session into a final trip summary.
func (h *TripHandler) FinalizeTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	summary, err := h.planner.Finalize(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}

// writeError maps domain errors onto HTTP statuses. Generation pipeline
// failures surface as 502 since the fault sits behind the gateway.
func (h *TripHandler) writeError(w http.ResponseWriter, err error) {
	var phaseErr *usecase.PhaseError

	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		utils.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrUnknownItinerary), errors.Is(err, usecase.ErrUnknownOption):
		utils.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrSessionFinalized):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.As(err, &phaseErr):
		h.logger.Error("Generation pipeline failed",
			"phase", phaseErr.Phase,
			"destination", phaseErr.Destination,
			"error", phaseErr.Err)
		utils.Error(w, http.StatusBadGateway, err.Error())
	default:
		h.logger.Error("Request failed", "error", err)
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
