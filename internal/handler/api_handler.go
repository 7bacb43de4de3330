package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"gearshift/internal/models"
	"gearshift/internal/session"
	"gearshift/internal/state"
	"gearshift/internal/view"
)

type RidesResponse struct {
	Rides []models.Ride `json:"rides"`
}

type MeetupsResponse struct {
	Meetups []models.Meetup `json:"meetups"`
}

type StatsResponse struct {
	Stats   state.Stats   `json:"stats"`
	Display []models.Stat `json:"display"`
}

type DraftsResponse struct {
	Ride   models.RideDraft   `json:"ride"`
	Meetup models.MeetupDraft `json:"meetup"`
}

type UpdateDraftRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func (h *Handlers) GetRides(w http.ResponseWriter, r *http.Request) {
	st, err := h.PageService.Snapshot(r.Context(), session.IDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, RidesResponse{Rides: nonNil(st.Rides)}, http.StatusOK)
}

func (h *Handlers) GetMeetups(w http.ResponseWriter, r *http.Request) {
	st, err := h.PageService.Snapshot(r.Context(), session.IDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, MeetupsResponse{Meetups: nonNil(st.Meetups)}, http.StatusOK)
}

func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.PageService.Stats(r.Context(), session.IDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, StatsResponse{Stats: stats, Display: view.StatList(stats)}, http.StatusOK)
}

func (h *Handlers) GetDrafts(w http.ResponseWriter, r *http.Request) {
	st, err := h.PageService.Snapshot(r.Context(), session.IDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, DraftsResponse{Ride: st.RideForm, Meetup: st.MeetupForm}, http.StatusOK)
}

// UpdateDraft stores one keystroke worth of input in the named draft.
func (h *Handlers) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	form := mux.Vars(r)["form"]

	var req UpdateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Field name is required", http.StatusBadRequest)
		return
	}

	st, err := h.PageService.UpdateField(r.Context(), session.IDFrom(r.Context()), form, req.Field, req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if form == state.FormRide {
		WriteSuccess(w, st.RideForm, http.StatusOK)
		return
	}
	WriteSuccess(w, st.MeetupForm, http.StatusOK)
}

// CreateRide submits the session's ride draft, after applying any fields in the body.
func (h *Handlers) CreateRide(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ride, _, err := h.PageService.SubmitRide(r.Context(), session.IDFrom(r.Context()), fields, nil)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, ride, http.StatusCreated)
}

func (h *Handlers) CreateMeetup(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	meetup, _, err := h.PageService.SubmitMeetup(r.Context(), session.IDFrom(r.Context()), fields)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, meetup, http.StatusCreated)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, HealthResponse{Status: "ok", Sessions: h.Sessions.Count()}, http.StatusOK)
}

// decodeFields reads an optional JSON object of draft fields; an empty body means none.
func decodeFields(r *http.Request) (map[string]string, error) {
	fields := map[string]string{}
	if r.Body == nil {
		return fields, nil
	}
	err := json.NewDecoder(r.Body).Decode(&fields)
	if errors.Is(err, io.EOF) {
		return fields, nil
	}
	return fields, err
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
