package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/rides", h.PostRideForm).Methods(http.MethodPost)
	r.HandleFunc("/meetups", h.PostMeetupForm).Methods(http.MethodPost)
	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rides", h.GetRides).Methods(http.MethodGet)
	api.HandleFunc("/rides", h.CreateRide).Methods(http.MethodPost)
	api.HandleFunc("/meetups", h.GetMeetups).Methods(http.MethodGet)
	api.HandleFunc("/meetups", h.CreateMeetup).Methods(http.MethodPost)
	api.HandleFunc("/stats", h.GetStats).Methods(http.MethodGet)
	api.HandleFunc("/drafts", h.GetDrafts).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{form:ride|meetup}", h.UpdateDraft).Methods(http.MethodPatch)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Not found", http.StatusNotFound)
	})

	return r
}
