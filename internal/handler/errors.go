package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"gearshift/internal/repository"
	"gearshift/internal/service"
	"gearshift/internal/state"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error  string               `json:"error"`
	Fields []state.FieldProblem `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteSuccess(w, ErrorResponse{Error: message}, statusCode)
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeServiceError maps service and state errors onto API status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *state.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteSuccess(w, ErrorResponse{Error: verr.Error(), Fields: verr.Problems}, http.StatusUnprocessableEntity)
	case errors.Is(err, state.ErrUnknownField):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUploadsDisabled), errors.Is(err, service.ErrUploadTooLarge):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrEmptySessionID):
		WriteError(w, "Missing session", http.StatusBadRequest)
	default:
		log.Error().Err(err).Msg("request failed")
		WriteError(w, "Internal server error", http.StatusInternalServerError)
	}
}
