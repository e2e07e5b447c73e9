package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/playperu/worldtour/internal/journey"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	// Field names the offending input on validation errors.
	Field string `json:"field,omitempty"`
	// Reason classifies generation failures.
	Reason string `json:"reason,omitempty"`
	// Retry tells the client the same request may succeed if repeated.
	Retry bool `json:"retry,omitempty"`
	// Reset tells the client its state may be unusable.
	Reset bool `json:"reset,omitempty"`
	// Journey is the state after a failed step, when there is one.
	Journey *journey.View `json:"journey,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeJourneyError maps engine errors onto HTTP responses. Anything it
// does not recognise is logged and reported as a 500 asking the client to
// reset.
func writeJourneyError(w http.ResponseWriter, logger *slog.Logger, err error, view *journey.View) {
	var verr *journey.ValidationError
	var gerr *journey.GenerationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, journey.ErrNotFound):
		writeError(w, http.StatusNotFound, "journey not found")
	case errors.Is(err, journey.ErrBusy):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "journey is busy, try again shortly", Retry: true})
	case errors.Is(err, journey.ErrWrongPhase), errors.Is(err, journey.ErrNoHistory):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &gerr):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   "could not generate " + gerr.Step,
			Reason:  gerr.Reason(),
			Retry:   true,
			Journey: view,
		})
	default:
		logger.Error("unexpected error", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error", Reset: true})
	}
}
