package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/playperu/worldtour/internal/journey"
)

// StartRequest is the request body for POST /api/journeys and
// POST /api/journeys/{id}/start.
type StartRequest struct {
	Nickname string `json:"nickname"`
	// Selfie is a data URL, or bare base64 when SelfieMIMEType is set.
	Selfie         string `json:"selfie"`
	SelfieMIMEType string `json:"selfieMimeType,omitempty"`
}

// ChoiceRequest is the request body for the city and landmark choices.
// Index wins when both are given.
type ChoiceRequest struct {
	Index *int   `json:"index,omitempty"`
	Name  string `json:"name,omitempty"`
}

func (c ChoiceRequest) choice() journey.Choice {
	return journey.Choice{Index: c.Index, Name: c.Name}
}

func readStart(w http.ResponseWriter, r *http.Request) (StartRequest, bool) {
	var req StartRequest
	if err := readJSON(r, &req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "selfie is too large")
			return req, false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}

func handleStartJourney(logger *slog.Logger, engine *journey.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := readStart(w, r)
		if !ok {
			return
		}
		selfie, err := decodePhoto(req.Selfie, req.SelfieMIMEType)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "selfie"})
			return
		}

		view, err := engine.Start(r.Context(), req.Nickname, selfie)
		if err != nil {
			writeJourneyError(w, logger, err, nil)
			return
		}
		w.Header().Set("Location", "/api/journeys/"+view.ID)
		writeJSON(w, http.StatusCreated, view)
	}
}

func handleBeginJourney(logger *slog.Logger, engine *journey.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := readStart(w, r)
		if !ok {
			return
		}
		selfie, err := decodePhoto(req.Selfie, req.SelfieMIMEType)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "selfie"})
			return
		}

		view, err := engine.Begin(r.Context(), journeyID(r), req.Nickname, selfie)
		if err != nil {
			writeJourneyError(w, logger, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func handleGetJourney(logger *slog.Logger, engine *journey.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := engine.View(r.Context(), journeyID(r))
		if err != nil {
			writeJourneyError(w, logger, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

type choiceFunc func(ctx context.Context, id string, c journey.Choice) (journey.View, error)

func handleChoice(logger *slog.Logger, step choiceFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChoiceRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		view, err := step(r.Context(), journeyID(r), req.choice())
		if err != nil {
			var failed *journey.View
			if view.ID != "" {
				failed = &view
			}
			writeJourneyError(w, logger, err, failed)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func handleSelectCity(logger *slog.Logger, engine *journey.Engine) http.HandlerFunc {
	return handleChoice(logger, engine.SelectCity)
}

func handleSelectLandmark(logger *slog.Logger, engine *journey.Engine) http.HandlerFunc {
	return handleChoice(logger, engine.SelectLandmark)
}

func handleResetJourney(logger *slog.Logger, engine *journey.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := engine.Reset(r.Context(), journeyID(r))
		if err != nil {
			writeJourneyError(w, logger, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}
