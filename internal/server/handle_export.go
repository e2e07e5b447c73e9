package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/worldtour/internal/export"
	"github.com/playperu/worldtour/internal/journey"
)

func handleItinerary(logger *slog.Logger, engine *journey.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := journeyID(r)

		var buf bytes.Buffer
		if err := engine.Export(r.Context(), id, &buf); err != nil {
			writeJourneyError(w, logger, err, nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.URL.Query().Get("download") != "" {
			w.Header().Set("Content-Disposition", `attachment; filename="world-tour-`+id[:8]+`.html"`)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func handlePhoto(logger *slog.Logger, engine *journey.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := chi.URLParam(r, "ref")
		photo, err := engine.Photo(r.Context(), journeyID(r), ref)
		if errors.Is(err, journey.ErrNotFound) {
			writeError(w, http.StatusNotFound, "photo not found")
			return
		}
		if err != nil {
			writeJourneyError(w, logger, err, nil)
			return
		}

		// Refs are content hashes, so a photo never changes under its URL.
		w.Header().Set("Content-Type", photo.MIMEType)
		w.Header().Set("Content-Length", strconv.Itoa(len(photo.Data)))
		w.Header().Set("Cache-Control", "private, max-age=31536000, immutable")
		w.Header().Set("ETag", `"`+ref+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(photo.Data)
	}
}

const qrPixels = 320

// handleQRCode serves a PNG QR code linking to the journey's itinerary.
// Without a configured public URL the link is derived from the request.
func handleQRCode(logger *slog.Logger, engine *journey.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := journeyID(r)
		if _, err := engine.View(r.Context(), id); err != nil {
			writeJourneyError(w, logger, err, nil)
			return
		}

		url := engine.ShareURL(id)
		if url == "" {
			url = requestBaseURL(r) + "/api/journeys/" + id + "/itinerary"
		}
		png, err := export.QRCode(url, qrPixels)
		if err != nil {
			writeJourneyError(w, logger, err, nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}

func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" || proto == "http" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
