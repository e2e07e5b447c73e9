package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/worldtour/internal/handler/health"
)

const defaultMaxUploadBytes = 4 << 20

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	engine := deps.Engine
	broker := deps.Broker
	if broker == nil {
		broker = NewBroker()
	}
	maxUpload := deps.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", handleSwaggerUI())
	r.Mount("/healthz", health.NewHandler(logger, deps.Checks).Routes())

	r.Get("/api/destinations", handleDestinations(deps.Pools))

	r.Route("/api/journeys", func(r chi.Router) {
		r.With(limitBody(maxUpload)).Post("/", handleStartJourney(logger, engine))

		r.Route("/{journeyID}", func(r chi.Router) {
			r.Use(journeyIDMiddleware)
			r.Get("/", handleGetJourney(logger, engine))
			r.With(limitBody(maxUpload)).Post("/start", handleBeginJourney(logger, engine))
			r.Post("/city", handleSelectCity(logger, engine))
			r.Post("/landmark", handleSelectLandmark(logger, engine))
			r.Post("/reset", handleResetJourney(logger, engine))
			r.Get("/itinerary", handleItinerary(logger, engine))
			r.Get("/photos/{ref}", handlePhoto(logger, engine))
			r.Get("/qr", handleQRCode(logger, engine))
			r.Get("/events", handleEvents(logger, engine, broker))
			r.Get("/ws", handleEventsWS(logger, engine, broker))
		})
	})

	r.With(adminAuthMiddleware(deps.Admin)).Put("/api/admin/generator-key", handleGeneratorKey(logger, deps.Generator))

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}
