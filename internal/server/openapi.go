package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/swgui/v5emb"

	"github.com/playperu/worldtour/internal/journey"
)

// HealthResponse documents GET /healthz: dependency name to status.
type HealthResponse map[string]struct {
	Status string `json:"status"`
}

type journeyPath struct {
	ID string `path:"journeyID" format:"uuid"`
}

type photoPath struct {
	ID  string `path:"journeyID" format:"uuid"`
	Ref string `path:"ref"`
}

type choiceBody struct {
	journeyPath
	ChoiceRequest
}

type startBody struct {
	journeyPath
	StartRequest
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "World Tour API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the World Tour photo journey game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/destinations
	getDest, _ := r.NewOperationContext(http.MethodGet, "/api/destinations")
	getDest.SetSummary("Destination pools")
	getDest.SetDescription("Returns the city pool of every round.")
	getDest.AddRespStructure([]RoundDestinations{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getDest)

	// POST /api/journeys
	postJourney, _ := r.NewOperationContext(http.MethodPost, "/api/journeys")
	postJourney.SetSummary("Start a journey")
	postJourney.SetDescription("Creates a journey from a nickname and a selfie. The journey shows the intro before the first city choice.")
	postJourney.AddReqStructure(StartRequest{})
	postJourney.AddRespStructure(journey.View{}, openapi.WithHTTPStatus(http.StatusCreated))
	postJourney.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postJourney.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusRequestEntityTooLarge))
	_ = r.AddOperation(postJourney)

	// GET /api/journeys/{journeyID}
	getJourney, _ := r.NewOperationContext(http.MethodGet, "/api/journeys/{journeyID}")
	getJourney.SetSummary("Get journey")
	getJourney.SetDescription("Returns the journey snapshot. Never waits for a running generation.")
	getJourney.AddReqStructure(journeyPath{})
	getJourney.AddRespStructure(journey.View{}, openapi.WithHTTPStatus(http.StatusOK))
	getJourney.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getJourney)

	// POST /api/journeys/{journeyID}/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/journeys/{journeyID}/start")
	postStart.SetSummary("Restart a journey")
	postStart.SetDescription("Starts a journey that was reset.")
	postStart.AddReqStructure(startBody{})
	postStart.AddRespStructure(journey.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postStart)

	// POST /api/journeys/{journeyID}/city
	postCity, _ := r.NewOperationContext(http.MethodPost, "/api/journeys/{journeyID}/city")
	postCity.SetSummary("Choose a city")
	postCity.SetDescription("Chooses one of the offered cities by index or name and generates its city photo.")
	postCity.AddReqStructure(choiceBody{})
	postCity.AddRespStructure(journey.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postCity.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postCity.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postCity.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(postCity)

	// POST /api/journeys/{journeyID}/landmark
	postLandmark, _ := r.NewOperationContext(http.MethodPost, "/api/journeys/{journeyID}/landmark")
	postLandmark.SetSummary("Choose a landmark")
	postLandmark.SetDescription("Chooses a landmark, generates the souvenir photo and diary, and completes the round.")
	postLandmark.AddReqStructure(choiceBody{})
	postLandmark.AddRespStructure(journey.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postLandmark.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postLandmark.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postLandmark.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(postLandmark)

	// POST /api/journeys/{journeyID}/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/journeys/{journeyID}/reset")
	postReset.SetSummary("Reset journey")
	postReset.SetDescription("Returns the journey to the start and deletes everything saved for it.")
	postReset.AddReqStructure(journeyPath{})
	postReset.AddRespStructure(journey.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postReset)

	// GET /api/journeys/{journeyID}/itinerary
	getItinerary, _ := r.NewOperationContext(http.MethodGet, "/api/journeys/{journeyID}/itinerary")
	getItinerary.SetSummary("Export itinerary")
	getItinerary.SetDescription("Self-contained HTML page of the completed stops. Add ?download=1 for an attachment.")
	getItinerary.AddReqStructure(journeyPath{})
	getItinerary.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK), openapi.WithContentType("text/html"))
	getItinerary.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(getItinerary)

	// GET /api/journeys/{journeyID}/photos/{ref}
	getPhoto, _ := r.NewOperationContext(http.MethodGet, "/api/journeys/{journeyID}/photos/{ref}")
	getPhoto.SetSummary("Get photo")
	getPhoto.SetDescription("Returns a generated photo by the ref found in the journey snapshot.")
	getPhoto.AddReqStructure(photoPath{})
	getPhoto.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK), openapi.WithContentType("image/png"))
	getPhoto.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getPhoto)

	// GET /api/journeys/{journeyID}/qr
	getQR, _ := r.NewOperationContext(http.MethodGet, "/api/journeys/{journeyID}/qr")
	getQR.SetSummary("Itinerary QR code")
	getQR.SetDescription("PNG QR code linking to the itinerary.")
	getQR.AddReqStructure(journeyPath{})
	getQR.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK), openapi.WithContentType("image/png"))
	_ = r.AddOperation(getQR)

	// GET /api/journeys/{journeyID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/journeys/{journeyID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of journey changes.")
	getEvents.AddReqStructure(journeyPath{})
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/journeys/{journeyID}/ws
	getWS, _ := r.NewOperationContext(http.MethodGet, "/api/journeys/{journeyID}/ws")
	getWS.SetSummary("WebSocket event stream")
	getWS.SetDescription("Upgrades to a WebSocket carrying the same events as the SSE stream.")
	getWS.AddReqStructure(journeyPath{})
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("application/json"))
	_ = r.AddOperation(getWS)

	// PUT /api/admin/generator-key
	putKey, _ := r.NewOperationContext(http.MethodPut, "/api/admin/generator-key")
	putKey.SetSummary("Replace generator key")
	putKey.SetDescription("Replaces the image and text generator API key. Requires HTTP basic auth.")
	putKey.AddReqStructure(GeneratorKeyRequest{})
	putKey.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	putKey.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	putKey.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(putKey)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func handleSwaggerUI() http.HandlerFunc {
	return v5emb.New("World Tour API", "/openapi.json", "/docs").ServeHTTP
}
