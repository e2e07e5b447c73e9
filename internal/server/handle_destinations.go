package server

import (
	"net/http"

	"github.com/playperu/worldtour/internal/travel"
)

// RoundDestinations is one round's pool in GET /api/destinations.
type RoundDestinations struct {
	Round  int           `json:"round"`
	Cities []travel.City `json:"cities"`
}

func handleDestinations(pools [][]travel.City) http.HandlerFunc {
	if pools == nil {
		pools = travel.DefaultPools
	}
	resp := make([]RoundDestinations, len(pools))
	for i, p := range pools {
		resp[i] = RoundDestinations{Round: i + 1, Cities: p}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		writeJSON(w, http.StatusOK, resp)
	}
}
