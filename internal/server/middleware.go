package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ctxKey int

const ctxKeyJourney ctxKey = iota

// journeyIDMiddleware rejects ids that cannot belong to any journey
// before they reach the engine or the store.
func journeyIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "journeyID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "journey not found")
			return
		}
		ctx := context.WithValue(r.Context(), ctxKeyJourney, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func journeyID(r *http.Request) string {
	return r.Context().Value(ctxKeyJourney).(string)
}

func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
