package server

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/playperu/worldtour/internal/gemini"
)

// AdminCredentials protect the admin routes. PasswordHash is a bcrypt
// hash; with no user configured the admin routes are disabled.
type AdminCredentials struct {
	User         string
	PasswordHash string
}

func (c AdminCredentials) enabled() bool {
	return c.User != "" && c.PasswordHash != ""
}

func (c AdminCredentials) verify(user, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	return userOK && passOK
}

func adminAuthMiddleware(creds AdminCredentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !creds.enabled() {
				writeError(w, http.StatusForbidden, "admin access is not configured")
				return
			}
			user, password, ok := r.BasicAuth()
			if !ok || !creds.verify(user, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="world tour admin"`)
				writeError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GeneratorKeyRequest is the request body for PUT /api/admin/generator-key.
type GeneratorKeyRequest struct {
	APIKey string `json:"apiKey"`
}

func handleGeneratorKey(logger *slog.Logger, gen KeyConfigurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GeneratorKeyRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.APIKey = strings.TrimSpace(req.APIKey)
		if req.APIKey == "" {
			writeError(w, http.StatusBadRequest, "apiKey is required")
			return
		}

		err := gen.Reconfigure(r.Context(), req.APIKey)
		var gerr *gemini.Error
		if errors.As(err, &gerr) {
			writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "could not configure generator", Reason: string(gerr.Reason)})
			return
		}
		if err != nil {
			logger.Error("reconfiguring generator failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		logger.Info("generator key replaced")
		w.WriteHeader(http.StatusNoContent)
	}
}
