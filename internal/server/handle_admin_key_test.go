package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func adminServer(t *testing.T) *testServer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return newTestServer(t, func(d *Deps) {
		d.Admin = AdminCredentials{User: "admin", PasswordHash: string(hash)}
	})
}

func putKey(ts *testServer, user, password, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/admin/generator-key", strings.NewReader(body))
	if user != "" {
		req.SetBasicAuth(user, password)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func TestGeneratorKeyAuth(t *testing.T) {
	ts := adminServer(t)

	tests := []struct {
		name     string
		user     string
		password string
		want     int
	}{
		{"no credentials", "", "", http.StatusUnauthorized},
		{"wrong password", "admin", "nope", http.StatusUnauthorized},
		{"wrong user", "root", "s3cret", http.StatusUnauthorized},
		{"valid", "admin", "s3cret", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := putKey(ts, tt.user, tt.password, `{"apiKey":"k-123"}`)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
			if tt.want == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("expected WWW-Authenticate challenge")
			}
		})
	}

	if ts.gen.key != "k-123" {
		t.Errorf("expected key k-123 to be applied, got %q", ts.gen.key)
	}
}

func TestGeneratorKeyBody(t *testing.T) {
	ts := adminServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"blank key", `{"apiKey":"   "}`, http.StatusBadRequest},
		{"rejected by generator", `{"apiKey":"bad"}`, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := putKey(ts, "admin", "s3cret", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGeneratorKeyDisabled(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := putKey(ts, "admin", "s3cret", `{"apiKey":"k"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without admin credentials, got %d", rec.Code)
	}
}
