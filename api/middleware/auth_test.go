package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drishtilibrary/drishti-backend/pkg/config"
	"github.com/drishtilibrary/drishti-backend/pkg/logger"
)

func newAuthHandler(t *testing.T) http.Handler {
	t.Helper()
	admin := config.AdminConfig{Username: "admin", Password: "secret"}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return AdminAuth(admin, logg)(next)
}

func TestAdminAuthMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/slides", nil)
	resp := httptest.NewRecorder()
	newAuthHandler(t).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if env.Success {
		t.Fatal("expected failure envelope")
	}
	if env.Error != "Unauthorized" {
		t.Fatalf("unexpected error %q", env.Error)
	}
}

func TestAdminAuthWrongCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/slides", nil)
	req.SetBasicAuth("admin", "nope")
	resp := httptest.NewRecorder()
	newAuthHandler(t).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	var env struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if env.Error != "Invalid credentials" {
		t.Fatalf("unexpected error %q", env.Error)
	}
}

func TestAdminAuthValidCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/slides", nil)
	req.SetBasicAuth("admin", "secret")
	resp := httptest.NewRecorder()
	newAuthHandler(t).ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected handler reached, got %d", resp.Code)
	}
}
