package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"velocilector/internal/security"
	"velocilector/internal/service"
)

func newTestMiddleware() *Middleware {
	auth := service.NewAuthService(nil, nil, security.NewTokenStore(nil), "test-secret", time.Hour, nil)
	return NewMiddleware(auth, security.NewRateLimiter(2, time.Minute))
}

func TestRequireAdminRejectsMissingToken(t *testing.T) {
	m := newTestMiddleware()
	handler := m.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler reached without a token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/results", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["error"] != "Unauthorized" {
		t.Errorf(`body error = %q, want "Unauthorized"`, body["error"])
	}
}

func TestRequireAdminRejectsGarbageToken(t *testing.T) {
	m := newTestMiddleware()
	handler := m.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler reached with a garbage token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/results", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRateLimitBlocksAfterBudget(t *testing.T) {
	m := newTestMiddleware()
	calls := 0
	handler := m.RateLimit(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
		req.RemoteAddr = "10.0.0.1:4444"
		rec := httptest.NewRecorder()
		handler(rec, req)

		if i < 2 && rec.Code != http.StatusOK {
			t.Errorf("request %d status = %d, want %d", i, rec.Code, http.StatusOK)
		}
		if i == 2 && rec.Code != http.StatusTooManyRequests {
			t.Errorf("request %d status = %d, want %d", i, rec.Code, http.StatusTooManyRequests)
		}
	}
	if calls != 2 {
		t.Errorf("handler ran %d times, want 2", calls)
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := bearerToken(req); got != "" {
		t.Errorf("bearerToken() = %q with no header, want empty", got)
	}

	req.Header.Set("Authorization", "Bearer abc123")
	if got := bearerToken(req); got != "abc123" {
		t.Errorf("bearerToken() = %q, want abc123", got)
	}

	req.Header.Set("Authorization", "Basic abc123")
	if got := bearerToken(req); got != "" {
		t.Errorf("bearerToken() = %q with basic auth, want empty", got)
	}
}
