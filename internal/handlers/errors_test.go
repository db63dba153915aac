package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"velocilector/internal/service"
	"velocilector/internal/validation"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	return body
}

func TestRespondUnauthorizedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	respondUnauthorized(rec)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	body := decodeErrorBody(t, rec)
	if body["error"] != "Unauthorized" {
		t.Errorf(`body error = %q, want "Unauthorized"`, body["error"])
	}
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation failure is explanatory 400",
			err:        validation.ValidationError{Field: "categoria", Message: "unknown category"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid credentials is 401",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token is 401",
			err:        service.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unexpected error is generic 500",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decodeErrorBody(t, rec)
			if body["error"] == "" {
				t.Error("error body is empty")
			}
		})
	}
}
