package handlers

import (
	"net/http"

	"velocilector/internal/models"
	"velocilector/internal/service"
)

// SessionHandler tracks visiting devices
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Register creates or reactivates a session with the client-generated ID
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var session models.Session
	if err := decodeJSON(r, &session); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session.IP = clientIP(r)

	if err := h.sessionService.Register(&session); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Heartbeat refreshes a session's last activity
func (h *SessionHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Heartbeat(r.PathValue("id")); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// End marks a session inactive immediately
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.End(r.PathValue("id")); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// List serves the full session set for the admin analytics view.
// Pagination happens client-side; the response includes a count so the
// view can size its pager.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	sessions, err := h.sessionService.List(activeOnly)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if sessions == nil {
		sessions = []models.Session{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"total":    len(sessions),
	})
}
