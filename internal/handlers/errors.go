package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"velocilector/internal/agent"
	"velocilector/internal/service"
	"velocilector/internal/validation"
)

// respondJSON writes a JSON body with the given status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondWithError writes {"error": message} with the given status
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondUnauthorized writes the fixed 401 body the admin panel expects
func respondUnauthorized(w http.ResponseWriter) {
	respondWithError(w, http.StatusUnauthorized, "Unauthorized")
}

// handleServiceError converts service-layer failures into the JSON error
// taxonomy: validation failures are explanatory 400s, LLM exhaustion is
// 429 or 500, everything else degrades to a generic 500. No handler lets
// an error escape unconverted.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		respondUnauthorized(w)
	case errors.Is(err, service.ErrEmailNotAllowed):
		respondWithError(w, http.StatusForbidden, "email not allowed")
	case errors.Is(err, service.ErrResetTokenInvalid):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrImageTooLarge),
		errors.Is(err, service.ErrInvalidImageURI):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, agent.ErrModelsExhausted):
		log.Printf("Agent models exhausted: %v", err)
		respondWithError(w, http.StatusInternalServerError, "generative-AI service unavailable")
	default:
		log.Printf("Unhandled error: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeJSON reads a JSON request body into dst, rejecting malformed input
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
