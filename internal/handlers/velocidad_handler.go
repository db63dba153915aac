package handlers

import (
	"net/http"

	"velocilector/internal/models"
	"velocilector/internal/service"
)

// VelocidadHandler serves flashing-word exercise definitions
type VelocidadHandler struct {
	velocidadService *service.VelocidadService
}

// NewVelocidadHandler creates a new velocidad handler
func NewVelocidadHandler(velocidadService *service.VelocidadService) *VelocidadHandler {
	return &VelocidadHandler{velocidadService: velocidadService}
}

// Get serves a category's exercise with synthesized answers (public)
func (h *VelocidadHandler) Get(w http.ResponseWriter, r *http.Request) {
	categoria := models.Category(r.PathValue("categoria"))

	exercise, err := h.velocidadService.Get(categoria)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"content": exercise})
}

// Save upserts a category's exercise definition (admin)
func (h *VelocidadHandler) Save(w http.ResponseWriter, r *http.Request) {
	var exercise models.VelocidadEjercicio
	if err := decodeJSON(r, &exercise); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.velocidadService.Save(&exercise); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "id": exercise.ID})
}
