package handlers

import (
	"net/http"
	"strconv"

	"velocilector/internal/models"
	"velocilector/internal/repository"
	"velocilector/internal/validation"
)

// EntrenamientoHandler manages per-category training sections
type EntrenamientoHandler struct {
	repo *repository.EntrenamientoRepository
}

// NewEntrenamientoHandler creates a new entrenamiento handler
func NewEntrenamientoHandler(repo *repository.EntrenamientoRepository) *EntrenamientoHandler {
	return &EntrenamientoHandler{repo: repo}
}

// List serves a category's active sections in order (public)
func (h *EntrenamientoHandler) List(w http.ResponseWriter, r *http.Request) {
	categoria := models.Category(r.PathValue("categoria"))
	if err := validation.ValidateCategoria(categoria); err != nil {
		handleServiceError(w, err)
		return
	}

	items, err := h.repo.ListByCategory(categoria, true)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.EntrenamientoItem{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// ListAll serves every section including inactive ones (admin)
func (h *EntrenamientoHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	categoria := models.Category(r.PathValue("categoria"))
	if err := validation.ValidateCategoria(categoria); err != nil {
		handleServiceError(w, err)
		return
	}

	items, err := h.repo.ListByCategory(categoria, false)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.EntrenamientoItem{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// Create adds a section at the end of its category's list (admin)
func (h *EntrenamientoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.EntrenamientoItem
	if err := decodeJSON(r, &item); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateCategoria(item.Categoria); err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.repo.Create(&item); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "id": item.ID})
}

// Update replaces a section's fields (admin)
func (h *EntrenamientoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var item models.EntrenamientoItem
	if err := decodeJSON(r, &item); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item.ID = id

	if err := h.repo.Update(&item); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete removes a section (admin)
func (h *EntrenamientoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Reorder assigns sort positions following the posted ID order (admin)
func (h *EntrenamientoHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Categoria models.Category `json:"categoria"`
		IDs       []int64         `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateCategoria(req.Categoria); err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.repo.Reorder(req.Categoria, req.IDs); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
