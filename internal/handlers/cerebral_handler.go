package handlers

import (
	"net/http"

	"velocilector/internal/models"
	"velocilector/internal/service"
)

// CerebralHandler serves cerebral exercises and their themes
type CerebralHandler struct {
	contentService *service.ContentService
}

// NewCerebralHandler creates a new cerebral handler
func NewCerebralHandler(contentService *service.ContentService) *CerebralHandler {
	return &CerebralHandler{contentService: contentService}
}

// Get resolves a cerebral exercise through the same fallback chain as
// reading content, serving {"content": exercise|null}.
func (h *CerebralHandler) Get(w http.ResponseWriter, r *http.Request) {
	categoria := models.Category(r.PathValue("categoria"))
	tema := queryInt(r, "tema", 1)
	idioma := r.URL.Query().Get("lang")

	exercise, err := h.contentService.GetCerebral(categoria, tema, idioma)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"content": exercise})
}

// GetThemes enumerates cerebral themes
func (h *CerebralHandler) GetThemes(w http.ResponseWriter, r *http.Request) {
	categoria := models.Category(r.PathValue("categoria"))
	idioma := r.URL.Query().Get("lang")

	themes, err := h.contentService.ListThemes(models.ContentCerebral, categoria, idioma)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if themes == nil {
		themes = []models.Theme{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"themes": themes})
}

// Save upserts a cerebral exercise (admin)
func (h *CerebralHandler) Save(w http.ResponseWriter, r *http.Request) {
	var exercise models.CerebralExercise
	if err := decodeJSON(r, &exercise); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.contentService.SaveCerebral(&exercise); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "id": exercise.ID})
}
