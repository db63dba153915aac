package handlers

import (
	"net/http"
	"strconv"

	"velocilector/internal/models"
	"velocilector/internal/service"
)

// ContentHandler serves reading and razonamiento content and themes
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// GetReading resolves reading content through the fallback chain
func (h *ContentHandler) GetReading(w http.ResponseWriter, r *http.Request) {
	h.getContent(w, r, models.ContentReading)
}

// GetRazonamiento resolves razonamiento content through the fallback chain
func (h *ContentHandler) GetRazonamiento(w http.ResponseWriter, r *http.Request) {
	h.getContent(w, r, models.ContentRazonamiento)
}

// getContent serves {"content": record|null}. A miss after the full
// fallback chain is a 200 with a null body, not a 404, so clients render
// an empty state instead of an error.
func (h *ContentHandler) getContent(w http.ResponseWriter, r *http.Request, ct models.ContentType) {
	categoria := models.Category(r.PathValue("categoria"))
	tema := queryInt(r, "tema", 1)
	idioma := r.URL.Query().Get("lang")

	record, err := h.contentService.GetContent(ct, categoria, tema, idioma)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"content": record})
}

// GetReadingThemes enumerates reading themes for the theme selector
func (h *ContentHandler) GetReadingThemes(w http.ResponseWriter, r *http.Request) {
	h.getThemes(w, r, models.ContentReading)
}

// GetRazonamientoThemes enumerates razonamiento themes
func (h *ContentHandler) GetRazonamientoThemes(w http.ResponseWriter, r *http.Request) {
	h.getThemes(w, r, models.ContentRazonamiento)
}

func (h *ContentHandler) getThemes(w http.ResponseWriter, r *http.Request, ct models.ContentType) {
	categoria := models.Category(r.PathValue("categoria"))
	idioma := r.URL.Query().Get("lang")

	themes, err := h.contentService.ListThemes(ct, categoria, idioma)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if themes == nil {
		themes = []models.Theme{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"themes": themes})
}

// SaveReading upserts a reading record (admin)
func (h *ContentHandler) SaveReading(w http.ResponseWriter, r *http.Request) {
	h.saveContent(w, r, models.ContentReading)
}

// SaveRazonamiento upserts a razonamiento record (admin)
func (h *ContentHandler) SaveRazonamiento(w http.ResponseWriter, r *http.Request) {
	h.saveContent(w, r, models.ContentRazonamiento)
}

func (h *ContentHandler) saveContent(w http.ResponseWriter, r *http.Request, ct models.ContentType) {
	var record models.ContentRecord
	if err := decodeJSON(r, &record); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	record.Type = ct

	if err := h.contentService.SaveContent(&record); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "id": record.ID})
}

// queryInt reads an integer query parameter with a default
func queryInt(r *http.Request, key string, defaultValue int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return defaultValue
}
