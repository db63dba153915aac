package handlers

import (
	"net/http"
	"strconv"

	"velocilector/internal/models"
	"velocilector/internal/repository"
	"velocilector/internal/validation"
)

// PrepPageHandler manages reusable prep screens and their category
// assignments
type PrepPageHandler struct {
	repo *repository.PrepPageRepository
}

// NewPrepPageHandler creates a new prep page handler
func NewPrepPageHandler(repo *repository.PrepPageRepository) *PrepPageHandler {
	return &PrepPageHandler{repo: repo}
}

// GetForCategory serves the prep page assigned to a category (public).
// Categories without an assignment get {"content": null}.
func (h *PrepPageHandler) GetForCategory(w http.ResponseWriter, r *http.Request) {
	categoria := models.Category(r.PathValue("categoria"))
	if err := validation.ValidateCategoria(categoria); err != nil {
		handleServiceError(w, err)
		return
	}

	page, err := h.repo.GetForCategory(categoria)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"content": page})
}

// List serves every prep page (admin)
func (h *PrepPageHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.repo.List()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if pages == nil {
		pages = []models.PrepPage{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"pages": pages})
}

// Create adds a prep page (admin)
func (h *PrepPageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var page models.PrepPage
	if err := decodeJSON(r, &page); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.repo.Create(&page); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "id": page.ID})
}

// Update replaces a prep page's fields (admin)
func (h *PrepPageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var page models.PrepPage
	if err := decodeJSON(r, &page); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	page.ID = id

	if err := h.repo.Update(&page); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete removes a prep page and its assignments (admin)
func (h *PrepPageHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Assign points a category at a prep page (admin)
func (h *PrepPageHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Categoria models.Category `json:"categoria"`
		PageID    int64           `json:"pageId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateCategoria(req.Categoria); err != nil {
		handleServiceError(w, err)
		return
	}

	if req.PageID == 0 {
		if err := h.repo.Unassign(req.Categoria); err != nil {
			handleServiceError(w, err)
			return
		}
	} else if err := h.repo.Assign(req.Categoria, req.PageID); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
