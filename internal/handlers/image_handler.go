package handlers

import (
	"net/http"

	"velocilector/internal/models"
	"velocilector/internal/service"
)

// ImageHandler uploads and serves stored images
type ImageHandler struct {
	imageService *service.ImageService
}

// NewImageHandler creates a new image handler
func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Serve writes an image's decoded bytes with long-lived cache headers.
// Stored images are immutable, so a year of caching is safe.
func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	data, mime, err := h.imageService.Serve(r.PathValue("id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if data == nil {
		respondWithError(w, http.StatusNotFound, "image not found")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Upload stores an image posted as a data URI (admin)
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var image models.UploadedImage
	if err := decodeJSON(r, &image); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.imageService.Upload(&image); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "id": image.ID})
}

// List serves image metadata without the data URIs (admin)
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.imageService.List()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if images == nil {
		images = []models.UploadedImage{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"images": images})
}

// Delete removes an image (admin)
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.imageService.Delete(r.PathValue("id")); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
