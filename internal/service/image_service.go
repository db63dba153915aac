package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"velocilector/internal/models"
	"velocilector/internal/repository"
)

var (
	ErrImageTooLarge   = errors.New("image exceeds the maximum upload size")
	ErrInvalidImageURI = errors.New("image data must be a base64 data URI")
)

// ImageService stores admin-uploaded images as data URIs and serves them
// back as decoded bytes with their content type.
type ImageService struct {
	imageRepo *repository.ImageRepository
	maxSize   int64
}

// NewImageService creates a new image service
func NewImageService(imageRepo *repository.ImageRepository, maxSize int64) *ImageService {
	return &ImageService{imageRepo: imageRepo, maxSize: maxSize}
}

// Upload validates and stores an image sent as a data URI
func (s *ImageService) Upload(image *models.UploadedImage) error {
	if _, _, err := decodeDataURI(image.Data); err != nil {
		return err
	}
	if int64(len(image.Data)) > s.maxSize {
		return ErrImageTooLarge
	}

	image.ID = uuid.NewString()
	if err := s.imageRepo.Insert(image); err != nil {
		return fmt.Errorf("failed to store image: %w", err)
	}
	return nil
}

// Serve returns an image's raw bytes and content type, or nil bytes when
// the image is unknown.
func (s *ImageService) Serve(id string) ([]byte, string, error) {
	image, err := s.imageRepo.Get(id)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load image: %w", err)
	}
	if image == nil {
		return nil, "", nil
	}
	return decodeDataURI(image.Data)
}

// List retrieves image metadata without the data URIs
func (s *ImageService) List() ([]models.UploadedImage, error) {
	return s.imageRepo.List()
}

// Delete removes an image
func (s *ImageService) Delete(id string) error {
	return s.imageRepo.Delete(id)
}

// decodeDataURI splits "data:<mime>;base64,<payload>" into bytes and mime
func decodeDataURI(uri string) ([]byte, string, error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, "", ErrInvalidImageURI
	}
	meta, payload, found := strings.Cut(uri[len("data:"):], ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return nil, "", ErrInvalidImageURI
	}
	mime := strings.TrimSuffix(meta, ";base64")
	if !strings.HasPrefix(mime, "image/") {
		return nil, "", ErrInvalidImageURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ErrInvalidImageURI
	}
	return data, mime, nil
}
