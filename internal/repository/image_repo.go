package repository

import (
	"database/sql"
	"fmt"

	"velocilector/internal/database"
	"velocilector/internal/models"
)

// ImageRepository handles uploaded image database operations
type ImageRepository struct {
	db *database.DB
}

// NewImageRepository creates a new image repository
func NewImageRepository(db *database.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Insert stores an uploaded image. The ID is assigned by the caller.
func (r *ImageRepository) Insert(image *models.UploadedImage) error {
	_, err := r.db.Exec(`
		INSERT INTO images (id, name, data, original_size, compressed_size, width, height, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, image.ID, image.Name, image.Data, image.OriginalSize, image.CompressedSize, image.Width, image.Height)
	if err != nil {
		return fmt.Errorf("failed to insert image: %w", err)
	}
	return nil
}

// Get retrieves one image with its data URI, or nil when unknown
func (r *ImageRepository) Get(id string) (*models.UploadedImage, error) {
	image := &models.UploadedImage{}
	err := r.db.QueryRow(`
		SELECT id, name, data, original_size, compressed_size, width, height, created_at
		FROM images
		WHERE id = ?
	`, id).Scan(
		&image.ID, &image.Name, &image.Data, &image.OriginalSize,
		&image.CompressedSize, &image.Width, &image.Height, &image.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return image, nil
}

// List retrieves image metadata newest-first, without the data URIs
func (r *ImageRepository) List() ([]models.UploadedImage, error) {
	rows, err := r.db.Query(`
		SELECT id, name, original_size, compressed_size, width, height, created_at
		FROM images
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.UploadedImage
	for rows.Next() {
		var img models.UploadedImage
		err := rows.Scan(
			&img.ID, &img.Name, &img.OriginalSize, &img.CompressedSize,
			&img.Width, &img.Height, &img.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// Delete removes an image
func (r *ImageRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM images WHERE id = ?", id)
	return err
}
