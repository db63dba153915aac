package models

import "time"

// UploadedImage is an admin-uploaded image stored as a data URI in the
// database and served back decoded with long-lived cache headers.
type UploadedImage struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Data           string    `json:"data,omitempty"` // data URI
	OriginalSize   int       `json:"originalSize"`
	CompressedSize int       `json:"compressedSize"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	CreatedAt      time.Time `json:"createdAt"`
}
