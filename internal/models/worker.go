package models

import (
	"time"

	"github.com/google/uuid"
)

// Worker is a service provider account on the marketplace.
// Username is stored lowercased; username and email are unique.
type Worker struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`

	// PasswordHash and RefreshToken never leave the service layer.
	// Responses are built from dtos.Worker, which has no such fields.
	PasswordHash          string     `json:"-"`
	RefreshToken          string     `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`

	ProfileImageURL string   `json:"profile_image_url"`
	GalleryURLs     []string `json:"gallery_urls"`

	Name         string `json:"name"`
	PhoneNo      string `json:"phone_no"`
	Address      string `json:"address"`
	Description  string `json:"description"`
	WorkingHours string `json:"working_hours"`
	Language     string `json:"language"`
	Services     string `json:"services"`
	Experience   string `json:"experience"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Worker) GetID() string {
	return w.ID.String()
}
