package dtos

import (
	"time"

	"github.com/taskhands/worker-service/internal/models"
)

// Worker is the response shape for worker records. It carries no
// password hash and no refresh token.
type Worker struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	ProfileImageURL string   `json:"profile_image_url"`
	GalleryURLs     []string `json:"gallery_urls"`

	Name         string `json:"name"`
	PhoneNo      string `json:"phone_no,omitempty"`
	Address      string `json:"address,omitempty"`
	Description  string `json:"description,omitempty"`
	WorkingHours string `json:"working_hours,omitempty"`
	Language     string `json:"language,omitempty"`
	Services     string `json:"services,omitempty"`
	Experience   string `json:"experience,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewWorkerFromModel(worker models.Worker) Worker {
	gallery := worker.GalleryURLs
	if gallery == nil {
		gallery = []string{}
	}
	return Worker{
		ID:              worker.ID.String(),
		Username:        worker.Username,
		Email:           worker.Email,
		ProfileImageURL: worker.ProfileImageURL,
		GalleryURLs:     gallery,
		Name:            worker.Name,
		PhoneNo:         worker.PhoneNo,
		Address:         worker.Address,
		Description:     worker.Description,
		WorkingHours:    worker.WorkingHours,
		Language:        worker.Language,
		Services:        worker.Services,
		Experience:      worker.Experience,
		CreatedAt:       worker.CreatedAt,
		UpdatedAt:       worker.UpdatedAt,
	}
}

// RegisterWorkerRequest carries the multipart form fields of the
// register endpoint. The profile image file travels separately.
type RegisterWorkerRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`

	PhoneNo      string `json:"phone_no"`
	Address      string `json:"address"`
	Description  string `json:"description"`
	WorkingHours string `json:"working_hours"`
	Language     string `json:"language"`
	Services     string `json:"services"`
	Experience   string `json:"experience"`
}

// LoginWorkerRequest accepts a username or an email in the username field.
type LoginWorkerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginWorkerResponse struct {
	Worker       Worker `json:"worker"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

type GalleryResponse struct {
	Gallery []string `json:"gallery"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
