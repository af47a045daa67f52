package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/taskhands/worker-service/internal/config"
	"github.com/taskhands/worker-service/internal/dtos"
	"github.com/taskhands/worker-service/internal/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		AppName:            "worker-service",
		AccessTokenSecret:  []byte("test-access-secret"),
		RefreshTokenSecret: []byte("test-refresh-secret"),
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		TmpUploadDir:       t.TempDir(),
	}
}

func testWorker() *models.Worker {
	now := time.Now().UTC()
	return &models.Worker{
		ID:              uuid.New(),
		Username:        "amy",
		Email:           "amy@x.com",
		PasswordHash:    "$2a$12$secret",
		RefreshToken:    "stored-refresh",
		ProfileImageURL: "https://cdn.test/amy.png",
		GalleryURLs:     []string{},
		Name:            "Amy",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// stubAuthService implements services.WorkerAuthService with function
// fields, so each test supplies only the calls it expects.
type stubAuthService struct {
	registerFn func(ctx context.Context, req dtos.RegisterWorkerRequest, imagePath string) (*models.Worker, error)
	loginFn    func(ctx context.Context, identifier, password string) (*models.Worker, string, string, error)
	refreshFn  func(ctx context.Context, rawRefresh string) (string, string, error)
	logoutFn   func(ctx context.Context, rawRefresh string) error
	profileFn  func(ctx context.Context, workerID uuid.UUID) (*models.Worker, error)
}

func (s *stubAuthService) Register(ctx context.Context, req dtos.RegisterWorkerRequest, imagePath string) (*models.Worker, error) {
	return s.registerFn(ctx, req, imagePath)
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (*models.Worker, string, string, error) {
	return s.loginFn(ctx, identifier, password)
}

func (s *stubAuthService) RefreshSession(ctx context.Context, rawRefresh string) (string, string, error) {
	return s.refreshFn(ctx, rawRefresh)
}

func (s *stubAuthService) Logout(ctx context.Context, rawRefresh string) error {
	return s.logoutFn(ctx, rawRefresh)
}

func (s *stubAuthService) GetProfile(ctx context.Context, workerID uuid.UUID) (*models.Worker, error) {
	return s.profileFn(ctx, workerID)
}

// stubGalleryService implements services.WorkerGalleryService.
type stubGalleryService struct {
	uploadFn func(ctx context.Context, workerID uuid.UUID, localPaths []string) (*models.Worker, error)
	getFn    func(ctx context.Context, workerID uuid.UUID) ([]string, error)
}

func (s *stubGalleryService) UploadGallery(ctx context.Context, workerID uuid.UUID, localPaths []string) (*models.Worker, error) {
	return s.uploadFn(ctx, workerID, localPaths)
}

func (s *stubGalleryService) GetGallery(ctx context.Context, workerID uuid.UUID) ([]string, error) {
	return s.getFn(ctx, workerID)
}
