package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/taskhands/worker-service/internal/dtos"
	"github.com/taskhands/worker-service/internal/models"
	"github.com/taskhands/worker-service/internal/repositories"
	"github.com/taskhands/worker-service/internal/storage"
	"github.com/taskhands/worker-service/internal/utils"
)

// ---------------------------------------------------------------------
// WorkerAuthService interface
// ---------------------------------------------------------------------

// WorkerAuthService drives the session lifecycle of a worker account:
// registration, credential login, refresh-token rotation and logout.
// At most one refresh token per worker is valid at any time; every
// login and refresh overwrites the stored one.
type WorkerAuthService interface {
	Register(ctx context.Context, req dtos.RegisterWorkerRequest, imagePath string) (*models.Worker, error)
	Login(ctx context.Context, identifier, password string) (*models.Worker, string, string, error)
	RefreshSession(ctx context.Context, rawRefresh string) (string, string, error)
	Logout(ctx context.Context, rawRefresh string) error
	GetProfile(ctx context.Context, workerID uuid.UUID) (*models.Worker, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type workerAuthService struct {
	workerRepo repositories.WorkerRepository
	media      storage.MediaStorage
	tokens     TokenService
}

func NewWorkerAuthService(
	workerRepo repositories.WorkerRepository,
	media storage.MediaStorage,
	tokens TokenService,
) WorkerAuthService {
	return &workerAuthService{
		workerRepo: workerRepo,
		media:      media,
		tokens:     tokens,
	}
}

// Register validates required fields, uploads the profile image before
// creating the record, and persists the worker with a hashed password.
func (s *workerAuthService) Register(ctx context.Context, req dtos.RegisterWorkerRequest, imagePath string) (*models.Worker, error) {
	name := strings.TrimSpace(req.Name)
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	for field, v := range map[string]string{
		"name": name, "username": username, "email": email, "password": password,
	} {
		if v == "" {
			return nil, fmt.Errorf("%w: %s", utils.ErrMissingRequiredField, field)
		}
	}
	if imagePath == "" {
		return nil, fmt.Errorf("%w: profile image", utils.ErrMissingRequiredField)
	}

	exists, err := s.workerRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ErrWorkerExists
	}

	imageURL, err := s.media.Upload(ctx, imagePath)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	worker := &models.Worker{
		ID:              uuid.New(),
		Username:        username,
		Email:           email,
		PasswordHash:    hash,
		ProfileImageURL: imageURL,
		GalleryURLs:     []string{},
		Name:            name,
		PhoneNo:         req.PhoneNo,
		Address:         req.Address,
		Description:     req.Description,
		WorkingHours:    req.WorkingHours,
		Language:        req.Language,
		Services:        req.Services,
		Experience:      req.Experience,
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}

	utils.Logger.Infof("Registered worker %s", worker.ID)
	return worker, nil
}

// Login matches the identifier against username or email and, on a
// correct password, rotates the stored refresh token. A failed
// password check performs no store mutation.
func (s *workerAuthService) Login(ctx context.Context, identifier, password string) (*models.Worker, string, string, error) {
	worker, err := s.workerRepo.GetByUsernameOrEmail(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, "", "", err
	}
	if worker == nil {
		return nil, "", "", utils.ErrWorkerNotFound
	}

	if !utils.CheckPasswordHash(password, worker.PasswordHash) {
		return nil, "", "", utils.ErrInvalidCredentials
	}

	access, refresh, err := s.issueSession(ctx, worker)
	if err != nil {
		return nil, "", "", err
	}
	return worker, access, refresh, nil
}

// RefreshSession exchanges a valid refresh token for a fresh token
// pair. The presented token must equal the stored one; anything else
// is a stale or stolen token and is rejected.
func (s *workerAuthService) RefreshSession(ctx context.Context, rawRefresh string) (string, string, error) {
	workerID, err := s.tokens.VerifyToken(rawRefresh, TokenKindRefresh)
	if err != nil {
		return "", "", err
	}

	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return "", "", err
	}
	if worker == nil || worker.RefreshToken == "" || worker.RefreshToken != rawRefresh {
		return "", "", utils.ErrRefreshTokenMismatch
	}

	return s.issueSession(ctx, worker)
}

// Logout invalidates the presented session server-side: if the token
// matches the stored one, the stored value is cleared, so the token
// cannot be replayed after logout. A non-matching token was already
// invalidated by a later rotation, so logout is a no-op for it.
func (s *workerAuthService) Logout(ctx context.Context, rawRefresh string) error {
	workerID, err := s.tokens.VerifyToken(rawRefresh, TokenKindRefresh)
	if err != nil {
		return err
	}

	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return err
	}
	if worker == nil || worker.RefreshToken != rawRefresh {
		utils.Logger.Debugf("Logout with superseded refresh token for worker %s", workerID)
		return nil
	}

	return s.workerRepo.UpdateRefreshToken(ctx, worker.ID, "", nil)
}

func (s *workerAuthService) GetProfile(ctx context.Context, workerID uuid.UUID) (*models.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, utils.ErrWorkerNotFound
	}
	return worker, nil
}

// issueSession generates a new access/refresh pair and overwrites the
// stored refresh token, invalidating any previously issued one.
func (s *workerAuthService) issueSession(ctx context.Context, worker *models.Worker) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(worker.ID)
	if err != nil {
		return "", "", err
	}
	refresh, expiresAt, err := s.tokens.GenerateRefreshToken(worker.ID)
	if err != nil {
		return "", "", err
	}

	if err := s.workerRepo.UpdateRefreshToken(ctx, worker.ID, refresh, &expiresAt); err != nil {
		return "", "", err
	}
	worker.RefreshToken = refresh
	worker.RefreshTokenExpiresAt = &expiresAt

	return access, refresh, nil
}
