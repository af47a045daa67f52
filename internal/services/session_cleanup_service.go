package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgconn"

	"github.com/taskhands/worker-service/internal/repositories"
	"github.com/taskhands/worker-service/internal/utils"
)

const cleanupRetryDelay = 3 * time.Second

// SessionCleanupService clears stored refresh tokens whose expiry has
// passed, so stale sessions do not linger in worker records.
type SessionCleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type sessionCleanupService struct {
	workerRepo repositories.WorkerRepository
}

func NewSessionCleanupService(workerRepo repositories.WorkerRepository) SessionCleanupService {
	return &sessionCleanupService{workerRepo: workerRepo}
}

// runWithRetry executes op(ctx) and, if it returns a transient network
// error (EOF, pgconn safe-to-retry, or the common closed-connection
// message), waits a moment then retries once.
func (s *sessionCleanupService) runWithRetry(
	ctx context.Context,
	op func(context.Context) error,
) error {
	if err := op(ctx); err != nil {
		if errors.Is(err, io.EOF) || pgconn.SafeToRetry(err) ||
			strings.Contains(err.Error(), "connection was closed") {
			utils.Logger.WithError(err).Warn("session cleanup hit transient DB error; retrying once")
			time.Sleep(cleanupRetryDelay)
			return op(ctx)
		}
		return err
	}
	return nil
}

func (s *sessionCleanupService) CleanupDaily(ctx context.Context) error {
	if err := s.runWithRetry(ctx, s.workerRepo.ClearExpiredRefreshTokens); err != nil {
		utils.Logger.WithError(err).Error("Failed to clear expired refresh tokens")
		return err
	}
	utils.Logger.Info("Daily session cleanup completed successfully.")
	return nil
}
