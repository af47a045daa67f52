package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/taskhands/worker-service/internal/models"
	"github.com/taskhands/worker-service/internal/repositories"
	"github.com/taskhands/worker-service/internal/storage"
	"github.com/taskhands/worker-service/internal/utils"
)

// WorkerGalleryService manages the append-only gallery of a worker.
type WorkerGalleryService interface {
	// UploadGallery uploads every file concurrently and appends the
	// resulting URLs, in input order, to the worker's gallery. A single
	// failed upload aborts the whole operation; nothing is appended.
	UploadGallery(ctx context.Context, workerID uuid.UUID, localPaths []string) (*models.Worker, error)
	GetGallery(ctx context.Context, workerID uuid.UUID) ([]string, error)
}

type workerGalleryService struct {
	workerRepo repositories.WorkerRepository
	media      storage.MediaStorage
}

func NewWorkerGalleryService(
	workerRepo repositories.WorkerRepository,
	media storage.MediaStorage,
) WorkerGalleryService {
	return &workerGalleryService{
		workerRepo: workerRepo,
		media:      media,
	}
}

func (s *workerGalleryService) UploadGallery(ctx context.Context, workerID uuid.UUID, localPaths []string) (*models.Worker, error) {
	if len(localPaths) == 0 {
		return nil, fmt.Errorf("%w: gallery files", utils.ErrMissingRequiredField)
	}

	// Fan out one upload per file; the slice keeps input order. The
	// group context cancels outstanding uploads on the first failure,
	// and the gallery is only mutated after every upload succeeded.
	urls := make([]string, len(localPaths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range localPaths {
		i, path := i, path
		g.Go(func() error {
			url, err := s.media.Upload(gctx, path)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.AppendGalleryURLs(ctx, workerID, urls)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, utils.ErrWorkerNotFound
	}

	utils.Logger.Infof("Appended %d gallery images for worker %s", len(urls), workerID)
	return worker, nil
}

func (s *workerGalleryService) GetGallery(ctx context.Context, workerID uuid.UUID) ([]string, error) {
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, utils.ErrWorkerNotFound
	}
	return worker.GalleryURLs, nil
}
