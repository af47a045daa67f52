package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskhands/worker-service/internal/models"
	"github.com/taskhands/worker-service/internal/utils"
)

// fakeWorkerRepo is an in-memory WorkerRepository. It counts refresh
// token writes so tests can assert "no store mutation" properties.
type fakeWorkerRepo struct {
	mu sync.Mutex

	workers map[uuid.UUID]models.Worker

	refreshWrites int
	appendCalls   int
	clearCalls    int
	clearErrs     []error
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: map[uuid.UUID]models.Worker{}}
}

func (r *fakeWorkerRepo) Create(ctx context.Context, w *models.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers[w.ID] = *w
	return nil
}

func (r *fakeWorkerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok {
		return nil, nil
	}
	cp := w
	return &cp, nil
}

func (r *fakeWorkerRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.workers {
		if w.Username == strings.ToLower(identifier) || w.Email == identifier {
			cp := w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWorkerRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.workers {
		if w.Username == strings.ToLower(username) || w.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeWorkerRepo) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string, expiresAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok {
		return utils.ErrWorkerNotFound
	}
	w.RefreshToken = token
	w.RefreshTokenExpiresAt = expiresAt
	r.workers[id] = w
	r.refreshWrites++
	return nil
}

func (r *fakeWorkerRepo) AppendGalleryURLs(ctx context.Context, id uuid.UUID, urls []string) (*models.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok {
		return nil, nil
	}
	w.GalleryURLs = append(w.GalleryURLs, urls...)
	r.workers[id] = w
	r.appendCalls++
	cp := w
	return &cp, nil
}

func (r *fakeWorkerRepo) ClearExpiredRefreshTokens(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearCalls++
	if len(r.clearErrs) > 0 {
		err := r.clearErrs[0]
		r.clearErrs = r.clearErrs[1:]
		return err
	}
	return nil
}

func (r *fakeWorkerRepo) stored(id uuid.UUID) models.Worker {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.workers[id]
}

// fakeMediaStorage maps local paths onto deterministic URLs, with
// per-path failure injection. Safe for concurrent uploads.
type fakeMediaStorage struct {
	mu      sync.Mutex
	uploads []string
	failOn  map[string]error
}

func newFakeMediaStorage() *fakeMediaStorage {
	return &fakeMediaStorage{failOn: map[string]error{}}
}

func (f *fakeMediaStorage) Upload(ctx context.Context, localPath string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failOn[localPath]; ok {
		return "", fmt.Errorf("%w: %v", utils.ErrMediaUploadFailed, err)
	}
	f.uploads = append(f.uploads, localPath)
	return "https://cdn.test/" + path.Base(localPath), nil
}
