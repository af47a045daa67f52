package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/taskhands/worker-service/internal/utils"
)

func newGalleryFixture(t *testing.T) (*fakeWorkerRepo, *fakeMediaStorage, WorkerGalleryService, uuid.UUID) {
	t.Helper()
	repo := newFakeWorkerRepo()
	media := newFakeMediaStorage()
	auth := NewWorkerAuthService(repo, media, newTestTokenService(time.Minute, time.Hour))

	worker, err := auth.Register(context.Background(), registerRequest(), "/tmp/amy.png")
	require.NoError(t, err)

	return repo, media, NewWorkerGalleryService(repo, media), worker.ID
}

func TestUploadGalleryAppendsInOrder(t *testing.T) {
	_, _, svc, workerID := newGalleryFixture(t)

	worker, err := svc.UploadGallery(context.Background(), workerID, []string{
		"/tmp/a.png", "/tmp/b.png", "/tmp/c.png",
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"https://cdn.test/a.png",
		"https://cdn.test/b.png",
		"https://cdn.test/c.png",
	}, worker.GalleryURLs)

	// A second batch lands after the first.
	worker, err = svc.UploadGallery(context.Background(), workerID, []string{"/tmp/d.png"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"https://cdn.test/a.png",
		"https://cdn.test/b.png",
		"https://cdn.test/c.png",
		"https://cdn.test/d.png",
	}, worker.GalleryURLs)
}

func TestUploadGalleryAllOrNothing(t *testing.T) {
	repo, media, svc, workerID := newGalleryFixture(t)
	media.failOn["/tmp/b.png"] = context.DeadlineExceeded

	_, err := svc.UploadGallery(context.Background(), workerID, []string{
		"/tmp/a.png", "/tmp/b.png", "/tmp/c.png",
	})
	require.ErrorIs(t, err, utils.ErrMediaUploadFailed)
	require.Zero(t, repo.appendCalls, "no partial append on failure")
	require.Empty(t, repo.stored(workerID).GalleryURLs)
}

func TestUploadGalleryEmptyBatch(t *testing.T) {
	_, _, svc, workerID := newGalleryFixture(t)

	_, err := svc.UploadGallery(context.Background(), workerID, nil)
	require.ErrorIs(t, err, utils.ErrMissingRequiredField)
}

func TestUploadGalleryUnknownWorker(t *testing.T) {
	_, _, svc, _ := newGalleryFixture(t)

	_, err := svc.UploadGallery(context.Background(), uuid.New(), []string{"/tmp/a.png"})
	require.ErrorIs(t, err, utils.ErrWorkerNotFound)
}

func TestGetGallery(t *testing.T) {
	_, _, svc, workerID := newGalleryFixture(t)

	urls, err := svc.GetGallery(context.Background(), workerID)
	require.NoError(t, err)
	require.Empty(t, urls)

	_, err = svc.UploadGallery(context.Background(), workerID, []string{"/tmp/a.png"})
	require.NoError(t, err)

	urls, err = svc.GetGallery(context.Background(), workerID)
	require.NoError(t, err)
	require.Equal(t, []string{"https://cdn.test/a.png"}, urls)

	_, err = svc.GetGallery(context.Background(), uuid.New())
	require.ErrorIs(t, err, utils.ErrWorkerNotFound)
}
