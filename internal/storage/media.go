package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/taskhands/worker-service/internal/utils"
)

// MediaStorage persists a local file to durable storage and returns its URL.
type MediaStorage interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

type uploadResponse struct {
	URL string `json:"url"`
}

// HTTPMediaStorage uploads files to an external media service as
// multipart POST requests. Failures surface as ErrMediaUploadFailed.
type HTTPMediaStorage struct {
	client    *http.Client
	uploadURL string
	apiKey    string
}

func NewHTTPMediaStorage(uploadURL, apiKey string, timeout time.Duration) *HTTPMediaStorage {
	return &HTTPMediaStorage{
		client:    &http.Client{Timeout: timeout},
		uploadURL: uploadURL,
		apiKey:    apiKey,
	}
}

func (s *HTTPMediaStorage) Upload(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", utils.ErrMediaUploadFailed, filepath.Base(localPath), err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrMediaUploadFailed, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrMediaUploadFailed, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrMediaUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrMediaUploadFailed, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrMediaUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: media service returned %d", utils.ErrMediaUploadFailed, resp.StatusCode)
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", utils.ErrMediaUploadFailed, err)
	}
	if ur.URL == "" {
		return "", fmt.Errorf("%w: media service returned no url", utils.ErrMediaUploadFailed)
	}
	return ur.URL, nil
}
