package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/taskhands/worker-service/internal/middleware"
)

const maxMultipartMemory = 32 << 20 // 32 MiB

// getWorkerIDFromContext returns the verified worker ID the auth
// middleware placed into the request context, or nil.
func getWorkerIDFromContext(r *http.Request) *uuid.UUID {
	workerID, ok := r.Context().Value(middleware.ContextKeyWorkerID).(string)
	if !ok || workerID == "" {
		return nil
	}
	parsed, err := uuid.Parse(workerID)
	if err != nil {
		return nil
	}
	return &parsed
}

// saveUploadedFile spools a multipart upload to dir and returns the
// local path. Callers remove the file once the media service has it.
func saveUploadedFile(fh *multipart.FileHeader, dir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.CreateTemp(dir, "upload-*"+filepath.Ext(fh.Filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}
