package controllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/taskhands/worker-service/internal/config"
	"github.com/taskhands/worker-service/internal/dtos"
	"github.com/taskhands/worker-service/internal/services"
	"github.com/taskhands/worker-service/internal/utils"
)

type WorkerProfileController struct {
	workerAuthService    services.WorkerAuthService
	workerGalleryService services.WorkerGalleryService
	cfg                  *config.Config
}

func NewWorkerProfileController(
	workerAuth services.WorkerAuthService,
	workerGallery services.WorkerGalleryService,
	cfg *config.Config,
) *WorkerProfileController {
	return &WorkerProfileController{
		workerAuthService:    workerAuth,
		workerGalleryService: workerGallery,
		cfg:                  cfg,
	}
}

// GET /api/v1/worker/profile
func (c *WorkerProfileController) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	workerID := getWorkerIDFromContext(r)
	if workerID == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing workerID in context")
		return
	}

	worker, err := c.workerAuthService.GetProfile(r.Context(), *workerID)
	if err != nil {
		if errors.Is(err, utils.ErrWorkerNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Worker not found", err)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Unable to retrieve worker record", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewWorkerFromModel(*worker))
}

// POST /api/v1/worker/gallery
func (c *WorkerProfileController) UploadGalleryHandler(w http.ResponseWriter, r *http.Request) {
	workerID := getWorkerIDFromContext(r)
	if workerID == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing workerID in context")
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart payload", err,
		)
		return
	}

	files := r.MultipartForm.File["gallery"]
	if len(files) == 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Gallery files are required",
		)
		return
	}

	paths := make([]string, 0, len(files))
	defer func() {
		for _, p := range paths {
			os.Remove(p)
		}
	}()
	for _, fh := range files {
		p, err := saveUploadedFile(fh, c.cfg.TmpUploadDir)
		if err != nil {
			utils.RespondErrorWithCode(
				w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to store uploaded file", err,
			)
			return
		}
		paths = append(paths, p)
	}

	worker, err := c.workerGalleryService.UploadGallery(r.Context(), *workerID, paths)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrMissingRequiredField):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Gallery files are required", err)
		case errors.Is(err, utils.ErrMediaUploadFailed):
			utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeUploadFailed, "Failed to upload gallery images", err)
		case errors.Is(err, utils.ErrWorkerNotFound):
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Worker not found", err)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to upload gallery", err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewWorkerFromModel(*worker))
}

// GET /api/v1/worker/gallery
func (c *WorkerProfileController) GetGalleryHandler(w http.ResponseWriter, r *http.Request) {
	workerID := getWorkerIDFromContext(r)
	if workerID == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing workerID in context")
		return
	}

	gallery, err := c.workerGalleryService.GetGallery(r.Context(), *workerID)
	if err != nil {
		if errors.Is(err, utils.ErrWorkerNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Worker not found", err)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Unable to retrieve gallery", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.GalleryResponse{Gallery: gallery})
}
