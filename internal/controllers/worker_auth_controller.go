package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/taskhands/worker-service/internal/config"
	"github.com/taskhands/worker-service/internal/dtos"
	"github.com/taskhands/worker-service/internal/middleware"
	"github.com/taskhands/worker-service/internal/services"
	"github.com/taskhands/worker-service/internal/utils"
)

type WorkerAuthController struct {
	workerAuthService services.WorkerAuthService
	cfg               *config.Config
}

func NewWorkerAuthController(workerAuth services.WorkerAuthService, cfg *config.Config) *WorkerAuthController {
	return &WorkerAuthController{workerAuthService: workerAuth, cfg: cfg}
}

var workerValidate = validator.New()

// ---------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------
func (c *WorkerAuthController) RegisterWorkerHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart payload", err,
		)
		return
	}

	req := dtos.RegisterWorkerRequest{
		Name:         r.FormValue("name"),
		Username:     r.FormValue("username"),
		Email:        r.FormValue("email"),
		Password:     r.FormValue("password"),
		PhoneNo:      r.FormValue("phone_no"),
		Address:      r.FormValue("address"),
		Description:  r.FormValue("description"),
		WorkingHours: r.FormValue("working_hours"),
		Language:     r.FormValue("language"),
		Services:     r.FormValue("services"),
		Experience:   r.FormValue("experience"),
	}
	if err := workerValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "All required fields must be provided", err,
		)
		return
	}

	_, fh, err := r.FormFile("profileImg")
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Profile picture is required", err,
		)
		return
	}
	imagePath, err := saveUploadedFile(fh, c.cfg.TmpUploadDir)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to store uploaded file", err,
		)
		return
	}
	defer os.Remove(imagePath)

	worker, err := c.workerAuthService.Register(r.Context(), req, imagePath)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrMissingRequiredField):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "All required fields must be provided", err)
		case errors.Is(err, utils.ErrWorkerExists):
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Worker with this email or username already exists", err)
		case errors.Is(err, utils.ErrMediaUploadFailed):
			utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeUploadFailed, "Failed to upload profile picture", err)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to register worker", err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewWorkerFromModel(*worker))
}

// ---------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------
func (c *WorkerAuthController) LoginWorkerHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err,
		)
		return
	}
	if err := workerValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Username or email and password are required", err,
		)
		return
	}

	worker, access, refresh, err := c.workerAuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrWorkerNotFound):
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Worker not found", err)
		case errors.Is(err, utils.ErrInvalidCredentials):
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid credentials", err)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Login failed", err)
		}
		return
	}

	SetAuthCookies(w, access, refresh, c.cfg.AccessTokenExpiry, c.cfg.RefreshTokenExpiry)

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginWorkerResponse{
		Worker:       dtos.NewWorkerFromModel(*worker),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// ---------------------------------------------------------------------
// Refresh
// ---------------------------------------------------------------------
func (c *WorkerAuthController) RefreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing refresh token",
		)
		return
	}

	access, refresh, err := c.workerAuthService.RefreshSession(r.Context(), cookie.Value)
	if err != nil {
		respondTokenError(w, err)
		return
	}

	SetAuthCookies(w, access, refresh, c.cfg.AccessTokenExpiry, c.cfg.RefreshTokenExpiry)

	utils.RespondWithJSON(w, http.StatusOK, dtos.RefreshTokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// ---------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------
func (c *WorkerAuthController) LogoutWorkerHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing refresh token",
		)
		return
	}

	// A failed logout still clears the cookies: the client session is
	// over either way, and an unverifiable token has nothing to revoke.
	if err := c.workerAuthService.Logout(r.Context(), cookie.Value); err != nil {
		utils.Logger.WithError(err).Debug("Logout with unverifiable refresh token")
	}

	ClearAuthCookies(w)
	utils.RespondWithJSON(w, http.StatusOK, dtos.LogoutResponse{Message: "Logged out successfully"})
}

// respondTokenError maps token verification failures onto their 401 codes.
func respondTokenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, utils.ErrTokenExpired):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Refresh token expired", err)
	case errors.Is(err, utils.ErrTokenMalformed):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeMalformedToken, "Malformed refresh token", err)
	case errors.Is(err, utils.ErrTokenInvalid), errors.Is(err, utils.ErrRefreshTokenMismatch):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidToken, "Invalid refresh token", err)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to refresh session", err)
	}
}
