package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrMissingRequiredField = errors.New("missing_required_field")
	ErrWorkerExists         = errors.New("worker_exists")
	ErrWorkerNotFound       = errors.New("worker_not_found")
	ErrInvalidCredentials   = errors.New("invalid_credentials")
	ErrMediaUploadFailed    = errors.New("media_upload_failed")

	// Session / token errors. A refresh token that verifies
	// cryptographically but does not match the stored value is a
	// mismatch, not merely invalid.
	ErrRefreshTokenMismatch = errors.New("refresh_token_mismatch")
	ErrTokenExpired         = errors.New("token_expired")
	ErrTokenMalformed       = errors.New("token_malformed")
	ErrTokenInvalid         = errors.New("token_invalid")
)
