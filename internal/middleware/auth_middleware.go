package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/taskhands/worker-service/internal/services"
	"github.com/taskhands/worker-service/internal/utils"
)

type contextKey string

const (
	ContextKeyWorkerID = contextKey("workerID")

	AccessTokenCookieName  = "accessToken"
	RefreshTokenCookieName = "refreshToken"
)

// AuthMiddleware guards protected endpoints. The access token is read
// from the accessToken cookie or from Authorization: Bearer, verified,
// and the resulting worker ID is placed into the request context. The
// session object handlers see is always derived from a verified token,
// never from caller-supplied request state.
func AuthMiddleware(tokens services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(),
				)
				return
			}

			workerID, vErr := tokens.VerifyToken(tokenStr, services.TokenKindAccess)
			if vErr != nil {
				if errors.Is(vErr, utils.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", vErr,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyWorkerID, workerID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// helper: read the token from the cookie, falling back to Bearer
func extractAccessToken(r *http.Request) (string, error) {
	if c, err := r.Cookie(AccessTokenCookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing access token")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}
