package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskhands/worker-service/internal/config"
	"github.com/taskhands/worker-service/internal/utils"
)

// TokenIssuer identifies this service in the "iss" claim of every token.
const TokenIssuer = "taskhands"

type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// TokenService issues and verifies the two session token kinds. Each
// kind is signed with its own secret, so a token of one kind never
// verifies as the other.
type TokenService interface {
	GenerateAccessToken(workerID uuid.UUID) (string, error)
	GenerateRefreshToken(workerID uuid.UUID) (string, time.Time, error)
	VerifyToken(raw string, kind TokenKind) (uuid.UUID, error)
}

type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		accessSecret:  cfg.AccessTokenSecret,
		refreshSecret: cfg.RefreshTokenSecret,
		accessTTL:     cfg.AccessTokenExpiry,
		refreshTTL:    cfg.RefreshTokenExpiry,
	}
}

func (s *tokenService) GenerateAccessToken(workerID uuid.UUID) (string, error) {
	return signClaims(workerID, s.accessTTL, s.accessSecret)
}

func (s *tokenService) GenerateRefreshToken(workerID uuid.UUID) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.refreshTTL)
	raw, err := signClaims(workerID, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return raw, expiresAt, nil
}

func (s *tokenService) VerifyToken(raw string, kind TokenKind) (uuid.UUID, error) {
	secret := s.accessSecret
	if kind == TokenKindRefresh {
		secret = s.refreshSecret
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return uuid.Nil, utils.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, utils.ErrTokenExpired
		default:
			return uuid.Nil, utils.ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, utils.ErrTokenInvalid
	}

	iss, ok := claims["iss"].(string)
	if !ok || iss != TokenIssuer {
		return uuid.Nil, utils.ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, utils.ErrTokenInvalid
	}
	workerID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, utils.ErrTokenInvalid
	}
	return workerID, nil
}

func signClaims(workerID uuid.UUID, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": TokenIssuer,
		"sub": workerID.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
		"jti": uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
