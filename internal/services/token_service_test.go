package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/taskhands/worker-service/internal/config"
	"github.com/taskhands/worker-service/internal/utils"
)

func newTestTokenService(accessTTL, refreshTTL time.Duration) TokenService {
	return NewTokenService(&config.Config{
		AccessTokenSecret:  []byte("test-access-secret"),
		RefreshTokenSecret: []byte("test-refresh-secret"),
		AccessTokenExpiry:  accessTTL,
		RefreshTokenExpiry: refreshTTL,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(time.Minute, time.Hour)
	workerID := uuid.New()

	access, err := svc.GenerateAccessToken(workerID)
	require.NoError(t, err)
	got, err := svc.VerifyToken(access, TokenKindAccess)
	require.NoError(t, err)
	require.Equal(t, workerID, got)

	refresh, expiresAt, err := svc.GenerateRefreshToken(workerID)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
	got, err = svc.VerifyToken(refresh, TokenKindRefresh)
	require.NoError(t, err)
	require.Equal(t, workerID, got)
}

func TestTokenKindsDoNotCross(t *testing.T) {
	svc := newTestTokenService(time.Minute, time.Hour)
	workerID := uuid.New()

	access, err := svc.GenerateAccessToken(workerID)
	require.NoError(t, err)
	_, err = svc.VerifyToken(access, TokenKindRefresh)
	require.ErrorIs(t, err, utils.ErrTokenInvalid)

	refresh, _, err := svc.GenerateRefreshToken(workerID)
	require.NoError(t, err)
	_, err = svc.VerifyToken(refresh, TokenKindAccess)
	require.ErrorIs(t, err, utils.ErrTokenInvalid)
}

func TestTokenExpired(t *testing.T) {
	svc := newTestTokenService(-time.Minute, -time.Minute)
	workerID := uuid.New()

	access, err := svc.GenerateAccessToken(workerID)
	require.NoError(t, err)
	_, err = svc.VerifyToken(access, TokenKindAccess)
	require.ErrorIs(t, err, utils.ErrTokenExpired)
}

func TestTokenMalformed(t *testing.T) {
	svc := newTestTokenService(time.Minute, time.Hour)

	_, err := svc.VerifyToken("not-a-jwt", TokenKindAccess)
	require.ErrorIs(t, err, utils.ErrTokenMalformed)

	_, err = svc.VerifyToken("", TokenKindRefresh)
	require.ErrorIs(t, err, utils.ErrTokenMalformed)
}

func TestTokenForeignSignatureRejected(t *testing.T) {
	svc := newTestTokenService(time.Minute, time.Hour)
	other := NewTokenService(&config.Config{
		AccessTokenSecret:  []byte("some-other-secret"),
		RefreshTokenSecret: []byte("another-other-secret"),
		AccessTokenExpiry:  time.Minute,
		RefreshTokenExpiry: time.Hour,
	})

	access, err := other.GenerateAccessToken(uuid.New())
	require.NoError(t, err)
	_, err = svc.VerifyToken(access, TokenKindAccess)
	require.ErrorIs(t, err, utils.ErrTokenInvalid)
}
