package config

import (
	"os"
	"strings"
	"time"

	"github.com/taskhands/worker-service/internal/utils"
)

const AppName = "worker-service"

// Config holds all application configuration, including secrets and token policy.
type Config struct {
	AppName string
	AppPort string
	DBUrl   string

	// Distinct secrets per token kind so an access token can never be
	// replayed as a refresh token.
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	MediaUploadURL     string
	MediaAPIKey        string
	MediaUploadTimeout time.Duration

	TmpUploadDir       string
	CORSAllowedOrigins []string
}

const (
	DefaultAccessTokenExpiry  = 15 * time.Minute
	DefaultRefreshTokenExpiry = 7 * 24 * time.Hour
	DefaultMediaUploadTimeout = 30 * time.Second
)

// LoadConfig reads configuration from the environment and fails fast on
// missing secrets.
func LoadConfig() *Config {
	cfg := &Config{
		AppName:            AppName,
		AppPort:            envOr("APP_PORT", "8080"),
		DBUrl:              mustEnv("DB_URL"),
		AccessTokenSecret:  []byte(mustEnv("ACCESS_TOKEN_SECRET")),
		RefreshTokenSecret: []byte(mustEnv("REFRESH_TOKEN_SECRET")),
		AccessTokenExpiry:  envDuration("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiry),
		RefreshTokenExpiry: envDuration("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiry),
		MediaUploadURL:     mustEnv("MEDIA_UPLOAD_URL"),
		MediaAPIKey:        os.Getenv("MEDIA_API_KEY"),
		MediaUploadTimeout: envDuration("MEDIA_UPLOAD_TIMEOUT", DefaultMediaUploadTimeout),
		TmpUploadDir:       envOr("TMP_UPLOAD_DIR", os.TempDir()),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, strings.TrimSpace(o))
		}
	}

	return cfg
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("%s env var is missing", key)
	}
	return v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %v", key, v, fallback)
		return fallback
	}
	return d
}
