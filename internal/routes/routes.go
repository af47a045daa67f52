package routes

const (
	Health             = "/health"
	WorkerRegister     = "/api/v1/worker/register"
	WorkerLogin        = "/api/v1/worker/login"
	WorkerRefreshToken = "/api/v1/worker/refresh_token"
	WorkerLogout       = "/api/v1/worker/logout"
	WorkerProfile      = "/api/v1/worker/profile"
	WorkerGallery      = "/api/v1/worker/gallery"

	// Scope shared by every cookie-bearing worker endpoint; the refresh
	// cookie is only ever sent here.
	WorkerCookiePath = "/api/v1/worker"
)
