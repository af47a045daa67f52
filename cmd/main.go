package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/taskhands/worker-service/internal/app"
	"github.com/taskhands/worker-service/internal/config"
	"github.com/taskhands/worker-service/internal/controllers"
	"github.com/taskhands/worker-service/internal/middleware"
	"github.com/taskhands/worker-service/internal/repositories"
	"github.com/taskhands/worker-service/internal/routes"
	"github.com/taskhands/worker-service/internal/services"
	"github.com/taskhands/worker-service/internal/storage"
	"github.com/taskhands/worker-service/internal/utils"
)

const sessionCleanupCronSpec = "0 3 * * *"

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories & external clients
	//----------------------------------------------------------------------
	workerRepo := repositories.NewWorkerRepository(application.DB)
	media := storage.NewHTTPMediaStorage(cfg.MediaUploadURL, cfg.MediaAPIKey, cfg.MediaUploadTimeout)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	tokenService := services.NewTokenService(cfg)
	workerAuthService := services.NewWorkerAuthService(workerRepo, media, tokenService)
	workerGalleryService := services.NewWorkerGalleryService(workerRepo, media)
	sessionCleanupService := services.NewSessionCleanupService(workerRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	healthController := controllers.NewHealthController(application)
	workerAuthController := controllers.NewWorkerAuthController(workerAuthService, cfg)
	workerProfileController := controllers.NewWorkerProfileController(workerAuthService, workerGalleryService, cfg)

	//----------------------------------------------------------------------
	// Router
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.WorkerRegister, workerAuthController.RegisterWorkerHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.WorkerLogin, workerAuthController.LoginWorkerHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.WorkerRefreshToken, workerAuthController.RefreshTokenHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.WorkerLogout, workerAuthController.LogoutWorkerHandler).Methods(http.MethodPost)

	// Secured routes
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(tokenService))
	secured.HandleFunc(routes.WorkerProfile, workerProfileController.GetProfileHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.WorkerGallery, workerProfileController.UploadGalleryHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.WorkerGallery, workerProfileController.GetGalleryHandler).Methods(http.MethodGet)

	//----------------------------------------------------------------------
	// Cron: nightly expired session sweep
	//----------------------------------------------------------------------
	c := cron.New(cron.WithLocation(time.UTC))
	_, err = c.AddFunc(sessionCleanupCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		utils.Logger.Info("Starting session cleanup cron job...")
		if err := sessionCleanupService.CleanupDaily(ctx); err != nil {
			utils.Logger.WithError(err).Error("Session cleanup failed")
		}
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule session cleanup cron")
	}
	c.Start()
	defer c.Stop()

	//----------------------------------------------------------------------
	// HTTP server
	//----------------------------------------------------------------------
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      corsHandler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	utils.Logger.Infof("%s listening on :%s", cfg.AppName, cfg.AppPort)
	utils.Logger.Fatal(srv.ListenAndServe())
}
