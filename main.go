package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotel-frontend/backend"
	"hotel-frontend/config"
	"hotel-frontend/controllers"
	"hotel-frontend/routes"
	"hotel-frontend/services"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Backend client and session provider boundary
	apiClient := backend.NewClient(cfg.BackendURL, cfg.SupabaseAnonKey, cfg.RequestTimeout, log)
	authService, err := services.NewAuthService(cfg.SupabaseURL, cfg.SupabaseAnonKey, log)
	if err != nil {
		log.Fatalf("cannot initialize session provider client: %v", err)
	}

	// Services
	roomService := services.NewRoomService(apiClient, log)
	reservationService := services.NewReservationService(apiClient, roomService, log)

	// Controllers
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)
	authController := controllers.NewAuthController(authService)

	router := routes.SetupRouter(roomController, reservationController, authController, cfg.CORSOrigins, log)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Warn("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Info("server stopped gracefully")
}
