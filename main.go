package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-booking-predictor/config"
	"hotel-booking-predictor/handlers"
	"hotel-booking-predictor/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Starting Hotel Booking Prediction")
	log.Printf("Prediction API: %s", cfg.APIURL)

	// Set Gin to release mode in production
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	predictor := services.NewPredictionClient(cfg.APIURL, nil)
	store := services.NewSessionStore(predictor, cfg.SessionIdleTimeout, cfg.MaxSessions)

	sweeper, err := store.StartSweeper(cfg.SessionSweepSchedule)
	if err != nil {
		log.Fatalf("Failed to schedule session sweep: %v", err)
	}

	router, err := handlers.NewRouter(cfg, store)
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	<-sweeper.Stop().Done()

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
