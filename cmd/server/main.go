package main

import (
	"context"
	"errors"
	"escritorio_app_go/config"
	"escritorio_app_go/db"
	"escritorio_app_go/handlers"
	"escritorio_app_go/middleware"
	"escritorio_app_go/models"
	"escritorio_app_go/services"
	"escritorio_app_go/services/jobs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Load the ledger (seeds the data file when missing)
	handlers.Ledger = services.NewLedger(services.NewSpreadsheetStore(cfg.DataFile))

	// Backup storage (R2 when configured, local otherwise)
	services.InitializeStorage(cfg)

	// Session database, only needed behind the login gate
	if cfg.AuthEnabled {
		if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		if err := db.AutoMigrate(&models.Session{}); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("[SECURITY] Login gate enabled")
	}

	// Background jobs
	scheduler, err := jobs.StartScheduler(handlers.Ledger, db.DB, cfg)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: cfg.AuthEnabled,
	}))

	// Make config available to handlers
	e.Use(middleware.WithConfig(cfg))

	handlers.RegisterRoutes(e, cfg.AuthEnabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Received interrupt signal, shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARNING] Graceful shutdown failed: %v", err)
	}
}
