package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cesargomez89/mixcrate/internal/app"
	"github.com/cesargomez89/mixcrate/internal/blob"
	"github.com/cesargomez89/mixcrate/internal/config"
	"github.com/cesargomez89/mixcrate/internal/constants"
	httpapp "github.com/cesargomez89/mixcrate/internal/http"
	"github.com/cesargomez89/mixcrate/internal/logger"
	"github.com/cesargomez89/mixcrate/internal/store"
)

func main() {
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize Logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	// Initialize DB
	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to init DB", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Initialize Blob Store
	blobs, err := blob.NewStore(cfg.UploadsDir)
	if err != nil {
		appLogger.Error("Failed to init blob store", "error", err)
		os.Exit(1)
	}

	// Initialize Library Service
	library := app.NewLibrary(db, blobs, cfg, appLogger)

	// Initialize Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Serve stored blobs read-only
	fileServer := http.StripPrefix(constants.UploadsURLPrefix, http.FileServer(http.Dir(cfg.UploadsDir)))
	r.Get(constants.UploadsURLPrefix+"*", fileServer.ServeHTTP)

	// Routes
	h := httpapp.NewHandler(library, appLogger)
	h.RegisterRoutes(r)

	// Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
