package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mmuslimabdulj/tabletop-utils/internal/config"
	httpHandler "github.com/mmuslimabdulj/tabletop-utils/internal/delivery/http"
	"github.com/mmuslimabdulj/tabletop-utils/internal/i18n"
	"github.com/mmuslimabdulj/tabletop-utils/internal/middleware"
	"github.com/mmuslimabdulj/tabletop-utils/internal/session"
	"github.com/mmuslimabdulj/tabletop-utils/internal/storage"
	"github.com/mmuslimabdulj/tabletop-utils/internal/storage/memory"
	"github.com/mmuslimabdulj/tabletop-utils/internal/storage/sqlite"
	"github.com/mmuslimabdulj/tabletop-utils/internal/usecase"
)

func main() {
	// Load .env file (ignore error if not exists, e.g. in production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Configuring Logging
	if cfg.Silent() {
		log.SetOutput(io.Discard)
	}

	// Initialize dependencies
	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Storage error: %v", err)
	}
	defer closeStore()

	locales, err := i18n.NewLocales(cfg.SupportedLocales, cfg.DefaultLocale)
	if err != nil {
		log.Fatalf("Locale error: %v", err)
	}
	log.Printf("Locales: %v (default %s)", locales.Supported(), locales.Default())

	tracker := usecase.NewTracker(store)
	sessions := session.NewStore(cfg.SessionTTL)
	defer sessions.Close()
	limiter := middleware.NewIPRateLimiter(cfg.MutationLimit(), cfg.RateLimitBurst)
	defer limiter.Stop()

	handler := httpHandler.NewHandler(tracker, sessions, locales)

	// Setup routes
	mux := http.NewServeMux()

	// Serve static files
	fs := http.FileServer(http.Dir(cfg.StaticDir))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))

	// Page, tracker and preference routes; mutations are rate limited
	handler.Register(mux, middleware.RateLimitMiddleware(limiter))

	// Sessions for every request, security headers on every response
	var root http.Handler = sessions.Middleware(cfg.CookieSecure)(mux)
	root = middleware.SecurityHeaders(root)
	if cfg.Debug() {
		root = middleware.RequestLogger(nil)(root)
	}

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Tabletop Utils running at http://localhost:%s (storage: %s)", cfg.Port, cfg.StorageDriver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		return
	}

	log.Println("Server exited gracefully")
}

// openStore selects the character store for cfg.StorageDriver.
func openStore(cfg *config.Config) (storage.CharacterStore, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return memory.NewStore(), func() {}, nil
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		store, err := sqlite.Open(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("Close database: %v", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
