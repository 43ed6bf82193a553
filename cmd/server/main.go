package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mastersolis/marketing-api/internal/ai"
	"github.com/mastersolis/marketing-api/internal/api"
	"github.com/mastersolis/marketing-api/internal/config"
	"github.com/mastersolis/marketing-api/internal/database"
	"github.com/mastersolis/marketing-api/internal/extract"
	"github.com/mastersolis/marketing-api/internal/repository"
	"github.com/mastersolis/marketing-api/internal/service"
	"github.com/mastersolis/marketing-api/pkg/logger"
)

func main() {
	// Load .env if present; environment variables win
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting MasterSolis InfoTech API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize document store
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close(context.Background())

	// Initialize repositories
	repos := repository.New(db)

	// Initialize AI generation and resume extraction
	generator := ai.NewClient(&cfg.AI, log)
	extractor := extract.New(log)

	// Initialize services
	services := service.NewServices(repos, generator, extractor, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
