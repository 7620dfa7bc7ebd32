package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/buildbridge/dashboard/internal/api"
	"github.com/buildbridge/dashboard/internal/config"
	"github.com/buildbridge/dashboard/internal/notify"
	"github.com/buildbridge/dashboard/internal/repository/memory"
	"github.com/buildbridge/dashboard/internal/repository/sqlite"
	"github.com/buildbridge/dashboard/internal/security"
	"github.com/buildbridge/dashboard/internal/service"
	"github.com/buildbridge/dashboard/internal/view"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Msg("Starting BuildBridge dashboard server")

	// Open the session slot store
	if dir := filepath.Dir(cfg.Session.SlotPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("Failed to create session slot directory")
		}
	}
	slotStore, err := sqlite.NewSlotStore(cfg.Session.SlotPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open session slot store")
	}
	defer slotStore.Close()

	// Build the stores. Constructed once here and passed by reference; no
	// ambient global state.
	notifications := notify.NewRing(cfg.Workspace.NotificationBuffer)
	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	sessionService := service.NewSessionService(slotStore, jwtManager)
	workspaceService := service.NewWorkspaceService(
		memory.NewProjectRepository(),
		memory.NewMemberRepository(),
		memory.NewDocumentRepository(),
		notifications,
	)
	simulationService := service.NewSimulationService(notifications, cfg.Workspace.SimulationDuration)

	viewRouter := view.NewRouter()
	viewRouter.OnLeave(simulationService.CancelView)

	// Rehydrate the persisted identity, if any
	if identity, err := sessionService.Restore(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Failed to restore session")
	} else if identity == nil {
		log.Info().Msg("No persisted session, starting logged out")
	}

	if cfg.Workspace.SeedDemoData {
		workspaceService.SeedDemoData(context.Background())
		log.Info().Msg("Seeded demo workspace data")
	}

	// Initialize router
	router := api.NewRouter(cfg, api.Deps{
		SessionService:    sessionService,
		WorkspaceService:  workspaceService,
		SimulationService: simulationService,
		ViewRouter:        viewRouter,
		Notifications:     notifications,
		SlotStore:         slotStore,
		JWTManager:        jwtManager,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
