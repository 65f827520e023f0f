package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/promowheel/spinwheel-backend/api/routes"
	"github.com/promowheel/spinwheel-backend/internal/config"
	"github.com/promowheel/spinwheel-backend/internal/handlers"
	"github.com/promowheel/spinwheel-backend/internal/repositories"
	mongorepo "github.com/promowheel/spinwheel-backend/internal/repositories/mongodb"
	"github.com/promowheel/spinwheel-backend/internal/services"
	"github.com/promowheel/spinwheel-backend/pkg/mongodb"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogger(cfg)

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories
	var campaignRepo repositories.CampaignRepository = mongorepo.NewCampaignRepository(db)
	var offerRepo repositories.OfferRepository = mongorepo.NewOfferRepository(db)
	var spinLogRepo repositories.SpinLogRepository = mongorepo.NewSpinLogRepository(db)

	// Bootstrap indexes (unique slug, identity history lookups)
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelIndexes()
	for _, repo := range []interface {
		EnsureIndexes(ctx context.Context) error
	}{campaignRepo, offerRepo, spinLogRepo} {
		if err := repo.EnsureIndexes(indexCtx); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
	}

	// Initialize services
	spinService := services.NewSpinService(campaignRepo, offerRepo, spinLogRepo)
	campaignService := services.NewCampaignService(campaignRepo, offerRepo)

	// Initialize handlers and router
	spinHandler := handlers.NewSpinHandler(spinService, campaignService)
	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		SpinHandler: spinHandler,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port, "environment", cfg.App.Environment)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	slog.Info("Server exiting")
}

// setupLogger installs the process-wide structured logger.
func setupLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.App.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
