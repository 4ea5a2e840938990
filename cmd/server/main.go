package main

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/backend"
	"github.com/xaenox/memedb/internal/bot"
	"github.com/xaenox/memedb/internal/classifier"
	"github.com/xaenox/memedb/internal/memes"
	"github.com/xaenox/memedb/internal/server"
	"github.com/xaenox/memedb/internal/storage"
	"github.com/xaenox/memedb/internal/tagging"
	"github.com/xaenox/memedb/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize feedback storage
	var store storage.FeedbackStore
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory feedback storage")
		store = storage.NewMemoryStore()
	} else {
		logger.Info("Using PostgreSQL feedback storage")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		store, err = storage.NewPostgresStore(dbConfig)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize the AI classifier and its fallback
	vision := classifier.NewVisionClassifier(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second,
		logger,
	)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fallback := tagging.NewFallbackAnalyzer(vision, rng, logger)

	// Initialize the backend client and shared service
	backendClient := backend.NewClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second,
		logger,
	)
	service := memes.NewService(backendClient, vision, fallback, logger)

	// Start the Telegram bot when configured
	if cfg.Telegram.Enabled && cfg.Telegram.Token != "" {
		b, err := bot.New(cfg.Telegram.Token, service, logger)
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}
		go func() {
			if err := b.Start(); err != nil {
				logger.Error("Bot error", zap.Error(err))
			}
		}()
	}

	// Start the HTTP server
	srv := server.New(service, store, logger)
	if err := srv.Start(cfg.Server.Port); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
