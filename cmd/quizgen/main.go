// Package main implements the entry point for the football quiz generator,
// an interactive CLI that produces trilingual multiple-choice trivia
// questions via the Gemini API, persists them to a local collection file,
// and bulk-uploads the collection to the ingestion backend.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/matchday/quizgen/internal/config"
	"github.com/matchday/quizgen/internal/platform/gemini"
	"github.com/matchday/quizgen/internal/platform/ingest"
	"github.com/matchday/quizgen/internal/platform/jsonfile"
	"github.com/matchday/quizgen/internal/platform/logger"
	"github.com/matchday/quizgen/internal/service"
	"github.com/matchday/quizgen/internal/store"
)

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// initializeApp loads configuration and wires the application components.
// A missing Gemini API key fails here, before any menu is shown.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Logging)
	appLogger.Info("configuration loaded",
		"log_level", cfg.Logging.Level,
		"model", cfg.LLM.ModelName,
		"store_path", cfg.Store.Path,
		"upload_url", cfg.Upload.URL)

	generator, err := gemini.NewGeminiGenerator(ctx, appLogger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to set up Gemini generator: %w", err)
	}

	openStore := func(path string) store.QuizStore {
		return jsonfile.New(path, appLogger)
	}

	return &application{
		logger:           appLogger,
		generationSvc:    service.NewGenerationService(generator, openStore(cfg.Store.Path), appLogger),
		transferSvc:      service.NewTransferService(openStore, cfg.Store.Path, ingest.New(cfg.Upload, appLogger), appLogger),
		defaultStorePath: cfg.Store.Path,
		in:               os.Stdin,
		out:              os.Stdout,
	}, nil
}
