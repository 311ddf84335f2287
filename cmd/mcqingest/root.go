package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/examforge/mcq-ingest/internal/common"
	"github.com/examforge/mcq-ingest/internal/imagestore"
	"github.com/examforge/mcq-ingest/internal/llm"
	llmopenai "github.com/examforge/mcq-ingest/internal/llm/openai"
	"github.com/examforge/mcq-ingest/internal/pipeline"
	"github.com/examforge/mcq-ingest/internal/repository"
)

var rootCmd = &cobra.Command{
	Use:   "mcqingest",
	Short: "Turn exam question documents into structured records",
	Long: `mcqingest extracts multiple-choice questions from PDF, DOCX and TXT
documents, normalizes them through a language model into structured
records, uploads any referenced images, and upserts the records into
the question store.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chatCmd)
}

// newLogger builds the process-wide structured logger.
func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	return logger
}

// loadConfig reads configuration and applies the given area validators,
// exiting on failure so every subcommand starts from a known-good
// environment.
func loadConfig(logger *slog.Logger, validators ...func(*common.Config) error) *common.Config {
	cfg := common.LoadConfig()
	for _, validate := range validators {
		if err := validate(cfg); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(2)
		}
	}
	return cfg
}

// buildProcessor wires the full ingestion stack: database pool, image store,
// oracle client and pipeline. The returned cleanup releases all of it.
func buildProcessor(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*pipeline.Processor, func(), error) {
	pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	if err := repository.HealthCheck(ctx, pool, 1*time.Second, logger); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("database health: %w", err)
	}

	store, err := imagestore.NewGCSStore(ctx, cfg.Storage.Bucket, cfg.Storage.ProjectID, logger)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("opening image store: %w", err)
	}

	oracle := llmopenai.NewClient(llmopenai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
	}, logger)
	normalizer := llm.NewNormalizer(oracle, cfg.LLM.MaxRetries, cfg.LLM.RetryDelay, logger)
	repo := repository.NewQuestionRepository(pool, logger)

	cleanup := func() {
		_ = store.Close()
		pool.Close()
	}
	return pipeline.NewProcessor(logger, normalizer, store, repo), cleanup, nil
}
