package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/examforge/mcq-ingest/internal/common"
	"github.com/examforge/mcq-ingest/internal/export"
	"github.com/examforge/mcq-ingest/internal/repository"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all stored questions to an XLSX workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "questions.xlsx", "output XLSX file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := loadConfig(logger, (*common.Config).ValidateDatabase)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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
		return fmt.Errorf("opening database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewQuestionRepository(pool, logger)
	svc := export.NewService(repo, logger)

	data, err := svc.ExportQuestionsXLSX(ctx)
	if err != nil {
		return fmt.Errorf("exporting questions: %w", err)
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOut, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", exportOut, len(data))
	return nil
}
