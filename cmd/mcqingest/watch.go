package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/examforge/mcq-ingest/constants"
	"github.com/examforge/mcq-ingest/internal/common"
	"github.com/examforge/mcq-ingest/internal/document"
	"github.com/examforge/mcq-ingest/internal/ingest"
	"github.com/examforge/mcq-ingest/internal/pipeline"
)

var (
	watchDir      string
	watchScan     bool
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and ingest documents as they appear",
	Long: `watch keeps running and ingests every PDF, DOCX or TXT file that is
created or modified under the given directory. With --initial-scan the
files already present are ingested first. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchDir, "dir", "", "directory to watch (required)")
	watchCmd.Flags().BoolVar(&watchScan, "initial-scan", false, "ingest files already present at startup")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second, "settle time before a changed file is ingested")
	_ = watchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := loadConfig(logger,
		(*common.Config).ValidateDatabase,
		(*common.Config).ValidateLLM,
		(*common.Config).ValidateStorage,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	proc, cleanup, err := buildProcessor(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{watchDir},
		InitialScan: watchScan,
		Debounce:    watchDebounce,
	}, logger)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	logger.Info("watch.start", "dir", watchDir, "initial_scan", watchScan)

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch.stop")
			return nil
		case err, ok := <-errCh:
			if ok && err != nil {
				logger.Error("watch.watcher_error", "error", err)
			}
		case path, ok := <-evCh:
			if !ok {
				return nil
			}
			ingestPath(ctx, proc, path, logger)
		}
	}
}

// ingestPath runs one emitted file through the pipeline. Failures are logged
// and do not stop the watch loop.
func ingestPath(ctx context.Context, proc *pipeline.Processor, path string, logger *slog.Logger) {
	format, ok := constants.FormatForExtension(filepath.Ext(path))
	if !ok {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("watch.read_failed", "path", path, "error", err)
		return
	}

	res := proc.ProcessBatch(ctx, []document.SourceDocument{{
		Name:      filepath.Base(path),
		MediaType: constants.MediaTypeForFormat(format),
		Data:      data,
	}})
	if res.AnyFailures {
		logger.Warn("watch.ingest_failures", "path", path)
	}
}
