package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/examforge/mcq-ingest/constants"
	"github.com/examforge/mcq-ingest/internal/common"
	"github.com/examforge/mcq-ingest/internal/document"
	"github.com/examforge/mcq-ingest/internal/pipeline"
)

var ingestDir string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Extract questions from every document in a directory",
	Long: `ingest walks a directory, picks up every PDF, DOCX and TXT file, and
runs each through extraction, normalization and persistence. Documents
are processed one at a time in name order; a failing document is
reported and skipped, never aborting the batch.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestDir, "dir", "", "directory containing question documents (required)")
	_ = ingestCmd.MarkFlagRequired("dir")
}

func runIngest(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := loadConfig(logger,
		(*common.Config).ValidateDatabase,
		(*common.Config).ValidateLLM,
		(*common.Config).ValidateStorage,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	docs, err := collectDocuments(ingestDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		logger.Warn("no ingestible documents found", "dir", ingestDir)
		return nil
	}
	logger.Info("ingest.start", "dir", ingestDir, "documents", len(docs))

	proc, cleanup, err := buildProcessor(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	res := proc.ProcessBatch(ctx, docs)
	printBatchSummary(res)
	if res.AnyFailures {
		return fmt.Errorf("batch finished with failures")
	}
	return nil
}

// collectDocuments reads every supported file directly under dir, in name
// order. Unsupported extensions and subdirectories are skipped silently.
func collectDocuments(dir string) ([]document.SourceDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var docs []document.SourceDocument
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, ok := constants.FormatForExtension(filepath.Ext(entry.Name()))
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		docs = append(docs, document.SourceDocument{
			Name:      entry.Name(),
			MediaType: constants.MediaTypeForFormat(format),
			Data:      data,
		})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

func printBatchSummary(res pipeline.BatchResult) {
	fmt.Printf("documents: %d, parsed: %d, upserted: %d\n",
		len(res.Documents), res.Parsed, res.Upserted)
	for _, d := range res.Documents {
		if d.Err != nil {
			fmt.Printf("  FAIL %s: %v\n", d.Name, d.Err)
		} else {
			fmt.Printf("  ok   %s: %d records\n", d.Name, d.Records)
		}
	}
	for _, r := range res.Records {
		if r.Err != nil {
			fmt.Printf("  FAIL upsert (%s): %v\n", r.SourceFile, r.Err)
		}
	}
}
