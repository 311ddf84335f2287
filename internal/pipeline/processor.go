package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/examforge/mcq-ingest/internal/document"
	"github.com/examforge/mcq-ingest/internal/imagestore"
	"github.com/examforge/mcq-ingest/internal/llm"
	"github.com/examforge/mcq-ingest/internal/repository"
)

// Processor runs the document-to-record pipeline: extract container, build
// instruction, normalize the oracle reply, bind images, persist. One value
// per batch invocation; it carries no cross-batch state.
type Processor struct {
	logger     *slog.Logger
	normalizer *llm.Normalizer
	store      imagestore.ObjectStore
	repo       repository.QuestionRepository
}

func NewProcessor(
	logger *slog.Logger,
	normalizer *llm.Normalizer,
	store imagestore.ObjectStore,
	repo repository.QuestionRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:     logger,
		normalizer: normalizer,
		store:      store,
		repo:       repo,
	}
}

// ProcessBatch handles documents sequentially in upload order, accumulating
// records across documents, then upserts them all. Failures stay scoped to
// their document or record.
func (p *Processor) ProcessBatch(ctx context.Context, docs []document.SourceDocument) BatchResult {
	start := time.Now()
	var res BatchResult
	var accumulated []*llm.QuestionRecord

	for _, doc := range docs {
		records, err := p.processDocument(ctx, doc)
		if err != nil {
			p.logger.Error("pipeline.document.failed", "name", doc.Name, "error", err)
			res.Documents = append(res.Documents, DocumentResult{Name: doc.Name, Err: err})
			res.AnyFailures = true
			continue
		}
		p.logger.Info("pipeline.document.ok", "name", doc.Name, "records", len(records))
		res.Documents = append(res.Documents, DocumentResult{Name: doc.Name, Records: len(records)})
		accumulated = append(accumulated, records...)
	}
	res.Parsed = len(accumulated)

	for _, rec := range accumulated {
		rr := RecordResult{QuestionStem: rec.QuestionStem, SourceFile: rec.SourceFile}
		rec.SourceFile = ""
		if err := p.repo.Upsert(ctx, rec); err != nil {
			rr.Err = err
			res.AnyFailures = true
		} else {
			res.Upserted++
		}
		res.Records = append(res.Records, rr)
	}

	p.logger.Info("pipeline.batch.done",
		"documents", len(docs),
		"parsed", res.Parsed,
		"upserted", res.Upserted,
		"any_failures", res.AnyFailures,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res
}

// processDocument runs one document through extract -> instruct -> normalize
// -> bind. The returned records still carry their origin tag; persistence
// strips it.
func (p *Processor) processDocument(ctx context.Context, doc document.SourceDocument) ([]*llm.QuestionRecord, error) {
	ext, err := document.Extract(ctx, doc, p.logger)
	if err != nil {
		return nil, err
	}

	instruction := llm.BuildPrompt(ext.Text, len(ext.Images))
	records, err := p.normalizer.ExtractQuestions(ctx, instruction, doc.Name)
	if err != nil {
		return nil, err
	}

	p.bindImages(ctx, records, ext.Images, doc.Name)
	return records, nil
}
