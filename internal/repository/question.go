package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/examforge/mcq-ingest/internal/common"
	"github.com/examforge/mcq-ingest/internal/llm"
)

// QuestionRepository persists normalized question records. Upsert is keyed on
// the question stem: a record whose stem matches an existing row replaces it.
type QuestionRepository interface {
	Upsert(ctx context.Context, rec *llm.QuestionRecord) error
	List(ctx context.Context) ([]*llm.QuestionRecord, error)
}

type questionRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewQuestionRepository(pool *pgxpool.Pool, logger *slog.Logger) QuestionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &questionRepository{pool: pool, logger: logger}
}

// The table keeps the source's camelCase column names; quoting is mandatory.
const upsertQuestionSQL = `
INSERT INTO "mcqQuestions" (
	"questionStem", "leadQuestion", "correctAnswerId", "answersArray",
	"explanationList", "moduleId", "conditionName", "presentationId",
	"presentationId2", "image"
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT ("questionStem") DO UPDATE SET
	"leadQuestion"    = EXCLUDED."leadQuestion",
	"correctAnswerId" = EXCLUDED."correctAnswerId",
	"answersArray"    = EXCLUDED."answersArray",
	"explanationList" = EXCLUDED."explanationList",
	"moduleId"        = EXCLUDED."moduleId",
	"conditionName"   = EXCLUDED."conditionName",
	"presentationId"  = EXCLUDED."presentationId",
	"presentationId2" = EXCLUDED."presentationId2",
	"image"           = EXCLUDED."image"`

// Upsert writes one record. Each call is independent: partial batch failure
// is expected and reported per record by the caller, so there is no
// cross-record transaction here.
func (r *questionRepository) Upsert(ctx context.Context, rec *llm.QuestionRecord) error {
	start := time.Now()

	var image *string
	if rec.Image != "" {
		image = &rec.Image
	}

	_, err := r.pool.Exec(ctx, upsertQuestionSQL,
		rec.QuestionStem,
		rec.LeadQuestion,
		rec.CorrectAnswerID,
		rec.AnswersArray,
		rec.ExplanationList,
		rec.ModuleID,
		rec.ConditionName,
		rec.PresentationID,
		rec.PresentationID2,
		image,
	)
	if err != nil {
		r.logger.Error("repository.upsert_failed",
			"module_id", rec.ModuleID,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	r.logger.Info("repository.upsert_ok",
		"module_id", rec.ModuleID,
		"answers", len(rec.AnswersArray),
		"has_image", image != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

const listQuestionsSQL = `
SELECT
	"questionStem", "leadQuestion", "correctAnswerId", "answersArray",
	"explanationList", "moduleId", "conditionName", "presentationId",
	"presentationId2", "image"
FROM "mcqQuestions"
ORDER BY "moduleId", "questionStem"`

func (r *questionRepository) List(ctx context.Context) ([]*llm.QuestionRecord, error) {
	rows, err := r.pool.Query(ctx, listQuestionsSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	defer rows.Close()

	var out []*llm.QuestionRecord
	for rows.Next() {
		rec := &llm.QuestionRecord{}
		var image *string
		if err := rows.Scan(
			&rec.QuestionStem,
			&rec.LeadQuestion,
			&rec.CorrectAnswerID,
			&rec.AnswersArray,
			&rec.ExplanationList,
			&rec.ModuleID,
			&rec.ConditionName,
			&rec.PresentationID,
			&rec.PresentationID2,
			&image,
		); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", common.ErrPersistence, err)
		}
		if image != nil {
			rec.Image = *image
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return out, nil
}
