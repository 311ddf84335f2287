package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/examforge/mcq-ingest/constants"
	"github.com/examforge/mcq-ingest/internal/repository"
)

// Service is a tiny façade over the question repository that produces XLSX
// bytes for exports.
type Service struct {
	repo   repository.QuestionRepository
	logger *slog.Logger
}

func NewService(repo repository.QuestionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportQuestionsXLSX returns an XLSX workbook (as bytes) with every stored
// question, one row per record, ordered by module then stem.
func (s *Service) ExportQuestionsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Questions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Module",
		"Question Stem",
		"Lead-in Question",
		"Answers",
		"Correct Answer",
		"Explanations",
		"Condition",
		"Presentation",
		"Presentation 2",
		"Image URL",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		module, ok := constants.ModuleName(r.ModuleID)
		if !ok {
			module = fmt.Sprintf("module %d", r.ModuleID)
		}
		write(1, module)
		write(2, truncate(r.QuestionStem, 900))
		write(3, r.LeadQuestion)
		write(4, strings.Join(r.AnswersArray, "\n"))

		correct := ""
		if r.CorrectAnswerID >= 0 && r.CorrectAnswerID < len(r.AnswersArray) {
			correct = r.AnswersArray[r.CorrectAnswerID]
		}
		write(5, correct)

		write(6, truncate(strings.Join(r.ExplanationList, "\n"), 900))
		write(7, optionalCode(r.ConditionName))
		write(8, optionalCode(r.PresentationID))
		write(9, optionalCode(r.PresentationID2))
		write(10, r.Image)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // module
	_ = f.SetColWidth(sheet, "B", "B", 60) // stem
	_ = f.SetColWidth(sheet, "C", "C", 40) // lead-in
	_ = f.SetColWidth(sheet, "D", "D", 40) // answers
	_ = f.SetColWidth(sheet, "E", "E", 32) // correct
	_ = f.SetColWidth(sheet, "F", "F", 60) // explanations
	_ = f.SetColWidth(sheet, "G", "I", 14) // taxonomy codes
	_ = f.SetColWidth(sheet, "J", "J", 60) // image url

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// optionalCode renders a nullable taxonomy code; absent codes export blank.
func optionalCode(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

// truncate caps a cell value at n runes. Slicing runes, not bytes, keeps a
// multi-byte character at the cut point intact.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
