package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/examforge/mcq-ingest/internal/common"
)

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 5 * time.Second
)

// Normalizer turns raw oracle replies into validated question records,
// retrying malformed output up to a fixed attempt ceiling. Transport and
// oracle-side errors are not assumed transient and fail immediately.
type Normalizer struct {
	oracle      Oracle
	logger      *slog.Logger
	maxAttempts int
	retryDelay  time.Duration
	sleep       func(time.Duration)
}

func NewNormalizer(oracle Oracle, maxAttempts int, retryDelay time.Duration, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	return &Normalizer{
		oracle:      oracle,
		logger:      logger,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		sleep:       time.Sleep,
	}
}

// attemptOutcome is the explicit result of one oracle round-trip. Malformed
// output is retryable; anything else is fatal for the document.
type attemptOutcome struct {
	records   []*QuestionRecord
	raw       string
	err       error
	retryable bool
}

// ExtractQuestions sends the instruction and normalizes the reply. On parse
// failure it retries with a fixed delay; on exhaustion it surfaces
// ErrOracleMalformed carrying the raw text for operator diagnosis.
func (n *Normalizer) ExtractQuestions(ctx context.Context, instruction, sourceFile string) ([]*QuestionRecord, error) {
	reqID := uuid.New().String()
	start := time.Now()
	n.logger.Info("oracle.extract.start",
		"req_id", reqID,
		"source_file", sourceFile,
		"instruction_bytes", len(instruction),
	)

	var lastRaw string
	var lastErr error
	for attempt := 1; attempt <= n.maxAttempts; attempt++ {
		out := n.attempt(ctx, instruction, sourceFile)
		if out.err == nil {
			n.logger.Info("oracle.extract.ok",
				"req_id", reqID,
				"source_file", sourceFile,
				"attempt", attempt,
				"records", len(out.records),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return out.records, nil
		}
		if !out.retryable {
			n.logger.Error("oracle.extract.transport_error",
				"req_id", reqID,
				"source_file", sourceFile,
				"attempt", attempt,
				"error", out.err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, out.err
		}

		lastRaw, lastErr = out.raw, out.err
		if attempt < n.maxAttempts {
			n.logger.Warn("oracle.extract.malformed_retry",
				"req_id", reqID,
				"source_file", sourceFile,
				"attempt", attempt,
				"retry_in", n.retryDelay,
				"error", out.err,
			)
			n.sleep(n.retryDelay)
		}
	}

	n.logger.Error("oracle.extract.malformed_exhausted",
		"req_id", reqID,
		"source_file", sourceFile,
		"attempts", n.maxAttempts,
		"error", lastErr,
		"raw", lastRaw,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil, fmt.Errorf("%w after %d attempts: %v (raw response: %s)",
		common.ErrOracleMalformed, n.maxAttempts, lastErr, lastRaw)
}

func (n *Normalizer) attempt(ctx context.Context, instruction, sourceFile string) attemptOutcome {
	raw, err := n.oracle.Complete(ctx, instruction)
	if err != nil {
		return attemptOutcome{
			err:       fmt.Errorf("%w: %v", common.ErrOracleTransport, err),
			retryable: false,
		}
	}

	records, err := ParseQuestions(raw, sourceFile)
	if err != nil {
		return attemptOutcome{raw: raw, err: err, retryable: true}
	}
	return attemptOutcome{records: records}
}
