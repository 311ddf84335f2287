package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure taxonomy. Every failure in the pipeline is document- or
// record-scoped and wraps exactly one of these sentinels, so callers can
// branch with errors.Is instead of matching strings.
var (
	// ErrUnsupportedFormat: declared media type is not PDF/DOCX/TXT.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrExtractionIO: the container could not be read or parsed.
	ErrExtractionIO = errors.New("document extraction failed")
	// ErrOracleMalformed: the extraction reply never parsed as the expected
	// JSON shape, even after the retry budget was spent.
	ErrOracleMalformed = errors.New("malformed extraction output")
	// ErrOracleTransport: calling the oracle failed for any non-parse reason.
	ErrOracleTransport = errors.New("oracle transport error")
	// ErrImageUpload: a single image upload failed; the owning record keeps
	// going without its image field.
	ErrImageUpload = errors.New("image upload failed")
	// ErrPersistence: a single upsert failed.
	ErrPersistence = errors.New("persistence error")

	ErrInvalidInput = errors.New("invalid input")
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
