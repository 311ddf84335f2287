package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/examforge/mcq-ingest/constants"
	"github.com/examforge/mcq-ingest/internal/common"
)

// SourceDocument is a named byte blob with a declared media type. It is owned
// by the pipeline invocation that received it and discarded after extraction.
type SourceDocument struct {
	Name      string
	MediaType string
	Data      []byte
}

// ExtractedImage is one embedded raster image in document-native appearance
// order: page order for PDFs, archive-entry order for DOCX.
type ExtractedImage struct {
	Data       []byte
	Ext        string // normalized, no dot
	PageNumber int    // 1-based for PDFs, 0 for DOCX
	Width      int
	Height     int
	SourceFile string
}

// Extraction is the Container Extractor output for one document.
type Extraction struct {
	Text   string
	Images []ExtractedImage
}

// Extract pulls plain text and embedded images out of a source document.
// The underlying PDF and zip readers need file-path access, so the bytes are
// staged in a temp file that is removed on every exit path.
func Extract(ctx context.Context, doc SourceDocument, logger *slog.Logger) (*Extraction, error) {
	if logger == nil {
		logger = slog.Default()
	}

	format, ok := constants.FormatForMediaType(doc.MediaType)
	if !ok {
		return nil, fmt.Errorf("%w: %q (%s)", common.ErrUnsupportedFormat, doc.MediaType, doc.Name)
	}

	start := time.Now()
	logger.Info("document.extract.start",
		"name", doc.Name,
		"format", string(format),
		"bytes", len(doc.Data),
	)

	tmp, err := stageTempFile(doc, format)
	if err != nil {
		return nil, fmt.Errorf("%w: staging %s: %v", common.ErrExtractionIO, doc.Name, err)
	}
	defer func() {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("document.extract.tempfile_remove_failed", "path", tmp, "error", rmErr)
		}
	}()

	var ext *Extraction
	switch format {
	case constants.PDF:
		ext, err = extractPDF(ctx, tmp, doc.Name)
	case constants.DOCX:
		ext, err = extractDOCX(tmp, doc.Name)
	case constants.TXT:
		ext, err = extractText(tmp)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrExtractionIO, doc.Name, err)
	}

	logger.Info("document.extract.ok",
		"name", doc.Name,
		"text_bytes", len(ext.Text),
		"images", len(ext.Images),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ext, nil
}

func stageTempFile(doc SourceDocument, format constants.Format) (string, error) {
	f, err := os.CreateTemp("", "mcqingest-*."+constants.NormalizeExt(string(format)))
	if err != nil {
		return "", err
	}
	if _, err := f.Write(doc.Data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
