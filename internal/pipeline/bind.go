package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/examforge/mcq-ingest/constants"
	"github.com/examforge/mcq-ingest/internal/common"
	"github.com/examforge/mcq-ingest/internal/document"
	"github.com/examforge/mcq-ingest/internal/llm"
)

// bindImages resolves each record's image hint against the images extracted
// from its document. A hint pointing inside the extracted set uploads that
// image under a fresh object name and stores the public URL on the record.
// Out-of-range hints and upload failures leave the record without an image;
// the record itself is still persisted. The transient hint fields are cleared
// either way so they never reach the store.
func (p *Processor) bindImages(ctx context.Context, records []*llm.QuestionRecord, images []document.ExtractedImage, docName string) {
	for _, rec := range records {
		pos := rec.ImagePosition
		wantImage := rec.HasImage

		rec.HasImage = false
		rec.ImagePosition = 0

		if !wantImage {
			continue
		}
		if pos < 0 || pos >= len(images) {
			p.logger.Warn("pipeline.image.position_out_of_range",
				"document", docName,
				"position", pos,
				"extracted", len(images),
			)
			continue
		}

		img := images[pos]
		name := uuid.New().String() + "." + img.Ext
		url, err := p.store.Upload(ctx, name, constants.ImageContentType(img.Ext), img.Data)
		if err != nil {
			p.logger.Error("pipeline.image.upload_failed",
				"document", docName,
				"object", name,
				"error", fmt.Errorf("%w: %v", common.ErrImageUpload, err),
			)
			continue
		}
		rec.Image = url
	}
}
