package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/examforge/mcq-ingest/internal/document"
	"github.com/examforge/mcq-ingest/internal/llm"
)

func testImages() []document.ExtractedImage {
	return []document.ExtractedImage{
		{Data: []byte("png-bytes-0"), Ext: "png", SourceFile: "doc.pdf"},
		{Data: []byte("jpg-bytes-1"), Ext: "jpg", SourceFile: "doc.pdf"},
	}
}

func TestBindImagesUploadsReferencedImage(t *testing.T) {
	store := &fakeStore{}
	proc := NewProcessor(nil, nil, store, nil)

	rec := &llm.QuestionRecord{QuestionStem: "Stem", HasImage: true, ImagePosition: 1}
	proc.bindImages(context.Background(), []*llm.QuestionRecord{rec}, testImages(), "doc.pdf")

	if len(store.uploads) != 1 {
		t.Fatalf("got %d uploads, want 1", len(store.uploads))
	}
	up := store.uploads[0]
	if !strings.HasSuffix(up.name, ".jpg") {
		t.Errorf("object name %q should end in .jpg", up.name)
	}
	if up.contentType != "image/jpeg" {
		t.Errorf("contentType = %q, want image/jpeg", up.contentType)
	}
	if up.bytes != len("jpg-bytes-1") {
		t.Errorf("uploaded %d bytes, want %d", up.bytes, len("jpg-bytes-1"))
	}
	if rec.Image == "" || !strings.Contains(rec.Image, up.name) {
		t.Errorf("Image = %q, want URL carrying object name %q", rec.Image, up.name)
	}
}

func TestBindImagesObjectNamesAreUnique(t *testing.T) {
	store := &fakeStore{}
	proc := NewProcessor(nil, nil, store, nil)

	recs := []*llm.QuestionRecord{
		{QuestionStem: "One", HasImage: true, ImagePosition: 0},
		{QuestionStem: "Two", HasImage: true, ImagePosition: 0},
	}
	proc.bindImages(context.Background(), recs, testImages(), "doc.pdf")

	if len(store.uploads) != 2 {
		t.Fatalf("got %d uploads, want 2", len(store.uploads))
	}
	if store.uploads[0].name == store.uploads[1].name {
		t.Errorf("two uploads share object name %q", store.uploads[0].name)
	}
}

func TestBindImagesOutOfRangePosition(t *testing.T) {
	store := &fakeStore{}
	proc := NewProcessor(nil, nil, store, nil)

	tests := []struct {
		name string
		pos  int
	}{
		{"negative sentinel", -1},
		{"past the end", 2},
		{"far past", 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &llm.QuestionRecord{QuestionStem: "Stem", HasImage: true, ImagePosition: tt.pos}
			proc.bindImages(context.Background(), []*llm.QuestionRecord{rec}, testImages(), "doc.pdf")

			if rec.Image != "" {
				t.Errorf("Image = %q, want empty for out-of-range position", rec.Image)
			}
			if rec.HasImage || rec.ImagePosition != 0 {
				t.Errorf("transient fields not cleared: hasImage=%v position=%d", rec.HasImage, rec.ImagePosition)
			}
		})
	}
	if len(store.uploads) != 0 {
		t.Errorf("got %d uploads, want 0", len(store.uploads))
	}
}

func TestBindImagesNoHint(t *testing.T) {
	store := &fakeStore{}
	proc := NewProcessor(nil, nil, store, nil)

	rec := &llm.QuestionRecord{QuestionStem: "Stem", HasImage: false, ImagePosition: 0}
	proc.bindImages(context.Background(), []*llm.QuestionRecord{rec}, testImages(), "doc.pdf")

	if len(store.uploads) != 0 {
		t.Errorf("got %d uploads for hint-less record, want 0", len(store.uploads))
	}
	if rec.Image != "" {
		t.Errorf("Image = %q, want empty", rec.Image)
	}
}

func TestBindImagesUploadFailureLeavesRecordIntact(t *testing.T) {
	store := &fakeStore{failAll: true}
	proc := NewProcessor(nil, nil, store, nil)

	rec := &llm.QuestionRecord{QuestionStem: "Stem", HasImage: true, ImagePosition: 0}
	proc.bindImages(context.Background(), []*llm.QuestionRecord{rec}, testImages(), "doc.pdf")

	if rec.Image != "" {
		t.Errorf("Image = %q, want empty after upload failure", rec.Image)
	}
	if rec.HasImage || rec.ImagePosition != 0 {
		t.Errorf("transient fields not cleared: hasImage=%v position=%d", rec.HasImage, rec.ImagePosition)
	}
}
