package document

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/examforge/mcq-ingest/constants"
	"github.com/examforge/mcq-ingest/internal/common"
)

func TestExtractText(t *testing.T) {
	doc := SourceDocument{
		Name:      "questions.txt",
		MediaType: constants.MediaTypeTXT,
		Data:      []byte("Q1. A patient presents with fever.\nA. Option one\nB. Option two\n"),
	}

	ext, err := Extract(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(ext.Text, "A patient presents with fever.") {
		t.Errorf("Text = %q, missing source content", ext.Text)
	}
	if len(ext.Images) != 0 {
		t.Errorf("got %d images from plain text, want 0", len(ext.Images))
	}
}

func TestExtractUnsupportedMediaType(t *testing.T) {
	doc := SourceDocument{
		Name:      "notes.rtf",
		MediaType: "application/rtf",
		Data:      []byte("{\\rtf1}"),
	}

	_, err := Extract(context.Background(), doc, nil)
	if err == nil {
		t.Fatal("expected error for unsupported media type")
	}
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

const docxBodyXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>A 30 year old woman presents with palpitations.</w:t></w:r></w:p>
    <w:p><w:r><w:t>What is the most likely diagnosis?</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>A. SVT</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>B. AF</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func buildDOCX(t *testing.T, media map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("creating document.xml: %v", err)
	}
	if _, err := w.Write([]byte(docxBodyXML)); err != nil {
		t.Fatalf("writing document.xml: %v", err)
	}

	for name, data := range media {
		w, err := zw.Create("word/media/" + name)
		if err != nil {
			t.Fatalf("creating media %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("writing media %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	data := buildDOCX(t, map[string][]byte{
		"image1.png": tinyPNG(t),
		"chart.emf":  []byte("vector junk"),
	})
	doc := SourceDocument{
		Name:      "exam.docx",
		MediaType: constants.MediaTypeDOCX,
		Data:      data,
	}

	ext, err := Extract(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	for _, want := range []string{
		"A 30 year old woman presents with palpitations.",
		"What is the most likely diagnosis?",
		"A. SVT | B. AF",
	} {
		if !strings.Contains(ext.Text, want) {
			t.Errorf("Text = %q, missing %q", ext.Text, want)
		}
	}

	if len(ext.Images) != 1 {
		t.Fatalf("got %d images, want 1 (emf must be skipped)", len(ext.Images))
	}
	img := ext.Images[0]
	if img.Ext != "png" {
		t.Errorf("Ext = %q, want png", img.Ext)
	}
	if img.Width != 2 || img.Height != 3 {
		t.Errorf("dimensions = %dx%d, want 2x3", img.Width, img.Height)
	}
	if img.SourceFile != "exam.docx" {
		t.Errorf("SourceFile = %q, want exam.docx", img.SourceFile)
	}
}

func TestExtractDOCXCorrupt(t *testing.T) {
	doc := SourceDocument{
		Name:      "broken.docx",
		MediaType: constants.MediaTypeDOCX,
		Data:      []byte("this is not a zip archive"),
	}

	_, err := Extract(context.Background(), doc, nil)
	if err == nil {
		t.Fatal("expected error for corrupt DOCX")
	}
	if !errors.Is(err, common.ErrExtractionIO) {
		t.Errorf("error = %v, want ErrExtractionIO", err)
	}
}

func TestExtractCleansUpTempFiles(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TMPDIR", tmpDir)

	doc := SourceDocument{
		Name:      "questions.txt",
		MediaType: constants.MediaTypeTXT,
		Data:      []byte("some text"),
	}
	if _, err := Extract(context.Background(), doc, nil); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("reading temp dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "mcqingest-") {
			t.Errorf("staged file %s not removed", filepath.Join(tmpDir, e.Name()))
		}
	}
}
