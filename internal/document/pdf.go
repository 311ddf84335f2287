package document

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/examforge/mcq-ingest/constants"
)

// extractPDF concatenates per-page text and walks each page's embedded raster
// image resources. These are the actual image XObjects, not rendered page
// screenshots, so a figure shared by two questions appears exactly once.
func extractPDF(ctx context.Context, path, sourceName string) (*Extraction, error) {
	text, err := pdfText(path)
	if err != nil {
		return nil, err
	}

	images, err := pdfImages(path, sourceName)
	if err != nil {
		// Text came out fine; a damaged image stream should not sink the
		// whole document. Records that reference an image simply won't bind.
		images = nil
	}

	return &Extraction{Text: text, Images: images}, nil
}

func pdfText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	totalPages := reader.NumPage()
	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}

// pdfImages walks pages in order and, within a page, image objects in object
// number order, which tracks original insertion order.
func pdfImages(path, sourceName string) ([]ExtractedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	pageImages, err := api.ExtractImagesRaw(f, nil, conf)
	if err != nil {
		return nil, fmt.Errorf("extracting PDF images: %w", err)
	}

	var out []ExtractedImage
	for _, byObj := range pageImages {
		objNrs := make([]int, 0, len(byObj))
		for objNr := range byObj {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := byObj[objNr]
			data, err := io.ReadAll(img)
			if err != nil {
				continue
			}

			w, h := imageSize(data)
			if w == 0 || h == 0 {
				// Not decodable as a raster image (mask, pattern tile, or an
				// encoding we don't read); skip rather than upload garbage.
				continue
			}

			out = append(out, ExtractedImage{
				Data:       data,
				Ext:        constants.NormalizeExt(img.FileType),
				PageNumber: img.PageNr,
				Width:      w,
				Height:     h,
				SourceFile: sourceName,
			})
		}
	}
	return out, nil
}

// imageSize returns the width and height of an image from its encoded bytes.
func imageSize(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
