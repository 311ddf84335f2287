package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/examforge/mcq-ingest/constants"
)

// extractDOCX reads document text from word/document.xml and collects the
// package's media entries in archive-listing order.
func extractDOCX(path, sourceName string) (*Extraction, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening DOCX: %w", err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("word/document.xml not found in DOCX")
	}

	data, err := readZipEntry(docFile)
	if err != nil {
		return nil, fmt.Errorf("reading document.xml: %w", err)
	}

	text, err := docxText(data)
	if err != nil {
		return nil, fmt.Errorf("parsing DOCX XML: %w", err)
	}

	return &Extraction{
		Text:   text,
		Images: docxImages(r.File, sourceName),
	}, nil
}

// docxImages enumerates word/media entries with known raster extensions,
// preserving archive-listing order. That order is the only position signal a
// DOCX gives us; the oracle's zero-based index is matched against it.
func docxImages(files []*zip.File, sourceName string) []ExtractedImage {
	var out []ExtractedImage
	for _, f := range files {
		if !strings.HasPrefix(f.Name, "word/media/") {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(f.Name))
		if _, ok := constants.RasterExtensions[ext]; !ok {
			continue
		}

		data, err := readZipEntry(f)
		if err != nil {
			continue
		}
		w, h := imageSize(data)

		out = append(out, ExtractedImage{
			Data:       data,
			Ext:        ext,
			Width:      w,
			Height:     h,
			SourceFile: sourceName,
		})
	}
	return out
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// DOCX XML structures (simplified)
type docxDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    docxBody `xml:"body"`
}

type docxBody struct {
	Paras  []docxPara  `xml:"p"`
	Tables []docxTable `xml:"tbl"`
}

type docxPara struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Text []docxTextEl `xml:"t"`
}

type docxTextEl struct {
	Content string `xml:",chardata"`
}

type docxTable struct {
	Rows []docxRow `xml:"tr"`
}

type docxRow struct {
	Cells []docxCell `xml:"tc"`
}

type docxCell struct {
	Paras []docxPara `xml:"p"`
}

func docxText(data []byte) (string, error) {
	var doc docxDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, para := range doc.Body.Paras {
		text := paraText(para)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	for _, tbl := range doc.Body.Tables {
		for _, row := range tbl.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				var cellText strings.Builder
				for _, p := range cell.Paras {
					if cellText.Len() > 0 {
						cellText.WriteString(" ")
					}
					cellText.WriteString(paraText(p))
				}
				cells = append(cells, cellText.String())
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(strings.Join(cells, " | "))
		}
	}

	return strings.TrimSpace(b.String()), nil
}

func paraText(para docxPara) string {
	var b strings.Builder
	for _, run := range para.Runs {
		for _, t := range run.Text {
			b.WriteString(t.Content)
		}
	}
	return b.String()
}
