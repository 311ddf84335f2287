package document

import (
	"fmt"
	"os"
)

// extractText handles plain text documents. No images.
func extractText(path string) (*Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading text file: %w", err)
	}
	return &Extraction{Text: string(data)}, nil
}
