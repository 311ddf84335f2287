package constants

import "testing"

func TestFormatForMediaType(t *testing.T) {
	tests := []struct {
		mediaType string
		want      Format
		ok        bool
	}{
		{MediaTypePDF, PDF, true},
		{MediaTypeDOCX, DOCX, true},
		{MediaTypeTXT, TXT, true},
		{"text/plain; charset=utf-8", TXT, true},
		{"APPLICATION/PDF", PDF, true},
		{"image/png", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := FormatForMediaType(tt.mediaType)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FormatForMediaType(%q) = %q, %v; want %q, %v", tt.mediaType, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Format
		ok   bool
	}{
		{".pdf", PDF, true},
		{".PDF", PDF, true},
		{"docx", DOCX, true},
		{".txt", TXT, true},
		{".doc", "", false},
		{".png", "", false},
	}
	for _, tt := range tests {
		got, ok := FormatForExtension(tt.ext)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FormatForExtension(%q) = %q, %v; want %q, %v", tt.ext, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMediaTypeForFormatRoundTrip(t *testing.T) {
	for _, f := range []Format{PDF, DOCX, TXT} {
		got, ok := FormatForMediaType(MediaTypeForFormat(f))
		if !ok || got != f {
			t.Errorf("round trip for %q gave %q, %v", f, got, ok)
		}
	}
}

func TestImageContentType(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"png", "image/png"},
		{".PNG", "image/png"},
		{"jpg", "image/jpeg"},
		{"jpeg", "image/jpeg"},
		{"gif", "image/gif"},
		{"tiff", "image/tiff"},
		{"webp", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := ImageContentType(tt.ext); got != tt.want {
			t.Errorf("ImageContentType(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}
