package constants

import "strings"

// Format identifies a supported source-document container.
type Format string

const (
	PDF  Format = "PDF"
	DOCX Format = "DOCX"
	TXT  Format = "TXT"
)

// Media types as declared by uploaders alongside the raw bytes.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeTXT  = "text/plain"
)

// FormatForMediaType maps a declared media type to its container format.
func FormatForMediaType(mediaType string) (Format, bool) {
	switch strings.TrimSpace(strings.ToLower(mediaType)) {
	case MediaTypePDF:
		return PDF, true
	case MediaTypeDOCX:
		return DOCX, true
	case MediaTypeTXT, "text/plain; charset=utf-8":
		return TXT, true
	default:
		return "", false
	}
}

// FormatForExtension maps a filename extension to its container format, for
// directory-based ingestion where no media type was declared.
func FormatForExtension(ext string) (Format, bool) {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF, true
	case "docx":
		return DOCX, true
	case "txt":
		return TXT, true
	default:
		return "", false
	}
}

// MediaTypeForFormat is the inverse of FormatForMediaType.
func MediaTypeForFormat(f Format) string {
	switch f {
	case PDF:
		return MediaTypePDF
	case DOCX:
		return MediaTypeDOCX
	case TXT:
		return MediaTypeTXT
	default:
		return "application/octet-stream"
	}
}

// RasterExtensions holds the image extensions recognised inside DOCX media
// storage. Vector formats (emf/wmf) are skipped: they cannot be decoded for
// dimensions and browsers will not render them from a public bucket.
var RasterExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"bmp":  {},
	"tif":  {},
	"tiff": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ImageContentType returns the MIME type for a normalized raster extension.
func ImageContentType(ext string) string {
	switch NormalizeExt(ext) {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "tif", "tiff":
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
