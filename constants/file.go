package constants

import "strings"

// Transcript input formats for the format field in ExtractJob.
const (
	TEXT  = "TEXT"
	IMAGE = "IMAGE"
	PDF   = "PDF"
)

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{TEXT, IMAGE, PDF}

// AllowedExtensions holds the file extensions accepted for transcript upload.
// PDF is accepted at upload time but rejected by the extraction path with an
// actionable error.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"md":   {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
	"pdf":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its ExtractJob format, or "" when
// the extension is not supported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "txt", "md", "text":
		return TEXT
	case "jpg", "jpeg", "png", "webp":
		return IMAGE
	case "pdf":
		return PDF
	default:
		return ""
	}
}
