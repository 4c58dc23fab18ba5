package constants

import "strings"

// File formats for the format field in ExtractJob.
const (
	IMAGE = "IMAGE"
	PDF   = "PDF"
)

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{IMAGE, PDF}

// AllowedExtensions holds the default allowed file extensions for scoresheet ingestion.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
	"pdf":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to a job format.
func MapExtToFormat(ext string) string {
	if NormalizeExt(ext) == "pdf" {
		return PDF
	}
	return IMAGE
}
