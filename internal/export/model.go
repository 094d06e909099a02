package export

import "time"

// Artifact formats.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatJPG  = "jpg"
	FormatTXT  = "txt"
)

// Artifact records one generated download, with its copy in object storage.
type Artifact struct {
	ID         string
	ResumeID   string
	Format     string
	StorageKey string
	SizeBytes  int64
	CreatedAt  time.Time
}

func contentTypeFor(format string) string {
	switch format {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatJPG:
		return "image/jpeg"
	default:
		return "text/plain; charset=utf-8"
	}
}
