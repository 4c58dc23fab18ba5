package entity

import (
	"time"

	"github.com/google/uuid"
)

// Scoresheet represents one uploaded scoresheet scan for data transfer
// between layers.
type Scoresheet struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
