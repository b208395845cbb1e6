package entity

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptFile represents an uploaded transcript file for data transfer
// between layers.
type TranscriptFile struct {
	ID          uuid.UUID `json:"id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	SourcePath  string    `json:"source_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
