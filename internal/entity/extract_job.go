package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents one transcript extraction run for data transfer
// between layers.
type ExtractJob struct {
	ID            uuid.UUID       `json:"id"`
	ApplicantID   uuid.UUID       `json:"applicant_id"`
	FileID        *uuid.UUID      `json:"file_id,omitempty"`
	EvaluationID  *uuid.UUID      `json:"evaluation_id,omitempty"`
	Source        string          `json:"source"` // "text" or "file"
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	Status        *string         `json:"status,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	ChunkCount    int             `json:"chunk_count"`
	WarningCount  int             `json:"warning_count"`
	Warnings      json.RawMessage `json:"warnings,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	ModelName     *string         `json:"model_name,omitempty"`
}
