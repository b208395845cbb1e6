package entity

import (
	"time"

	"github.com/google/uuid"
)

// Applicant represents an applicant for data transfer between layers.
type Applicant struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	TargetLevel   string    `json:"target_level"`
	ResearchAreas *string   `json:"research_areas,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
