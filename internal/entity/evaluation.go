package entity

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation represents one evaluated transcript (an institution and degree
// level with its extracted courses and computed GPA).
type Evaluation struct {
	ID          uuid.UUID `json:"id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	Institution string    `json:"institution"`
	Level       string    `json:"level"`
	GPA         float64   `json:"gpa"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EvaluationCourse represents a single normalized course row on an evaluation.
type EvaluationCourse struct {
	ID           uuid.UUID `json:"id"`
	EvaluationID uuid.UUID `json:"evaluation_id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Grade        string    `json:"grade"`
	CreditHours  float64   `json:"credit_hours"`
	Included     bool      `json:"included"`
	Position     int       `json:"position"`
}
