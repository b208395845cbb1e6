package entity

import (
	"time"

	"github.com/google/uuid"
)

// University represents a target university for data transfer between layers.
type University struct {
	ID          uuid.UUID  `json:"id"`
	ApplicantID uuid.UUID  `json:"applicant_id"`
	Name        string     `json:"name"`
	Program     string     `json:"program"`
	Semester    string     `json:"semester"` // e.g. "Fall 2027"
	Deadline    *time.Time `json:"deadline,omitempty"`
	Timezone    *string    `json:"timezone,omitempty"` // UTC offset like "-05:00"
	Status      string     `json:"status"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
