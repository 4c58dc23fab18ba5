package entity

import (
	"time"

	"github.com/google/uuid"
)

// SoldierResult represents one reconciled soldier row for data transfer
// between layers.
type SoldierResult struct {
	ID           uuid.UUID `json:"id"`
	ScoresheetID uuid.UUID `json:"scoresheet_id"`
	JobID        uuid.UUID `json:"job_id"`
	Name         string    `json:"name"`
	SitUpReps    int       `json:"sit_up_reps"`
	PushUpReps   int       `json:"push_up_reps"`
	RunTime      string    `json:"run_time"`
	Confidence   float32   `json:"confidence"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
