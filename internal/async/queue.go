package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (retry, trace, priority).
type Job struct {
	ScoresheetID uuid.UUID
	Force        bool // enqueue even if deduplicated
	SubmittedAt  time.Time
	TraceID      string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
