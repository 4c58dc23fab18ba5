package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
}

func (c *countingProcessor) ProcessScoresheet(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, id)
	return uuid.New(), nil
}

func (c *countingProcessor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

func TestProcessorQueueDrainsAllJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, slog.New(slog.DiscardHandler), WithWorkers(2), WithQueueSize(16))

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, q.Enqueue(context.Background(), Job{ScoresheetID: ids[i], SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.Equal(t, len(ids), proc.count())
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, slog.New(slog.DiscardHandler), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// Enqueue after shutdown is a no-op, not a panic.
	require.NoError(t, q.Enqueue(context.Background(), Job{ScoresheetID: uuid.New()}))
	require.Equal(t, 0, proc.count())
}
