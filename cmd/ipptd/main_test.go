package main

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kyletan/ippt-tracker/internal/async"
	"github.com/kyletan/ippt-tracker/internal/ingest"
)

type stubIngestor struct {
	results map[string]ingest.IngestionResult
}

func (s *stubIngestor) IngestPath(_ context.Context, path string) (ingest.IngestionResult, error) {
	return s.results[path], nil
}

func (s *stubIngestor) IngestDirectory(context.Context, string, bool) ([]ingest.IngestionResult, ingest.DirStats, error) {
	return nil, ingest.DirStats{}, nil
}

type recordingQueue struct {
	jobs chan async.Job
}

func (q *recordingQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs <- job
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) {}

func TestWatchLoopQueuesIngestedScans(t *testing.T) {
	id := uuid.New()
	ing := &stubIngestor{results: map[string]ingest.IngestionResult{
		"/drop/a.jpg": {SourcePath: "/drop/a.jpg", ScoresheetID: id.String()},
		"/drop/b.jpg": {SourcePath: "/drop/b.jpg", ScoresheetID: uuid.NewString(), Deduplicated: true},
		"/drop/c.jpg": {SourcePath: "/drop/c.jpg", ScoresheetID: "not-a-uuid"},
	}}
	queue := &recordingQueue{jobs: make(chan async.Job, 4)}

	evCh := make(chan string, 3)
	errCh := make(chan error)
	evCh <- "/drop/a.jpg"
	evCh <- "/drop/b.jpg"
	evCh <- "/drop/c.jpg"
	close(evCh)

	done := make(chan struct{})
	go func() {
		watchLoop(context.Background(), evCh, errCh, ing, queue, slog.New(slog.DiscardHandler))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not exit after channels closed")
	}

	// only the fresh, well-formed ingest reaches the queue
	require.Len(t, queue.jobs, 1)
	job := <-queue.jobs
	require.Equal(t, id, job.ScoresheetID)
	require.False(t, job.SubmittedAt.IsZero())
}
