package ingest

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kyletan/ippt-tracker/gen/ent"
)

// memSheets stores sheets by hash, like the real repository's unique index.
type memSheets struct {
	byHash map[string]*ent.Scoresheet
}

func newMemSheets() *memSheets { return &memSheets{byHash: map[string]*ent.Scoresheet{}} }

func (m *memSheets) GetByID(context.Context, uuid.UUID) (*ent.Scoresheet, error) {
	return nil, fmt.Errorf("not found")
}

func (m *memSheets) GetByHash(_ context.Context, hash []byte) (*ent.Scoresheet, error) {
	if row, ok := m.byHash[hex.EncodeToString(hash)]; ok {
		return row, nil
	}
	return nil, fmt.Errorf("not found")
}

func (m *memSheets) List(context.Context, *time.Time, *time.Time) ([]*ent.Scoresheet, error) {
	return nil, nil
}

func (m *memSheets) Create(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Scoresheet, error) {
	row := &ent.Scoresheet{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		ContentHash: hash,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		UploadedAt:  uploadedAt,
	}
	m.byHash[hex.EncodeToString(hash)] = row
	return row, nil
}

func (m *memSheets) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Scoresheet, bool, error) {
	if row, err := m.GetByHash(ctx, hash); err == nil {
		return row, true, nil
	}
	row, err := m.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	return row, false, err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestPathHashesAndDedups(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "alpha.jpg", "scan-bytes")

	ing := NewFSIngestor(newMemSheets(), slog.New(slog.DiscardHandler))

	first, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)
	require.False(t, first.Deduplicated)
	require.Equal(t, "jpg", first.FileExt)
	require.Len(t, first.HashHex, 64)

	// same bytes under a different name collapse onto the first sheet
	copyPath := writeFile(t, dir, "alpha-copy.jpg", "scan-bytes")
	second, err := ing.IngestPath(context.Background(), copyPath)
	require.NoError(t, err)
	require.True(t, second.Deduplicated)
	require.Equal(t, first.ScoresheetID, second.ScoresheetID)
}

func TestIngestPathRejectsUnknownExt(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "not a scan")

	ing := NewFSIngestor(newMemSheets(), slog.New(slog.DiscardHandler))
	_, err := ing.IngestPath(context.Background(), path)
	require.Error(t, err)
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", "one")
	writeFile(t, dir, "b.png", "two")
	writeFile(t, dir, "skip.txt", "three")
	writeFile(t, dir, ".hidden.jpg", "four")

	ing := NewFSIngestor(newMemSheets(), slog.New(slog.DiscardHandler))
	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, uint32(2), stats.Matched)
	require.Equal(t, uint32(2), stats.Succeeded)
	require.Equal(t, uint32(0), stats.Failed)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewFSIngestor(newMemSheets(), slog.New(slog.DiscardHandler))
	_, _, err := ing.IngestDirectory(context.Background(), "  ", true)
	require.Error(t, err)
}
