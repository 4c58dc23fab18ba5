package export

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kyletan/ippt-tracker/gen/ent"
	"github.com/kyletan/ippt-tracker/internal/entity"
	"github.com/kyletan/ippt-tracker/internal/repository"
)

type stubSheets struct {
	rows []*ent.Scoresheet
	from *time.Time
	to   *time.Time
}

func (s *stubSheets) GetByID(context.Context, uuid.UUID) (*ent.Scoresheet, error) { return nil, nil }
func (s *stubSheets) GetByHash(context.Context, []byte) (*ent.Scoresheet, error)  { return nil, nil }
func (s *stubSheets) List(_ context.Context, from, to *time.Time) ([]*ent.Scoresheet, error) {
	s.from, s.to = from, to
	return s.rows, nil
}
func (s *stubSheets) Create(context.Context, string, string, string, int, []byte, time.Time) (*ent.Scoresheet, error) {
	return nil, nil
}
func (s *stubSheets) UpsertByHash(context.Context, string, string, string, int, []byte, time.Time) (*ent.Scoresheet, bool, error) {
	return nil, false, nil
}

type stubSoldiers struct {
	bySheet map[uuid.UUID][]*entity.SoldierResult
}

func (s *stubSoldiers) SaveResults(context.Context, *repository.SaveResultsRequest) ([]*entity.SoldierResult, error) {
	return nil, nil
}
func (s *stubSoldiers) ListByScoresheet(_ context.Context, id uuid.UUID) ([]*entity.SoldierResult, error) {
	return s.bySheet[id], nil
}
func (s *stubSoldiers) ListByJob(context.Context, uuid.UUID) ([]*entity.SoldierResult, error) {
	return nil, nil
}

func TestExportResultsXLSX(t *testing.T) {
	sheetID := uuid.New()
	sheets := &stubSheets{rows: []*ent.Scoresheet{{
		ID:         sheetID,
		Filename:   "alpha.jpg",
		UploadedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}}}
	soldiers := &stubSoldiers{bySheet: map[uuid.UUID][]*entity.SoldierResult{
		sheetID: {
			{Name: "JOHN TAN", SitUpReps: 35, PushUpReps: 40, RunTime: "9:30", Confidence: 0.9},
			{Name: "MARCUS LIM", SitUpReps: 42, PushUpReps: 38, RunTime: "10:15", Confidence: 0.8},
		},
	}}

	svc := NewService(sheets, soldiers, slog.New(slog.DiscardHandler))
	b, err := svc.ExportResultsXLSX(context.Background(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	wb, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	name, err := wb.GetCellValue("Results", "C2")
	require.NoError(t, err)
	require.Equal(t, "JOHN TAN", name)

	run, err := wb.GetCellValue("Results", "F3")
	require.NoError(t, err)
	require.Equal(t, "10:15", run)
}

func TestExportFromOnlyWindowsToToday(t *testing.T) {
	sheets := &stubSheets{}
	svc := NewService(sheets, &stubSoldiers{}, slog.New(slog.DiscardHandler))

	from := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	_, err := svc.ExportResultsXLSX(context.Background(), &from, nil)
	require.NoError(t, err)

	require.NotNil(t, sheets.from)
	require.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), *sheets.from)
	require.NotNil(t, sheets.to)
	require.True(t, sheets.to.After(time.Now().UTC().Truncate(24*time.Hour)))
}
