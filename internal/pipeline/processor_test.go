package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kyletan/ippt-tracker/gen/ent"
	"github.com/kyletan/ippt-tracker/internal/docintel"
	"github.com/kyletan/ippt-tracker/internal/entity"
	"github.com/kyletan/ippt-tracker/internal/extract"
	"github.com/kyletan/ippt-tracker/internal/llm"
	"github.com/kyletan/ippt-tracker/internal/ocr"
	"github.com/kyletan/ippt-tracker/internal/repository"
)

func quiet() *slog.Logger { return slog.New(slog.DiscardHandler) }

// sheetLines lays out a scan the way the scoresheet template prints: a
// header block, then per soldier a serial, identity, name and metric lines.
func sheetLines(n int) []string {
	lines := make([]string, 0, 23+n*10)
	for i := 0; i < 23; i++ {
		lines = append(lines, fmt.Sprintf("header %d", i))
	}
	names := []string{
		"PTE JOHN TAN", "PTE MARCUS LIM", "CPL WEI JIE NG", "PTE DANIEL LEE",
		"SGT HAFIZ RAHMAN", "PTE ARJUN NAIR", "LCP RYAN CHUA", "PTE JUN HAO KOH",
		"2LT SHAWN TEO", "PTE ADAM YUSOF",
	}
	for i := 0; i < n; i++ {
		lines = append(lines,
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("ID%03d", i+1),
			names[i],
			"coy A",
			"det 1",
			"x",
		)
		if i == 0 {
			lines = append(lines, "tag")
		}
		lines = append(lines,
			fmt.Sprintf("%d", 30+i),
			fmt.Sprintf("%d", 40+i),
			fmt.Sprintf("9:%02d", 10+i),
		)
	}
	return lines
}

type stubSheets struct {
	sheet *ent.Scoresheet
}

func (s *stubSheets) GetByID(context.Context, uuid.UUID) (*ent.Scoresheet, error) {
	return s.sheet, nil
}
func (s *stubSheets) GetByHash(context.Context, []byte) (*ent.Scoresheet, error) {
	return nil, fmt.Errorf("not found")
}
func (s *stubSheets) List(context.Context, *time.Time, *time.Time) ([]*ent.Scoresheet, error) {
	return []*ent.Scoresheet{s.sheet}, nil
}
func (s *stubSheets) Create(context.Context, string, string, string, int, []byte, time.Time) (*ent.Scoresheet, error) {
	return s.sheet, nil
}
func (s *stubSheets) UpsertByHash(context.Context, string, string, string, int, []byte, time.Time) (*ent.Scoresheet, bool, error) {
	return s.sheet, false, nil
}

type stubJobs struct {
	job         *ent.ExtractJob
	ocrText     string
	provider    string
	parsed      json.RawMessage
	needsReview bool
	failed      string
	parseDone   bool
}

func (s *stubJobs) Start(_ context.Context, sheetID uuid.UUID, format string) (*ent.ExtractJob, error) {
	s.job = &ent.ExtractJob{ID: uuid.New(), ScoresheetID: sheetID, Format: format}
	return s.job, nil
}
func (s *stubJobs) FinishOCRSuccess(_ context.Context, _ uuid.UUID, text, provider string, _ float32) error {
	s.ocrText = text
	s.provider = provider
	return nil
}
func (s *stubJobs) FinishParseSuccess(_ context.Context, _ uuid.UUID, extracted json.RawMessage, _ string, needsReview bool) error {
	s.parsed = extracted
	s.needsReview = needsReview
	s.parseDone = true
	return nil
}
func (s *stubJobs) FinishFailure(_ context.Context, _ uuid.UUID, msg string) error {
	s.failed = msg
	return nil
}
func (s *stubJobs) LatestForScoresheet(context.Context, uuid.UUID) (*ent.ExtractJob, error) {
	return s.job, nil
}

type stubSoldiers struct {
	saved []extract.Record
}

func (s *stubSoldiers) SaveResults(_ context.Context, req *repository.SaveResultsRequest) ([]*entity.SoldierResult, error) {
	s.saved = req.Records
	return nil, nil
}
func (s *stubSoldiers) ListByScoresheet(context.Context, uuid.UUID) ([]*entity.SoldierResult, error) {
	return nil, nil
}
func (s *stubSoldiers) ListByJob(context.Context, uuid.UUID) ([]*entity.SoldierResult, error) {
	return nil, nil
}

type stubCloud struct {
	res docintel.Result
	err error
}

func (s *stubCloud) AnalyzeFile(context.Context, string) (docintel.Result, error) {
	return s.res, s.err
}

type stubLocal struct {
	res ocr.ExtractionResult
}

func (s *stubLocal) Extract(context.Context, string) (ocr.ExtractionResult, error) {
	return s.res, nil
}

type stubVision struct {
	rows   []llm.SoldierFields
	called bool
}

func (s *stubVision) ExtractSoldiers(context.Context, llm.ExtractRequest) ([]llm.SoldierFields, []byte, error) {
	s.called = true
	return s.rows, nil, nil
}

func newSheet() *ent.Scoresheet {
	return &ent.Scoresheet{
		ID:         uuid.New(),
		SourcePath: "/data/sheets/alpha.jpg",
		Filename:   "alpha.jpg",
		FileExt:    "jpg",
	}
}

func TestProcessScoresheetFullRoster(t *testing.T) {
	sheet := newSheet()
	sheets := &stubSheets{sheet: sheet}
	jobs := &stubJobs{}
	soldiers := &stubSoldiers{}
	cloud := &stubCloud{res: docintel.Result{Lines: sheetLines(10), Confidence: 0.92}}

	ocrStage := NewOCRStage(sheets, jobs, cloud, nil, quiet())
	parseStage := NewParseStage(quiet(), Config{}, jobs, soldiers, nil)
	p := NewProcessor(quiet(), ocrStage, parseStage)

	jobID, err := p.ProcessScoresheet(context.Background(), sheet.ID)
	require.NoError(t, err)
	require.Equal(t, jobs.job.ID, jobID)
	require.Equal(t, "docintel", jobs.provider)
	require.NotEmpty(t, jobs.ocrText)

	require.Len(t, soldiers.saved, 10)
	require.Equal(t, "JOHN TAN", soldiers.saved[0].Name)
	require.Equal(t, 30, soldiers.saved[0].SitUpReps)
	require.Equal(t, 40, soldiers.saved[0].PushUpReps)
	require.Equal(t, "9:10", soldiers.saved[0].RunTime)
	require.True(t, jobs.parseDone)
	require.False(t, jobs.needsReview)
}

func TestProcessScoresheetShortRosterNeedsReview(t *testing.T) {
	sheet := newSheet()
	jobs := &stubJobs{}
	soldiers := &stubSoldiers{}
	cloud := &stubCloud{res: docintel.Result{Lines: sheetLines(3), Confidence: 0.92}}

	ocrStage := NewOCRStage(&stubSheets{sheet: sheet}, jobs, cloud, nil, quiet())
	parseStage := NewParseStage(quiet(), Config{}, jobs, soldiers, nil)
	p := NewProcessor(quiet(), ocrStage, parseStage)

	_, err := p.ProcessScoresheet(context.Background(), sheet.ID)
	require.NoError(t, err)
	require.Len(t, soldiers.saved, 3)
	require.True(t, jobs.needsReview)
}

func TestCloudFailureFallsBackToLocal(t *testing.T) {
	sheet := newSheet()
	jobs := &stubJobs{}
	soldiers := &stubSoldiers{}
	cloud := &stubCloud{err: fmt.Errorf("quota exceeded")}
	local := &stubLocal{res: ocr.ExtractionResult{Lines: sheetLines(10), Confidence: 0.7}}

	ocrStage := NewOCRStage(&stubSheets{sheet: sheet}, jobs, cloud, local, quiet())
	parseStage := NewParseStage(quiet(), Config{}, jobs, soldiers, nil)
	p := NewProcessor(quiet(), ocrStage, parseStage)

	_, err := p.ProcessScoresheet(context.Background(), sheet.ID)
	require.NoError(t, err)
	require.Equal(t, "tesseract", jobs.provider)
	require.Len(t, soldiers.saved, 10)
}

func TestVisionCandidatesFillShortRoster(t *testing.T) {
	sheet := newSheet()
	jobs := &stubJobs{}
	soldiers := &stubSoldiers{}
	cloud := &stubCloud{res: docintel.Result{Lines: sheetLines(2), Confidence: 0.92}}
	vision := &stubVision{rows: []llm.SoldierFields{
		{Name: "SGT HAFIZ RAHMAN", SitUpReps: 44, PushUpReps: 50, RunTime: "10:05", Confidence: 0.8},
	}}

	ocrStage := NewOCRStage(&stubSheets{sheet: sheet}, jobs, cloud, nil, quiet())
	parseStage := NewParseStage(quiet(), Config{}, jobs, soldiers, vision)
	p := NewProcessor(quiet(), ocrStage, parseStage)

	_, err := p.ProcessScoresheet(context.Background(), sheet.ID)
	require.NoError(t, err)
	require.True(t, vision.called)
	require.Len(t, soldiers.saved, 3)
	require.Equal(t, "HAFIZ RAHMAN", soldiers.saved[2].Name)
}

func TestParseStagePrefersSpatialOverPattern(t *testing.T) {
	jobs := &stubJobs{}
	soldiers := &stubSoldiers{}
	stage := NewParseStage(quiet(), Config{}, jobs, soldiers, nil)

	// The flat lines and the token view disagree on the metrics; the token
	// strategy runs first, so its reading must survive deduplication.
	in := extract.Input{
		Lines: []string{"PTE JOHN TAN", "50", "60", "10:30"},
		Tokens: []extract.Token{
			{Text: "1"}, {Text: "PTE JOHN TAN"}, {Text: "30"}, {Text: "41"}, {Text: "9:10"},
		},
	}
	res, err := stage.Run(context.Background(), uuid.New(), uuid.New(), OCROutput{Input: in, Provider: "docintel", Confidence: 0.9})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Len(t, res.Records, 1)
	require.Equal(t, "JOHN TAN", res.Records[0].Name)
	require.Equal(t, 30, res.Records[0].SitUpReps)
	require.Equal(t, 41, res.Records[0].PushUpReps)
	require.Equal(t, "9:10", res.Records[0].RunTime)
}

func TestOCRFailureMarksJobFailed(t *testing.T) {
	sheet := newSheet()
	jobs := &stubJobs{}
	cloud := &stubCloud{err: fmt.Errorf("endpoint down")}

	ocrStage := NewOCRStage(&stubSheets{sheet: sheet}, jobs, cloud, nil, quiet())
	_, _, err := ocrStage.Run(context.Background(), sheet.ID)
	require.Error(t, err)
	require.NotEmpty(t, jobs.failed)
}
