package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kyletan/ippt-tracker/internal/extract"
	"github.com/kyletan/ippt-tracker/internal/llm"
	"github.com/kyletan/ippt-tracker/internal/repository"
)

// Config holds thresholds and behavior flags for the parse stage.
type Config struct {
	MinConfidence float32 // OCR confidence below this flags the job for review
	ModelName     string  // recorded on the job when the vision model ran
	Extract       extract.Config
}

type ParseStage struct {
	Logger       *slog.Logger
	Cfg          Config
	JobsRepo     repository.ExtractJobRepository
	SoldiersRepo repository.SoldierRepository
	Extractor    llm.SoldierExtractor // optional vision fallback
}

func NewParseStage(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ExtractJobRepository,
	soldiers repository.SoldierRepository,
	se llm.SoldierExtractor,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	if cfg.ModelName == "" {
		cfg.ModelName = "gpt-4o"
	}
	cfg.Extract = cfg.Extract.WithDefaults()
	return &ParseStage{
		Logger:       logger,
		Cfg:          cfg,
		JobsRepo:     jobs,
		SoldiersRepo: soldiers,
		Extractor:    se,
	}
}

// Run executes the parse stage for an existing OCR job. The positional
// strategy leads; spatial, pattern and vision candidates only contribute
// when it comes back short, in that order of precedence.
func (p *ParseStage) Run(ctx context.Context, jobID, scoresheetID uuid.UUID, ocrOut OCROutput) (extract.Result, error) {
	cfg := p.Cfg.Extract

	primary := []extract.Strategy{
		extract.NewPositionalExtractor(cfg, nil),
	}
	secondary := []extract.Strategy{
		extract.NewSpatialExtractor(cfg),
		extract.NewPatternExtractor(cfg),
	}

	modelName := ""
	if p.Extractor != nil {
		if s := p.visionCandidates(ctx, scoresheetID, ocrOut); s != nil {
			secondary = append(secondary, s)
			modelName = p.Cfg.ModelName
		}
	}

	rec := extract.NewReconciler(cfg, primary, secondary, p.Logger)
	result := rec.Reconcile(ocrOut.Input)

	needsReview := !result.Success ||
		result.Count < cfg.MergeThreshold ||
		(ocrOut.Confidence > 0 && ocrOut.Confidence < p.Cfg.MinConfidence)

	raw, err := json.Marshal(result)
	if err != nil {
		return result, fmt.Errorf("marshal result: %w", err)
	}
	if !result.Success {
		if err := p.JobsRepo.FinishParseSuccess(ctx, jobID, raw, modelName, true); err != nil {
			return result, err
		}
		p.Logger.Warn("parse produced no records", "job_id", jobID)
		return result, nil
	}

	if _, err := p.SoldiersRepo.SaveResults(ctx, &repository.SaveResultsRequest{
		ScoresheetID: scoresheetID,
		JobID:        jobID,
		Records:      result.Records,
	}); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, jobID, err.Error())
		return result, fmt.Errorf("save results: %w", err)
	}
	if err := p.JobsRepo.FinishParseSuccess(ctx, jobID, raw, modelName, needsReview); err != nil {
		return result, err
	}

	p.Logger.Info("parsed scoresheet",
		"job_id", jobID,
		"records", result.Count,
		"needs_review", needsReview,
		"ocr_confidence", ocrOut.Confidence,
	)
	return result, nil
}

// visionCandidates asks the model for rows and wraps them as one more
// strategy. A failure only costs us the fallback, never the job.
func (p *ParseStage) visionCandidates(ctx context.Context, scoresheetID uuid.UUID, ocrOut OCROutput) extract.Strategy {
	fields, _, err := p.Extractor.ExtractSoldiers(ctx, llm.ExtractRequest{
		ImagePath:    ocrOut.SourcePath,
		OCRText:      strings.Join(ocrOut.Input.Lines, "\n"),
		FilenameHint: filepath.Base(ocrOut.SourcePath),
		MaxSoldiers:  p.Cfg.Extract.MaxRecords,
		Counts: llm.CountBounds{
			SitUp:  p.Cfg.Extract.SitupRange,
			PushUp: p.Cfg.Extract.PushupRange,
		},
	})
	if err != nil {
		p.Logger.Warn("vision extract failed", "scoresheet_id", scoresheetID, "err", err)
		return nil
	}
	return extract.Candidates("vision", toRecords(fields, p.Cfg.Extract))
}

// toRecords re-validates model output with the same bounds the line
// strategies use; a row the validators reject arrives zeroed and is dropped
// later by plausibility checks.
func toRecords(fields []llm.SoldierFields, cfg extract.Config) []extract.Record {
	recs := make([]extract.Record, 0, len(fields))
	for _, f := range fields {
		recs = append(recs, extract.Record{
			Name:       extract.NormalizeName(f.Name, cfg.RankMarkers),
			SitUpReps:  extract.ValidateCount(strconv.Itoa(f.SitUpReps), cfg.SitupRange.Min, cfg.SitupRange.Max),
			PushUpReps: extract.ValidateCount(strconv.Itoa(f.PushUpReps), cfg.PushupRange.Min, cfg.PushupRange.Max),
			RunTime:    extract.ValidateRunTime(f.RunTime),
			Confidence: f.Confidence,
		})
	}
	return recs
}
