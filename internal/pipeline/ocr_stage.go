package processor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/constants"
	"github.com/kyletan/ippt-tracker/internal/docintel"
	"github.com/kyletan/ippt-tracker/internal/extract"
	"github.com/kyletan/ippt-tracker/internal/ocr"
	"github.com/kyletan/ippt-tracker/internal/repository"
)

// CloudOCR is the layout-aware provider (Azure Document Intelligence).
type CloudOCR interface {
	AnalyzeFile(ctx context.Context, path string) (docintel.Result, error)
}

// LocalOCR is the tesseract fallback. Flat lines only.
type LocalOCR interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

// OCROutput is what the parse stage consumes.
type OCROutput struct {
	Input      extract.Input
	Provider   string // "docintel" | "tesseract"
	Confidence float32
	SourcePath string
}

type OCRStage struct {
	SheetsRepo repository.ScoresheetRepository
	JobsRepo   repository.ExtractJobRepository
	Cloud      CloudOCR // optional
	Local      LocalOCR // optional
	Logger     *slog.Logger
}

func NewOCRStage(sheets repository.ScoresheetRepository, jobs repository.ExtractJobRepository, cloud CloudOCR, local LocalOCR, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{SheetsRepo: sheets, JobsRepo: jobs, Cloud: cloud, Local: local, Logger: logger}
}

// Run starts an extract_job, runs whichever provider is available, and
// persists the OCR text. The parse stage is NOT called.
func (p *OCRStage) Run(ctx context.Context, scoresheetID uuid.UUID) (uuid.UUID, OCROutput, error) {
	row, err := p.SheetsRepo.GetByID(ctx, scoresheetID)
	if err != nil {
		return uuid.Nil, OCROutput{}, fmt.Errorf("get scoresheet: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	job, err := p.JobsRepo.Start(ctx, row.ID, format)
	if err != nil {
		return uuid.Nil, OCROutput{}, err
	}

	out, err := p.runProvider(ctx, row.SourcePath, format)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, OCROutput{}, err
	}
	out.SourcePath = row.SourcePath

	text := strings.Join(out.Input.Lines, "\n")
	if err := p.JobsRepo.FinishOCRSuccess(ctx, job.ID, text, out.Provider, out.Confidence); err != nil {
		return job.ID, out, err
	}
	return job.ID, out, nil
}

// runProvider prefers the layout-aware cloud service; the local engine only
// handles images.
func (p *OCRStage) runProvider(ctx context.Context, path, format string) (OCROutput, error) {
	if p.Cloud != nil {
		res, err := p.Cloud.AnalyzeFile(ctx, path)
		if err == nil {
			return OCROutput{
				Input:      extract.Input{Lines: res.Lines, Tokens: res.Tokens},
				Provider:   "docintel",
				Confidence: res.Confidence,
			}, nil
		}
		p.Logger.Warn("cloud ocr failed, trying local fallback", "path", path, "err", err)
	}

	if p.Local != nil && format == constants.IMAGE {
		res, err := p.Local.Extract(ctx, path)
		if err != nil {
			return OCROutput{}, err
		}
		return OCROutput{
			Input:      extract.Input{Lines: res.Lines},
			Provider:   "tesseract",
			Confidence: res.Confidence,
		}, nil
	}

	return OCROutput{}, fmt.Errorf("no ocr provider available for format %s", format)
}
