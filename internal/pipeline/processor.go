// Package processor chains the two stages that turn an uploaded scoresheet
// into persisted soldier results: OCR (cloud or local) then parse
// (multi-strategy extraction and reconciliation).
package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor coordinates OCR (text/layout extract) then parse (records).
type Processor struct {
	Logger *slog.Logger
	OCR    *OCRStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Parse: parse}
}

// ProcessScoresheet runs OCR for a scoresheet (creating/advancing
// extract_job), then parses the OCR output into soldier results.
// Returns the jobID started by the OCR stage.
func (p *Processor) ProcessScoresheet(ctx context.Context, scoresheetID uuid.UUID) (uuid.UUID, error) {
	jobID, ocrOut, err := p.OCR.Run(ctx, scoresheetID)
	if err != nil {
		p.Logger.Error("processor.ocr.failed", "scoresheet_id", scoresheetID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.ocr.ok",
		"scoresheet_id", scoresheetID,
		"job_id", jobID,
		"provider", ocrOut.Provider,
		"lines", len(ocrOut.Input.Lines),
		"confidence", ocrOut.Confidence,
	)

	if _, err := p.Parse.Run(ctx, jobID, scoresheetID, ocrOut); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
