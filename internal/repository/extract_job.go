package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/constants"
	"github.com/kyletan/ippt-tracker/gen/ent"
	entjob "github.com/kyletan/ippt-tracker/gen/ent/extractjob"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, scoresheetID uuid.UUID, format string) (*ent.ExtractJob, error)
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, provider string, confidence float32) error
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extracted json.RawMessage, modelName string, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	LatestForScoresheet(ctx context.Context, scoresheetID uuid.UUID) (*ent.ExtractJob, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, scoresheetID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetScoresheetID(scoresheetID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "scoresheet_id", scoresheetID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "scoresheet_id", scoresheetID, "format", format)
	return job, nil
}

func (r *extractJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, provider string, confidence float32) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetOcrProvider(provider).
		SetOcrConfidence(confidence).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job ocr done", "job_id", jobID, "provider", provider, "confidence", confidence)
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extracted json.RawMessage, modelName string, needsReview bool) error {
	builder := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetExtractedJSON(extracted).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseOK))
	if modelName != "" {
		builder = builder.SetModelName(modelName)
	}
	if _, err := builder.Save(ctx); err != nil {
		r.log.Error("extract_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSE_OK)", "job_id", jobID, "needs_review", needsReview)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) LatestForScoresheet(ctx context.Context, scoresheetID uuid.UUID) (*ent.ExtractJob, error) {
	return r.ent.ExtractJob.Query().
		Where(entjob.ScoresheetID(scoresheetID)).
		Order(entjob.ByStartedAt(entsql.OrderDesc())).
		First(ctx)
}
