package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/gen/ent"
	entsoldier "github.com/kyletan/ippt-tracker/gen/ent/soldierresult"
	"github.com/kyletan/ippt-tracker/internal/entity"
	"github.com/kyletan/ippt-tracker/internal/extract"
	"github.com/kyletan/ippt-tracker/internal/utils"
)

// SaveResultsRequest wraps parameters for persisting one reconciled roster.
type SaveResultsRequest struct {
	ScoresheetID uuid.UUID
	JobID        uuid.UUID
	Records      []extract.Record
}

type SoldierRepository interface {
	SaveResults(ctx context.Context, req *SaveResultsRequest) ([]*entity.SoldierResult, error)
	ListByScoresheet(ctx context.Context, scoresheetID uuid.UUID) ([]*entity.SoldierResult, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.SoldierResult, error)
}

type soldierRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSoldierRepository(client *ent.Client, logger *slog.Logger) SoldierRepository {
	return &soldierRepository{
		client: client,
		logger: logger,
	}
}

// SaveResults replaces any earlier rows for the job so a re-parse is
// idempotent, then inserts the reconciled records in roster order.
func (r *soldierRepository) SaveResults(ctx context.Context, req *SaveResultsRequest) ([]*entity.SoldierResult, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.SoldierResult.Delete().
		Where(entsoldier.JobID(req.JobID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear previous results", "job_id", req.JobID, "error", err)
		return nil, err
	}

	builders := make([]*ent.SoldierResultCreate, len(req.Records))
	for i, rec := range req.Records {
		builders[i] = tx.SoldierResult.Create().
			SetScoresheetID(req.ScoresheetID).
			SetJobID(req.JobID).
			SetName(rec.Name).
			SetSitUpReps(rec.SitUpReps).
			SetPushUpReps(rec.PushUpReps).
			SetRunTime(rec.RunTime).
			SetConfidence(rec.Confidence)
	}
	rows, err := tx.SoldierResult.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to save soldier results", "job_id", req.JobID, "error", err)
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	out := make([]*entity.SoldierResult, len(rows))
	for i, row := range rows {
		out[i] = utils.ToSoldierResult(row)
	}
	r.logger.Info("soldier results saved", "job_id", req.JobID, "rows", len(out))
	return out, nil
}

func (r *soldierRepository) ListByScoresheet(ctx context.Context, scoresheetID uuid.UUID) ([]*entity.SoldierResult, error) {
	rows, err := r.client.SoldierResult.Query().
		Where(entsoldier.ScoresheetID(scoresheetID)).
		Order(entsoldier.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list soldier results", "scoresheet_id", scoresheetID, "error", err)
		return nil, err
	}
	return utils.ToSoldierResults(rows), nil
}

func (r *soldierRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.SoldierResult, error) {
	rows, err := r.client.SoldierResult.Query().
		Where(entsoldier.JobID(jobID)).
		Order(entsoldier.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list soldier results", "job_id", jobID, "error", err)
		return nil, err
	}
	return utils.ToSoldierResults(rows), nil
}
