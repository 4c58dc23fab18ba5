package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/gen/ent"
	entsheet "github.com/kyletan/ippt-tracker/gen/ent/scoresheet"
)

type ScoresheetRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Scoresheet, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.Scoresheet, error)
	List(ctx context.Context, from, to *time.Time) ([]*ent.Scoresheet, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Scoresheet, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Scoresheet, bool, error)
}

type scoresheetRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewScoresheetRepository(entc *ent.Client, logger *slog.Logger) ScoresheetRepository {
	return &scoresheetRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *scoresheetRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Scoresheet, error) {
	return r.ent.Scoresheet.Get(ctx, id)
}

func (r *scoresheetRepo) GetByHash(ctx context.Context, hash []byte) (*ent.Scoresheet, error) {
	row, err := r.ent.Scoresheet.Query().
		Where(entsheet.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *scoresheetRepo) List(ctx context.Context, from, to *time.Time) ([]*ent.Scoresheet, error) {
	q := r.ent.Scoresheet.Query()
	if from != nil {
		q = q.Where(entsheet.UploadedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entsheet.UploadedAtLTE(*to))
	}
	rows, err := q.Order(entsheet.ByUploadedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list scoresheets", "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *scoresheetRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Scoresheet, error) {
	row, err := r.ent.Scoresheet.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create scoresheet", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *scoresheetRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Scoresheet, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert scoresheet by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
