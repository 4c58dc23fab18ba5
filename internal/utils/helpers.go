package utils

import (
	"time"

	"github.com/kyletan/ippt-tracker/gen/ent"
	ipptv1 "github.com/kyletan/ippt-tracker/gen/proto/ippt/v1"
	"github.com/kyletan/ippt-tracker/internal/entity"
)

func ToSoldierResult(row *ent.SoldierResult) *entity.SoldierResult {
	return &entity.SoldierResult{
		ID:           row.ID,
		ScoresheetID: row.ScoresheetID,
		JobID:        row.JobID,
		Name:         row.Name,
		SitUpReps:    row.SitUpReps,
		PushUpReps:   row.PushUpReps,
		RunTime:      row.RunTime,
		Confidence:   row.Confidence,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func ToSoldierResults(rows []*ent.SoldierResult) []*entity.SoldierResult {
	out := make([]*entity.SoldierResult, len(rows))
	for i, row := range rows {
		out[i] = ToSoldierResult(row)
	}
	return out
}

func ToScoresheet(row *ent.Scoresheet) *entity.Scoresheet {
	return &entity.Scoresheet{
		ID:          row.ID,
		SourcePath:  row.SourcePath,
		ContentHash: row.ContentHash,
		Filename:    row.Filename,
		FileExt:     row.FileExt,
		FileSize:    row.FileSize,
		UploadedAt:  row.UploadedAt,
	}
}

func ToPBRecord(r *entity.SoldierResult) *ipptv1.SoldierRecord {
	return &ipptv1.SoldierRecord{
		Id:           r.ID.String(),
		ScoresheetId: r.ScoresheetID.String(),
		Name:         r.Name,
		SitUpReps:    int32(r.SitUpReps),
		PushUpReps:   int32(r.PushUpReps),
		RunTime:      r.RunTime,
		Confidence:   r.Confidence,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBRecords(rs []*entity.SoldierResult) []*ipptv1.SoldierRecord {
	out := make([]*ipptv1.SoldierRecord, len(rs))
	for i, r := range rs {
		out[i] = ToPBRecord(r)
	}
	return out
}
