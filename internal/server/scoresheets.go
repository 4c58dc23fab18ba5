// Package server exposes the gRPC surface: upload-and-process, result
// listing, and XLSX export.
package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/kyletan/ippt-tracker/gen/proto/ippt/v1"
	"github.com/kyletan/ippt-tracker/internal/common"
	"github.com/kyletan/ippt-tracker/internal/export"
	"github.com/kyletan/ippt-tracker/internal/ingest"
	processor "github.com/kyletan/ippt-tracker/internal/pipeline"
	"github.com/kyletan/ippt-tracker/internal/repository"
	"github.com/kyletan/ippt-tracker/internal/utils"
)

type ScoresheetService struct {
	v1.UnimplementedScoresheetServiceServer
	ingestor     ingest.Ingestor
	processor    *processor.Processor
	jobsRepo     repository.ExtractJobRepository
	soldiersRepo repository.SoldierRepository
	exporter     *export.Service
	logger       *slog.Logger
}

func NewScoresheetService(
	ing ingest.Ingestor,
	proc *processor.Processor,
	jobs repository.ExtractJobRepository,
	soldiers repository.SoldierRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *ScoresheetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoresheetService{
		ingestor:     ing,
		processor:    proc,
		jobsRepo:     jobs,
		soldiersRepo: soldiers,
		exporter:     exporter,
		logger:       logger,
	}
}

// UploadScoresheet implements v1.ScoresheetServiceServer
func (s *ScoresheetService) UploadScoresheet(ctx context.Context, req *v1.UploadScoresheetRequest) (*v1.UploadScoresheetResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("upload request missing path")
		return nil, common.InvalidArgumentError("path is required")
	}

	s.logger.Info("starting scoresheet upload", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("scoresheet ingest succeeded", "scoresheet_id", r.ScoresheetID, "deduplicated", r.Deduplicated)

	resp := s.toUploadResponse(r)
	s.process(ctx, resp)
	return resp, nil
}

func (s *ScoresheetService) UploadDirectory(ctx context.Context, req *v1.UploadDirectoryRequest) (*v1.UploadDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("upload directory request missing root_path")
		return nil, common.InvalidArgumentError("root_path is required")
	}

	s.logger.Info("starting directory upload", "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory upload completed",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed,
	)

	out := &v1.UploadDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.UploadScoresheetResponse, 0, len(results)),
	}

	for _, r := range results {
		item := s.toUploadResponse(r)
		if r.Err == "" && r.ScoresheetID != "" {
			s.process(ctx, item)
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func (s *ScoresheetService) ListResults(ctx context.Context, req *v1.ListResultsRequest) (*v1.ListResultsResponse, error) {
	sid := strings.TrimSpace(req.GetScoresheetId())
	if sid == "" {
		return nil, common.InvalidArgumentError("scoresheet_id is required")
	}
	scoresheetID, err := uuid.Parse(sid)
	if err != nil {
		return nil, common.InvalidArgumentError("scoresheet_id must be a UUID")
	}

	rows, err := s.soldiersRepo.ListByScoresheet(ctx, scoresheetID)
	if err != nil {
		s.logger.Error("list results failed", "scoresheet_id", sid, "err", err)
		return nil, common.InternalError("list results failed")
	}
	return &v1.ListResultsResponse{Records: utils.ToPBRecords(rows)}, nil
}

// toUploadResponse maps an ingest outcome; processing results are filled in
// by process.
func (s *ScoresheetService) toUploadResponse(r ingest.IngestionResult) *v1.UploadScoresheetResponse {
	return &v1.UploadScoresheetResponse{
		ScoresheetId:   r.ScoresheetID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}

// process runs the pipeline for one ingested sheet and attaches the outcome.
// Pipeline errors are reported per sheet, not as RPC failures.
func (s *ScoresheetService) process(ctx context.Context, resp *v1.UploadScoresheetResponse) {
	scoresheetID, err := uuid.Parse(resp.ScoresheetId)
	if err != nil {
		resp.Error = "invalid scoresheet id"
		return
	}

	s.logger.Info("starting scoresheet processing", "scoresheet_id", resp.ScoresheetId)
	jobID, err := s.processor.ProcessScoresheet(ctx, scoresheetID)
	if jobID != uuid.Nil {
		resp.JobId = jobID.String()
	}
	if err != nil {
		s.logger.Error("pipeline.failed", "scoresheet_id", resp.ScoresheetId, "err", err)
		resp.Error = err.Error()
		return
	}

	if job, err := s.jobsRepo.LatestForScoresheet(ctx, scoresheetID); err == nil {
		resp.NeedsReview = job.NeedsReview
	}
	if rows, err := s.soldiersRepo.ListByJob(ctx, jobID); err == nil {
		resp.Records = utils.ToPBRecords(rows)
	}
}
