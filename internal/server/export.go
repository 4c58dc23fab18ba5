package server

import (
	"context"
	"strings"
	"time"

	v1 "github.com/kyletan/ippt-tracker/gen/proto/ippt/v1"
	"github.com/kyletan/ippt-tracker/internal/common"
)

// ExportResults returns an XLSX workbook of soldier results.
//   - only from -> from..today (inclusive)
//   - only to   -> beginning..to (inclusive)
//   - none      -> all sheets.
func (s *ScoresheetService) ExportResults(ctx context.Context, req *v1.ExportResultsRequest) (*v1.ExportResultsResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.exporter.ExportResultsXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError(err.Error())
	}
	return &v1.ExportResultsResponse{Xlsx: xlsx}, nil
}
