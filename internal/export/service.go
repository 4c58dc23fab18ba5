package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kyletan/ippt-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	sheetsRepo   repository.ScoresheetRepository
	soldiersRepo repository.SoldierRepository
	logger       *slog.Logger
}

func NewService(sheets repository.ScoresheetRepository, soldiers repository.SoldierRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sheetsRepo: sheets, soldiersRepo: soldiers, logger: logger}
}

// ExportResultsXLSX returns an XLSX workbook (as bytes) with one row per
// soldier across every sheet uploaded in the date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all sheets.
func (s *Service) ExportResultsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	sheets, err := s.sheetsRepo.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query scoresheets: %w", err)
	}

	f := excelize.NewFile()
	const sheetName = "Results"
	if index, _ := f.GetSheetIndex(sheetName); index == -1 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Scoresheet",
		"Uploaded",
		"Name",
		"Sit-Ups",
		"Push-Ups",
		"2.4km Run",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	row := 2
	total := 0
	for _, sheet := range sheets {
		soldiers, err := s.soldiersRepo.ListByScoresheet(ctx, sheet.ID)
		if err != nil {
			return nil, fmt.Errorf("query soldiers for %s: %w", sheet.ID, err)
		}
		for _, sr := range soldiers {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheetName, cell, v)
			}
			write(1, sheet.Filename)
			write(2, sheet.UploadedAt.UTC().Format("2006-01-02"))
			write(3, sr.Name)
			write(4, sr.SitUpReps)
			write(5, sr.PushUpReps)
			write(6, sr.RunTime)
			write(7, fmt.Sprintf("%.2f", sr.Confidence))
			row++
			total++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheetName, "A", "A", 32) // sheet filename
	_ = f.SetColWidth(sheetName, "B", "B", 14) // date
	_ = f.SetColWidth(sheetName, "C", "C", 28) // name
	_ = f.SetColWidth(sheetName, "D", "F", 12) // metrics
	_ = f.SetColWidth(sheetName, "G", "G", 12) // confidence

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"sheets", len(sheets),
		"rows", total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
