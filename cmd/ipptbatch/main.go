package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/internal/common"
	"github.com/kyletan/ippt-tracker/internal/docintel"
	"github.com/kyletan/ippt-tracker/internal/export"
	"github.com/kyletan/ippt-tracker/internal/ingest"
	"github.com/kyletan/ippt-tracker/internal/llm"
	"github.com/kyletan/ippt-tracker/internal/llm/openai"
	"github.com/kyletan/ippt-tracker/internal/ocr"
	processor "github.com/kyletan/ippt-tracker/internal/pipeline"
	repo "github.com/kyletan/ippt-tracker/internal/repository"
	"github.com/kyletan/ippt-tracker/internal/server"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory of scoresheet scans to process (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "ippt-results.xlsx")
	}

	// Parse date filters
	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.SQLitePath = ":memory:"
		cfg.Database.DSN = ""
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	// Wire repositories
	sheetsRepo := repo.NewScoresheetRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	soldiersRepo := repo.NewSoldierRepository(entc, logger)

	// OCR providers
	var cloud processor.CloudOCR
	if cfg.OCR.DocintelEndpoint != "" {
		cloud = docintel.NewClient(docintel.Config{
			Endpoint: cfg.OCR.DocintelEndpoint,
			APIKey:   cfg.OCR.DocintelKey,
			ModelID:  cfg.OCR.DocintelModel,
		}, logger)
	}
	local := ocr.NewExtractor(ocr.Config{
		TessdataDir:         cfg.OCR.TessdataDir,
		PSM:                 cfg.OCR.TesseractPSM,
		EnableTSVConfidence: true,
	}, logger)

	// Vision client (graceful if missing)
	var extractor llm.SoldierExtractor
	if cfg.LLM.APIKey != "" {
		extractor = openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
			MaxSoldiers: cfg.Parse.MaxSoldiers,
		}, logger)
		logger.Info("vision client initialized", "model", cfg.LLM.Model)
	} else {
		logger.Warn("OpenAI API key not configured, vision fallback will be skipped")
	}

	ocrStage := processor.NewOCRStage(sheetsRepo, jobsRepo, cloud, local, logger)
	parseCfg := processor.Config{
		MinConfidence: cfg.Parse.MinConfidence,
		ModelName:     cfg.LLM.Model,
	}
	parseCfg.Extract.MaxRecords = cfg.Parse.MaxSoldiers
	parseStage := processor.NewParseStage(logger, parseCfg, jobsRepo, soldiersRepo, extractor)
	proc := processor.NewProcessor(logger, ocrStage, parseStage)

	ingestor := ingest.NewFSIngestor(sheetsRepo, logger)

	// Ingest directory
	logger.Info("starting ingestion", "dir", *dir)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, result := range ingestionResults {
		if result.Err == "" {
			sheetID, err := uuid.Parse(result.ScoresheetID)
			if err != nil {
				logger.Error("failed to parse scoresheet ID", "scoresheet_id", result.ScoresheetID, "error", err)
				continue
			}
			ingested = append(ingested, sheetID)
		}
	}
	logger.Info("ingestion complete",
		"sheets_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	// Process each ingested scoresheet
	processed := 0
	failures := 0

	for _, sheetID := range ingested {
		logger.Info("processing scoresheet", "scoresheet_id", sheetID)
		_, err := proc.ProcessScoresheet(ctx, sheetID)
		if err != nil {
			logger.Error("failed to process scoresheet", "scoresheet_id", sheetID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	// Export to XLSX
	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(sheetsRepo, soldiersRepo, logger)

	xlsxBytes, err := exportService.ExportResultsXLSX(ctx, from, to)
	if err != nil {
		logger.Error("failed to export results", "error", err)
		os.Exit(1)
	}

	err = os.WriteFile(*out, xlsxBytes, 0644)
	if err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"sheets_ingested", len(ingested),
		"sheets_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Sheets ingested: %d\n", len(ingested))
	fmt.Printf("- Sheets processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
