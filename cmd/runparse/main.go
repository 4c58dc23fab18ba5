package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kyletan/ippt-tracker/internal/extract"
)

// runparse replays the line-based extraction strategies over a saved OCR text
// dump, which is how mis-parsed scoresheets get debugged without re-running
// OCR or touching the database.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		in        = flag.String("in", "", "path to OCR text dump (required)")
		threshold = flag.Int("threshold", 0, "merge threshold override (0 = default)")
		pretty    = flag.Bool("pretty", true, "indent the JSON output")
	)
	flag.Parse()

	if *in == "" {
		logger.Error("usage", "cmd", "runparse --in <ocr-dump.txt>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		logger.Error("read dump", "path", *in, "error", err)
		os.Exit(1)
	}
	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")

	cfg := extract.Config{}.WithDefaults()
	if *threshold > 0 {
		cfg.MergeThreshold = *threshold
	}

	primary := []extract.Strategy{extract.NewPositionalExtractor(cfg, nil)}
	secondary := []extract.Strategy{
		extract.NewSpatialExtractor(cfg),
		extract.NewPatternExtractor(cfg),
	}
	rec := extract.NewReconciler(cfg, primary, secondary, logger)

	start := time.Now()
	result := rec.Reconcile(extract.Input{Lines: lines})
	logger.Info("extraction finished",
		"records", result.Count,
		"success", result.Success,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
