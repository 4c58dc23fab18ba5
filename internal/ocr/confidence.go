package ocr

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reRunTime = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	reSerial  = regexp.MustCompile(`(?m)^\s*(10|[1-9])\s*$`)
	reRank    = regexp.MustCompile(`\b(2LT|PTE|LCP|CPL|CFC|SGT|LTA|CPT)\b`)
)

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// boost if we see common scoresheet artifacts (run-time-ish, serial
	// numbers, rank prefixes). Each adds a fixed amount.
	score := float32(0.2) // base
	if reRunTime.MatchString(txt) {
		score += 0.2
	}
	if len(reSerial.FindAllString(txt, -1)) >= 3 {
		score += 0.15
	}
	if reRank.MatchString(txt) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns mean word conf in 0..1.
func (e *Extractor) tesseractTSVConfidence(ctx context.Context, path string) (float32, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}
	lines := strings.Split(string(out), "\n")
	// TSV layout: level..height, conf at column 10, recognized text last.
	// The text column must never feed the mean; numeric words (rep counts)
	// would be summed as confidences.
	const confCol = 10
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := strings.TrimSpace(cols[confCol])
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil, nil
	}
	mean := sum / n // 0..100
	return float32(mean / 100.0), nil, nil
}
