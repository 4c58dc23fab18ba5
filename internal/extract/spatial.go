package extract

import "strconv"

// tokenScanForward bounds how many tokens past a serial anchor may be claimed
// before the scan assumes it has wandered into the next record.
const tokenScanForward = 20

// SpatialExtractor runs the serial-anchor scan over positioned tokens instead
// of flat lines, for providers that expose layout geometry. The bounding
// boxes ride along on each token but matching still follows linear scan
// order; geometry-aware column disambiguation is a known gap.
type SpatialExtractor struct {
	cfg Config
}

func NewSpatialExtractor(cfg Config) *SpatialExtractor {
	return &SpatialExtractor{cfg: cfg.WithDefaults()}
}

func (e *SpatialExtractor) Name() string { return "spatial" }

func (e *SpatialExtractor) Extract(in Input) ([]Record, error) {
	var out []Record
	for i, tok := range in.Tokens {
		s := trimmed(tok.Text)
		if !isDigits(s) {
			continue
		}
		n, _ := strconv.Atoi(s)
		if n < 1 || n > e.cfg.MaxRecords {
			continue
		}
		rec := e.scanFromSerial(in.Tokens, i)
		if rec.Name != "" {
			out = append(out, rec)
		}
	}
	return out, nil
}

// scanFromSerial claims name, metric and run-time tokens following a serial
// anchor, stopping at the next serial number.
func (e *SpatialExtractor) scanFromSerial(tokens []Token, serialIdx int) Record {
	var rec Record
	hi := min(len(tokens), serialIdx+1+tokenScanForward)
	for i := serialIdx + 1; i < hi; i++ {
		s := trimmed(tokens[i].Text)
		if isDigits(s) {
			if n := mustAtoi(s); n >= 1 && n <= e.cfg.MaxRecords {
				break // next record's serial
			}
			e.claimCount(&rec, s)
			continue
		}
		if isRunTimeShaped(s) {
			if rec.RunTime == "" {
				rec.RunTime = ValidateRunTime(s)
			}
			continue
		}
		if hasMarker(e.cfg, s) || isUpperName(s) {
			// OCR sometimes splits a name across tokens; prefer the longer one.
			name := NormalizeName(s, e.cfg.RankMarkers)
			if len(name) > len(rec.Name) {
				rec.Name = name
			}
		}
	}
	return rec
}

func (e *SpatialExtractor) claimCount(rec *Record, s string) {
	n := mustAtoi(s)
	switch {
	case e.cfg.SitupScanRange.Contains(n) && rec.SitUpReps == 0:
		rec.SitUpReps = n
	case n <= e.cfg.PushupScanMax && rec.PushUpReps == 0:
		rec.PushUpReps = n
	}
}
