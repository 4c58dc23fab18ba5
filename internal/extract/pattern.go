package extract

import (
	"strconv"

	"github.com/kyletan/ippt-tracker/constants"
)

// Scan windows, in lines. These bound how far an anchor is allowed to reach
// before it risks claiming a neighbouring record's data.
const (
	identityScanBack    = 5
	identityScanForward = 15
	timeScanBack        = 10
	blockScanSize       = 20
)

// PatternExtractor locates records without fixed offsets. It unions four
// independently-anchored scans: serial lines, rank-marker lines, run-time
// lines, and a sliding block scan as the catch-all.
type PatternExtractor struct {
	cfg Config
}

func NewPatternExtractor(cfg Config) *PatternExtractor {
	return &PatternExtractor{cfg: cfg.WithDefaults()}
}

func (e *PatternExtractor) Name() string { return "pattern" }

func (e *PatternExtractor) Extract(in Input) ([]Record, error) {
	var out []Record
	merge := func(recs []Record) {
		for _, r := range recs {
			if !containsRecord(out, r) {
				out = append(out, r)
			}
		}
	}
	merge(e.serialAnchors(in.Lines))
	merge(e.identityAnchors(in.Lines))
	merge(e.timeAnchors(in.Lines))
	merge(e.blockScan(in.Lines))
	return out, nil
}

// serialAnchors treats any line that is purely a number in [1,MaxRecords] as
// a record start and applies the fixed layout there.
func (e *PatternExtractor) serialAnchors(lines []string) []Record {
	var out []Record
	for i, line := range lines {
		s := trimmed(line)
		if !isDigits(s) {
			continue
		}
		n, _ := strconv.Atoi(s)
		if n < 1 || n > e.cfg.MaxRecords {
			continue
		}
		rec := applyLayout(e.cfg, lines, i, n == 1)
		if rec.Name != "" {
			out = append(out, rec)
		}
	}
	return out
}

// identityAnchors treats any rank-marker line as the name line and scans a
// bounded window around it for the nearest metric and run-time lines.
func (e *PatternExtractor) identityAnchors(lines []string) []Record {
	var out []Record
	for i, line := range lines {
		if !hasMarker(e.cfg, line) {
			continue
		}
		rec := Record{Name: NormalizeName(trimmed(line), e.cfg.RankMarkers)}

		lo := max(0, i-identityScanBack)
		hi := min(len(lines), i+identityScanForward)
		for j := lo; j < hi; j++ {
			if j == i {
				continue
			}
			e.claimLine(&rec, trimmed(lines[j]))
		}
		// An identity with no supporting data is noise, not a record.
		if rec.SitUpReps > 0 || rec.RunTime != "" {
			out = append(out, rec)
		}
	}
	return out
}

// timeAnchors starts from a run-time line and walks backward for the metric
// lines and the identity that precede it on the sheet.
func (e *PatternExtractor) timeAnchors(lines []string) []Record {
	var out []Record
	for i, line := range lines {
		s := trimmed(line)
		if !isRunTimeShaped(s) {
			continue
		}
		rec := Record{RunTime: ValidateRunTime(s)}
		for j := i - 1; j >= max(0, i-timeScanBack); j-- {
			prev := trimmed(lines[j])
			if hasMarker(e.cfg, prev) {
				rec.Name = NormalizeName(prev, e.cfg.RankMarkers)
				break
			}
			e.claimCount(&rec, prev)
		}
		if rec.Name != "" {
			out = append(out, rec)
		}
	}
	return out
}

// blockScan slides a fixed window across the whole input and keeps whatever
// complete-looking record each window yields. Last resort; caps its own
// output so a pathological input cannot flood the union.
func (e *PatternExtractor) blockScan(lines []string) []Record {
	var out []Record
	for start := 0; start+blockScanSize <= len(lines); start++ {
		var rec Record
		for _, raw := range lines[start : start+blockScanSize] {
			s := trimmed(raw)
			if hasMarker(e.cfg, s) || isUpperName(s) {
				rec.Name = NormalizeName(s, e.cfg.RankMarkers)
				continue
			}
			e.claimLine(&rec, s)
		}
		if rec.Name == "" || (rec.SitUpReps == 0 && rec.RunTime == "") {
			continue
		}
		if !containsRecord(out, rec) {
			out = append(out, rec)
		}
		if len(out) >= e.cfg.MaxRecords {
			break
		}
	}
	return out
}

// claimLine assigns s to the first still-empty slot it fits: the narrow
// sit-up band first, then the loose push-up band, then run time.
func (e *PatternExtractor) claimLine(rec *Record, s string) {
	if isRunTimeShaped(s) {
		if rec.RunTime == "" {
			rec.RunTime = ValidateRunTime(s)
		}
		return
	}
	e.claimCount(rec, s)
}

func (e *PatternExtractor) claimCount(rec *Record, s string) {
	if !isDigits(s) {
		return
	}
	n := mustAtoi(s)
	switch {
	case e.cfg.SitupScanRange.Contains(n) && rec.SitUpReps == 0:
		rec.SitUpReps = n
	case n <= e.cfg.PushupScanMax && rec.PushUpReps == 0:
		rec.PushUpReps = n
	}
}

func hasMarker(cfg Config, line string) bool {
	return constants.HasRankMarker(line, cfg.RankMarkers)
}

func containsRecord(recs []Record, r Record) bool {
	for _, have := range recs {
		if have == r {
			return true
		}
	}
	return false
}
