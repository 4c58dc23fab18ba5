// Package extract turns noisy OCR output of a scanned IPPT scoresheet into
// validated per-soldier records. Several independent strategies produce
// candidates from the same input; the Reconciler merges them into one
// deduplicated result set. The package is pure: no I/O, no shared state.
package extract

import "github.com/kyletan/ippt-tracker/constants"

// Record is one extracted soldier row, pre-reconciliation.
type Record struct {
	Name       string  `json:"name"`
	SitUpReps  int     `json:"sit_up_reps"`
	PushUpReps int     `json:"push_up_reps"`
	RunTime    string  `json:"run_time"` // "M:SS", empty when absent
	Confidence float32 `json:"confidence,omitempty"`
}

// HasPerformanceData reports whether the record carries at least one metric.
func (r Record) HasPerformanceData() bool {
	return r.SitUpReps > 0 || r.PushUpReps > 0 || r.RunTime != ""
}

// Point is one corner of a token's bounding polygon, in page coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Token is one OCR line together with its layout geometry. Providers that
// only return flat text leave BBox nil.
type Token struct {
	Text string  `json:"text"`
	BBox []Point `json:"bbox,omitempty"`
}

// Input carries whichever views of the OCR output the provider produced.
// Line-based strategies read Lines; the spatial strategy reads Tokens.
type Input struct {
	Lines  []string
	Tokens []Token
}

// Strategy is one independent extraction algorithm. Implementations must be
// pure functions of the input: same Input, same candidates.
type Strategy interface {
	Name() string
	Extract(in Input) ([]Record, error)
}

// Candidates wraps already-extracted records (e.g. from a vision model) so
// they can take part in reconciliation like any other strategy.
func Candidates(name string, recs []Record) Strategy {
	return &staticStrategy{name: name, recs: recs}
}

type staticStrategy struct {
	name string
	recs []Record
}

func (s *staticStrategy) Name() string { return s.name }

func (s *staticStrategy) Extract(Input) ([]Record, error) {
	out := make([]Record, len(s.recs))
	copy(out, s.recs)
	return out, nil
}

// NormalizeName trims whitespace and strips a leading rank marker, producing
// the dedup key used across strategies.
func NormalizeName(raw string, markers []string) string {
	return constants.StripRankPrefix(raw, markers)
}
