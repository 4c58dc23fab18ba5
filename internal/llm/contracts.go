package llm

import (
	"context"

	"github.com/kyletan/ippt-tracker/internal/extract"
)

// SoldierFields is the normalized per-row shape we want from the model.
type SoldierFields struct {
	Name       string  `json:"name"`
	SitUpReps  int     `json:"sit_up_reps"`
	PushUpReps int     `json:"push_up_reps"`
	RunTime    string  `json:"run_time,omitempty"`   // M:SS
	Confidence float32 `json:"confidence,omitempty"` // model's own estimate, 0..1
}

// CountBounds carries the configured rep-count ranges into schema building
// and response sanitization, so one knob governs every parse path.
type CountBounds struct {
	SitUp  extract.IntRange
	PushUp extract.IntRange
}

// orDefault fills unset ranges with the standard 0..200 window.
func (b CountBounds) orDefault() CountBounds {
	def := extract.IntRange{Min: 0, Max: 200}
	if b.SitUp.Max <= 0 {
		b.SitUp = def
	}
	if b.PushUp.Max <= 0 {
		b.PushUp = def
	}
	return b
}

type ExtractRequest struct {
	ImagePath    string // scoresheet scan on disk; attached when readable
	OCRText      string // provider text, used when no image is attached
	FilenameHint string
	MaxSoldiers  int         // rows on the form; bounds the schema's array
	Counts       CountBounds // rep-count ranges for schema and sanitization
}

// SoldierExtractor is the interface the parse stage depends on.
type SoldierExtractor interface {
	ExtractSoldiers(ctx context.Context, req ExtractRequest) ([]SoldierFields, []byte /*rawJSON*/, error)
}
