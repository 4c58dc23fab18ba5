package extract

// Anchor pins a record's serial line inside the OCR line stream.
type Anchor struct {
	Offset int // line index of the serial number
	Index  int // 1-based record index on the sheet
}

// DefaultAnchors are the serial positions the reference scoresheet produces
// when Azure reads it top to bottom. They only hold when the scan is clean;
// the pattern strategies cover everything else.
func DefaultAnchors() []Anchor {
	return []Anchor{
		{23, 1}, {33, 2}, {42, 3}, {51, 4}, {60, 5},
		{69, 6}, {78, 7}, {87, 8}, {96, 9}, {105, 10},
	}
}

// PositionalExtractor reads records from known fixed line offsets. It is the
// most precise strategy on well-aligned scans and useless on anything else,
// which is exactly the trade the reconciler's priority order expects.
type PositionalExtractor struct {
	cfg     Config
	anchors []Anchor
}

// NewPositionalExtractor builds the fixed-layout strategy. Nil anchors fall
// back to the reference sheet positions.
func NewPositionalExtractor(cfg Config, anchors []Anchor) *PositionalExtractor {
	if anchors == nil {
		anchors = DefaultAnchors()
	}
	return &PositionalExtractor{cfg: cfg.WithDefaults(), anchors: anchors}
}

func (e *PositionalExtractor) Name() string { return "positional" }

// Extract reads one candidate per anchor. Malformed anchors and out-of-range
// offsets degrade to partial or dropped records, never to an error.
func (e *PositionalExtractor) Extract(in Input) ([]Record, error) {
	var out []Record
	for _, a := range e.anchors {
		if a.Index < 1 || a.Index > e.cfg.MaxRecords || a.Offset < 0 || a.Offset >= len(in.Lines) {
			continue
		}
		rec := applyLayout(e.cfg, in.Lines, a.Offset, a.Index == 1)
		if rec.Name == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
