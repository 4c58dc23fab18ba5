package extract

import "github.com/kyletan/ippt-tracker/constants"

// IntRange is an inclusive numeric window.
type IntRange struct {
	Min int
	Max int
}

// Contains reports whether n falls inside the window.
func (r IntRange) Contains(n int) bool { return n >= r.Min && n <= r.Max }

// Config holds the tunable bounds shared by all strategies and the Reconciler.
// The zero value is usable: missing fields are defaulted by WithDefaults.
type Config struct {
	// MaxRecords caps the reconciled output (the printed sheet has 10 rows).
	MaxRecords int
	// MergeThreshold: when the primary strategies alone yield fewer records,
	// secondary strategies are invoked and merged before finalizing.
	MergeThreshold int

	// Output bounds enforced by IsPlausible.
	SitupRange  IntRange
	PushupRange IntRange

	// Scan bands used only inside pattern disambiguation of bare numbers.
	// SitupScanRange is the narrow band tried first; numbers outside it but
	// under PushupScanMax are treated as push-ups. PushupScanMax is
	// deliberately looser than PushupRange.Max: the bound the source data
	// actually obeys is unresolved, so both are explicit knobs rather than
	// one silently-picked constant.
	SitupScanRange IntRange
	PushupScanMax  int

	// RankMarkers is the token set used to recognize identity lines.
	RankMarkers []string

	// Layout describes the fixed per-record line offsets.
	Layout Layout
}

// WithDefaults fills unset fields with the reference scoresheet values.
func (c Config) WithDefaults() Config {
	if c.MaxRecords <= 0 {
		c.MaxRecords = constants.MaxSoldiersPerSheet
	}
	if c.MergeThreshold <= 0 {
		c.MergeThreshold = 8
	}
	if c.SitupRange.Max <= 0 {
		c.SitupRange = IntRange{Min: 0, Max: 200}
	}
	if c.PushupRange.Max <= 0 {
		c.PushupRange = IntRange{Min: 0, Max: 200}
	}
	if c.SitupScanRange.Max <= 0 {
		c.SitupScanRange = IntRange{Min: 5, Max: 80}
	}
	if c.PushupScanMax <= 0 {
		c.PushupScanMax = 2000
	}
	if len(c.RankMarkers) == 0 {
		c.RankMarkers = constants.DefaultRankMarkers
	}
	if c.Layout.NameOffset == 0 {
		c.Layout = DefaultLayout()
	}
	return c
}

// IsPlausible implements the record retention rule: a usable identity, at
// least one metric present, and both counts inside the output bounds.
func (c Config) IsPlausible(r Record) bool {
	if len([]rune(r.Name)) < 2 {
		return false
	}
	if !r.HasPerformanceData() {
		return false
	}
	if r.SitUpReps > c.SitupRange.Max || r.PushUpReps > c.PushupRange.Max {
		return false
	}
	return true
}
