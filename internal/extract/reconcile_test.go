package extract

import (
	"errors"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

// spyStrategy records whether it ran and returns canned candidates.
type spyStrategy struct {
	name   string
	recs   []Record
	err    error
	panics bool
	calls  int
}

func (s *spyStrategy) Name() string { return s.name }

func (s *spyStrategy) Extract(Input) ([]Record, error) {
	s.calls++
	if s.panics {
		panic("boom")
	}
	return s.recs, s.err
}

func quiet() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestReconcilerEndToEnd(t *testing.T) {
	cfg := Config{}
	r := NewReconciler(cfg,
		[]Strategy{NewPositionalExtractor(cfg, nil), NewSpatialExtractor(cfg)},
		[]Strategy{NewPatternExtractor(cfg)},
		quiet())

	res := r.Reconcile(Input{Lines: sheetLines(10)})
	require.True(t, res.Success)
	require.Equal(t, 10, res.Count)
	require.Len(t, res.Records, 10)
	for i, rec := range res.Records {
		require.Equal(t, rosterRecord(i), rec)
	}
}

func TestReconcilerDedupKeepsHigherPriority(t *testing.T) {
	primary := &spyStrategy{name: "a", recs: []Record{
		{Name: "JOHN TAN", SitUpReps: 35, PushUpReps: 40, RunTime: "9:30"},
	}}
	secondary := &spyStrategy{name: "b", recs: []Record{
		{Name: "JOHN TAN", SitUpReps: 38, PushUpReps: 40, RunTime: "9:30"},
		{Name: "MARCUS LIM", SitUpReps: 42},
	}}
	r := NewReconciler(Config{}, []Strategy{primary}, []Strategy{secondary}, quiet())

	res := r.Reconcile(Input{})
	require.Equal(t, 2, res.Count)
	// The lower-priority duplicate is dropped whole, not merged field-wise.
	require.Equal(t, 35, res.Records[0].SitUpReps)
	require.Equal(t, "MARCUS LIM", res.Records[1].Name)
}

func TestReconcilerNormalizesBeforeDedup(t *testing.T) {
	primary := &spyStrategy{name: "a", recs: []Record{
		{Name: "PTE JOHN TAN", SitUpReps: 35},
	}}
	secondary := &spyStrategy{name: "b", recs: []Record{
		{Name: "JOHN TAN", SitUpReps: 38},
	}}
	r := NewReconciler(Config{}, []Strategy{primary}, []Strategy{secondary}, quiet())

	res := r.Reconcile(Input{})
	require.Equal(t, 1, res.Count)
	require.Equal(t, "JOHN TAN", res.Records[0].Name)
	require.Equal(t, 35, res.Records[0].SitUpReps)
}

func TestReconcilerCapsOutput(t *testing.T) {
	var recs []Record
	for _, s := range sheetRoster {
		recs = append(recs, Record{Name: s.name, SitUpReps: s.situps})
	}
	recs = append(recs,
		Record{Name: "EXTRA ONE", SitUpReps: 30},
		Record{Name: "EXTRA TWO", SitUpReps: 31},
	)
	r := NewReconciler(Config{}, []Strategy{Candidates("all", recs)}, nil, quiet())

	res := r.Reconcile(Input{})
	require.Equal(t, 10, res.Count)
	require.Len(t, res.Records, 10)
}

func TestReconcilerSecondaryOnlyBelowThreshold(t *testing.T) {
	full := make([]Record, 8)
	for i := range full {
		full[i] = Record{Name: sheetRoster[i].name, SitUpReps: sheetRoster[i].situps}
	}
	secondary := &spyStrategy{name: "fallback", recs: []Record{{Name: "EXTRA ONE", SitUpReps: 30}}}

	r := NewReconciler(Config{}, []Strategy{Candidates("primary", full)}, []Strategy{secondary}, quiet())
	res := r.Reconcile(Input{})
	require.Equal(t, 8, res.Count)
	require.Zero(t, secondary.calls, "secondary must not run at or above the threshold")

	secondary.calls = 0
	r = NewReconciler(Config{}, []Strategy{Candidates("primary", full[:3])}, []Strategy{secondary}, quiet())
	res = r.Reconcile(Input{})
	require.Equal(t, 4, res.Count)
	require.Equal(t, 1, secondary.calls)
}

func TestReconcilerDropsImplausible(t *testing.T) {
	r := NewReconciler(Config{}, []Strategy{Candidates("all", []Record{
		{Name: "JOHN TAN", SitUpReps: 35},
		{Name: "X", SitUpReps: 35},            // name too short
		{Name: "MARCUS LIM"},                  // no data
		{Name: "WEI JIE NG", PushUpReps: 999}, // over output bound
	})}, nil, quiet())

	res := r.Reconcile(Input{})
	require.Equal(t, 1, res.Count)
	require.Equal(t, "JOHN TAN", res.Records[0].Name)
}

func TestReconcilerContainsFailures(t *testing.T) {
	failing := &spyStrategy{name: "bad", err: errors.New("malformed input shape")}
	panicking := &spyStrategy{name: "worse", panics: true}
	ok := &spyStrategy{name: "ok", recs: []Record{{Name: "JOHN TAN", SitUpReps: 35}}}

	r := NewReconciler(Config{}, []Strategy{failing, panicking, ok}, nil, quiet())
	res := r.Reconcile(Input{})
	require.True(t, res.Success)
	require.Equal(t, 1, res.Count)
}

func TestReconcilerEmptyResult(t *testing.T) {
	r := NewReconciler(Config{}, []Strategy{&spyStrategy{name: "a"}}, []Strategy{&spyStrategy{name: "b"}}, quiet())

	res := r.Reconcile(Input{})
	require.False(t, res.Success)
	require.Zero(t, res.Count)
	require.NotNil(t, res.Records)
	require.Empty(t, res.Records)
}

func TestReconcilerIdempotent(t *testing.T) {
	cfg := Config{}
	r := NewReconciler(cfg,
		[]Strategy{NewPositionalExtractor(cfg, nil)},
		[]Strategy{NewPatternExtractor(cfg)},
		quiet())

	in := Input{Lines: sheetLines(4)}
	first := r.Reconcile(in)
	second := r.Reconcile(in)
	require.Equal(t, first, second)
}

// The output invariants hold for arbitrary garbage input, not just clean sheets.
func TestReconcilerOutputInvariants(t *testing.T) {
	cfg := Config{}
	r := NewReconciler(cfg,
		[]Strategy{NewPositionalExtractor(cfg, nil), NewSpatialExtractor(cfg)},
		[]Strategy{NewPatternExtractor(cfg)},
		quiet())

	inputs := []Input{
		{},
		{Lines: []string{"PTE", "x", "1", "9:30"}},
		{Lines: sheetLines(10)},
		{Lines: append(sheetLines(10), sheetLines(10)...)},
		{Tokens: toks("1", "PTE JOHN TAN", "2000", "9:30")},
	}
	timeShape := regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	for _, in := range inputs {
		res := r.Reconcile(in)
		require.LessOrEqual(t, len(res.Records), 10)
		seen := map[string]bool{}
		for _, rec := range res.Records {
			require.False(t, seen[rec.Name], "duplicate identity %q", rec.Name)
			seen[rec.Name] = true
			require.GreaterOrEqual(t, rec.SitUpReps, 0)
			require.LessOrEqual(t, rec.SitUpReps, 200)
			require.GreaterOrEqual(t, rec.PushUpReps, 0)
			require.LessOrEqual(t, rec.PushUpReps, 200)
			if rec.RunTime != "" {
				require.Regexp(t, timeShape, rec.RunTime)
			}
		}
	}
}
