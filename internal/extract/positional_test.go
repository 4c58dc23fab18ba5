package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionalExtractorFullSheet(t *testing.T) {
	e := NewPositionalExtractor(Config{}, nil)

	recs, err := e.Extract(Input{Lines: sheetLines(10)})
	require.NoError(t, err)
	require.Len(t, recs, 10)
	for i, rec := range recs {
		require.Equal(t, rosterRecord(i), rec, "record %d", i+1)
	}
}

// The first record's metrics sit one line lower than everyone else's because
// of the tag line the form prints before row 1.
func TestPositionalExtractorFirstRecordWindow(t *testing.T) {
	lines := []string{"1", "ID001", "PTE JOHN TAN", "x", "x", "x", "x", "35", "40", "9:30"}
	e := NewPositionalExtractor(Config{}, []Anchor{{Offset: 0, Index: 1}})

	recs, err := e.Extract(Input{Lines: lines})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, Record{Name: "JOHN TAN", SitUpReps: 35, PushUpReps: 40, RunTime: "9:30"}, recs[0])
}

func TestPositionalExtractorLaterRecordWindow(t *testing.T) {
	lines := []string{"2", "ID002", "CPL WEI JIE NG", "x", "x", "x", "51", "44", "11:02"}
	e := NewPositionalExtractor(Config{}, []Anchor{{Offset: 0, Index: 2}})

	recs, err := e.Extract(Input{Lines: lines})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, Record{Name: "WEI JIE NG", SitUpReps: 51, PushUpReps: 44, RunTime: "11:02"}, recs[0])
}

// Non-matching slot content stays at the field default instead of failing.
func TestPositionalExtractorMalformedSlots(t *testing.T) {
	lines := []string{"1", "ID001", "PTE JOHN TAN", "x", "x", "x", "x", "abc", "40", "not a time"}
	e := NewPositionalExtractor(Config{}, []Anchor{{Offset: 0, Index: 1}})

	recs, err := e.Extract(Input{Lines: lines})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, Record{Name: "JOHN TAN", SitUpReps: 0, PushUpReps: 40, RunTime: ""}, recs[0])
}

func TestPositionalExtractorTruncatedInput(t *testing.T) {
	// Name line exists but every metric offset is past the end.
	lines := []string{"1", "ID001", "PTE JOHN TAN"}
	e := NewPositionalExtractor(Config{}, []Anchor{{Offset: 0, Index: 1}})

	recs, err := e.Extract(Input{Lines: lines})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, Record{Name: "JOHN TAN"}, recs[0])
}

func TestPositionalExtractorBadAnchors(t *testing.T) {
	lines := sheetLines(2)
	e := NewPositionalExtractor(Config{}, []Anchor{
		{Offset: -4, Index: 1},    // negative offset
		{Offset: 9999, Index: 2},  // past the input
		{Offset: 23, Index: 0},    // index below range
		{Offset: 23, Index: 11},   // index above cap
		{Offset: 33, Index: 2},    // the only valid one
	})

	recs, err := e.Extract(Input{Lines: lines})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, rosterRecord(1), recs[0])
}

// Anchors whose name slot is empty or missing yield no record at all.
func TestPositionalExtractorEmptyNameDropped(t *testing.T) {
	lines := []string{"1", "ID001", "   ", "x", "x", "x", "x", "35", "40", "9:30"}
	e := NewPositionalExtractor(Config{}, []Anchor{{Offset: 0, Index: 1}})

	recs, err := e.Extract(Input{Lines: lines})
	require.NoError(t, err)
	require.Empty(t, recs)
}
