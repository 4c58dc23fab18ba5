package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func toks(texts ...string) []Token {
	out := make([]Token, len(texts))
	for i, s := range texts {
		// Synthetic boxes: one row per token, reading order top to bottom.
		y := float64(i)
		out[i] = Token{Text: s, BBox: []Point{{0, y}, {10, y}, {10, y + 1}, {0, y + 1}}}
	}
	return out
}

func TestSpatialExtractorSingleRecord(t *testing.T) {
	e := NewSpatialExtractor(Config{})

	in := Input{Tokens: toks("1", "ID001", "PTE JOHN TAN", "coy A", "35", "40", "9:30")}
	recs, err := e.Extract(in)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, Record{Name: "JOHN TAN", SitUpReps: 35, PushUpReps: 40, RunTime: "9:30"}, recs[0])
}

// The scan claims the longer of two name-shaped tokens, since OCR splits
// names across tokens.
func TestSpatialExtractorPrefersLongerName(t *testing.T) {
	e := NewSpatialExtractor(Config{})

	in := Input{Tokens: toks("1", "TANG", "PTE JOHN TAN WEI", "35", "9:30")}
	recs, err := e.Extract(in)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "JOHN TAN WEI", recs[0].Name)
}

func TestSpatialExtractorStopsAtNextSerial(t *testing.T) {
	e := NewSpatialExtractor(Config{})

	in := Input{Tokens: toks(
		"1", "PTE JOHN TAN", "35", "40", "9:30",
		"2", "PTE MARCUS LIM", "42", "38", "10:15",
	)}
	recs, err := e.Extract(in)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, Record{Name: "JOHN TAN", SitUpReps: 35, PushUpReps: 40, RunTime: "9:30"}, recs[0])
	require.Equal(t, Record{Name: "MARCUS LIM", SitUpReps: 42, PushUpReps: 38, RunTime: "10:15"}, recs[1])
}

// Tokens without geometry still work: matching never reads the boxes.
func TestSpatialExtractorNoGeometry(t *testing.T) {
	e := NewSpatialExtractor(Config{})

	in := Input{Tokens: []Token{
		{Text: "3"}, {Text: "SGT HAFIZ RAHMAN"}, {Text: "44"}, {Text: "50"}, {Text: "10:48"},
	}}
	recs, err := e.Extract(in)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "HAFIZ RAHMAN", recs[0].Name)
}

func TestSpatialExtractorNoTokens(t *testing.T) {
	e := NewSpatialExtractor(Config{})

	recs, err := e.Extract(Input{Lines: sheetLines(2)})
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestSpatialExtractorSerialWithoutName(t *testing.T) {
	e := NewSpatialExtractor(Config{})

	in := Input{Tokens: toks("4", "35", "40", "9:30")}
	recs, err := e.Extract(in)
	require.NoError(t, err)
	require.Empty(t, recs)
}
