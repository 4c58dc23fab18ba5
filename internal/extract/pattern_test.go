package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatternSerialAnchors(t *testing.T) {
	e := NewPatternExtractor(Config{})

	recs := e.serialAnchors(sheetLines(3))
	require.Len(t, recs, 3)
	for i, rec := range recs {
		require.Equal(t, rosterRecord(i), rec)
	}
}

// Numbers outside the narrow sit-up band land in the loose push-up slot; the
// band is retried for later lines so order of appearance decides nothing
// beyond first-fit.
func TestPatternIdentityAnchorBands(t *testing.T) {
	e := NewPatternExtractor(Config{})

	lines := []string{"PTE JOHN TAN", "183", "35", "40", "9:30"}
	recs := e.identityAnchors(lines)
	require.Len(t, recs, 1)
	require.Equal(t, Record{Name: "JOHN TAN", SitUpReps: 35, PushUpReps: 183, RunTime: "9:30"}, recs[0])
}

func TestPatternIdentityAnchorNeedsData(t *testing.T) {
	e := NewPatternExtractor(Config{})

	// A rank marker with nothing claimable nearby is noise, not a record.
	recs := e.identityAnchors([]string{"x", "PTE JOHN TAN", "x", "x"})
	require.Empty(t, recs)
}

func TestPatternTimeAnchorWalksBackward(t *testing.T) {
	e := NewPatternExtractor(Config{})

	lines := []string{"PTE JOHN TAN", "35", "40", "9:30"}
	recs := e.timeAnchors(lines)
	require.Len(t, recs, 1)
	// Nearest preceding number is claimed first, so 40 takes the sit-up slot.
	require.Equal(t, Record{Name: "JOHN TAN", SitUpReps: 40, PushUpReps: 35, RunTime: "9:30"}, recs[0])
}

func TestPatternTimeAnchorNoIdentity(t *testing.T) {
	e := NewPatternExtractor(Config{})

	recs := e.timeAnchors([]string{"35", "40", "9:30"})
	require.Empty(t, recs)
}

func TestPatternBlockScan(t *testing.T) {
	e := NewPatternExtractor(Config{})

	var lines []string
	for i := 0; i < 16; i++ {
		lines = append(lines, "x")
	}
	lines = append(lines, "PTE JOHN TAN", "35", "40", "9:30")
	// Pad so several windows see the same complete block.
	lines = append(lines, "x", "x", "x", "x")

	recs := e.blockScan(lines)
	require.Len(t, recs, 1)
	require.Equal(t, Record{Name: "JOHN TAN", SitUpReps: 35, PushUpReps: 40, RunTime: "9:30"}, recs[0])
}

func TestPatternBlockScanSelfCap(t *testing.T) {
	e := NewPatternExtractor(Config{})

	var lines []string
	for i := 0; i < 12; i++ {
		lines = append(lines, fmt.Sprintf("PTE SOLDIER %02d", i), "35", "40", "9:30")
		for j := 0; j < 16; j++ {
			lines = append(lines, "x")
		}
	}

	recs := e.blockScan(lines)
	require.Len(t, recs, 10)
}

func TestPatternExtractUnion(t *testing.T) {
	e := NewPatternExtractor(Config{})

	recs, err := e.Extract(Input{Lines: sheetLines(10)})
	require.NoError(t, err)

	// Serial anchors run first, so the union leads with the clean records.
	require.GreaterOrEqual(t, len(recs), 10)
	for i := 0; i < 10; i++ {
		require.Equal(t, rosterRecord(i), recs[i])
	}

	// Union is by structural equality: no exact duplicates survive.
	for i := range recs {
		for j := i + 1; j < len(recs); j++ {
			require.NotEqual(t, recs[i], recs[j])
		}
	}
}
