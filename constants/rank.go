package constants

import "strings"

// Rank is a recognized SAF rank abbreviation as printed on scoresheets.
type Rank string

const (
	RankPTE Rank = "PTE"
	RankLCP Rank = "LCP"
	RankCPL Rank = "CPL"
	RankCFC Rank = "CFC"
	RankSGT Rank = "SGT"
	Rank2LT Rank = "2LT"
	RankLTA Rank = "LTA"
	RankCPT Rank = "CPT"
)

// DefaultRankMarkers is the marker set used to recognize identity lines.
// Order matters for prefix stripping: longer markers first so "2LT" wins over "LT".
var DefaultRankMarkers = []string{"2LT", "PTE", "LCP", "CPL", "CFC", "SGT", "LTA", "CPT"}

// MaxSoldiersPerSheet is the number of rows on the printed IPPT scoresheet.
const MaxSoldiersPerSheet = 10

// HasRankMarker reports whether line contains any of the given markers
// (uppercased comparison, whole-token not required since OCR glues tokens).
func HasRankMarker(line string, markers []string) bool {
	up := strings.ToUpper(line)
	for _, m := range markers {
		if strings.Contains(up, m) {
			return true
		}
	}
	return false
}

// StripRankPrefix removes rank markers and surrounding whitespace from a name
// line. "PTE JOHN TAN" -> "JOHN TAN". Markers embedded mid-name are left alone.
func StripRankPrefix(line string, markers []string) string {
	s := strings.TrimSpace(line)
	for _, m := range markers {
		up := strings.ToUpper(s)
		if strings.HasPrefix(up, m) {
			s = strings.TrimSpace(s[len(m):])
		}
	}
	return s
}
