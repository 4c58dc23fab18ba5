package extract

import (
	"fmt"
	"strconv"
)

// sheetSoldier is one row of the synthetic scoresheet used across tests.
type sheetSoldier struct {
	name    string // as printed, including rank
	situps  int
	pushups int
	runTime string
}

var sheetRoster = []sheetSoldier{
	{"PTE JOHN TAN", 35, 40, "9:30"},
	{"PTE MARCUS LIM", 42, 38, "10:15"},
	{"CPL WEI JIE NG", 51, 44, "11:02"},
	{"PTE DANIEL LEE", 38, 41, "12:40"},
	{"SGT HAFIZ RAHMAN", 44, 50, "10:48"},
	{"PTE ARJUN NAIR", 36, 37, "13:05"},
	{"LCP RYAN CHUA", 40, 45, "11:55"},
	{"PTE JUN HAO KOH", 47, 52, "9:58"},
	{"2LT SHAWN TEO", 55, 48, "10:05"},
	{"PTE ADAM YUSOF", 39, 36, "12:12"},
}

// sheetLines renders the first n roster rows in the exact line order the
// reference scan produces: serials at offsets 23, 33, 42, ... with the name
// at +2 and metrics at +7..+9 for the first record, +6..+8 afterwards.
func sheetLines(n int) []string {
	lines := make([]string, 0, 23+n*10)
	for i := 0; i < 23; i++ {
		lines = append(lines, fmt.Sprintf("header %d", i))
	}
	for i := 0; i < n; i++ {
		s := sheetRoster[i]
		lines = append(lines,
			strconv.Itoa(i+1),          // serial
			fmt.Sprintf("ID%03d", i+1), // service number
			s.name,                     // +2
			"coy A", "det 1", "x",      // +3..+5
		)
		if i == 0 {
			lines = append(lines, "tag") // extra tag line before record 1's metrics
		}
		lines = append(lines,
			strconv.Itoa(s.situps),
			strconv.Itoa(s.pushups),
			s.runTime,
		)
	}
	return lines
}

func rosterRecord(i int) Record {
	s := sheetRoster[i]
	cfg := Config{}.WithDefaults()
	return Record{
		Name:       NormalizeName(s.name, cfg.RankMarkers),
		SitUpReps:  s.situps,
		PushUpReps: s.pushups,
		RunTime:    s.runTime,
	}
}
