package extract

// Layout is a declarative template for the fixed per-record block the printed
// scoresheet produces in OCR reading order: serial line, two header lines,
// then the name, then metric lines. The first record carries one extra tag
// line before its metrics, so it gets its own offsets.
type Layout struct {
	// NameOffset is the name line's offset from the record's serial line.
	NameOffset int
	// FieldOffsets are the offsets of sit-ups, push-ups and run time for
	// records after the first.
	FieldOffsets [3]int
	// FirstFieldOffsets are the same offsets for the sheet's first record.
	FirstFieldOffsets [3]int
}

// DefaultLayout matches the current scoresheet print run.
func DefaultLayout() Layout {
	return Layout{
		NameOffset:        2,
		FieldOffsets:      [3]int{6, 7, 8},
		FirstFieldOffsets: [3]int{7, 8, 9},
	}
}

func (l Layout) offsets(first bool) [3]int {
	if first {
		return l.FirstFieldOffsets
	}
	return l.FieldOffsets
}

// applyLayout reads one record from lines at anchor position pos. Slots that
// fall outside the input, or whose line does not match the slot's shape
// (digits only for counts, M:SS for run time), stay at their zero default.
func applyLayout(cfg Config, lines []string, pos int, first bool) Record {
	var rec Record

	at := func(off int) (string, bool) {
		i := pos + off
		if i < 0 || i >= len(lines) {
			return "", false
		}
		return trimmed(lines[i]), true
	}

	if name, ok := at(cfg.Layout.NameOffset); ok {
		rec.Name = NormalizeName(name, cfg.RankMarkers)
	}

	offs := cfg.Layout.offsets(first)
	if s, ok := at(offs[0]); ok && isDigits(s) {
		rec.SitUpReps = mustAtoi(s)
	}
	if s, ok := at(offs[1]); ok && isDigits(s) {
		rec.PushUpReps = mustAtoi(s)
	}
	if s, ok := at(offs[2]); ok && isRunTimeShaped(s) {
		rec.RunTime = ValidateRunTime(s)
	}
	return rec
}
