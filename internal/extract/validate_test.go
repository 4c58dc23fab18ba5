package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		min  int
		max  int
		want int
	}{
		{"plain number", "42", 0, 200, 42},
		{"whitespace", "  17 ", 0, 200, 17},
		{"unparseable falls to min", "abc", 0, 200, 0},
		{"empty falls to min", "", 0, 200, 0},
		{"clamped to max", "9999", 0, 200, 200},
		{"clamped to min", "-5", 0, 200, 0},
		{"custom floor", "2", 5, 80, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValidateCount(tt.raw, tt.min, tt.max))
		})
	}
}

func TestValidateRunTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"exact", "9:30", "9:30"},
		{"two digit minutes", "12:45", "12:45"},
		{"embedded in noise", "Run: 11:05 (2.4km)", "11:05"},
		{"leading zero minute kept numeric", "09:30", "9:30"},
		{"minutes over bound", "31:00", ""},
		{"seconds over bound", "10:60", ""},
		{"single digit seconds not a time", "9:5", ""},
		{"no time at all", "forty", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValidateRunTime(tt.raw))
		})
	}
}

// Already-normalized times must round-trip unchanged.
func TestValidateRunTimeIdempotent(t *testing.T) {
	for _, s := range []string{"0:00", "9:30", "9:05", "12:45", "30:59"} {
		require.Equal(t, s, ValidateRunTime(s))
		require.Equal(t, s, ValidateRunTime(ValidateRunTime(s)))
	}
}

func TestIsPlausible(t *testing.T) {
	cfg := Config{}.WithDefaults()

	tests := []struct {
		name string
		rec  Record
		want bool
	}{
		{"full record", Record{Name: "JOHN TAN", SitUpReps: 35, PushUpReps: 40, RunTime: "9:30"}, true},
		{"run time only", Record{Name: "JOHN TAN", RunTime: "9:30"}, true},
		{"single metric", Record{Name: "JOHN TAN", PushUpReps: 12}, true},
		{"no data", Record{Name: "JOHN TAN"}, false},
		{"empty name", Record{SitUpReps: 35}, false},
		{"one rune name", Record{Name: "J", SitUpReps: 35}, false},
		{"situps over bound", Record{Name: "JOHN TAN", SitUpReps: 201}, false},
		{"pushups over bound", Record{Name: "JOHN TAN", PushUpReps: 500, SitUpReps: 30}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, cfg.IsPlausible(tt.rec))
		})
	}
}

func TestIsPlausibleConfiguredBound(t *testing.T) {
	cfg := Config{PushupRange: IntRange{Min: 0, Max: 2000}}.WithDefaults()
	require.True(t, cfg.IsPlausible(Record{Name: "JOHN TAN", PushUpReps: 500}))
}
