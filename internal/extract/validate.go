package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reDigits       = regexp.MustCompile(`^\d+$`)
	reRunTimeExact = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	reRunTimeFind  = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

const (
	maxRunMinutes = 30
	maxRunSeconds = 59
)

// ValidateCount parses raw as an integer and clamps it into [min,max].
// Unparseable input yields min; it never fails.
func ValidateCount(raw string, min, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return min
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// ValidateRunTime searches raw for an M:SS / MM:SS shaped substring with
// minutes in [0,30] and seconds in [0,59] and returns it reformatted with
// zero-padded seconds. Anything else yields the empty string.
func ValidateRunTime(raw string) string {
	m := reRunTimeFind.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	mins, _ := strconv.Atoi(m[1])
	secs, _ := strconv.Atoi(m[2])
	if mins > maxRunMinutes || secs > maxRunSeconds {
		return ""
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func trimmed(s string) string { return strings.TrimSpace(s) }

func isDigits(s string) bool { return s != "" && reDigits.MatchString(s) }

func isRunTimeShaped(s string) bool { return reRunTimeExact.MatchString(s) }

// mustAtoi is only called on isDigits-gated input.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// isUpperName matches the OCR shape of a printed name line: all-caps with
// letters and some length. Serial numbers and metric lines fail this.
func isUpperName(s string) bool {
	if len(s) <= 3 || s != strings.ToUpper(s) {
		return false
	}
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}
