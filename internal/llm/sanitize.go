package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kyletan/ippt-tracker/internal/extract"
)

// NormalizeAndSanitizeJSON repairs the common ways vision models bend the
// schema before strict validation:
//   - a bare top-level array is wrapped into {"soldiers": [...]}
//   - known field synonyms are renamed (situps -> sit_up_reps, ...)
//   - counts arriving as strings or floats are coerced to clamped integers
//   - run_time is re-normalized through the shared validator
//   - null / empty optionals and unknown keys are dropped
//
// It returns the cleaned document plus the list of repairs for logging.
// Counts are clamped to the configured bounds, matching the schema handed to
// the model.
func NormalizeAndSanitizeJSON(raw []byte, bounds CountBounds, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	bounds = bounds.orDefault()

	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var repairs []string
	rows, _ := doc["soldiers"].([]any)
	cleaned := make([]any, 0, len(rows))
	for i, rv := range rows {
		row, ok := rv.(map[string]any)
		if !ok {
			repairs = append(repairs, fmt.Sprintf("row[%d](dropped: not an object)", i))
			continue
		}
		repairs = append(repairs, sanitizeRow(row, i, bounds)...)
		if _, ok := row["name"]; !ok {
			repairs = append(repairs, fmt.Sprintf("row[%d](dropped: no name)", i))
			continue
		}
		cleaned = append(cleaned, row)
	}

	b, err := json.Marshal(map[string]any{"soldiers": cleaned})
	if err != nil {
		return nil, nil, err
	}
	if len(repairs) > 0 {
		logger.Debug("llm.sanitize.repairs", "count", len(repairs))
	}
	return b, repairs, nil
}

func decodeDocument(raw []byte) (map[string]any, error) {
	trimmedRaw := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmedRaw, "[") {
		var arr []any
		if err := json.Unmarshal(raw, &arr); err != nil {
			return nil, err
		}
		return map[string]any{"soldiers": arr}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

var rowSynonyms = map[string]string{
	"full_name":  "name",
	"soldier":    "name",
	"situps":     "sit_up_reps",
	"sit_ups":    "sit_up_reps",
	"situp_reps": "sit_up_reps",
	"pushups":    "push_up_reps",
	"push_ups":   "push_up_reps",
	"run":        "run_time",
	"runtime":    "run_time",
	"run_2_4km":  "run_time",
}

var rowKeys = map[string]struct{}{
	"name": {}, "sit_up_reps": {}, "push_up_reps": {}, "run_time": {}, "confidence": {},
}

func sanitizeRow(row map[string]any, idx int, bounds CountBounds) []string {
	var repairs []string
	note := func(format string, args ...any) {
		repairs = append(repairs, fmt.Sprintf("row[%d]", idx)+fmt.Sprintf(format, args...))
	}

	// 1) rename synonyms onto the schema's keys
	for from, to := range rowSynonyms {
		if v, ok := row[from]; ok {
			if _, exists := row[to]; !exists {
				row[to] = v
			}
			delete(row, from)
			note("(%s->%s)", from, to)
		}
	}

	// 2) coerce counts to integers clamped to the configured ranges
	for k, r := range map[string]extract.IntRange{
		"sit_up_reps":  bounds.SitUp,
		"push_up_reps": bounds.PushUp,
	} {
		v, ok := row[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			row[k] = extract.ValidateCount(strconv.Itoa(int(t)), r.Min, r.Max)
		case string:
			row[k] = extract.ValidateCount(t, r.Min, r.Max)
		case nil:
			delete(row, k)
			note("(%s: null)", k)
		default:
			delete(row, k)
			note("(%s: type)", k)
		}
	}

	// 3) normalize run_time; an unusable value is dropped, not guessed
	if v, ok := row["run_time"]; ok {
		s, _ := v.(string)
		if norm := extract.ValidateRunTime(s); norm != "" {
			row["run_time"] = norm
		} else {
			delete(row, "run_time")
			note("(run_time: %q)", s)
		}
	}

	// 4) trim the name, drop it when empty so the row is rejected whole
	if v, ok := row["name"]; ok {
		s, _ := v.(string)
		s = strings.TrimSpace(s)
		if s == "" {
			delete(row, "name")
		} else {
			row["name"] = s
		}
	}

	// 5) unknown keys violate additionalProperties:false
	for k := range row {
		if _, known := rowKeys[k]; !known {
			delete(row, k)
			note("(%s: unknown key)", k)
		}
	}
	return repairs
}
