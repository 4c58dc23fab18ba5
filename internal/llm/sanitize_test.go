package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kyletan/ippt-tracker/internal/extract"
)

func decodeSoldiers(t *testing.T, b []byte) []SoldierFields {
	t.Helper()
	var doc struct {
		Soldiers []SoldierFields `json:"soldiers"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	return doc.Soldiers
}

func TestSanitizeWrapsBareArray(t *testing.T) {
	raw := []byte(`[{"name":"JOHN TAN","sit_up_reps":35,"push_up_reps":40,"run_time":"9:30"}]`)
	cleaned, _, err := NormalizeAndSanitizeJSON(raw, CountBounds{}, nil)
	require.NoError(t, err)

	schema := BuildScoresheetJSONSchema(10, CountBounds{})
	require.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))

	rows := decodeSoldiers(t, cleaned)
	require.Len(t, rows, 1)
	require.Equal(t, "JOHN TAN", rows[0].Name)
	require.Equal(t, 35, rows[0].SitUpReps)
}

func TestSanitizeRenamesSynonyms(t *testing.T) {
	raw := []byte(`{"soldiers":[{"full_name":"MARCUS LIM","situps":42,"pushups":38,"run":"10:15"}]}`)
	cleaned, repairs, err := NormalizeAndSanitizeJSON(raw, CountBounds{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, repairs)

	rows := decodeSoldiers(t, cleaned)
	require.Len(t, rows, 1)
	require.Equal(t, "MARCUS LIM", rows[0].Name)
	require.Equal(t, 42, rows[0].SitUpReps)
	require.Equal(t, 38, rows[0].PushUpReps)
	require.Equal(t, "10:15", rows[0].RunTime)
}

func TestSanitizeCoercesStringCounts(t *testing.T) {
	raw := []byte(`{"soldiers":[{"name":"WEI JIE NG","sit_up_reps":"51","push_up_reps":"999"}]}`)
	cleaned, _, err := NormalizeAndSanitizeJSON(raw, CountBounds{}, nil)
	require.NoError(t, err)

	rows := decodeSoldiers(t, cleaned)
	require.Len(t, rows, 1)
	require.Equal(t, 51, rows[0].SitUpReps)
	// out-of-band counts clamp to the ceiling rather than failing the row
	require.Equal(t, 200, rows[0].PushUpReps)
}

func TestSanitizeHonorsConfiguredCountBounds(t *testing.T) {
	raw := []byte(`{"soldiers":[{"name":"WEI JIE NG","sit_up_reps":"250","push_up_reps":"500"}]}`)
	bounds := CountBounds{
		SitUp:  extract.IntRange{Min: 0, Max: 200},
		PushUp: extract.IntRange{Min: 0, Max: 600},
	}
	cleaned, _, err := NormalizeAndSanitizeJSON(raw, bounds, nil)
	require.NoError(t, err)

	rows := decodeSoldiers(t, cleaned)
	require.Len(t, rows, 1)
	// the widened push-up ceiling keeps the value; sit-ups still clamp
	require.Equal(t, 200, rows[0].SitUpReps)
	require.Equal(t, 500, rows[0].PushUpReps)

	// the schema handed to the model widens with the same knob
	schema := BuildScoresheetJSONSchema(10, bounds)
	require.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))
}

func TestSanitizeDropsBadRunTime(t *testing.T) {
	raw := []byte(`{"soldiers":[{"name":"DANIEL LEE","run_time":"99:99"}]}`)
	cleaned, repairs, err := NormalizeAndSanitizeJSON(raw, CountBounds{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, repairs)

	rows := decodeSoldiers(t, cleaned)
	require.Len(t, rows, 1)
	require.Empty(t, rows[0].RunTime)
}

func TestSanitizeDropsRowsWithoutName(t *testing.T) {
	raw := []byte(`{"soldiers":[{"name":"  ","sit_up_reps":30},{"name":"ADAM YUSOF","sit_up_reps":31}]}`)
	cleaned, _, err := NormalizeAndSanitizeJSON(raw, CountBounds{}, nil)
	require.NoError(t, err)

	rows := decodeSoldiers(t, cleaned)
	require.Len(t, rows, 1)
	require.Equal(t, "ADAM YUSOF", rows[0].Name)
}

func TestSanitizeRemovesUnknownKeys(t *testing.T) {
	raw := []byte(`{"soldiers":[{"name":"HAFIZ RAHMAN","remarks":"strong effort","confidence":0.9}]}`)
	cleaned, _, err := NormalizeAndSanitizeJSON(raw, CountBounds{}, nil)
	require.NoError(t, err)

	schema := BuildScoresheetJSONSchema(10, CountBounds{})
	require.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))
}

func TestSchemaRejectsOverflowRoster(t *testing.T) {
	type row struct {
		Name string `json:"name"`
	}
	rows := make([]row, 11)
	for i := range rows {
		rows[i] = row{Name: "SOLDIER XX"}
	}
	b, err := json.Marshal(map[string]any{"soldiers": rows})
	require.NoError(t, err)

	schema := BuildScoresheetJSONSchema(10, CountBounds{})
	require.Error(t, ValidateJSONAgainstSchema(schema, b))
}

func TestSanitizeRejectsNonJSON(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte("not json at all"), CountBounds{}, nil)
	require.Error(t, err)
}
