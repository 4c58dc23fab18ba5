// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/gen/ent/extractjob"
	"github.com/kyletan/ippt-tracker/gen/ent/scoresheet"
	"github.com/kyletan/ippt-tracker/gen/ent/soldierresult"
)

// SoldierResult is the model entity for the SoldierResult schema.
type SoldierResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ScoresheetID holds the value of the "scoresheet_id" field.
	ScoresheetID uuid.UUID `json:"scoresheet_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// SitUpReps holds the value of the "sit_up_reps" field.
	SitUpReps int `json:"sit_up_reps,omitempty"`
	// PushUpReps holds the value of the "push_up_reps" field.
	PushUpReps int `json:"push_up_reps,omitempty"`
	// RunTime holds the value of the "run_time" field.
	RunTime string `json:"run_time,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SoldierResultQuery when eager-loading is set.
	Edges        SoldierResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SoldierResultEdges holds the relations/edges for other nodes in the graph.
type SoldierResultEdges struct {
	// Scoresheet holds the value of the scoresheet edge.
	Scoresheet *Scoresheet `json:"scoresheet,omitempty"`
	// Job holds the value of the job edge.
	Job *ExtractJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ScoresheetOrErr returns the Scoresheet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SoldierResultEdges) ScoresheetOrErr() (*Scoresheet, error) {
	if e.Scoresheet != nil {
		return e.Scoresheet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scoresheet.Label}
	}
	return nil, &NotLoadedError{edge: "scoresheet"}
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SoldierResultEdges) JobOrErr() (*ExtractJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: extractjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SoldierResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case soldierresult.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case soldierresult.FieldSitUpReps, soldierresult.FieldPushUpReps:
			values[i] = new(sql.NullInt64)
		case soldierresult.FieldName, soldierresult.FieldRunTime:
			values[i] = new(sql.NullString)
		case soldierresult.FieldCreatedAt, soldierresult.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case soldierresult.FieldID, soldierresult.FieldScoresheetID, soldierresult.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SoldierResult fields.
func (_m *SoldierResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case soldierresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case soldierresult.FieldScoresheetID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field scoresheet_id", values[i])
			} else if value != nil {
				_m.ScoresheetID = *value
			}
		case soldierresult.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case soldierresult.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case soldierresult.FieldSitUpReps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sit_up_reps", values[i])
			} else if value.Valid {
				_m.SitUpReps = int(value.Int64)
			}
		case soldierresult.FieldPushUpReps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field push_up_reps", values[i])
			} else if value.Valid {
				_m.PushUpReps = int(value.Int64)
			}
		case soldierresult.FieldRunTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_time", values[i])
			} else if value.Valid {
				_m.RunTime = value.String
			}
		case soldierresult.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case soldierresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case soldierresult.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SoldierResult.
// This includes values selected through modifiers, order, etc.
func (_m *SoldierResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScoresheet queries the "scoresheet" edge of the SoldierResult entity.
func (_m *SoldierResult) QueryScoresheet() *ScoresheetQuery {
	return NewSoldierResultClient(_m.config).QueryScoresheet(_m)
}

// QueryJob queries the "job" edge of the SoldierResult entity.
func (_m *SoldierResult) QueryJob() *ExtractJobQuery {
	return NewSoldierResultClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this SoldierResult.
// Note that you need to call SoldierResult.Unwrap() before calling this method if this SoldierResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SoldierResult) Update() *SoldierResultUpdateOne {
	return NewSoldierResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SoldierResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SoldierResult) Unwrap() *SoldierResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SoldierResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SoldierResult) String() string {
	var builder strings.Builder
	builder.WriteString("SoldierResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scoresheet_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoresheetID))
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("sit_up_reps=")
	builder.WriteString(fmt.Sprintf("%v", _m.SitUpReps))
	builder.WriteString(", ")
	builder.WriteString("push_up_reps=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushUpReps))
	builder.WriteString(", ")
	builder.WriteString("run_time=")
	builder.WriteString(_m.RunTime)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SoldierResults is a parsable slice of SoldierResult.
type SoldierResults []*SoldierResult
