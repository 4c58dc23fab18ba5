// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/gen/ent/scoresheet"
)

// Scoresheet is the model entity for the Scoresheet schema.
type Scoresheet struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScoresheetQuery when eager-loading is set.
	Edges        ScoresheetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScoresheetEdges holds the relations/edges for other nodes in the graph.
type ScoresheetEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// Soldiers holds the value of the soldiers edge.
	Soldiers []*SoldierResult `json:"soldiers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ScoresheetEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// SoldiersOrErr returns the Soldiers value or an error if the edge
// was not loaded in eager-loading.
func (e ScoresheetEdges) SoldiersOrErr() ([]*SoldierResult, error) {
	if e.loadedTypes[1] {
		return e.Soldiers, nil
	}
	return nil, &NotLoadedError{edge: "soldiers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Scoresheet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scoresheet.FieldContentHash:
			values[i] = new([]byte)
		case scoresheet.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case scoresheet.FieldSourcePath, scoresheet.FieldFilename, scoresheet.FieldFileExt:
			values[i] = new(sql.NullString)
		case scoresheet.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case scoresheet.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Scoresheet fields.
func (_m *Scoresheet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scoresheet.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scoresheet.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case scoresheet.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case scoresheet.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case scoresheet.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case scoresheet.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case scoresheet.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Scoresheet.
// This includes values selected through modifiers, order, etc.
func (_m *Scoresheet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the Scoresheet entity.
func (_m *Scoresheet) QueryJobs() *ExtractJobQuery {
	return NewScoresheetClient(_m.config).QueryJobs(_m)
}

// QuerySoldiers queries the "soldiers" edge of the Scoresheet entity.
func (_m *Scoresheet) QuerySoldiers() *SoldierResultQuery {
	return NewScoresheetClient(_m.config).QuerySoldiers(_m)
}

// Update returns a builder for updating this Scoresheet.
// Note that you need to call Scoresheet.Unwrap() before calling this method if this Scoresheet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Scoresheet) Update() *ScoresheetUpdateOne {
	return NewScoresheetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Scoresheet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Scoresheet) Unwrap() *Scoresheet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Scoresheet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Scoresheet) String() string {
	var builder strings.Builder
	builder.WriteString("Scoresheet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Scoresheets is a parsable slice of Scoresheet.
type Scoresheets []*Scoresheet
