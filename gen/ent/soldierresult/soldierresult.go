// Code generated by ent, DO NOT EDIT.

package soldierresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the soldierresult type in the database.
	Label = "soldier_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldScoresheetID holds the string denoting the scoresheet_id field in the database.
	FieldScoresheetID = "scoresheet_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSitUpReps holds the string denoting the sit_up_reps field in the database.
	FieldSitUpReps = "sit_up_reps"
	// FieldPushUpReps holds the string denoting the push_up_reps field in the database.
	FieldPushUpReps = "push_up_reps"
	// FieldRunTime holds the string denoting the run_time field in the database.
	FieldRunTime = "run_time"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeScoresheet holds the string denoting the scoresheet edge name in mutations.
	EdgeScoresheet = "scoresheet"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the soldierresult in the database.
	Table = "soldier_results"
	// ScoresheetTable is the table that holds the scoresheet relation/edge.
	ScoresheetTable = "soldier_results"
	// ScoresheetInverseTable is the table name for the Scoresheet entity.
	// It exists in this package in order to avoid circular dependency with the "scoresheet" package.
	ScoresheetInverseTable = "scoresheets"
	// ScoresheetColumn is the table column denoting the scoresheet relation/edge.
	ScoresheetColumn = "scoresheet_id"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "soldier_results"
	// JobInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobInverseTable = "extract_job"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for soldierresult fields.
var Columns = []string{
	FieldID,
	FieldScoresheetID,
	FieldJobID,
	FieldName,
	FieldSitUpReps,
	FieldPushUpReps,
	FieldRunTime,
	FieldConfidence,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultSitUpReps holds the default value on creation for the "sit_up_reps" field.
	DefaultSitUpReps int
	// SitUpRepsValidator is a validator for the "sit_up_reps" field. It is called by the builders before save.
	SitUpRepsValidator func(int) error
	// DefaultPushUpReps holds the default value on creation for the "push_up_reps" field.
	DefaultPushUpReps int
	// PushUpRepsValidator is a validator for the "push_up_reps" field. It is called by the builders before save.
	PushUpRepsValidator func(int) error
	// DefaultRunTime holds the default value on creation for the "run_time" field.
	DefaultRunTime string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float32
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SoldierResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScoresheetID orders the results by the scoresheet_id field.
func ByScoresheetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoresheetID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySitUpReps orders the results by the sit_up_reps field.
func BySitUpReps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSitUpReps, opts...).ToFunc()
}

// ByPushUpReps orders the results by the push_up_reps field.
func ByPushUpReps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushUpReps, opts...).ToFunc()
}

// ByRunTime orders the results by the run_time field.
func ByRunTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunTime, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByScoresheetField orders the results by scoresheet field.
func ByScoresheetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScoresheetStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newScoresheetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScoresheetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ScoresheetTable, ScoresheetColumn),
	)
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
