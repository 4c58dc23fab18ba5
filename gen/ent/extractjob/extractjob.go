// Code generated by ent, DO NOT EDIT.

package extractjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractjob type in the database.
	Label = "extract_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldScoresheetID holds the string denoting the scoresheet_id field in the database.
	FieldScoresheetID = "scoresheet_id"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldOcrProvider holds the string denoting the ocr_provider field in the database.
	FieldOcrProvider = "ocr_provider"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldOcrText holds the string denoting the ocr_text field in the database.
	FieldOcrText = "ocr_text"
	// FieldExtractedJSON holds the string denoting the extracted_json field in the database.
	FieldExtractedJSON = "extracted_json"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// EdgeScoresheet holds the string denoting the scoresheet edge name in mutations.
	EdgeScoresheet = "scoresheet"
	// EdgeSoldiers holds the string denoting the soldiers edge name in mutations.
	EdgeSoldiers = "soldiers"
	// Table holds the table name of the extractjob in the database.
	Table = "extract_job"
	// ScoresheetTable is the table that holds the scoresheet relation/edge.
	ScoresheetTable = "extract_job"
	// ScoresheetInverseTable is the table name for the Scoresheet entity.
	// It exists in this package in order to avoid circular dependency with the "scoresheet" package.
	ScoresheetInverseTable = "scoresheets"
	// ScoresheetColumn is the table column denoting the scoresheet relation/edge.
	ScoresheetColumn = "scoresheet_id"
	// SoldiersTable is the table that holds the soldiers relation/edge.
	SoldiersTable = "soldier_results"
	// SoldiersInverseTable is the table name for the SoldierResult entity.
	// It exists in this package in order to avoid circular dependency with the "soldierresult" package.
	SoldiersInverseTable = "soldier_results"
	// SoldiersColumn is the table column denoting the soldiers relation/edge.
	SoldiersColumn = "job_id"
)

// Columns holds all SQL columns for extractjob fields.
var Columns = []string{
	FieldID,
	FieldScoresheetID,
	FieldFormat,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldErrorMessage,
	FieldOcrProvider,
	FieldOcrConfidence,
	FieldNeedsReview,
	FieldOcrText,
	FieldExtractedJSON,
	FieldModelName,
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
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScoresheetID orders the results by the scoresheet_id field.
func ByScoresheetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoresheetID, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByOcrProvider orders the results by the ocr_provider field.
func ByOcrProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrProvider, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByOcrText orders the results by the ocr_text field.
func ByOcrText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrText, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByScoresheetField orders the results by scoresheet field.
func ByScoresheetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScoresheetStep(), sql.OrderByField(field, opts...))
	}
}

// BySoldiersCount orders the results by soldiers count.
func BySoldiersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSoldiersStep(), opts...)
	}
}

// BySoldiers orders the results by soldiers terms.
func BySoldiers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSoldiersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newScoresheetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScoresheetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ScoresheetTable, ScoresheetColumn),
	)
}
func newSoldiersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SoldiersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SoldiersTable, SoldiersColumn),
	)
}
