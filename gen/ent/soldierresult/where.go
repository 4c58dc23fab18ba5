// Code generated by ent, DO NOT EDIT.

package soldierresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLTE(FieldID, id))
}

// ScoresheetID applies equality check predicate on the "scoresheet_id" field. It's identical to ScoresheetIDEQ.
func ScoresheetID(v uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldScoresheetID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldJobID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldName, v))
}

// SitUpReps applies equality check predicate on the "sit_up_reps" field. It's identical to SitUpRepsEQ.
func SitUpReps(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldSitUpReps, v))
}

// PushUpReps applies equality check predicate on the "push_up_reps" field. It's identical to PushUpRepsEQ.
func PushUpReps(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldPushUpReps, v))
}

// RunTime applies equality check predicate on the "run_time" field. It's identical to RunTimeEQ.
func RunTime(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldRunTime, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// ScoresheetIDEQ applies the EQ predicate on the "scoresheet_id" field.
func ScoresheetIDEQ(v uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldScoresheetID, v))
}

// ScoresheetIDNEQ applies the NEQ predicate on the "scoresheet_id" field.
func ScoresheetIDNEQ(v uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNEQ(FieldScoresheetID, v))
}

// ScoresheetIDIn applies the In predicate on the "scoresheet_id" field.
func ScoresheetIDIn(vs ...uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldIn(FieldScoresheetID, vs...))
}

// ScoresheetIDNotIn applies the NotIn predicate on the "scoresheet_id" field.
func ScoresheetIDNotIn(vs ...uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNotIn(FieldScoresheetID, vs...))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNotIn(FieldJobID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldContainsFold(FieldName, v))
}

// SitUpRepsEQ applies the EQ predicate on the "sit_up_reps" field.
func SitUpRepsEQ(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldSitUpReps, v))
}

// SitUpRepsNEQ applies the NEQ predicate on the "sit_up_reps" field.
func SitUpRepsNEQ(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNEQ(FieldSitUpReps, v))
}

// SitUpRepsIn applies the In predicate on the "sit_up_reps" field.
func SitUpRepsIn(vs ...int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldIn(FieldSitUpReps, vs...))
}

// SitUpRepsNotIn applies the NotIn predicate on the "sit_up_reps" field.
func SitUpRepsNotIn(vs ...int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNotIn(FieldSitUpReps, vs...))
}

// SitUpRepsGT applies the GT predicate on the "sit_up_reps" field.
func SitUpRepsGT(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGT(FieldSitUpReps, v))
}

// SitUpRepsGTE applies the GTE predicate on the "sit_up_reps" field.
func SitUpRepsGTE(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGTE(FieldSitUpReps, v))
}

// SitUpRepsLT applies the LT predicate on the "sit_up_reps" field.
func SitUpRepsLT(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLT(FieldSitUpReps, v))
}

// SitUpRepsLTE applies the LTE predicate on the "sit_up_reps" field.
func SitUpRepsLTE(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLTE(FieldSitUpReps, v))
}

// PushUpRepsEQ applies the EQ predicate on the "push_up_reps" field.
func PushUpRepsEQ(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldPushUpReps, v))
}

// PushUpRepsNEQ applies the NEQ predicate on the "push_up_reps" field.
func PushUpRepsNEQ(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNEQ(FieldPushUpReps, v))
}

// PushUpRepsIn applies the In predicate on the "push_up_reps" field.
func PushUpRepsIn(vs ...int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldIn(FieldPushUpReps, vs...))
}

// PushUpRepsNotIn applies the NotIn predicate on the "push_up_reps" field.
func PushUpRepsNotIn(vs ...int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNotIn(FieldPushUpReps, vs...))
}

// PushUpRepsGT applies the GT predicate on the "push_up_reps" field.
func PushUpRepsGT(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGT(FieldPushUpReps, v))
}

// PushUpRepsGTE applies the GTE predicate on the "push_up_reps" field.
func PushUpRepsGTE(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGTE(FieldPushUpReps, v))
}

// PushUpRepsLT applies the LT predicate on the "push_up_reps" field.
func PushUpRepsLT(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLT(FieldPushUpReps, v))
}

// PushUpRepsLTE applies the LTE predicate on the "push_up_reps" field.
func PushUpRepsLTE(v int) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLTE(FieldPushUpReps, v))
}

// RunTimeEQ applies the EQ predicate on the "run_time" field.
func RunTimeEQ(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldRunTime, v))
}

// RunTimeNEQ applies the NEQ predicate on the "run_time" field.
func RunTimeNEQ(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNEQ(FieldRunTime, v))
}

// RunTimeIn applies the In predicate on the "run_time" field.
func RunTimeIn(vs ...string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldIn(FieldRunTime, vs...))
}

// RunTimeNotIn applies the NotIn predicate on the "run_time" field.
func RunTimeNotIn(vs ...string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNotIn(FieldRunTime, vs...))
}

// RunTimeGT applies the GT predicate on the "run_time" field.
func RunTimeGT(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGT(FieldRunTime, v))
}

// RunTimeGTE applies the GTE predicate on the "run_time" field.
func RunTimeGTE(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGTE(FieldRunTime, v))
}

// RunTimeLT applies the LT predicate on the "run_time" field.
func RunTimeLT(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLT(FieldRunTime, v))
}

// RunTimeLTE applies the LTE predicate on the "run_time" field.
func RunTimeLTE(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLTE(FieldRunTime, v))
}

// RunTimeContains applies the Contains predicate on the "run_time" field.
func RunTimeContains(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldContains(FieldRunTime, v))
}

// RunTimeHasPrefix applies the HasPrefix predicate on the "run_time" field.
func RunTimeHasPrefix(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldHasPrefix(FieldRunTime, v))
}

// RunTimeHasSuffix applies the HasSuffix predicate on the "run_time" field.
func RunTimeHasSuffix(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldHasSuffix(FieldRunTime, v))
}

// RunTimeEqualFold applies the EqualFold predicate on the "run_time" field.
func RunTimeEqualFold(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEqualFold(FieldRunTime, v))
}

// RunTimeContainsFold applies the ContainsFold predicate on the "run_time" field.
func RunTimeContainsFold(v string) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldContainsFold(FieldRunTime, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLTE(FieldConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SoldierResult {
	return predicate.SoldierResult(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasScoresheet applies the HasEdge predicate on the "scoresheet" edge.
func HasScoresheet() predicate.SoldierResult {
	return predicate.SoldierResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScoresheetTable, ScoresheetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScoresheetWith applies the HasEdge predicate on the "scoresheet" edge with a given conditions (other predicates).
func HasScoresheetWith(preds ...predicate.Scoresheet) predicate.SoldierResult {
	return predicate.SoldierResult(func(s *sql.Selector) {
		step := newScoresheetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.SoldierResult {
	return predicate.SoldierResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ExtractJob) predicate.SoldierResult {
	return predicate.SoldierResult(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SoldierResult) predicate.SoldierResult {
	return predicate.SoldierResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SoldierResult) predicate.SoldierResult {
	return predicate.SoldierResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SoldierResult) predicate.SoldierResult {
	return predicate.SoldierResult(sql.NotPredicates(p))
}
