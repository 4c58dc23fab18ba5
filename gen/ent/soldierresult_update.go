// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/gen/ent/extractjob"
	"github.com/kyletan/ippt-tracker/gen/ent/predicate"
	"github.com/kyletan/ippt-tracker/gen/ent/scoresheet"
	"github.com/kyletan/ippt-tracker/gen/ent/soldierresult"
)

// SoldierResultUpdate is the builder for updating SoldierResult entities.
type SoldierResultUpdate struct {
	config
	hooks    []Hook
	mutation *SoldierResultMutation
}

// Where appends a list predicates to the SoldierResultUpdate builder.
func (_u *SoldierResultUpdate) Where(ps ...predicate.SoldierResult) *SoldierResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScoresheetID sets the "scoresheet_id" field.
func (_u *SoldierResultUpdate) SetScoresheetID(v uuid.UUID) *SoldierResultUpdate {
	_u.mutation.SetScoresheetID(v)
	return _u
}

// SetNillableScoresheetID sets the "scoresheet_id" field if the given value is not nil.
func (_u *SoldierResultUpdate) SetNillableScoresheetID(v *uuid.UUID) *SoldierResultUpdate {
	if v != nil {
		_u.SetScoresheetID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *SoldierResultUpdate) SetJobID(v uuid.UUID) *SoldierResultUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *SoldierResultUpdate) SetNillableJobID(v *uuid.UUID) *SoldierResultUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SoldierResultUpdate) SetName(v string) *SoldierResultUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SoldierResultUpdate) SetNillableName(v *string) *SoldierResultUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSitUpReps sets the "sit_up_reps" field.
func (_u *SoldierResultUpdate) SetSitUpReps(v int) *SoldierResultUpdate {
	_u.mutation.ResetSitUpReps()
	_u.mutation.SetSitUpReps(v)
	return _u
}

// SetNillableSitUpReps sets the "sit_up_reps" field if the given value is not nil.
func (_u *SoldierResultUpdate) SetNillableSitUpReps(v *int) *SoldierResultUpdate {
	if v != nil {
		_u.SetSitUpReps(*v)
	}
	return _u
}

// AddSitUpReps adds value to the "sit_up_reps" field.
func (_u *SoldierResultUpdate) AddSitUpReps(v int) *SoldierResultUpdate {
	_u.mutation.AddSitUpReps(v)
	return _u
}

// SetPushUpReps sets the "push_up_reps" field.
func (_u *SoldierResultUpdate) SetPushUpReps(v int) *SoldierResultUpdate {
	_u.mutation.ResetPushUpReps()
	_u.mutation.SetPushUpReps(v)
	return _u
}

// SetNillablePushUpReps sets the "push_up_reps" field if the given value is not nil.
func (_u *SoldierResultUpdate) SetNillablePushUpReps(v *int) *SoldierResultUpdate {
	if v != nil {
		_u.SetPushUpReps(*v)
	}
	return _u
}

// AddPushUpReps adds value to the "push_up_reps" field.
func (_u *SoldierResultUpdate) AddPushUpReps(v int) *SoldierResultUpdate {
	_u.mutation.AddPushUpReps(v)
	return _u
}

// SetRunTime sets the "run_time" field.
func (_u *SoldierResultUpdate) SetRunTime(v string) *SoldierResultUpdate {
	_u.mutation.SetRunTime(v)
	return _u
}

// SetNillableRunTime sets the "run_time" field if the given value is not nil.
func (_u *SoldierResultUpdate) SetNillableRunTime(v *string) *SoldierResultUpdate {
	if v != nil {
		_u.SetRunTime(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SoldierResultUpdate) SetConfidence(v float32) *SoldierResultUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SoldierResultUpdate) SetNillableConfidence(v *float32) *SoldierResultUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SoldierResultUpdate) AddConfidence(v float32) *SoldierResultUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SoldierResultUpdate) SetCreatedAt(v time.Time) *SoldierResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SoldierResultUpdate) SetNillableCreatedAt(v *time.Time) *SoldierResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SoldierResultUpdate) SetUpdatedAt(v time.Time) *SoldierResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScoresheet sets the "scoresheet" edge to the Scoresheet entity.
func (_u *SoldierResultUpdate) SetScoresheet(v *Scoresheet) *SoldierResultUpdate {
	return _u.SetScoresheetID(v.ID)
}

// SetJob sets the "job" edge to the ExtractJob entity.
func (_u *SoldierResultUpdate) SetJob(v *ExtractJob) *SoldierResultUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the SoldierResultMutation object of the builder.
func (_u *SoldierResultUpdate) Mutation() *SoldierResultMutation {
	return _u.mutation
}

// ClearScoresheet clears the "scoresheet" edge to the Scoresheet entity.
func (_u *SoldierResultUpdate) ClearScoresheet() *SoldierResultUpdate {
	_u.mutation.ClearScoresheet()
	return _u
}

// ClearJob clears the "job" edge to the ExtractJob entity.
func (_u *SoldierResultUpdate) ClearJob() *SoldierResultUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SoldierResultUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SoldierResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SoldierResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SoldierResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SoldierResultUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := soldierresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SoldierResultUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := soldierresult.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SoldierResult.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SitUpReps(); ok {
		if err := soldierresult.SitUpRepsValidator(v); err != nil {
			return &ValidationError{Name: "sit_up_reps", err: fmt.Errorf(`ent: validator failed for field "SoldierResult.sit_up_reps": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PushUpReps(); ok {
		if err := soldierresult.PushUpRepsValidator(v); err != nil {
			return &ValidationError{Name: "push_up_reps", err: fmt.Errorf(`ent: validator failed for field "SoldierResult.push_up_reps": %w`, err)}
		}
	}
	if _u.mutation.ScoresheetCleared() && len(_u.mutation.ScoresheetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SoldierResult.scoresheet"`)
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SoldierResult.job"`)
	}
	return nil
}

func (_u *SoldierResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(soldierresult.Table, soldierresult.Columns, sqlgraph.NewFieldSpec(soldierresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(soldierresult.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SitUpReps(); ok {
		_spec.SetField(soldierresult.FieldSitUpReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSitUpReps(); ok {
		_spec.AddField(soldierresult.FieldSitUpReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PushUpReps(); ok {
		_spec.SetField(soldierresult.FieldPushUpReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPushUpReps(); ok {
		_spec.AddField(soldierresult.FieldPushUpReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunTime(); ok {
		_spec.SetField(soldierresult.FieldRunTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(soldierresult.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(soldierresult.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(soldierresult.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(soldierresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScoresheetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   soldierresult.ScoresheetTable,
			Columns: []string{soldierresult.ScoresheetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scoresheet.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoresheetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   soldierresult.ScoresheetTable,
			Columns: []string{soldierresult.ScoresheetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scoresheet.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   soldierresult.JobTable,
			Columns: []string{soldierresult.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   soldierresult.JobTable,
			Columns: []string{soldierresult.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{soldierresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SoldierResultUpdateOne is the builder for updating a single SoldierResult entity.
type SoldierResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SoldierResultMutation
}

// SetScoresheetID sets the "scoresheet_id" field.
func (_u *SoldierResultUpdateOne) SetScoresheetID(v uuid.UUID) *SoldierResultUpdateOne {
	_u.mutation.SetScoresheetID(v)
	return _u
}

// SetNillableScoresheetID sets the "scoresheet_id" field if the given value is not nil.
func (_u *SoldierResultUpdateOne) SetNillableScoresheetID(v *uuid.UUID) *SoldierResultUpdateOne {
	if v != nil {
		_u.SetScoresheetID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *SoldierResultUpdateOne) SetJobID(v uuid.UUID) *SoldierResultUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *SoldierResultUpdateOne) SetNillableJobID(v *uuid.UUID) *SoldierResultUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SoldierResultUpdateOne) SetName(v string) *SoldierResultUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SoldierResultUpdateOne) SetNillableName(v *string) *SoldierResultUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSitUpReps sets the "sit_up_reps" field.
func (_u *SoldierResultUpdateOne) SetSitUpReps(v int) *SoldierResultUpdateOne {
	_u.mutation.ResetSitUpReps()
	_u.mutation.SetSitUpReps(v)
	return _u
}

// SetNillableSitUpReps sets the "sit_up_reps" field if the given value is not nil.
func (_u *SoldierResultUpdateOne) SetNillableSitUpReps(v *int) *SoldierResultUpdateOne {
	if v != nil {
		_u.SetSitUpReps(*v)
	}
	return _u
}

// AddSitUpReps adds value to the "sit_up_reps" field.
func (_u *SoldierResultUpdateOne) AddSitUpReps(v int) *SoldierResultUpdateOne {
	_u.mutation.AddSitUpReps(v)
	return _u
}

// SetPushUpReps sets the "push_up_reps" field.
func (_u *SoldierResultUpdateOne) SetPushUpReps(v int) *SoldierResultUpdateOne {
	_u.mutation.ResetPushUpReps()
	_u.mutation.SetPushUpReps(v)
	return _u
}

// SetNillablePushUpReps sets the "push_up_reps" field if the given value is not nil.
func (_u *SoldierResultUpdateOne) SetNillablePushUpReps(v *int) *SoldierResultUpdateOne {
	if v != nil {
		_u.SetPushUpReps(*v)
	}
	return _u
}

// AddPushUpReps adds value to the "push_up_reps" field.
func (_u *SoldierResultUpdateOne) AddPushUpReps(v int) *SoldierResultUpdateOne {
	_u.mutation.AddPushUpReps(v)
	return _u
}

// SetRunTime sets the "run_time" field.
func (_u *SoldierResultUpdateOne) SetRunTime(v string) *SoldierResultUpdateOne {
	_u.mutation.SetRunTime(v)
	return _u
}

// SetNillableRunTime sets the "run_time" field if the given value is not nil.
func (_u *SoldierResultUpdateOne) SetNillableRunTime(v *string) *SoldierResultUpdateOne {
	if v != nil {
		_u.SetRunTime(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SoldierResultUpdateOne) SetConfidence(v float32) *SoldierResultUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SoldierResultUpdateOne) SetNillableConfidence(v *float32) *SoldierResultUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SoldierResultUpdateOne) AddConfidence(v float32) *SoldierResultUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SoldierResultUpdateOne) SetCreatedAt(v time.Time) *SoldierResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SoldierResultUpdateOne) SetNillableCreatedAt(v *time.Time) *SoldierResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SoldierResultUpdateOne) SetUpdatedAt(v time.Time) *SoldierResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScoresheet sets the "scoresheet" edge to the Scoresheet entity.
func (_u *SoldierResultUpdateOne) SetScoresheet(v *Scoresheet) *SoldierResultUpdateOne {
	return _u.SetScoresheetID(v.ID)
}

// SetJob sets the "job" edge to the ExtractJob entity.
func (_u *SoldierResultUpdateOne) SetJob(v *ExtractJob) *SoldierResultUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the SoldierResultMutation object of the builder.
func (_u *SoldierResultUpdateOne) Mutation() *SoldierResultMutation {
	return _u.mutation
}

// ClearScoresheet clears the "scoresheet" edge to the Scoresheet entity.
func (_u *SoldierResultUpdateOne) ClearScoresheet() *SoldierResultUpdateOne {
	_u.mutation.ClearScoresheet()
	return _u
}

// ClearJob clears the "job" edge to the ExtractJob entity.
func (_u *SoldierResultUpdateOne) ClearJob() *SoldierResultUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the SoldierResultUpdate builder.
func (_u *SoldierResultUpdateOne) Where(ps ...predicate.SoldierResult) *SoldierResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SoldierResultUpdateOne) Select(field string, fields ...string) *SoldierResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SoldierResult entity.
func (_u *SoldierResultUpdateOne) Save(ctx context.Context) (*SoldierResult, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SoldierResultUpdateOne) SaveX(ctx context.Context) *SoldierResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SoldierResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SoldierResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SoldierResultUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := soldierresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SoldierResultUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := soldierresult.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SoldierResult.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SitUpReps(); ok {
		if err := soldierresult.SitUpRepsValidator(v); err != nil {
			return &ValidationError{Name: "sit_up_reps", err: fmt.Errorf(`ent: validator failed for field "SoldierResult.sit_up_reps": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PushUpReps(); ok {
		if err := soldierresult.PushUpRepsValidator(v); err != nil {
			return &ValidationError{Name: "push_up_reps", err: fmt.Errorf(`ent: validator failed for field "SoldierResult.push_up_reps": %w`, err)}
		}
	}
	if _u.mutation.ScoresheetCleared() && len(_u.mutation.ScoresheetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SoldierResult.scoresheet"`)
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SoldierResult.job"`)
	}
	return nil
}

func (_u *SoldierResultUpdateOne) sqlSave(ctx context.Context) (_node *SoldierResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(soldierresult.Table, soldierresult.Columns, sqlgraph.NewFieldSpec(soldierresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SoldierResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, soldierresult.FieldID)
		for _, f := range fields {
			if !soldierresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != soldierresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(soldierresult.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SitUpReps(); ok {
		_spec.SetField(soldierresult.FieldSitUpReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSitUpReps(); ok {
		_spec.AddField(soldierresult.FieldSitUpReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PushUpReps(); ok {
		_spec.SetField(soldierresult.FieldPushUpReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPushUpReps(); ok {
		_spec.AddField(soldierresult.FieldPushUpReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunTime(); ok {
		_spec.SetField(soldierresult.FieldRunTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(soldierresult.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(soldierresult.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(soldierresult.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(soldierresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScoresheetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   soldierresult.ScoresheetTable,
			Columns: []string{soldierresult.ScoresheetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scoresheet.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoresheetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   soldierresult.ScoresheetTable,
			Columns: []string{soldierresult.ScoresheetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scoresheet.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   soldierresult.JobTable,
			Columns: []string{soldierresult.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   soldierresult.JobTable,
			Columns: []string{soldierresult.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SoldierResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{soldierresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
