// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/gen/ent/extractjob"
	"github.com/kyletan/ippt-tracker/gen/ent/scoresheet"
	"github.com/kyletan/ippt-tracker/gen/ent/soldierresult"
)

// SoldierResultCreate is the builder for creating a SoldierResult entity.
type SoldierResultCreate struct {
	config
	mutation *SoldierResultMutation
	hooks    []Hook
}

// SetScoresheetID sets the "scoresheet_id" field.
func (_c *SoldierResultCreate) SetScoresheetID(v uuid.UUID) *SoldierResultCreate {
	_c.mutation.SetScoresheetID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *SoldierResultCreate) SetJobID(v uuid.UUID) *SoldierResultCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SoldierResultCreate) SetName(v string) *SoldierResultCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSitUpReps sets the "sit_up_reps" field.
func (_c *SoldierResultCreate) SetSitUpReps(v int) *SoldierResultCreate {
	_c.mutation.SetSitUpReps(v)
	return _c
}

// SetNillableSitUpReps sets the "sit_up_reps" field if the given value is not nil.
func (_c *SoldierResultCreate) SetNillableSitUpReps(v *int) *SoldierResultCreate {
	if v != nil {
		_c.SetSitUpReps(*v)
	}
	return _c
}

// SetPushUpReps sets the "push_up_reps" field.
func (_c *SoldierResultCreate) SetPushUpReps(v int) *SoldierResultCreate {
	_c.mutation.SetPushUpReps(v)
	return _c
}

// SetNillablePushUpReps sets the "push_up_reps" field if the given value is not nil.
func (_c *SoldierResultCreate) SetNillablePushUpReps(v *int) *SoldierResultCreate {
	if v != nil {
		_c.SetPushUpReps(*v)
	}
	return _c
}

// SetRunTime sets the "run_time" field.
func (_c *SoldierResultCreate) SetRunTime(v string) *SoldierResultCreate {
	_c.mutation.SetRunTime(v)
	return _c
}

// SetNillableRunTime sets the "run_time" field if the given value is not nil.
func (_c *SoldierResultCreate) SetNillableRunTime(v *string) *SoldierResultCreate {
	if v != nil {
		_c.SetRunTime(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SoldierResultCreate) SetConfidence(v float32) *SoldierResultCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *SoldierResultCreate) SetNillableConfidence(v *float32) *SoldierResultCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SoldierResultCreate) SetCreatedAt(v time.Time) *SoldierResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SoldierResultCreate) SetNillableCreatedAt(v *time.Time) *SoldierResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SoldierResultCreate) SetUpdatedAt(v time.Time) *SoldierResultCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SoldierResultCreate) SetNillableUpdatedAt(v *time.Time) *SoldierResultCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SoldierResultCreate) SetID(v uuid.UUID) *SoldierResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SoldierResultCreate) SetNillableID(v *uuid.UUID) *SoldierResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetScoresheet sets the "scoresheet" edge to the Scoresheet entity.
func (_c *SoldierResultCreate) SetScoresheet(v *Scoresheet) *SoldierResultCreate {
	return _c.SetScoresheetID(v.ID)
}

// SetJob sets the "job" edge to the ExtractJob entity.
func (_c *SoldierResultCreate) SetJob(v *ExtractJob) *SoldierResultCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the SoldierResultMutation object of the builder.
func (_c *SoldierResultCreate) Mutation() *SoldierResultMutation {
	return _c.mutation
}

// Save creates the SoldierResult in the database.
func (_c *SoldierResultCreate) Save(ctx context.Context) (*SoldierResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SoldierResultCreate) SaveX(ctx context.Context) *SoldierResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SoldierResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SoldierResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SoldierResultCreate) defaults() {
	if _, ok := _c.mutation.SitUpReps(); !ok {
		v := soldierresult.DefaultSitUpReps
		_c.mutation.SetSitUpReps(v)
	}
	if _, ok := _c.mutation.PushUpReps(); !ok {
		v := soldierresult.DefaultPushUpReps
		_c.mutation.SetPushUpReps(v)
	}
	if _, ok := _c.mutation.RunTime(); !ok {
		v := soldierresult.DefaultRunTime
		_c.mutation.SetRunTime(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := soldierresult.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := soldierresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := soldierresult.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := soldierresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SoldierResultCreate) check() error {
	if _, ok := _c.mutation.ScoresheetID(); !ok {
		return &ValidationError{Name: "scoresheet_id", err: errors.New(`ent: missing required field "SoldierResult.scoresheet_id"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "SoldierResult.job_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SoldierResult.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := soldierresult.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SoldierResult.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SitUpReps(); !ok {
		return &ValidationError{Name: "sit_up_reps", err: errors.New(`ent: missing required field "SoldierResult.sit_up_reps"`)}
	}
	if v, ok := _c.mutation.SitUpReps(); ok {
		if err := soldierresult.SitUpRepsValidator(v); err != nil {
			return &ValidationError{Name: "sit_up_reps", err: fmt.Errorf(`ent: validator failed for field "SoldierResult.sit_up_reps": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PushUpReps(); !ok {
		return &ValidationError{Name: "push_up_reps", err: errors.New(`ent: missing required field "SoldierResult.push_up_reps"`)}
	}
	if v, ok := _c.mutation.PushUpReps(); ok {
		if err := soldierresult.PushUpRepsValidator(v); err != nil {
			return &ValidationError{Name: "push_up_reps", err: fmt.Errorf(`ent: validator failed for field "SoldierResult.push_up_reps": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunTime(); !ok {
		return &ValidationError{Name: "run_time", err: errors.New(`ent: missing required field "SoldierResult.run_time"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "SoldierResult.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SoldierResult.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SoldierResult.updated_at"`)}
	}
	if len(_c.mutation.ScoresheetIDs()) == 0 {
		return &ValidationError{Name: "scoresheet", err: errors.New(`ent: missing required edge "SoldierResult.scoresheet"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "SoldierResult.job"`)}
	}
	return nil
}

func (_c *SoldierResultCreate) sqlSave(ctx context.Context) (*SoldierResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SoldierResultCreate) createSpec() (*SoldierResult, *sqlgraph.CreateSpec) {
	var (
		_node = &SoldierResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(soldierresult.Table, sqlgraph.NewFieldSpec(soldierresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(soldierresult.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SitUpReps(); ok {
		_spec.SetField(soldierresult.FieldSitUpReps, field.TypeInt, value)
		_node.SitUpReps = value
	}
	if value, ok := _c.mutation.PushUpReps(); ok {
		_spec.SetField(soldierresult.FieldPushUpReps, field.TypeInt, value)
		_node.PushUpReps = value
	}
	if value, ok := _c.mutation.RunTime(); ok {
		_spec.SetField(soldierresult.FieldRunTime, field.TypeString, value)
		_node.RunTime = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(soldierresult.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(soldierresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(soldierresult.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ScoresheetIDs(); len(nodes) > 0 {
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
		_node.ScoresheetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SoldierResultCreateBulk is the builder for creating many SoldierResult entities in bulk.
type SoldierResultCreateBulk struct {
	config
	err      error
	builders []*SoldierResultCreate
}

// Save creates the SoldierResult entities in the database.
func (_c *SoldierResultCreateBulk) Save(ctx context.Context) ([]*SoldierResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SoldierResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SoldierResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SoldierResultCreateBulk) SaveX(ctx context.Context) []*SoldierResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SoldierResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SoldierResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
