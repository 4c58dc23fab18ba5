// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kyletan/ippt-tracker/gen/ent/predicate"
	"github.com/kyletan/ippt-tracker/gen/ent/scoresheet"
)

// ScoresheetDelete is the builder for deleting a Scoresheet entity.
type ScoresheetDelete struct {
	config
	hooks    []Hook
	mutation *ScoresheetMutation
}

// Where appends a list predicates to the ScoresheetDelete builder.
func (_d *ScoresheetDelete) Where(ps ...predicate.Scoresheet) *ScoresheetDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScoresheetDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScoresheetDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScoresheetDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scoresheet.Table, sqlgraph.NewFieldSpec(scoresheet.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ScoresheetDeleteOne is the builder for deleting a single Scoresheet entity.
type ScoresheetDeleteOne struct {
	_d *ScoresheetDelete
}

// Where appends a list predicates to the ScoresheetDelete builder.
func (_d *ScoresheetDeleteOne) Where(ps ...predicate.Scoresheet) *ScoresheetDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScoresheetDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scoresheet.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScoresheetDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
