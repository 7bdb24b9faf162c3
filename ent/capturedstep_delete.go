// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/funnel-ops/funnel/ent/capturedstep"
	"github.com/funnel-ops/funnel/ent/predicate"
)

// CapturedStepDelete is the builder for deleting a CapturedStep entity.
type CapturedStepDelete struct {
	config
	hooks    []Hook
	mutation *CapturedStepMutation
}

// Where appends a list predicates to the CapturedStepDelete builder.
func (_d *CapturedStepDelete) Where(ps ...predicate.CapturedStep) *CapturedStepDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CapturedStepDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CapturedStepDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CapturedStepDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(capturedstep.Table, sqlgraph.NewFieldSpec(capturedstep.FieldID, field.TypeString))
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

// CapturedStepDeleteOne is the builder for deleting a single CapturedStep entity.
type CapturedStepDeleteOne struct {
	_d *CapturedStepDelete
}

// Where appends a list predicates to the CapturedStepDelete builder.
func (_d *CapturedStepDeleteOne) Where(ps ...predicate.CapturedStep) *CapturedStepDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CapturedStepDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{capturedstep.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CapturedStepDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
