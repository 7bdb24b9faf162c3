// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/funnel-ops/funnel/ent/capturedstep"
	"github.com/funnel-ops/funnel/ent/predicate"
)

// CapturedStepUpdate is the builder for updating CapturedStep entities.
type CapturedStepUpdate struct {
	config
	hooks    []Hook
	mutation *CapturedStepMutation
}

// Where appends a list predicates to the CapturedStepUpdate builder.
func (_u *CapturedStepUpdate) Where(ps ...predicate.CapturedStep) *CapturedStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParams sets the "params" field.
func (_u *CapturedStepUpdate) SetParams(v map[string]interface{}) *CapturedStepUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *CapturedStepUpdate) ClearParams() *CapturedStepUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetOutput sets the "output" field.
func (_u *CapturedStepUpdate) SetOutput(v string) *CapturedStepUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *CapturedStepUpdate) SetNillableOutput(v *string) *CapturedStepUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *CapturedStepUpdate) SetSuccess(v bool) *CapturedStepUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *CapturedStepUpdate) SetNillableSuccess(v *bool) *CapturedStepUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *CapturedStepUpdate) SetErrorKind(v string) *CapturedStepUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *CapturedStepUpdate) SetNillableErrorKind(v *string) *CapturedStepUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *CapturedStepUpdate) ClearErrorKind() *CapturedStepUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *CapturedStepUpdate) SetDurationMs(v int64) *CapturedStepUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *CapturedStepUpdate) SetNillableDurationMs(v *int64) *CapturedStepUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *CapturedStepUpdate) AddDurationMs(v int64) *CapturedStepUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *CapturedStepUpdate) ClearDurationMs() *CapturedStepUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the CapturedStepMutation object of the builder.
func (_u *CapturedStepUpdate) Mutation() *CapturedStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CapturedStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CapturedStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CapturedStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CapturedStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CapturedStepUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CapturedStep.run"`)
	}
	return nil
}

func (_u *CapturedStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(capturedstep.Table, capturedstep.Columns, sqlgraph.NewFieldSpec(capturedstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(capturedstep.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(capturedstep.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(capturedstep.FieldOutput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(capturedstep.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(capturedstep.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(capturedstep.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(capturedstep.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(capturedstep.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(capturedstep.FieldDurationMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capturedstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CapturedStepUpdateOne is the builder for updating a single CapturedStep entity.
type CapturedStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CapturedStepMutation
}

// SetParams sets the "params" field.
func (_u *CapturedStepUpdateOne) SetParams(v map[string]interface{}) *CapturedStepUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *CapturedStepUpdateOne) ClearParams() *CapturedStepUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetOutput sets the "output" field.
func (_u *CapturedStepUpdateOne) SetOutput(v string) *CapturedStepUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *CapturedStepUpdateOne) SetNillableOutput(v *string) *CapturedStepUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *CapturedStepUpdateOne) SetSuccess(v bool) *CapturedStepUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *CapturedStepUpdateOne) SetNillableSuccess(v *bool) *CapturedStepUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *CapturedStepUpdateOne) SetErrorKind(v string) *CapturedStepUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *CapturedStepUpdateOne) SetNillableErrorKind(v *string) *CapturedStepUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *CapturedStepUpdateOne) ClearErrorKind() *CapturedStepUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *CapturedStepUpdateOne) SetDurationMs(v int64) *CapturedStepUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *CapturedStepUpdateOne) SetNillableDurationMs(v *int64) *CapturedStepUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *CapturedStepUpdateOne) AddDurationMs(v int64) *CapturedStepUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *CapturedStepUpdateOne) ClearDurationMs() *CapturedStepUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the CapturedStepMutation object of the builder.
func (_u *CapturedStepUpdateOne) Mutation() *CapturedStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the CapturedStepUpdate builder.
func (_u *CapturedStepUpdateOne) Where(ps ...predicate.CapturedStep) *CapturedStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CapturedStepUpdateOne) Select(field string, fields ...string) *CapturedStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CapturedStep entity.
func (_u *CapturedStepUpdateOne) Save(ctx context.Context) (*CapturedStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CapturedStepUpdateOne) SaveX(ctx context.Context) *CapturedStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CapturedStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CapturedStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CapturedStepUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CapturedStep.run"`)
	}
	return nil
}

func (_u *CapturedStepUpdateOne) sqlSave(ctx context.Context) (_node *CapturedStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(capturedstep.Table, capturedstep.Columns, sqlgraph.NewFieldSpec(capturedstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CapturedStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, capturedstep.FieldID)
		for _, f := range fields {
			if !capturedstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != capturedstep.FieldID {
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
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(capturedstep.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(capturedstep.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(capturedstep.FieldOutput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(capturedstep.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(capturedstep.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(capturedstep.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(capturedstep.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(capturedstep.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(capturedstep.FieldDurationMs, field.TypeInt64)
	}
	_node = &CapturedStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capturedstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
