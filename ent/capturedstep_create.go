// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/funnel-ops/funnel/ent/capturedstep"
	"github.com/funnel-ops/funnel/ent/taskrun"
)

// CapturedStepCreate is the builder for creating a CapturedStep entity.
type CapturedStepCreate struct {
	config
	mutation *CapturedStepMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *CapturedStepCreate) SetRunID(v string) *CapturedStepCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepNum sets the "step_num" field.
func (_c *CapturedStepCreate) SetStepNum(v int) *CapturedStepCreate {
	_c.mutation.SetStepNum(v)
	return _c
}

// SetTool sets the "tool" field.
func (_c *CapturedStepCreate) SetTool(v string) *CapturedStepCreate {
	_c.mutation.SetTool(v)
	return _c
}

// SetParams sets the "params" field.
func (_c *CapturedStepCreate) SetParams(v map[string]interface{}) *CapturedStepCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *CapturedStepCreate) SetOutput(v string) *CapturedStepCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *CapturedStepCreate) SetSuccess(v bool) *CapturedStepCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *CapturedStepCreate) SetErrorKind(v string) *CapturedStepCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *CapturedStepCreate) SetNillableErrorKind(v *string) *CapturedStepCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *CapturedStepCreate) SetDurationMs(v int64) *CapturedStepCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *CapturedStepCreate) SetNillableDurationMs(v *int64) *CapturedStepCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CapturedStepCreate) SetCreatedAt(v time.Time) *CapturedStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CapturedStepCreate) SetNillableCreatedAt(v *time.Time) *CapturedStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CapturedStepCreate) SetID(v string) *CapturedStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the TaskRun entity.
func (_c *CapturedStepCreate) SetRun(v *TaskRun) *CapturedStepCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the CapturedStepMutation object of the builder.
func (_c *CapturedStepCreate) Mutation() *CapturedStepMutation {
	return _c.mutation
}

// Save creates the CapturedStep in the database.
func (_c *CapturedStepCreate) Save(ctx context.Context) (*CapturedStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CapturedStepCreate) SaveX(ctx context.Context) *CapturedStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CapturedStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CapturedStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CapturedStepCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := capturedstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CapturedStepCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "CapturedStep.run_id"`)}
	}
	if _, ok := _c.mutation.StepNum(); !ok {
		return &ValidationError{Name: "step_num", err: errors.New(`ent: missing required field "CapturedStep.step_num"`)}
	}
	if _, ok := _c.mutation.Tool(); !ok {
		return &ValidationError{Name: "tool", err: errors.New(`ent: missing required field "CapturedStep.tool"`)}
	}
	if _, ok := _c.mutation.Output(); !ok {
		return &ValidationError{Name: "output", err: errors.New(`ent: missing required field "CapturedStep.output"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "CapturedStep.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CapturedStep.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "CapturedStep.run"`)}
	}
	return nil
}

func (_c *CapturedStepCreate) sqlSave(ctx context.Context) (*CapturedStep, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CapturedStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CapturedStepCreate) createSpec() (*CapturedStep, *sqlgraph.CreateSpec) {
	var (
		_node = &CapturedStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(capturedstep.Table, sqlgraph.NewFieldSpec(capturedstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepNum(); ok {
		_spec.SetField(capturedstep.FieldStepNum, field.TypeInt, value)
		_node.StepNum = value
	}
	if value, ok := _c.mutation.Tool(); ok {
		_spec.SetField(capturedstep.FieldTool, field.TypeString, value)
		_node.Tool = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(capturedstep.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(capturedstep.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(capturedstep.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(capturedstep.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(capturedstep.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(capturedstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   capturedstep.RunTable,
			Columns: []string{capturedstep.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CapturedStepCreateBulk is the builder for creating many CapturedStep entities in bulk.
type CapturedStepCreateBulk struct {
	config
	err      error
	builders []*CapturedStepCreate
}

// Save creates the CapturedStep entities in the database.
func (_c *CapturedStepCreateBulk) Save(ctx context.Context) ([]*CapturedStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CapturedStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CapturedStepMutation)
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
func (_c *CapturedStepCreateBulk) SaveX(ctx context.Context) []*CapturedStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CapturedStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CapturedStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
