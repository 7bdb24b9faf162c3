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
	"github.com/funnel-ops/funnel/ent/runevent"
	"github.com/funnel-ops/funnel/ent/taskrun"
)

// TaskRunCreate is the builder for creating a TaskRun entity.
type TaskRunCreate struct {
	config
	mutation *TaskRunMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TaskRunCreate) SetSessionID(v string) *TaskRunCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTask sets the "task" field.
func (_c *TaskRunCreate) SetTask(v string) *TaskRunCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskRunCreate) SetStatus(v taskrun.Status) *TaskRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableStatus(v *taskrun.Status) *TaskRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *TaskRunCreate) SetAnswer(v string) *TaskRunCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableAnswer(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *TaskRunCreate) SetError(v string) *TaskRunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableError(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetStepsTotal sets the "steps_total" field.
func (_c *TaskRunCreate) SetStepsTotal(v int) *TaskRunCreate {
	_c.mutation.SetStepsTotal(v)
	return _c
}

// SetNillableStepsTotal sets the "steps_total" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableStepsTotal(v *int) *TaskRunCreate {
	if v != nil {
		_c.SetStepsTotal(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskRunCreate) SetStartedAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableStartedAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *TaskRunCreate) SetFinishedAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableFinishedAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskRunCreate) SetID(v string) *TaskRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the CapturedStep entity by IDs.
func (_c *TaskRunCreate) AddStepIDs(ids ...string) *TaskRunCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the CapturedStep entity.
func (_c *TaskRunCreate) AddSteps(v ...*CapturedStep) *TaskRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_c *TaskRunCreate) AddEventIDs(ids ...string) *TaskRunCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_c *TaskRunCreate) AddEvents(v ...*RunEvent) *TaskRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the TaskRunMutation object of the builder.
func (_c *TaskRunCreate) Mutation() *TaskRunMutation {
	return _c.mutation
}

// Save creates the TaskRun in the database.
func (_c *TaskRunCreate) Save(ctx context.Context) (*TaskRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskRunCreate) SaveX(ctx context.Context) *TaskRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := taskrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StepsTotal(); !ok {
		v := taskrun.DefaultStepsTotal
		_c.mutation.SetStepsTotal(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := taskrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskRunCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TaskRun.session_id"`)}
	}
	if _, ok := _c.mutation.Task(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required field "TaskRun.task"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := taskrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepsTotal(); !ok {
		return &ValidationError{Name: "steps_total", err: errors.New(`ent: missing required field "TaskRun.steps_total"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "TaskRun.started_at"`)}
	}
	return nil
}

func (_c *TaskRunCreate) sqlSave(ctx context.Context) (*TaskRun, error) {
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
			return nil, fmt.Errorf("unexpected TaskRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskRunCreate) createSpec() (*TaskRun, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskrun.Table, sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(taskrun.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(taskrun.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(taskrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(taskrun.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(taskrun.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.StepsTotal(); ok {
		_spec.SetField(taskrun.FieldStepsTotal, field.TypeInt, value)
		_node.StepsTotal = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(taskrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(taskrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskrun.StepsTable,
			Columns: []string{taskrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capturedstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskrun.EventsTable,
			Columns: []string{taskrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskRunCreateBulk is the builder for creating many TaskRun entities in bulk.
type TaskRunCreateBulk struct {
	config
	err      error
	builders []*TaskRunCreate
}

// Save creates the TaskRun entities in the database.
func (_c *TaskRunCreateBulk) Save(ctx context.Context) ([]*TaskRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskRunMutation)
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
func (_c *TaskRunCreateBulk) SaveX(ctx context.Context) []*TaskRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
