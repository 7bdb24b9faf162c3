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
	"github.com/funnel-ops/funnel/ent/capturedstep"
	"github.com/funnel-ops/funnel/ent/predicate"
	"github.com/funnel-ops/funnel/ent/runevent"
	"github.com/funnel-ops/funnel/ent/taskrun"
)

// TaskRunUpdate is the builder for updating TaskRun entities.
type TaskRunUpdate struct {
	config
	hooks    []Hook
	mutation *TaskRunMutation
}

// Where appends a list predicates to the TaskRunUpdate builder.
func (_u *TaskRunUpdate) Where(ps ...predicate.TaskRun) *TaskRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskRunUpdate) SetStatus(v taskrun.Status) *TaskRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableStatus(v *taskrun.Status) *TaskRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *TaskRunUpdate) SetAnswer(v string) *TaskRunUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableAnswer(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *TaskRunUpdate) ClearAnswer() *TaskRunUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetError sets the "error" field.
func (_u *TaskRunUpdate) SetError(v string) *TaskRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableError(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TaskRunUpdate) ClearError() *TaskRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetStepsTotal sets the "steps_total" field.
func (_u *TaskRunUpdate) SetStepsTotal(v int) *TaskRunUpdate {
	_u.mutation.ResetStepsTotal()
	_u.mutation.SetStepsTotal(v)
	return _u
}

// SetNillableStepsTotal sets the "steps_total" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableStepsTotal(v *int) *TaskRunUpdate {
	if v != nil {
		_u.SetStepsTotal(*v)
	}
	return _u
}

// AddStepsTotal adds value to the "steps_total" field.
func (_u *TaskRunUpdate) AddStepsTotal(v int) *TaskRunUpdate {
	_u.mutation.AddStepsTotal(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *TaskRunUpdate) SetFinishedAt(v time.Time) *TaskRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableFinishedAt(v *time.Time) *TaskRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *TaskRunUpdate) ClearFinishedAt() *TaskRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the CapturedStep entity by IDs.
func (_u *TaskRunUpdate) AddStepIDs(ids ...string) *TaskRunUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the CapturedStep entity.
func (_u *TaskRunUpdate) AddSteps(v ...*CapturedStep) *TaskRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *TaskRunUpdate) AddEventIDs(ids ...string) *TaskRunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *TaskRunUpdate) AddEvents(v ...*RunEvent) *TaskRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the TaskRunMutation object of the builder.
func (_u *TaskRunUpdate) Mutation() *TaskRunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the CapturedStep entity.
func (_u *TaskRunUpdate) ClearSteps() *TaskRunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to CapturedStep entities by IDs.
func (_u *TaskRunUpdate) RemoveStepIDs(ids ...string) *TaskRunUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to CapturedStep entities.
func (_u *TaskRunUpdate) RemoveSteps(v ...*CapturedStep) *TaskRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *TaskRunUpdate) ClearEvents() *TaskRunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *TaskRunUpdate) RemoveEventIDs(ids ...string) *TaskRunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *TaskRunUpdate) RemoveEvents(v ...*RunEvent) *TaskRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskrun.Table, taskrun.Columns, sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(taskrun.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(taskrun.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(taskrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(taskrun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StepsTotal(); ok {
		_spec.SetField(taskrun.FieldStepsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsTotal(); ok {
		_spec.AddField(taskrun.FieldStepsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(taskrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(taskrun.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskRunUpdateOne is the builder for updating a single TaskRun entity.
type TaskRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskRunMutation
}

// SetStatus sets the "status" field.
func (_u *TaskRunUpdateOne) SetStatus(v taskrun.Status) *TaskRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableStatus(v *taskrun.Status) *TaskRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *TaskRunUpdateOne) SetAnswer(v string) *TaskRunUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableAnswer(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *TaskRunUpdateOne) ClearAnswer() *TaskRunUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetError sets the "error" field.
func (_u *TaskRunUpdateOne) SetError(v string) *TaskRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableError(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TaskRunUpdateOne) ClearError() *TaskRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetStepsTotal sets the "steps_total" field.
func (_u *TaskRunUpdateOne) SetStepsTotal(v int) *TaskRunUpdateOne {
	_u.mutation.ResetStepsTotal()
	_u.mutation.SetStepsTotal(v)
	return _u
}

// SetNillableStepsTotal sets the "steps_total" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableStepsTotal(v *int) *TaskRunUpdateOne {
	if v != nil {
		_u.SetStepsTotal(*v)
	}
	return _u
}

// AddStepsTotal adds value to the "steps_total" field.
func (_u *TaskRunUpdateOne) AddStepsTotal(v int) *TaskRunUpdateOne {
	_u.mutation.AddStepsTotal(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *TaskRunUpdateOne) SetFinishedAt(v time.Time) *TaskRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableFinishedAt(v *time.Time) *TaskRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *TaskRunUpdateOne) ClearFinishedAt() *TaskRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the CapturedStep entity by IDs.
func (_u *TaskRunUpdateOne) AddStepIDs(ids ...string) *TaskRunUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the CapturedStep entity.
func (_u *TaskRunUpdateOne) AddSteps(v ...*CapturedStep) *TaskRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *TaskRunUpdateOne) AddEventIDs(ids ...string) *TaskRunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *TaskRunUpdateOne) AddEvents(v ...*RunEvent) *TaskRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the TaskRunMutation object of the builder.
func (_u *TaskRunUpdateOne) Mutation() *TaskRunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the CapturedStep entity.
func (_u *TaskRunUpdateOne) ClearSteps() *TaskRunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to CapturedStep entities by IDs.
func (_u *TaskRunUpdateOne) RemoveStepIDs(ids ...string) *TaskRunUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to CapturedStep entities.
func (_u *TaskRunUpdateOne) RemoveSteps(v ...*CapturedStep) *TaskRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *TaskRunUpdateOne) ClearEvents() *TaskRunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *TaskRunUpdateOne) RemoveEventIDs(ids ...string) *TaskRunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *TaskRunUpdateOne) RemoveEvents(v ...*RunEvent) *TaskRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the TaskRunUpdate builder.
func (_u *TaskRunUpdateOne) Where(ps ...predicate.TaskRun) *TaskRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskRunUpdateOne) Select(field string, fields ...string) *TaskRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskRun entity.
func (_u *TaskRunUpdateOne) Save(ctx context.Context) (*TaskRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskRunUpdateOne) SaveX(ctx context.Context) *TaskRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskRunUpdateOne) sqlSave(ctx context.Context) (_node *TaskRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskrun.Table, taskrun.Columns, sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskrun.FieldID)
		for _, f := range fields {
			if !taskrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskrun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(taskrun.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(taskrun.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(taskrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(taskrun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StepsTotal(); ok {
		_spec.SetField(taskrun.FieldStepsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsTotal(); ok {
		_spec.AddField(taskrun.FieldStepsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(taskrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(taskrun.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaskRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
