// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/funnel-ops/funnel/ent/capturedstep"
	"github.com/funnel-ops/funnel/ent/predicate"
	"github.com/funnel-ops/funnel/ent/runevent"
	"github.com/funnel-ops/funnel/ent/taskrun"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCapturedStep = "CapturedStep"
	TypeRunEvent     = "RunEvent"
	TypeTaskRun      = "TaskRun"
)

// CapturedStepMutation represents an operation that mutates the CapturedStep nodes in the graph.
type CapturedStepMutation struct {
	config
	op             Op
	typ            string
	id             *string
	step_num       *int
	addstep_num    *int
	tool           *string
	params         *map[string]interface{}
	output         *string
	success        *bool
	error_kind     *string
	duration_ms    *int64
	addduration_ms *int64
	created_at     *time.Time
	clearedFields  map[string]struct{}
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*CapturedStep, error)
	predicates     []predicate.CapturedStep
}

var _ ent.Mutation = (*CapturedStepMutation)(nil)

// capturedstepOption allows management of the mutation configuration using functional options.
type capturedstepOption func(*CapturedStepMutation)

// newCapturedStepMutation creates new mutation for the CapturedStep entity.
func newCapturedStepMutation(c config, op Op, opts ...capturedstepOption) *CapturedStepMutation {
	m := &CapturedStepMutation{
		config:        c,
		op:            op,
		typ:           TypeCapturedStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCapturedStepID sets the ID field of the mutation.
func withCapturedStepID(id string) capturedstepOption {
	return func(m *CapturedStepMutation) {
		var (
			err   error
			once  sync.Once
			value *CapturedStep
		)
		m.oldValue = func(ctx context.Context) (*CapturedStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CapturedStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCapturedStep sets the old CapturedStep of the mutation.
func withCapturedStep(node *CapturedStep) capturedstepOption {
	return func(m *CapturedStepMutation) {
		m.oldValue = func(context.Context) (*CapturedStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CapturedStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CapturedStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CapturedStep entities.
func (m *CapturedStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CapturedStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CapturedStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CapturedStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *CapturedStepMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *CapturedStepMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the CapturedStep entity.
// If the CapturedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapturedStepMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *CapturedStepMutation) ResetRunID() {
	m.run = nil
}

// SetStepNum sets the "step_num" field.
func (m *CapturedStepMutation) SetStepNum(i int) {
	m.step_num = &i
	m.addstep_num = nil
}

// StepNum returns the value of the "step_num" field in the mutation.
func (m *CapturedStepMutation) StepNum() (r int, exists bool) {
	v := m.step_num
	if v == nil {
		return
	}
	return *v, true
}

// OldStepNum returns the old "step_num" field's value of the CapturedStep entity.
// If the CapturedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapturedStepMutation) OldStepNum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepNum: %w", err)
	}
	return oldValue.StepNum, nil
}

// AddStepNum adds i to the "step_num" field.
func (m *CapturedStepMutation) AddStepNum(i int) {
	if m.addstep_num != nil {
		*m.addstep_num += i
	} else {
		m.addstep_num = &i
	}
}

// AddedStepNum returns the value that was added to the "step_num" field in this mutation.
func (m *CapturedStepMutation) AddedStepNum() (r int, exists bool) {
	v := m.addstep_num
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepNum resets all changes to the "step_num" field.
func (m *CapturedStepMutation) ResetStepNum() {
	m.step_num = nil
	m.addstep_num = nil
}

// SetTool sets the "tool" field.
func (m *CapturedStepMutation) SetTool(s string) {
	m.tool = &s
}

// Tool returns the value of the "tool" field in the mutation.
func (m *CapturedStepMutation) Tool() (r string, exists bool) {
	v := m.tool
	if v == nil {
		return
	}
	return *v, true
}

// OldTool returns the old "tool" field's value of the CapturedStep entity.
// If the CapturedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapturedStepMutation) OldTool(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTool: %w", err)
	}
	return oldValue.Tool, nil
}

// ResetTool resets all changes to the "tool" field.
func (m *CapturedStepMutation) ResetTool() {
	m.tool = nil
}

// SetParams sets the "params" field.
func (m *CapturedStepMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *CapturedStepMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the CapturedStep entity.
// If the CapturedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapturedStepMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *CapturedStepMutation) ClearParams() {
	m.params = nil
	m.clearedFields[capturedstep.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *CapturedStepMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[capturedstep.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *CapturedStepMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, capturedstep.FieldParams)
}

// SetOutput sets the "output" field.
func (m *CapturedStepMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *CapturedStepMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the CapturedStep entity.
// If the CapturedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapturedStepMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ResetOutput resets all changes to the "output" field.
func (m *CapturedStepMutation) ResetOutput() {
	m.output = nil
}

// SetSuccess sets the "success" field.
func (m *CapturedStepMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *CapturedStepMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the CapturedStep entity.
// If the CapturedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapturedStepMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *CapturedStepMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *CapturedStepMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *CapturedStepMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the CapturedStep entity.
// If the CapturedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapturedStepMutation) OldErrorKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *CapturedStepMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[capturedstep.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *CapturedStepMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[capturedstep.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *CapturedStepMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, capturedstep.FieldErrorKind)
}

// SetDurationMs sets the "duration_ms" field.
func (m *CapturedStepMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *CapturedStepMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the CapturedStep entity.
// If the CapturedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapturedStepMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *CapturedStepMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *CapturedStepMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *CapturedStepMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[capturedstep.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *CapturedStepMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[capturedstep.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *CapturedStepMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, capturedstep.FieldDurationMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *CapturedStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CapturedStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CapturedStep entity.
// If the CapturedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapturedStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CapturedStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the TaskRun entity.
func (m *CapturedStepMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[capturedstep.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the TaskRun entity was cleared.
func (m *CapturedStepMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *CapturedStepMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *CapturedStepMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the CapturedStepMutation builder.
func (m *CapturedStepMutation) Where(ps ...predicate.CapturedStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CapturedStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CapturedStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CapturedStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CapturedStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CapturedStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CapturedStep).
func (m *CapturedStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CapturedStepMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.run != nil {
		fields = append(fields, capturedstep.FieldRunID)
	}
	if m.step_num != nil {
		fields = append(fields, capturedstep.FieldStepNum)
	}
	if m.tool != nil {
		fields = append(fields, capturedstep.FieldTool)
	}
	if m.params != nil {
		fields = append(fields, capturedstep.FieldParams)
	}
	if m.output != nil {
		fields = append(fields, capturedstep.FieldOutput)
	}
	if m.success != nil {
		fields = append(fields, capturedstep.FieldSuccess)
	}
	if m.error_kind != nil {
		fields = append(fields, capturedstep.FieldErrorKind)
	}
	if m.duration_ms != nil {
		fields = append(fields, capturedstep.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, capturedstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CapturedStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case capturedstep.FieldRunID:
		return m.RunID()
	case capturedstep.FieldStepNum:
		return m.StepNum()
	case capturedstep.FieldTool:
		return m.Tool()
	case capturedstep.FieldParams:
		return m.Params()
	case capturedstep.FieldOutput:
		return m.Output()
	case capturedstep.FieldSuccess:
		return m.Success()
	case capturedstep.FieldErrorKind:
		return m.ErrorKind()
	case capturedstep.FieldDurationMs:
		return m.DurationMs()
	case capturedstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CapturedStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case capturedstep.FieldRunID:
		return m.OldRunID(ctx)
	case capturedstep.FieldStepNum:
		return m.OldStepNum(ctx)
	case capturedstep.FieldTool:
		return m.OldTool(ctx)
	case capturedstep.FieldParams:
		return m.OldParams(ctx)
	case capturedstep.FieldOutput:
		return m.OldOutput(ctx)
	case capturedstep.FieldSuccess:
		return m.OldSuccess(ctx)
	case capturedstep.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case capturedstep.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case capturedstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CapturedStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CapturedStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case capturedstep.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case capturedstep.FieldStepNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepNum(v)
		return nil
	case capturedstep.FieldTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTool(v)
		return nil
	case capturedstep.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case capturedstep.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case capturedstep.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case capturedstep.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case capturedstep.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case capturedstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CapturedStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CapturedStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_num != nil {
		fields = append(fields, capturedstep.FieldStepNum)
	}
	if m.addduration_ms != nil {
		fields = append(fields, capturedstep.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CapturedStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case capturedstep.FieldStepNum:
		return m.AddedStepNum()
	case capturedstep.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CapturedStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case capturedstep.FieldStepNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepNum(v)
		return nil
	case capturedstep.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown CapturedStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CapturedStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(capturedstep.FieldParams) {
		fields = append(fields, capturedstep.FieldParams)
	}
	if m.FieldCleared(capturedstep.FieldErrorKind) {
		fields = append(fields, capturedstep.FieldErrorKind)
	}
	if m.FieldCleared(capturedstep.FieldDurationMs) {
		fields = append(fields, capturedstep.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CapturedStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CapturedStepMutation) ClearField(name string) error {
	switch name {
	case capturedstep.FieldParams:
		m.ClearParams()
		return nil
	case capturedstep.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case capturedstep.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown CapturedStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CapturedStepMutation) ResetField(name string) error {
	switch name {
	case capturedstep.FieldRunID:
		m.ResetRunID()
		return nil
	case capturedstep.FieldStepNum:
		m.ResetStepNum()
		return nil
	case capturedstep.FieldTool:
		m.ResetTool()
		return nil
	case capturedstep.FieldParams:
		m.ResetParams()
		return nil
	case capturedstep.FieldOutput:
		m.ResetOutput()
		return nil
	case capturedstep.FieldSuccess:
		m.ResetSuccess()
		return nil
	case capturedstep.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case capturedstep.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case capturedstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CapturedStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CapturedStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, capturedstep.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CapturedStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case capturedstep.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CapturedStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CapturedStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CapturedStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, capturedstep.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CapturedStepMutation) EdgeCleared(name string) bool {
	switch name {
	case capturedstep.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CapturedStepMutation) ClearEdge(name string) error {
	switch name {
	case capturedstep.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown CapturedStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CapturedStepMutation) ResetEdge(name string) error {
	switch name {
	case capturedstep.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown CapturedStep edge %s", name)
}

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	sequence      *int
	addsequence   *int
	event_type    *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunEvent, error)
	predicates    []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id string) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunEvent entities.
func (m *RunEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.run = nil
}

// SetSequence sets the "sequence" field.
func (m *RunEventMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RunEventMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RunEventMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RunEventMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RunEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetEventType sets the "event_type" field.
func (m *RunEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *RunEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *RunEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *RunEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RunEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *RunEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the TaskRun entity.
func (m *RunEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the TaskRun entity was cleared.
func (m *RunEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.run != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.sequence != nil {
		fields = append(fields, runevent.FieldSequence)
	}
	if m.event_type != nil {
		fields = append(fields, runevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, runevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldSequence:
		return m.Sequence()
	case runevent.FieldEventType:
		return m.EventType()
	case runevent.FieldPayload:
		return m.Payload()
	case runevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldSequence:
		return m.OldSequence(ctx)
	case runevent.FieldEventType:
		return m.OldEventType(ctx)
	case runevent.FieldPayload:
		return m.OldPayload(ctx)
	case runevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case runevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case runevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case runevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, runevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldSequence:
		m.ResetSequence()
		return nil
	case runevent.FieldEventType:
		m.ResetEventType()
		return nil
	case runevent.FieldPayload:
		m.ResetPayload()
		return nil
	case runevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	switch name {
	case runevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent edge %s", name)
}

// TaskRunMutation represents an operation that mutates the TaskRun nodes in the graph.
type TaskRunMutation struct {
	config
	op             Op
	typ            string
	id             *string
	session_id     *string
	task           *string
	status         *taskrun.Status
	answer         *string
	error          *string
	steps_total    *int
	addsteps_total *int
	started_at     *time.Time
	finished_at    *time.Time
	clearedFields  map[string]struct{}
	steps          map[string]struct{}
	removedsteps   map[string]struct{}
	clearedsteps   bool
	events         map[string]struct{}
	removedevents  map[string]struct{}
	clearedevents  bool
	done           bool
	oldValue       func(context.Context) (*TaskRun, error)
	predicates     []predicate.TaskRun
}

var _ ent.Mutation = (*TaskRunMutation)(nil)

// taskrunOption allows management of the mutation configuration using functional options.
type taskrunOption func(*TaskRunMutation)

// newTaskRunMutation creates new mutation for the TaskRun entity.
func newTaskRunMutation(c config, op Op, opts ...taskrunOption) *TaskRunMutation {
	m := &TaskRunMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskRunID sets the ID field of the mutation.
func withTaskRunID(id string) taskrunOption {
	return func(m *TaskRunMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskRun
		)
		m.oldValue = func(ctx context.Context) (*TaskRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskRun sets the old TaskRun of the mutation.
func withTaskRun(node *TaskRun) taskrunOption {
	return func(m *TaskRunMutation) {
		m.oldValue = func(context.Context) (*TaskRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskRun entities.
func (m *TaskRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TaskRunMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TaskRunMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TaskRunMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTask sets the "task" field.
func (m *TaskRunMutation) SetTask(s string) {
	m.task = &s
}

// Task returns the value of the "task" field in the mutation.
func (m *TaskRunMutation) Task() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTask returns the old "task" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldTask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTask: %w", err)
	}
	return oldValue.Task, nil
}

// ResetTask resets all changes to the "task" field.
func (m *TaskRunMutation) ResetTask() {
	m.task = nil
}

// SetStatus sets the "status" field.
func (m *TaskRunMutation) SetStatus(t taskrun.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskRunMutation) Status() (r taskrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldStatus(ctx context.Context) (v taskrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskRunMutation) ResetStatus() {
	m.status = nil
}

// SetAnswer sets the "answer" field.
func (m *TaskRunMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *TaskRunMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ClearAnswer clears the value of the "answer" field.
func (m *TaskRunMutation) ClearAnswer() {
	m.answer = nil
	m.clearedFields[taskrun.FieldAnswer] = struct{}{}
}

// AnswerCleared returns if the "answer" field was cleared in this mutation.
func (m *TaskRunMutation) AnswerCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldAnswer]
	return ok
}

// ResetAnswer resets all changes to the "answer" field.
func (m *TaskRunMutation) ResetAnswer() {
	m.answer = nil
	delete(m.clearedFields, taskrun.FieldAnswer)
}

// SetError sets the "error" field.
func (m *TaskRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TaskRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TaskRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[taskrun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TaskRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TaskRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, taskrun.FieldError)
}

// SetStepsTotal sets the "steps_total" field.
func (m *TaskRunMutation) SetStepsTotal(i int) {
	m.steps_total = &i
	m.addsteps_total = nil
}

// StepsTotal returns the value of the "steps_total" field in the mutation.
func (m *TaskRunMutation) StepsTotal() (r int, exists bool) {
	v := m.steps_total
	if v == nil {
		return
	}
	return *v, true
}

// OldStepsTotal returns the old "steps_total" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldStepsTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepsTotal: %w", err)
	}
	return oldValue.StepsTotal, nil
}

// AddStepsTotal adds i to the "steps_total" field.
func (m *TaskRunMutation) AddStepsTotal(i int) {
	if m.addsteps_total != nil {
		*m.addsteps_total += i
	} else {
		m.addsteps_total = &i
	}
}

// AddedStepsTotal returns the value that was added to the "steps_total" field in this mutation.
func (m *TaskRunMutation) AddedStepsTotal() (r int, exists bool) {
	v := m.addsteps_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepsTotal resets all changes to the "steps_total" field.
func (m *TaskRunMutation) ResetStepsTotal() {
	m.steps_total = nil
	m.addsteps_total = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *TaskRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *TaskRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *TaskRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[taskrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *TaskRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *TaskRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, taskrun.FieldFinishedAt)
}

// AddStepIDs adds the "steps" edge to the CapturedStep entity by ids.
func (m *TaskRunMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the CapturedStep entity.
func (m *TaskRunMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the CapturedStep entity was cleared.
func (m *TaskRunMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the CapturedStep entity by IDs.
func (m *TaskRunMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the CapturedStep entity.
func (m *TaskRunMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *TaskRunMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *TaskRunMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddEventIDs adds the "events" edge to the RunEvent entity by ids.
func (m *TaskRunMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the RunEvent entity.
func (m *TaskRunMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the RunEvent entity was cleared.
func (m *TaskRunMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the RunEvent entity by IDs.
func (m *TaskRunMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the RunEvent entity.
func (m *TaskRunMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TaskRunMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TaskRunMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the TaskRunMutation builder.
func (m *TaskRunMutation) Where(ps ...predicate.TaskRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskRun).
func (m *TaskRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskRunMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, taskrun.FieldSessionID)
	}
	if m.task != nil {
		fields = append(fields, taskrun.FieldTask)
	}
	if m.status != nil {
		fields = append(fields, taskrun.FieldStatus)
	}
	if m.answer != nil {
		fields = append(fields, taskrun.FieldAnswer)
	}
	if m.error != nil {
		fields = append(fields, taskrun.FieldError)
	}
	if m.steps_total != nil {
		fields = append(fields, taskrun.FieldStepsTotal)
	}
	if m.started_at != nil {
		fields = append(fields, taskrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, taskrun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskrun.FieldSessionID:
		return m.SessionID()
	case taskrun.FieldTask:
		return m.Task()
	case taskrun.FieldStatus:
		return m.Status()
	case taskrun.FieldAnswer:
		return m.Answer()
	case taskrun.FieldError:
		return m.Error()
	case taskrun.FieldStepsTotal:
		return m.StepsTotal()
	case taskrun.FieldStartedAt:
		return m.StartedAt()
	case taskrun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskrun.FieldSessionID:
		return m.OldSessionID(ctx)
	case taskrun.FieldTask:
		return m.OldTask(ctx)
	case taskrun.FieldStatus:
		return m.OldStatus(ctx)
	case taskrun.FieldAnswer:
		return m.OldAnswer(ctx)
	case taskrun.FieldError:
		return m.OldError(ctx)
	case taskrun.FieldStepsTotal:
		return m.OldStepsTotal(ctx)
	case taskrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case taskrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskrun.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case taskrun.FieldTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTask(v)
		return nil
	case taskrun.FieldStatus:
		v, ok := value.(taskrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taskrun.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case taskrun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case taskrun.FieldStepsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepsTotal(v)
		return nil
	case taskrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case taskrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskRunMutation) AddedFields() []string {
	var fields []string
	if m.addsteps_total != nil {
		fields = append(fields, taskrun.FieldStepsTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskrun.FieldStepsTotal:
		return m.AddedStepsTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskrun.FieldStepsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepsTotal(v)
		return nil
	}
	return fmt.Errorf("unknown TaskRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskrun.FieldAnswer) {
		fields = append(fields, taskrun.FieldAnswer)
	}
	if m.FieldCleared(taskrun.FieldError) {
		fields = append(fields, taskrun.FieldError)
	}
	if m.FieldCleared(taskrun.FieldFinishedAt) {
		fields = append(fields, taskrun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskRunMutation) ClearField(name string) error {
	switch name {
	case taskrun.FieldAnswer:
		m.ClearAnswer()
		return nil
	case taskrun.FieldError:
		m.ClearError()
		return nil
	case taskrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskRunMutation) ResetField(name string) error {
	switch name {
	case taskrun.FieldSessionID:
		m.ResetSessionID()
		return nil
	case taskrun.FieldTask:
		m.ResetTask()
		return nil
	case taskrun.FieldStatus:
		m.ResetStatus()
		return nil
	case taskrun.FieldAnswer:
		m.ResetAnswer()
		return nil
	case taskrun.FieldError:
		m.ResetError()
		return nil
	case taskrun.FieldStepsTotal:
		m.ResetStepsTotal()
		return nil
	case taskrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case taskrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.steps != nil {
		edges = append(edges, taskrun.EdgeSteps)
	}
	if m.events != nil {
		edges = append(edges, taskrun.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskrun.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case taskrun.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, taskrun.EdgeSteps)
	}
	if m.removedevents != nil {
		edges = append(edges, taskrun.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case taskrun.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case taskrun.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsteps {
		edges = append(edges, taskrun.EdgeSteps)
	}
	if m.clearedevents {
		edges = append(edges, taskrun.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskRunMutation) EdgeCleared(name string) bool {
	switch name {
	case taskrun.EdgeSteps:
		return m.clearedsteps
	case taskrun.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskRunMutation) ResetEdge(name string) error {
	switch name {
	case taskrun.EdgeSteps:
		m.ResetSteps()
		return nil
	case taskrun.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown TaskRun edge %s", name)
}
