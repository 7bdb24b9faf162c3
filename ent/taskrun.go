// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/funnel-ops/funnel/ent/taskrun"
)

// TaskRun is the model entity for the TaskRun schema.
type TaskRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// The user's task text as submitted
	Task string `json:"task,omitempty"`
	// Status holds the value of the "status" field.
	Status taskrun.Status `json:"status,omitempty"`
	// Final answer when status is completed
	Answer string `json:"answer,omitempty"`
	// Terminal error when status is failed
	Error string `json:"error,omitempty"`
	// StepsTotal holds the value of the "steps_total" field.
	StepsTotal int `json:"steps_total,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskRunQuery when eager-loading is set.
	Edges        TaskRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskRunEdges holds the relations/edges for other nodes in the graph.
type TaskRunEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*CapturedStep `json:"steps,omitempty"`
	// Events holds the value of the events edge.
	Events []*RunEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e TaskRunEdges) StepsOrErr() ([]*CapturedStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e TaskRunEdges) EventsOrErr() ([]*RunEvent, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskrun.FieldStepsTotal:
			values[i] = new(sql.NullInt64)
		case taskrun.FieldID, taskrun.FieldSessionID, taskrun.FieldTask, taskrun.FieldStatus, taskrun.FieldAnswer, taskrun.FieldError:
			values[i] = new(sql.NullString)
		case taskrun.FieldStartedAt, taskrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskRun fields.
func (_m *TaskRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskrun.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case taskrun.FieldTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task", values[i])
			} else if value.Valid {
				_m.Task = value.String
			}
		case taskrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = taskrun.Status(value.String)
			}
		case taskrun.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case taskrun.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = value.String
			}
		case taskrun.FieldStepsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field steps_total", values[i])
			} else if value.Valid {
				_m.StepsTotal = int(value.Int64)
			}
		case taskrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case taskrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskRun.
// This includes values selected through modifiers, order, etc.
func (_m *TaskRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the TaskRun entity.
func (_m *TaskRun) QuerySteps() *CapturedStepQuery {
	return NewTaskRunClient(_m.config).QuerySteps(_m)
}

// QueryEvents queries the "events" edge of the TaskRun entity.
func (_m *TaskRun) QueryEvents() *RunEventQuery {
	return NewTaskRunClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this TaskRun.
// Note that you need to call TaskRun.Unwrap() before calling this method if this TaskRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskRun) Update() *TaskRunUpdateOne {
	return NewTaskRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskRun) Unwrap() *TaskRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskRun) String() string {
	var builder strings.Builder
	builder.WriteString("TaskRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("task=")
	builder.WriteString(_m.Task)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(_m.Error)
	builder.WriteString(", ")
	builder.WriteString("steps_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepsTotal))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TaskRuns is a parsable slice of TaskRun.
type TaskRuns []*TaskRun
