// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/funnel-ops/funnel/ent/capturedstep"
	"github.com/funnel-ops/funnel/ent/taskrun"
)

// CapturedStep is the model entity for the CapturedStep schema.
type CapturedStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// StepNum holds the value of the "step_num" field.
	StepNum int `json:"step_num,omitempty"`
	// Tool holds the value of the "tool" field.
	Tool string `json:"tool,omitempty"`
	// Step parameters with file content stripped
	Params map[string]interface{} `json:"params,omitempty"`
	// Masked tool output
	Output string `json:"output,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind string `json:"error_kind,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CapturedStepQuery when eager-loading is set.
	Edges        CapturedStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CapturedStepEdges holds the relations/edges for other nodes in the graph.
type CapturedStepEdges struct {
	// Run holds the value of the run edge.
	Run *TaskRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CapturedStepEdges) RunOrErr() (*TaskRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: taskrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CapturedStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case capturedstep.FieldParams:
			values[i] = new([]byte)
		case capturedstep.FieldSuccess:
			values[i] = new(sql.NullBool)
		case capturedstep.FieldStepNum, capturedstep.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case capturedstep.FieldID, capturedstep.FieldRunID, capturedstep.FieldTool, capturedstep.FieldOutput, capturedstep.FieldErrorKind:
			values[i] = new(sql.NullString)
		case capturedstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CapturedStep fields.
func (_m *CapturedStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case capturedstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case capturedstep.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case capturedstep.FieldStepNum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_num", values[i])
			} else if value.Valid {
				_m.StepNum = int(value.Int64)
			}
		case capturedstep.FieldTool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool", values[i])
			} else if value.Valid {
				_m.Tool = value.String
			}
		case capturedstep.FieldParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Params); err != nil {
					return fmt.Errorf("unmarshal field params: %w", err)
				}
			}
		case capturedstep.FieldOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value.Valid {
				_m.Output = value.String
			}
		case capturedstep.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case capturedstep.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = value.String
			}
		case capturedstep.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case capturedstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CapturedStep.
// This includes values selected through modifiers, order, etc.
func (_m *CapturedStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the CapturedStep entity.
func (_m *CapturedStep) QueryRun() *TaskRunQuery {
	return NewCapturedStepClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this CapturedStep.
// Note that you need to call CapturedStep.Unwrap() before calling this method if this CapturedStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CapturedStep) Update() *CapturedStepUpdateOne {
	return NewCapturedStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CapturedStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CapturedStep) Unwrap() *CapturedStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CapturedStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CapturedStep) String() string {
	var builder strings.Builder
	builder.WriteString("CapturedStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("step_num=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepNum))
	builder.WriteString(", ")
	builder.WriteString("tool=")
	builder.WriteString(_m.Tool)
	builder.WriteString(", ")
	builder.WriteString("params=")
	builder.WriteString(fmt.Sprintf("%v", _m.Params))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(_m.Output)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("error_kind=")
	builder.WriteString(_m.ErrorKind)
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CapturedSteps is a parsable slice of CapturedStep.
type CapturedSteps []*CapturedStep
