// Code generated by ent, DO NOT EDIT.

package capturedstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the capturedstep type in the database.
	Label = "captured_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStepNum holds the string denoting the step_num field in the database.
	FieldStepNum = "step_num"
	// FieldTool holds the string denoting the tool field in the database.
	FieldTool = "tool"
	// FieldParams holds the string denoting the params field in the database.
	FieldParams = "params"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// TaskRunFieldID holds the string denoting the ID field of the TaskRun.
	TaskRunFieldID = "run_id"
	// Table holds the table name of the capturedstep in the database.
	Table = "captured_steps"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "captured_steps"
	// RunInverseTable is the table name for the TaskRun entity.
	// It exists in this package in order to avoid circular dependency with the "taskrun" package.
	RunInverseTable = "task_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for capturedstep fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldStepNum,
	FieldTool,
	FieldParams,
	FieldOutput,
	FieldSuccess,
	FieldErrorKind,
	FieldDurationMs,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the CapturedStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByStepNum orders the results by the step_num field.
func ByStepNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepNum, opts...).ToFunc()
}

// ByTool orders the results by the tool field.
func ByTool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTool, opts...).ToFunc()
}

// ByOutput orders the results by the output field.
func ByOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutput, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, TaskRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
