// Code generated by ent, DO NOT EDIT.

package taskrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskrun type in the database.
	Label = "task_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTask holds the string denoting the task field in the database.
	FieldTask = "task"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldStepsTotal holds the string denoting the steps_total field in the database.
	FieldStepsTotal = "steps_total"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// CapturedStepFieldID holds the string denoting the ID field of the CapturedStep.
	CapturedStepFieldID = "step_id"
	// RunEventFieldID holds the string denoting the ID field of the RunEvent.
	RunEventFieldID = "event_id"
	// Table holds the table name of the taskrun in the database.
	Table = "task_runs"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "captured_steps"
	// StepsInverseTable is the table name for the CapturedStep entity.
	// It exists in this package in order to avoid circular dependency with the "capturedstep" package.
	StepsInverseTable = "captured_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "run_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "run_events"
	// EventsInverseTable is the table name for the RunEvent entity.
	// It exists in this package in order to avoid circular dependency with the "runevent" package.
	EventsInverseTable = "run_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "run_id"
)

// Columns holds all SQL columns for taskrun fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTask,
	FieldStatus,
	FieldAnswer,
	FieldError,
	FieldStepsTotal,
	FieldStartedAt,
	FieldFinishedAt,
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
	// DefaultStepsTotal holds the default value on creation for the "steps_total" field.
	DefaultStepsTotal int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("taskrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TaskRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTask orders the results by the task field.
func ByTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTask, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByStepsTotal orders the results by the steps_total field.
func ByStepsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepsTotal, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, CapturedStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, RunEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
