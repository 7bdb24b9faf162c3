// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CapturedStep is the predicate function for capturedstep builders.
type CapturedStep func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// TaskRun is the predicate function for taskrun builders.
type TaskRun func(*sql.Selector)
