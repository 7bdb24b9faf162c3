package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskRun holds the schema definition for one task execution: the user's
// request, its terminal outcome, and links to the captured steps and events.
type TaskRun struct {
	ent.Schema
}

// Fields of the TaskRun.
func (TaskRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Text("task").
			Immutable().
			Comment("The user's task text as submitted"),
		field.Enum("status").
			Values("running", "completed", "failed", "cancelled").
			Default("running"),
		field.Text("answer").
			Optional().
			Comment("Final answer when status is completed"),
		field.Text("error").
			Optional().
			Comment("Terminal error when status is failed"),
		field.Int("steps_total").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the TaskRun.
func (TaskRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", CapturedStep.Type),
		edge.To("events", RunEvent.Type),
	}
}

// Indexes of the TaskRun.
func (TaskRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "started_at"),
		index.Fields("status"),
	}
}
