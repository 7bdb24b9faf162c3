package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent holds the schema definition for one emitted task event, stored in
// emission order so a run's stream can be replayed exactly.
type RunEvent struct {
	ent.Schema
}

// Fields of the RunEvent.
func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("Order in the emitted stream"),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Comment("The full event as emitted, after masking"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunEvent.
func (RunEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", TaskRun.Type).
			Ref("events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunEvent.
func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "sequence"),
	}
}
