package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CapturedStep holds the schema definition for one executed step of a task
// run. Output is stored after masking; raw tool output never reaches the
// database.
type CapturedStep struct {
	ent.Schema
}

// Fields of the CapturedStep.
func (CapturedStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("step_num").
			Immutable(),
		field.String("tool").
			Immutable(),
		field.JSON("params", map[string]interface{}{}).
			Optional().
			Comment("Step parameters with file content stripped"),
		field.Text("output").
			Comment("Masked tool output"),
		field.Bool("success"),
		field.String("error_kind").
			Optional(),
		field.Int64("duration_ms").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CapturedStep.
func (CapturedStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", TaskRun.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CapturedStep.
func (CapturedStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "step_num"),
		index.Fields("tool"),
	}
}
