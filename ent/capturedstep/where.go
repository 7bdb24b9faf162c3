// Code generated by ent, DO NOT EDIT.

package capturedstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/funnel-ops/funnel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldRunID, v))
}

// StepNum applies equality check predicate on the "step_num" field. It's identical to StepNumEQ.
func StepNum(v int) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldStepNum, v))
}

// Tool applies equality check predicate on the "tool" field. It's identical to ToolEQ.
func Tool(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldTool, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldOutput, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldSuccess, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldErrorKind, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldContainsFold(FieldRunID, v))
}

// StepNumEQ applies the EQ predicate on the "step_num" field.
func StepNumEQ(v int) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldStepNum, v))
}

// StepNumNEQ applies the NEQ predicate on the "step_num" field.
func StepNumNEQ(v int) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNEQ(FieldStepNum, v))
}

// StepNumIn applies the In predicate on the "step_num" field.
func StepNumIn(vs ...int) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIn(FieldStepNum, vs...))
}

// StepNumNotIn applies the NotIn predicate on the "step_num" field.
func StepNumNotIn(vs ...int) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotIn(FieldStepNum, vs...))
}

// StepNumGT applies the GT predicate on the "step_num" field.
func StepNumGT(v int) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGT(FieldStepNum, v))
}

// StepNumGTE applies the GTE predicate on the "step_num" field.
func StepNumGTE(v int) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGTE(FieldStepNum, v))
}

// StepNumLT applies the LT predicate on the "step_num" field.
func StepNumLT(v int) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLT(FieldStepNum, v))
}

// StepNumLTE applies the LTE predicate on the "step_num" field.
func StepNumLTE(v int) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLTE(FieldStepNum, v))
}

// ToolEQ applies the EQ predicate on the "tool" field.
func ToolEQ(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldTool, v))
}

// ToolNEQ applies the NEQ predicate on the "tool" field.
func ToolNEQ(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNEQ(FieldTool, v))
}

// ToolIn applies the In predicate on the "tool" field.
func ToolIn(vs ...string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIn(FieldTool, vs...))
}

// ToolNotIn applies the NotIn predicate on the "tool" field.
func ToolNotIn(vs ...string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotIn(FieldTool, vs...))
}

// ToolGT applies the GT predicate on the "tool" field.
func ToolGT(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGT(FieldTool, v))
}

// ToolGTE applies the GTE predicate on the "tool" field.
func ToolGTE(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGTE(FieldTool, v))
}

// ToolLT applies the LT predicate on the "tool" field.
func ToolLT(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLT(FieldTool, v))
}

// ToolLTE applies the LTE predicate on the "tool" field.
func ToolLTE(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLTE(FieldTool, v))
}

// ToolContains applies the Contains predicate on the "tool" field.
func ToolContains(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldContains(FieldTool, v))
}

// ToolHasPrefix applies the HasPrefix predicate on the "tool" field.
func ToolHasPrefix(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldHasPrefix(FieldTool, v))
}

// ToolHasSuffix applies the HasSuffix predicate on the "tool" field.
func ToolHasSuffix(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldHasSuffix(FieldTool, v))
}

// ToolEqualFold applies the EqualFold predicate on the "tool" field.
func ToolEqualFold(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEqualFold(FieldTool, v))
}

// ToolContainsFold applies the ContainsFold predicate on the "tool" field.
func ToolContainsFold(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldContainsFold(FieldTool, v))
}

// ParamsIsNil applies the IsNil predicate on the "params" field.
func ParamsIsNil() predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIsNull(FieldParams))
}

// ParamsNotNil applies the NotNil predicate on the "params" field.
func ParamsNotNil() predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotNull(FieldParams))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldContainsFold(FieldOutput, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldContainsFold(FieldErrorKind, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotNull(FieldDurationMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CapturedStep {
	return predicate.CapturedStep(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.CapturedStep {
	return predicate.CapturedStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.TaskRun) predicate.CapturedStep {
	return predicate.CapturedStep(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CapturedStep) predicate.CapturedStep {
	return predicate.CapturedStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CapturedStep) predicate.CapturedStep {
	return predicate.CapturedStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CapturedStep) predicate.CapturedStep {
	return predicate.CapturedStep(sql.NotPredicates(p))
}
