// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/funnel-ops/funnel/ent/capturedstep"
	"github.com/funnel-ops/funnel/ent/runevent"
	"github.com/funnel-ops/funnel/ent/schema"
	"github.com/funnel-ops/funnel/ent/taskrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	capturedstepFields := schema.CapturedStep{}.Fields()
	_ = capturedstepFields
	// capturedstepDescCreatedAt is the schema descriptor for created_at field.
	capturedstepDescCreatedAt := capturedstepFields[9].Descriptor()
	// capturedstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	capturedstep.DefaultCreatedAt = capturedstepDescCreatedAt.Default.(func() time.Time)
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescCreatedAt is the schema descriptor for created_at field.
	runeventDescCreatedAt := runeventFields[5].Descriptor()
	// runevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	runevent.DefaultCreatedAt = runeventDescCreatedAt.Default.(func() time.Time)
	taskrunFields := schema.TaskRun{}.Fields()
	_ = taskrunFields
	// taskrunDescStepsTotal is the schema descriptor for steps_total field.
	taskrunDescStepsTotal := taskrunFields[6].Descriptor()
	// taskrun.DefaultStepsTotal holds the default value on creation for the steps_total field.
	taskrun.DefaultStepsTotal = taskrunDescStepsTotal.Default.(int)
	// taskrunDescStartedAt is the schema descriptor for started_at field.
	taskrunDescStartedAt := taskrunFields[7].Descriptor()
	// taskrun.DefaultStartedAt holds the default value on creation for the started_at field.
	taskrun.DefaultStartedAt = taskrunDescStartedAt.Default.(func() time.Time)
}
