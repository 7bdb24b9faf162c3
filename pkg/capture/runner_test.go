package capture

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/driver"
	"github.com/funnel-ops/funnel/pkg/models"
)

type fakeStore struct {
	startErr error

	startedSession string
	startedTask    string
	events         []models.TaskEvent
	steps          []models.TaskEvent
	finished       *models.TaskEvent
	finishedSteps  int
}

func (f *fakeStore) StartRun(_ context.Context, sessionID, task string) (string, error) {
	if f.startErr != nil {
		return "", f.startErr
	}
	f.startedSession = sessionID
	f.startedTask = task
	return "run-1", nil
}

func (f *fakeStore) RecordEvent(_ context.Context, _ string, _ int, ev models.TaskEvent) error {
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeStore) RecordStep(_ context.Context, _ string, ev models.TaskEvent) error {
	f.steps = append(f.steps, ev)
	return nil
}

func (f *fakeStore) FinishRun(_ context.Context, _ string, final models.TaskEvent, steps int) error {
	f.finished = &final
	f.finishedSteps = steps
	return nil
}

type emittingRunner struct {
	events []models.TaskEvent
}

func (e *emittingRunner) Run(_ context.Context, _ models.TaskRequest, emit driver.EmitFunc) {
	for _, ev := range e.events {
		emit(ev)
	}
}

func taskStream() []models.TaskEvent {
	return []models.TaskEvent{
		{Type: models.EventPlan, Plan: []models.TaskPlanItem{{Description: "check disk"}}},
		{Type: models.EventThinking, StepNum: 1, Content: "df should tell us"},
		{Type: models.EventResult, StepNum: 1, Tool: models.ToolExecuteShell,
			Result: &models.StepResult{Success: true, Output: "42% used"}},
		{Type: models.EventComplete, StepNum: 2, Answer: "Disk is fine.", Done: true},
	}
}

func TestRunner_PersistsStream(t *testing.T) {
	store := &fakeStore{}
	runner := NewRunner(&emittingRunner{events: taskStream()}, store)

	var forwarded []models.TaskEvent
	runner.Run(context.Background(), models.TaskRequest{Task: "check disk", SessionID: "ops-1"},
		func(ev models.TaskEvent) { forwarded = append(forwarded, ev) })

	// The caller sees every frame, including thinking tokens.
	require.Len(t, forwarded, 4)

	assert.Equal(t, "ops-1", store.startedSession)
	assert.Equal(t, "check disk", store.startedTask)

	// Thinking frames are not persisted.
	require.Len(t, store.events, 3)
	assert.Equal(t, models.EventPlan, store.events[0].Type)
	assert.Equal(t, models.EventResult, store.events[1].Type)
	assert.Equal(t, models.EventComplete, store.events[2].Type)

	require.Len(t, store.steps, 1)
	assert.Equal(t, models.ToolExecuteShell, store.steps[0].Tool)

	require.NotNil(t, store.finished)
	assert.Equal(t, "Disk is fine.", store.finished.Answer)
	assert.Equal(t, 1, store.finishedSteps)
}

func TestRunner_StartFailureDegradesToPassthrough(t *testing.T) {
	store := &fakeStore{startErr: errors.New("connection refused")}
	runner := NewRunner(&emittingRunner{events: taskStream()}, store)

	var forwarded []models.TaskEvent
	runner.Run(context.Background(), models.TaskRequest{Task: "check disk"},
		func(ev models.TaskEvent) { forwarded = append(forwarded, ev) })

	assert.Len(t, forwarded, 4, "task still runs when capture is down")
	assert.Empty(t, store.events)
	assert.Nil(t, store.finished)
}

func TestRunner_FailedTaskRecordedAsFailed(t *testing.T) {
	store := &fakeStore{}
	runner := NewRunner(&emittingRunner{events: []models.TaskEvent{
		{Type: models.EventComplete, StepNum: 1, Error: "step limit reached after 10 steps", Done: true},
	}}, store)

	runner.Run(context.Background(), models.TaskRequest{Task: "impossible"}, func(models.TaskEvent) {})

	require.NotNil(t, store.finished)
	assert.Equal(t, "step limit reached after 10 steps", store.finished.Error)
	assert.Zero(t, store.finishedSteps)
}
