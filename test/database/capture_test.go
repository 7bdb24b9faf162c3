package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/ent/capturedstep"
	"github.com/funnel-ops/funnel/ent/runevent"
	"github.com/funnel-ops/funnel/ent/taskrun"
	"github.com/funnel-ops/funnel/pkg/capture"
	"github.com/funnel-ops/funnel/pkg/models"
)

func TestCaptureService_FullRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := NewTestClient(t)
	svc := capture.NewService(client)

	runID, err := svc.StartRun(ctx, "ops-1", "check disk usage on web01")
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	planEv := models.TaskEvent{Type: models.EventPlan,
		Plan: []models.TaskPlanItem{{Index: 1, Description: "run df on web01"}}}
	require.NoError(t, svc.RecordEvent(ctx, runID, 1, planEv))

	resultEv := models.TaskEvent{
		Type: models.EventResult, StepNum: 1, Tool: models.ToolExecute,
		Result: &models.StepResult{Success: true, Output: "/dev/sda1 42% used"},
	}
	require.NoError(t, svc.RecordEvent(ctx, runID, 2, resultEv))
	require.NoError(t, svc.RecordStep(ctx, runID, resultEv))

	completeEv := models.TaskEvent{Type: models.EventComplete, StepNum: 2,
		Answer: "Disk usage on web01 is 42%.", Done: true}
	require.NoError(t, svc.RecordEvent(ctx, runID, 3, completeEv))
	require.NoError(t, svc.FinishRun(ctx, runID, completeEv, 1))

	run := client.TaskRun.GetX(ctx, runID)
	assert.Equal(t, "ops-1", run.SessionID)
	assert.Equal(t, taskrun.StatusCompleted, run.Status)
	assert.Equal(t, "Disk usage on web01 is 42%.", run.Answer)
	assert.Equal(t, 1, run.StepsTotal)
	assert.NotNil(t, run.FinishedAt)

	steps := client.CapturedStep.Query().
		Where(capturedstep.RunID(runID)).
		AllX(ctx)
	require.Len(t, steps, 1)
	assert.Equal(t, string(models.ToolExecute), steps[0].Tool)
	assert.True(t, steps[0].Success)
	assert.Equal(t, "/dev/sda1 42% used", steps[0].Output)

	events := client.RunEvent.Query().
		Where(runevent.RunID(runID)).
		Order(runevent.BySequence()).
		AllX(ctx)
	require.Len(t, events, 3)
	assert.Equal(t, string(models.EventPlan), events[0].EventType)
	assert.Equal(t, string(models.EventComplete), events[2].EventType)
	assert.Equal(t, "run df on web01", events[0].Payload["plan"].([]interface{})[0].(map[string]interface{})["description"])
}

func TestCaptureService_FailedRun(t *testing.T) {
	ctx := context.Background()
	client := NewTestClient(t)
	svc := capture.NewService(client)

	runID, err := svc.StartRun(ctx, "ops-2", "reboot the coffee machine")
	require.NoError(t, err)

	final := models.TaskEvent{Type: models.EventComplete, StepNum: 10,
		Error: "step limit reached after 10 steps", Done: true}
	require.NoError(t, svc.FinishRun(ctx, runID, final, 10))

	run := client.TaskRun.GetX(ctx, runID)
	assert.Equal(t, taskrun.StatusFailed, run.Status)
	assert.Equal(t, "step limit reached after 10 steps", run.Error)
	assert.Empty(t, run.Answer)
}

func TestCaptureService_RunsQueryableBySession(t *testing.T) {
	ctx := context.Background()
	client := NewTestClient(t)
	svc := capture.NewService(client)

	for _, task := range []string{"first task", "second task"} {
		_, err := svc.StartRun(ctx, "ops-3", task)
		require.NoError(t, err)
	}
	_, err := svc.StartRun(ctx, "other", "unrelated")
	require.NoError(t, err)

	n := client.TaskRun.Query().
		Where(taskrun.SessionID("ops-3")).
		CountX(ctx)
	assert.Equal(t, 2, n)
}
