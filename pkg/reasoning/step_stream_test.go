package reasoning

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/models"
	"github.com/funnel-ops/funnel/pkg/session"
)

// collectStream drains a step stream and returns the concatenated think
// tokens plus the final step.
func collectStream(t *testing.T, events <-chan StreamEvent) (string, *models.Step) {
	t.Helper()
	var think strings.Builder
	var step *models.Step
	for ev := range events {
		if ev.Step != nil {
			require.Nil(t, step, "exactly one event may carry the step")
			step = ev.Step
			continue
		}
		require.Nil(t, step, "the step must be the last event")
		think.WriteString(ev.Token)
	}
	require.NotNil(t, step, "stream must end with a step")
	return think.String(), step
}

func TestGenerateNextStepStreaming_HappyPath(t *testing.T) {
	fake := &fakeLLM{
		streamText: `<think>List the agents before anything else.</think>
{"tool": "list_agents", "params": {}, "reasoning": "discovery first"}`,
		chunkSize: 3,
	}
	e := NewEngine(fake)
	state := session.New("s1")

	think, step := collectStream(t, e.GenerateNextStepStreaming(context.Background(), "check disk", state, nil))

	assert.Equal(t, "List the agents before anything else.", think)
	assert.Equal(t, models.ToolListAgents, step.Tool)
	assert.Equal(t, "step-1", step.StepID)
	assert.Equal(t, "discovery first", step.Reasoning)
}

func TestGenerateNextStepStreaming_StepIDTracksHistory(t *testing.T) {
	fake := &fakeLLM{streamText: `{"tool": "think"}`}
	e := NewEngine(fake)
	state := session.New("s1")
	state.UpdateFromStep(models.ToolThink, nil, "", true)
	state.UpdateFromStep(models.ToolThink, nil, "", true)

	_, step := collectStream(t, e.GenerateNextStepStreaming(context.Background(), "x", state, nil))
	assert.Equal(t, "step-3", step.StepID)
}

func TestGenerateNextStepStreaming_BudgetExhausted(t *testing.T) {
	e := NewEngine(&fakeLLM{streamErr: fmt.Errorf("must not be called")})
	state := session.New("s1")
	for i := 0; i < DefaultStepBudget; i++ {
		state.UpdateFromStep(models.ToolThink, nil, "", true)
	}

	_, step := collectStream(t, e.GenerateNextStepStreaming(context.Background(), "x", state, nil))
	require.Equal(t, models.ToolComplete, step.Tool)
	assert.Contains(t, step.ParamString("error"), "Too many steps")
}

func TestGenerateNextStepStreaming_BudgetResetByRecentEdit(t *testing.T) {
	fake := &fakeLLM{streamText: `{"tool": "think"}`}
	e := NewEngine(fake)
	state := session.New("s1")
	for i := 0; i < DefaultStepBudget; i++ {
		state.UpdateFromStep(models.ToolThink, nil, "", true)
	}
	state.UpdateFromStep(models.ToolWriteFile, map[string]any{"path": "a.txt", "content": "x"}, "", true)

	_, step := collectStream(t, e.GenerateNextStepStreaming(context.Background(), "x", state, nil))
	assert.Equal(t, models.ToolThink, step.Tool, "a recent successful edit keeps the loop alive")
}

func TestGenerateNextStepStreaming_HallucinationForcedComplete(t *testing.T) {
	fake := &fakeLLM{
		streamText: "<think>done</think>**Tool Output:** 5 files found\n{\"tool\": \"complete\", \"params\": {\"answer\": \"found 5 files\"}}",
	}
	e := NewEngine(fake)
	state := session.New("s1")

	_, step := collectStream(t, e.GenerateNextStepStreaming(context.Background(), "x", state, nil))
	require.Equal(t, models.ToolComplete, step.Tool)
	assert.Contains(t, step.ParamString("error"), "INVALID FORMAT")
}

func TestGenerateNextStepStreaming_NarrativeForcedComplete(t *testing.T) {
	fake := &fakeLLM{
		streamText: "<think>hmm</think>" + strings.Repeat("I will now proceed to list all of the agents. ", 4),
	}
	e := NewEngine(fake)
	state := session.New("s1")

	_, step := collectStream(t, e.GenerateNextStepStreaming(context.Background(), "x", state, nil))
	require.Equal(t, models.ToolComplete, step.Tool)
	assert.Contains(t, step.ParamString("error"), "INVALID FORMAT")
}

func TestGenerateNextStepStreaming_CompletionHallucinationBlocked(t *testing.T) {
	fake := &fakeLLM{
		streamText: `{"tool": "complete", "params": {"answer": "The largest files are C:\\Windows\\explorer.exe"}}`,
	}
	e := NewEngine(fake)
	state := session.New("s1")

	_, step := collectStream(t, e.GenerateNextStepStreaming(context.Background(), "x", state, nil))
	require.Equal(t, models.ToolComplete, step.Tool)
	assert.Contains(t, step.ParamString("error"), "INVALID FORMAT")
	assert.Empty(t, step.Answer())
}

func TestGenerateNextStepStreaming_CompletionAllowedAfterRealWork(t *testing.T) {
	fake := &fakeLLM{
		streamText: `{"tool": "complete", "params": {"answer": "Here are the top 3 files by size on web01."}}`,
	}
	e := NewEngine(fake)
	state := session.New("s1")
	state.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "web01", "command": "du -a"},
		"1234 /var/log/syslog", true)

	_, step := collectStream(t, e.GenerateNextStepStreaming(context.Background(), "x", state, nil))
	require.Equal(t, models.ToolComplete, step.Tool)
	assert.NotEmpty(t, step.Answer(), "answers grounded in executed steps pass through")
}

func TestGenerateNextStepStreaming_StreamSetupFailure(t *testing.T) {
	e := NewEngine(&fakeLLM{streamErr: fmt.Errorf("connect: refused")})
	state := session.New("s1")

	_, step := collectStream(t, e.GenerateNextStepStreaming(context.Background(), "x", state, nil))
	require.Equal(t, models.ToolComplete, step.Tool)
	assert.Contains(t, step.ParamString("error"), "LLM unavailable")
}
