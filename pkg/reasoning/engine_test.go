package reasoning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/llm"
	"github.com/funnel-ops/funnel/pkg/models"
	"github.com/funnel-ops/funnel/pkg/session"
)

// fakeLLM scripts the client for engine tests. Complete returns the queued
// responses in order; Stream cuts streamText into chunkSize pieces.
type fakeLLM struct {
	responses []string
	calls     int
	err       error

	streamText string
	chunkSize  int
	streamErr  error

	status    *llm.ModelStatus
	statusErr error
}

func (f *fakeLLM) Complete(_ context.Context, _ []llm.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.calls >= len(f.responses) {
		return "", errors.New("fake: no scripted response left")
	}
	resp := f.responses[f.calls]
	f.calls++
	return resp, nil
}

func (f *fakeLLM) Stream(_ context.Context, _ []llm.Message) (<-chan llm.Token, error) {
	if f.streamErr != nil {
		return nil, f.streamErr
	}
	size := f.chunkSize
	if size <= 0 {
		size = 7
	}
	out := make(chan llm.Token)
	go func() {
		defer close(out)
		text := f.streamText
		for i := 0; i < len(text); i += size {
			end := i + size
			if end > len(text) {
				end = len(text)
			}
			out <- llm.Token{Text: text[i:end]}
		}
	}()
	return out, nil
}

func (f *fakeLLM) ModelStatus(_ context.Context) (*llm.ModelStatus, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	if f.status != nil {
		return f.status, nil
	}
	return &llm.ModelStatus{Loaded: true}, nil
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     Intent
		wantConf float64
	}{
		{"conversational", "conversational", nil, IntentConversational, 0.9},
		{"task", "task", nil, IntentTask, 0.9},
		{"both words prefers task", "conversational, though it could be a task", nil, IntentTask, 0.9},
		{"think block stripped", "<think>hmm</think>task", nil, IntentTask, 0.9},
		{"gibberish defaults to task", "banana", nil, IntentTask, 0.5},
		{"error defaults to task", "", errors.New("down"), IntentTask, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(&fakeLLM{responses: []string{tt.response}, err: tt.err})
			intent, conf := e.ClassifyIntent(context.Background(), "hello")
			assert.Equal(t, tt.want, intent)
			assert.InDelta(t, tt.wantConf, conf, 0.001)
		})
	}
}

func TestAnswerConversational(t *testing.T) {
	e := NewEngine(&fakeLLM{responses: []string{"<think>easy</think> Hello Ian! "}})
	answer, err := e.AnswerConversational(context.Background(), "hi", []string{"name is Ian"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ian!", answer)

	e = NewEngine(&fakeLLM{err: errors.New("down")})
	_, err = e.AnswerConversational(context.Background(), "hi", nil)
	assert.Error(t, err)
}

func TestGenerateTaskPlan(t *testing.T) {
	t.Run("parses numbered plan", func(t *testing.T) {
		e := NewEngine(&fakeLLM{responses: []string{"1. Discover agents\n2. Run df -h\n3. Report"}})
		plan := e.GenerateTaskPlan(context.Background(), "check disk everywhere")
		assert.Equal(t, []string{"Discover agents", "Run df -h", "Report"}, plan)
	})

	t.Run("llm failure falls back", func(t *testing.T) {
		e := NewEngine(&fakeLLM{err: errors.New("down")})
		assert.Equal(t, []string{"Execute task"}, e.GenerateTaskPlan(context.Background(), "x"))
	})

	t.Run("unparseable falls back", func(t *testing.T) {
		e := NewEngine(&fakeLLM{responses: []string{"sure thing, working on it"}})
		assert.Equal(t, []string{"Execute task"}, e.GenerateTaskPlan(context.Background(), "x"))
	})
}

func TestCheckGoalSatisfaction(t *testing.T) {
	state := session.New("s1")

	t.Run("parses verdict", func(t *testing.T) {
		e := NewEngine(&fakeLLM{responses: []string{
			`{"satisfied": true, "confidence": 0.9, "reason": "output captured", "suggested_action": "complete"}`,
		}})
		check := e.CheckGoalSatisfaction(context.Background(), "check disk", state)
		assert.True(t, check.Satisfied)
		assert.Equal(t, "complete", check.SuggestedAction)
	})

	t.Run("garbage degrades to continue", func(t *testing.T) {
		e := NewEngine(&fakeLLM{responses: []string{"not json at all"}})
		check := e.CheckGoalSatisfaction(context.Background(), "check disk", state)
		assert.False(t, check.Satisfied)
		assert.Equal(t, "continue", check.SuggestedAction)
	})

	t.Run("llm failure degrades to continue", func(t *testing.T) {
		e := NewEngine(&fakeLLM{err: errors.New("down")})
		check := e.CheckGoalSatisfaction(context.Background(), "check disk", state)
		assert.Equal(t, "continue", check.SuggestedAction)
	})
}

func TestGenerateReplan(t *testing.T) {
	state := session.New("s1")
	state.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "web01", "command": "df -h"},
		"connection refused", false)

	e := NewEngine(&fakeLLM{responses: []string{"1. Re-discover agents\n2. Retry on a reachable agent"}})
	plan := e.GenerateReplan(context.Background(), "check disk", state, "")
	assert.Equal(t, []string{"Re-discover agents", "Retry on a reachable agent"}, plan)

	e = NewEngine(&fakeLLM{err: errors.New("down")})
	assert.Equal(t, []string{"Report the failure to the user"},
		e.GenerateReplan(context.Background(), "check disk", state, "still failing"))
}
