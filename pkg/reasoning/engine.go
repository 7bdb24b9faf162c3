// Package reasoning drives the LLM: prompt construction, token streaming,
// step parsing, intent classification, and replanning.
package reasoning

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/funnel-ops/funnel/pkg/llm"
	"github.com/funnel-ops/funnel/pkg/session"
)

// DefaultStepBudget caps total steps per task when recent activity shows no
// successful edit. A safety cap, not a correctness boundary.
const DefaultStepBudget = 15

// Intent classifies a user message.
type Intent string

const (
	IntentConversational Intent = "conversational"
	IntentTask           Intent = "task"
)

// GoalCheck is the parsed result of a goal-satisfaction query.
type GoalCheck struct {
	Satisfied       bool    `json:"satisfied"`
	Confidence      float64 `json:"confidence"`
	Reason          string  `json:"reason"`
	SuggestedAction string  `json:"suggested_action"` // complete|continue
}

// Engine owns all LLM interactions for the orchestrator.
type Engine struct {
	llm        llm.Client
	stepBudget int
	log        *slog.Logger
}

// NewEngine creates an engine with the default step budget.
func NewEngine(client llm.Client) *Engine {
	return &Engine{
		llm:        client,
		stepBudget: DefaultStepBudget,
		log:        slog.With("component", "reasoning"),
	}
}

// SetStepBudget overrides the per-task step cap.
func (e *Engine) SetStepBudget(n int) {
	if n > 0 {
		e.stepBudget = n
	}
}

const intentPrompt = `Classify the user message as either "conversational" (greeting, chit-chat, question about you) or "task" (a request to do something on a computer). Reply with exactly one word.

Message: %s`

// ClassifyIntent decides whether a message is chit-chat or work. Errors and
// ambiguity default to task: treating a task as chit-chat loses work, the
// reverse only costs one wasted plan.
func (e *Engine) ClassifyIntent(ctx context.Context, text string) (Intent, float64) {
	resp, err := e.llm.Complete(ctx, []llm.Message{
		{Role: "user", Content: fmt.Sprintf(intentPrompt, text)},
	})
	if err != nil {
		e.log.Warn("Intent classification failed, defaulting to task", "error", err)
		return IntentTask, 0.5
	}

	answer := strings.ToLower(stripThink(resp))
	hasConv := strings.Contains(answer, "conversational")
	hasTask := strings.Contains(answer, "task")
	switch {
	case hasTask: // both present also lands here: prefer task
		return IntentTask, 0.9
	case hasConv:
		return IntentConversational, 0.9
	default:
		return IntentTask, 0.5
	}
}

// AnswerConversational produces a plain reply, optionally grounded in
// retrieved memory facts.
func (e *Engine) AnswerConversational(ctx context.Context, text string, memory []string) (string, error) {
	system := "You are a concise assistant for a command-execution orchestrator."
	if len(memory) > 0 {
		system += "\n\nKnown facts about this user:\n- " + strings.Join(memory, "\n- ")
	}
	resp, err := e.llm.Complete(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: text},
	})
	if err != nil {
		return "", fmt.Errorf("conversational answer failed: %w", err)
	}
	return strings.TrimSpace(stripThink(resp)), nil
}

const planPrompt = `Break this task into a short numbered list of concrete steps (3-6 items). Each step is one action. Reply with the numbered list only.

Task: %s`

// GenerateTaskPlan asks for a step list and parses whatever list format the
// model chose. Parsing that yields nothing falls back to a single catch-all
// step so the OODA loop always has a plan.
func (e *Engine) GenerateTaskPlan(ctx context.Context, task string) []string {
	resp, err := e.llm.Complete(ctx, []llm.Message{
		{Role: "user", Content: fmt.Sprintf(planPrompt, task)},
	})
	if err != nil {
		e.log.Warn("Plan generation failed, using fallback plan", "error", err)
		return []string{"Execute task"}
	}
	steps := ParsePlanResponse(stripThink(resp))
	if len(steps) == 0 {
		return []string{"Execute task"}
	}
	return steps
}

const goalPrompt = `Goal: %s

Current state:
%s

Is the goal satisfied? Reply with JSON only:
{"satisfied": bool, "confidence": 0.0-1.0, "reason": "...", "suggested_action": "complete"|"continue"}`

// CheckGoalSatisfaction asks whether the goal is done given observed state.
// Anything unparseable degrades to continue: a wasted iteration beats a
// premature completion.
func (e *Engine) CheckGoalSatisfaction(ctx context.Context, goal string, state *session.State) GoalCheck {
	fallback := GoalCheck{SuggestedAction: "continue", Reason: "goal check unavailable"}

	resp, err := e.llm.Complete(ctx, []llm.Message{
		{Role: "user", Content: fmt.Sprintf(goalPrompt, goal, state.FormatForPrompt())},
	})
	if err != nil {
		e.log.Warn("Goal check failed", "error", err)
		return fallback
	}

	objText, found := ExtractJSONObject(stripThink(resp))
	if !found {
		return fallback
	}
	var check GoalCheck
	if err := json.Unmarshal([]byte(objText), &check); err != nil {
		return fallback
	}
	if check.SuggestedAction == "" {
		check.SuggestedAction = "continue"
	}
	return check
}

const replanPrompt = `The plan for this goal is failing. Produce a new short numbered list of steps that avoids the failures below.

Goal: %s

Recent failures:
%s

State:
%s`

// GenerateReplan builds a fresh plan that accounts for recent failures. On
// total LLM failure it returns a safe one-item plan.
func (e *Engine) GenerateReplan(ctx context.Context, goal string, state *session.State, lastErr string) []string {
	var failures strings.Builder
	for _, done := range state.LastSteps(5) {
		if !done.Success {
			fmt.Fprintf(&failures, "- %s: [%s] %s\n", done.Tool, done.ErrorKind, done.ErrorMessage)
		}
	}
	if lastErr != "" {
		fmt.Fprintf(&failures, "- %s\n", lastErr)
	}
	if failures.Len() == 0 {
		failures.WriteString("- (none recorded)\n")
	}

	resp, err := e.llm.Complete(ctx, []llm.Message{
		{Role: "user", Content: fmt.Sprintf(replanPrompt, goal, failures.String(), state.FormatForPrompt())},
	})
	if err != nil {
		e.log.Warn("Replan failed, using safe fallback", "error", err)
		return []string{"Report the failure to the user"}
	}
	steps := ParsePlanResponse(stripThink(resp))
	if len(steps) == 0 {
		return []string{"Report the failure to the user"}
	}
	return steps
}

// CheckModelStatus reports model residency for the status endpoint.
func (e *Engine) CheckModelStatus(ctx context.Context) (*llm.ModelStatus, error) {
	return e.llm.ModelStatus(ctx)
}
