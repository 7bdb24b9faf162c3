package reasoning

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/funnel-ops/funnel/pkg/llm"
	"github.com/funnel-ops/funnel/pkg/models"
	"github.com/funnel-ops/funnel/pkg/session"
)

// statusInterval is how often the monitor emits progress while the model is
// silent.
const statusInterval = 5 * time.Second

// StreamEvent is one element of a streaming step generation: either a chunk
// of think text or the final parsed step. Exactly one event carries Step,
// and it is always the last.
type StreamEvent struct {
	Token string
	Step  *models.Step
}

// StatusFunc receives human-readable progress messages during long waits.
type StatusFunc func(message string)

const stepSystemPrompt = `You are the reasoning engine of a remote command execution orchestrator.
Decide the single next step toward the goal. First reason inside <think>...</think>,
then output exactly one JSON object and nothing else:

{"tool": "<name>", "params": {...}, "reasoning": "<one line>"}

Tools:
  list_agents                     discover remote agents (required before execute)
  execute {agent_id, command}     run a command on a discovered agent
  scan_workspace {path?}          list the local workspace
  read_file {path}                read a local file
  write_file {path, content}      create/overwrite a local file
  replace_in_file {path, old_content, new_content}
  insert_in_file {path, position, content}
  append_to_file {path, content}
  execute_shell {command}         run a local shell command
  think {}                        reason without acting
  dump_state {}                   inspect accumulated state (once per session)
  complete {answer | error}       finish the task

Never invent tool output. Base every decision on the state block below.`

// GenerateNextStepStreaming streams the next-step decision. Think content is
// emitted incrementally as Token events; the final event carries the parsed
// Step. Malformed or hallucinated responses become a forced complete step
// with an INVALID FORMAT error rather than an engine error.
func (e *Engine) GenerateNextStepStreaming(
	ctx context.Context,
	task string,
	state *session.State,
	status StatusFunc,
) <-chan StreamEvent {
	out := make(chan StreamEvent, 16)
	stepID := fmt.Sprintf("step-%d", len(state.CompletedSteps)+1)

	// Step budget: once the cap is hit with no recent successful edit, stop
	// asking the model and force completion.
	if len(state.CompletedSteps) >= e.stepBudget && !recentSuccessfulEdit(state) {
		go func() {
			defer close(out)
			out <- StreamEvent{Step: models.NewCompleteStep(stepID, "",
				fmt.Sprintf("Too many steps (%d) without progress", len(state.CompletedSteps)))}
		}()
		return out
	}

	go func() {
		defer close(out)

		messages := []llm.Message{
			{Role: "system", Content: stepSystemPrompt},
			{Role: "user", Content: buildStepPrompt(task, state)},
		}

		streamCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		monitorDone := e.startStatusMonitor(streamCtx, status)
		// The monitor must never outlive the stream.
		defer func() { cancel(); <-monitorDone }()

		tokens, err := e.llm.Stream(streamCtx, messages)
		if err != nil {
			out <- StreamEvent{Step: models.NewCompleteStep(stepID, "",
				fmt.Sprintf("LLM unavailable: %v", err))}
			return
		}

		parser := NewThinkStreamParser()
		var raw strings.Builder
		for tok := range tokens {
			if tok.Err != nil {
				out <- StreamEvent{Step: models.NewCompleteStep(stepID, "",
					fmt.Sprintf("LLM stream failed: %v", tok.Err))}
				return
			}
			raw.WriteString(tok.Text)
			if visible := parser.Feed(tok.Text); visible != "" {
				select {
				case out <- StreamEvent{Token: visible}:
				case <-ctx.Done():
					return
				}
			}
		}
		if tail := parser.Finish(); tail != "" {
			select {
			case out <- StreamEvent{Token: tail}:
			case <-ctx.Done():
				return
			}
		}

		out <- StreamEvent{Step: e.parseFinalStep(raw.String(), parser.Payload(), stepID, state)}
	}()
	return out
}

// parseFinalStep turns the collected response into a Step, applying the
// hallucination and narrative checks before JSON extraction.
func (e *Engine) parseFinalStep(raw, payload, stepID string, state *session.State) *models.Step {
	if DetectHallucination(raw) {
		e.log.Warn("Hallucinated tool output detected", "step_id", stepID)
		return models.NewCompleteStep(stepID, "",
			"INVALID FORMAT: response contained fabricated tool output")
	}
	if IsNarrative(payload) {
		return models.NewCompleteStep(stepID, "",
			"INVALID FORMAT: response was narrative text instead of a JSON step")
	}

	step, err := ParseStep(payload, stepID)
	if err != nil {
		e.log.Warn("Step parse failed", "step_id", stepID, "error", err)
		return models.NewCompleteStep(stepID, "",
			fmt.Sprintf("INVALID FORMAT: %v", err))
	}

	if step.Tool == models.ToolComplete {
		if answer := step.Answer(); answer != "" &&
			DetectCompletionHallucination(answer) && !hasSuccessfulStep(state) {
			return models.NewCompleteStep(stepID, "",
				"INVALID FORMAT: final answer fabricates results no step produced")
		}
	}
	return step
}

// buildStepPrompt assembles the user prompt from the task, plan, and the
// session's formatted state block.
func buildStepPrompt(task string, state *session.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "GOAL: %s\n\n", task)
	b.WriteString(state.FormatForPrompt())
	b.WriteString("\n\nDecide the next step.")
	return b.String()
}

// startStatusMonitor emits progress messages until ctx is cancelled. The
// returned channel closes when the monitor goroutine exits, so callers can
// guarantee it never outlives the stream.
func (e *Engine) startStatusMonitor(ctx context.Context, status StatusFunc) <-chan struct{} {
	done := make(chan struct{})
	if status == nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		start := time.Now()
		ticker := time.NewTicker(statusInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				statusCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
				ms, err := e.llm.ModelStatus(statusCtx)
				cancel()
				if err == nil && !ms.Loaded {
					status(fmt.Sprintf("Loading model… (%d%%)", ms.VRAMPercent))
					continue
				}
				status(fmt.Sprintf("Reasoning… (%ds)", int(time.Since(start).Seconds())))
			}
		}
	}()
	return done
}

// recentSuccessfulEdit reports whether the last 5 steps include a successful
// file mutation. Progress resets the step-budget trip.
func recentSuccessfulEdit(state *session.State) bool {
	for _, done := range state.LastSteps(5) {
		if done.Success && done.Tool.IsFileMutation() {
			return true
		}
	}
	return false
}

func hasSuccessfulStep(state *session.State) bool {
	for _, done := range state.CompletedSteps {
		if done.Success && done.Tool != models.ToolThink && done.Tool != models.ToolNone {
			return true
		}
	}
	return false
}
