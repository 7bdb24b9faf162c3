// Package driver runs the OODA loop for one task: stream a step proposal
// from the reasoning engine, pass it through the guardrails, execute it,
// fold the observation into session state, and emit progress events.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/funnel-ops/funnel/pkg/dispatch"
	"github.com/funnel-ops/funnel/pkg/guardrail"
	"github.com/funnel-ops/funnel/pkg/localexec"
	"github.com/funnel-ops/funnel/pkg/masking"
	"github.com/funnel-ops/funnel/pkg/models"
	"github.com/funnel-ops/funnel/pkg/reasoning"
	"github.com/funnel-ops/funnel/pkg/session"
)

const (
	// DefaultMaxSteps bounds one task run. The engine's own step budget
	// covers the whole session; this bounds a single task.
	DefaultMaxSteps = 10

	// goalCheckInterval is how many iterations pass between goal checks.
	goalCheckInterval = 3

	// replanFailureRun is how many consecutive failures trigger a replan.
	replanFailureRun = 3

	defaultRemoteTimeout = 60
)

// RemoteExecutor dispatches commands to remote agents. *dispatch.Dispatcher
// implements it; tests substitute a fake.
type RemoteExecutor interface {
	Execute(ctx context.Context, req dispatch.ExecuteRequest) (*models.TaskResult, error)
}

// AgentDirectory resolves agents. *discovery.Service implements it.
type AgentDirectory interface {
	Discover(ctx context.Context, force bool) []*models.AgentCapabilities
	GetAgent(id string) (*models.AgentCapabilities, bool)
}

// EmitFunc receives each task event in order.
type EmitFunc func(models.TaskEvent)

// Options wires a Driver's collaborators.
type Options struct {
	Engine     *reasoning.Engine
	Guardrails *guardrail.Pipeline
	Discovery  AgentDirectory
	Remote     RemoteExecutor
	Sessions   *session.Registry
	Masker     *masking.Service

	// MaxSteps overrides DefaultMaxSteps when positive.
	MaxSteps int

	// DefaultWorkspace roots local file operations when a task does not
	// supply one.
	DefaultWorkspace string

	// ShellTimeout overrides the local execute_shell deadline when positive.
	ShellTimeout time.Duration
}

// Driver executes tasks. One instance serves all sessions; per-task state
// lives in the session registry.
type Driver struct {
	engine       *reasoning.Engine
	guard        *guardrail.Pipeline
	disc         AgentDirectory
	remote       RemoteExecutor
	sessions     *session.Registry
	masker       *masking.Service
	maxSteps     int
	workspace    string
	shellTimeout time.Duration
	log          *slog.Logger
}

// New creates a driver from its collaborators.
func New(opts Options) *Driver {
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	workspace := opts.DefaultWorkspace
	if workspace == "" {
		workspace = "."
	}
	masker := opts.Masker
	if masker == nil {
		masker = masking.NewService()
	}
	return &Driver{
		engine:       opts.Engine,
		guard:        opts.Guardrails,
		disc:         opts.Discovery,
		remote:       opts.Remote,
		sessions:     opts.Sessions,
		masker:       masker,
		maxSteps:     maxSteps,
		workspace:    workspace,
		shellTimeout: opts.ShellTimeout,
		log:          slog.With("component", "driver"),
	}
}

// Run drives one task to completion, emitting events as it goes. The final
// event is always a complete carrying either an answer or an error.
func (d *Driver) Run(ctx context.Context, req models.TaskRequest, emit EmitFunc) {
	state := d.sessions.GetOrCreate(sessionID(req))
	if !req.PreserveState {
		state.Reset()
	}
	state.Ledger.RecordRequest(req.Task)

	if d.answerIfConversational(ctx, req, emit) {
		return
	}

	plan := d.engine.GenerateTaskPlan(ctx, req.Task)
	state.SetTaskPlan(plan)
	emit(models.TaskEvent{Type: models.EventPlan, Plan: state.TaskPlan})

	maxSteps := req.MaxSteps
	if maxSteps <= 0 {
		maxSteps = d.maxSteps
	}
	workspace := req.WorkspaceRoot
	if workspace == "" {
		workspace = d.workspace
	}
	local := localexec.New(workspace)
	if d.shellTimeout > 0 {
		local.SetShellTimeout(d.shellTimeout)
	}

	for stepNum := 1; stepNum <= maxSteps; stepNum++ {
		proposed := d.streamStep(ctx, req.Task, state, stepNum, emit)
		if proposed == nil {
			emit(completeEvent(stepNum, "", "task cancelled"))
			return
		}

		step := d.guard.Apply(proposed, state)

		if step.Tool == models.ToolComplete {
			emit(completeEvent(stepNum, step.Answer(), step.ParamString("error")))
			return
		}

		result := d.executeStep(ctx, local, state, step)
		result.Output = d.masker.MaskOutput(result.Output)

		state.UpdateFromStep(step.Tool, step.Params, result.Output, result.Success)
		if result.Success {
			state.AdvancePlan()
		}
		emit(models.TaskEvent{
			Type:    models.EventResult,
			StepNum: stepNum,
			Tool:    step.Tool,
			Result:  result,
		})

		if stepNum%goalCheckInterval == 0 {
			if done := d.checkGoal(ctx, req.Task, state, stepNum, emit); done {
				return
			}
			d.replanIfStuck(ctx, req.Task, state, emit)
		}
	}

	emit(completeEvent(maxSteps, "", fmt.Sprintf("step limit reached after %d steps", maxSteps)))
}

// answerIfConversational short-circuits chit-chat: no plan, no tools, one
// complete event.
func (d *Driver) answerIfConversational(ctx context.Context, req models.TaskRequest, emit EmitFunc) bool {
	intent, confidence := d.engine.ClassifyIntent(ctx, req.Task)
	if intent != reasoning.IntentConversational || confidence < 0.8 {
		return false
	}
	answer, err := d.engine.AnswerConversational(ctx, req.Task, nil)
	if err != nil {
		d.log.Warn("Conversational answer failed, falling through to task flow", "error", err)
		return false
	}
	emit(completeEvent(0, answer, ""))
	return true
}

// streamStep runs one streaming generation, forwarding think tokens and
// status messages. Returns nil only when the context was cancelled before a
// step arrived.
func (d *Driver) streamStep(ctx context.Context, task string, state *session.State, stepNum int, emit EmitFunc) *models.Step {
	status := func(msg string) {
		emit(models.TaskEvent{Type: models.EventStatus, StepNum: stepNum, Status: msg})
	}

	var step *models.Step
	for ev := range d.engine.GenerateNextStepStreaming(ctx, task, state, status) {
		switch {
		case ev.Step != nil:
			step = ev.Step
		case ev.Token != "":
			emit(models.TaskEvent{Type: models.EventThinking, StepNum: stepNum, Content: ev.Token})
		}
	}
	return step
}

// executeStep routes one guarded step to its executor.
func (d *Driver) executeStep(ctx context.Context, local *localexec.Handler, state *session.State, step *models.Step) *models.StepResult {
	switch step.Tool {
	case models.ToolThink, models.ToolNone:
		return &models.StepResult{Success: true, Output: step.Reasoning}

	case models.ToolDumpState:
		return &models.StepResult{Success: true, Output: state.FormatForPrompt()}

	case models.ToolListAgents:
		return d.listAgents(ctx)

	case models.ToolExecute, models.ToolRemoteBash:
		return d.executeRemote(ctx, local, step)

	default:
		return local.Execute(ctx, step)
	}
}

// listAgents runs a forced discovery round. Zero discovered agents is a
// failure: the loop must not treat an empty network as verified.
func (d *Driver) listAgents(ctx context.Context) *models.StepResult {
	agents := d.disc.Discover(ctx, true)
	if len(agents) == 0 {
		return &models.StepResult{
			Success:      false,
			Output:       "no agents discovered on the network",
			ErrorKind:    models.ErrKindConnection,
			ErrorMessage: "no agents discovered on the network",
		}
	}

	var b strings.Builder
	for _, a := range agents {
		fmt.Fprintf(&b, "- %s (%s) %s:%d\n", a.AgentID, a.Platform, a.IPAddress, a.GRPCPort)
	}
	return &models.StepResult{Success: true, Output: b.String()}
}

// executeRemote dispatches an execute step. localhost is the bootstrap
// target: its discover command runs a discovery round, anything else runs in
// the local shell.
func (d *Driver) executeRemote(ctx context.Context, local *localexec.Handler, step *models.Step) *models.StepResult {
	agentID := step.AgentID()
	command := step.Command()

	if agentID == "" || agentID == "localhost" {
		if strings.Contains(command, "discover") {
			return d.listAgents(ctx)
		}
		shellStep := &models.Step{
			StepID: step.StepID,
			Tool:   models.ToolExecuteShell,
			Params: map[string]any{"command": command},
		}
		return local.Execute(ctx, shellStep)
	}

	taskType := models.TaskShell
	if agent, ok := d.disc.GetAgent(agentID); ok && agent.Platform == "windows" {
		taskType = models.TaskPowerShell
	}

	result, err := d.remote.Execute(ctx, dispatch.ExecuteRequest{
		AgentID:        agentID,
		Command:        command,
		Type:           taskType,
		TimeoutSeconds: stepTimeout(step),
	})
	if err != nil {
		return &models.StepResult{
			Success:      false,
			Output:       err.Error(),
			ErrorKind:    models.ErrKindUnknownAgent,
			ErrorMessage: err.Error(),
		}
	}

	output := result.Stdout
	if !result.Success && result.Stderr != "" {
		output = strings.TrimSpace(output + "\n" + result.Stderr)
	}
	return &models.StepResult{
		Success:      result.Success,
		Output:       output,
		ErrorKind:    errorKindFor(result),
		ErrorMessage: result.Stderr,
	}
}

// checkGoal asks the engine whether the goal is satisfied; a confident yes
// completes the task.
func (d *Driver) checkGoal(ctx context.Context, task string, state *session.State, stepNum int, emit EmitFunc) bool {
	check := d.engine.CheckGoalSatisfaction(ctx, task, state)
	if !check.Satisfied || check.SuggestedAction != "complete" {
		return false
	}
	answer := check.Reason
	if answer == "" {
		answer = "Task completed."
	}
	emit(completeEvent(stepNum, answer, ""))
	return true
}

// replanIfStuck overwrites the plan after a run of consecutive failures.
func (d *Driver) replanIfStuck(ctx context.Context, task string, state *session.State, emit EmitFunc) {
	recent := state.LastSteps(replanFailureRun)
	if len(recent) < replanFailureRun {
		return
	}
	for _, done := range recent {
		if done.Success {
			return
		}
	}

	d.log.Info("Consecutive failures, replanning", "task", task)
	plan := d.engine.GenerateReplan(ctx, task, state, "")
	state.SetTaskPlan(plan)
	emit(models.TaskEvent{Type: models.EventPlan, Plan: state.TaskPlan})
}

func errorKindFor(result *models.TaskResult) models.ErrorKind {
	if result.Success {
		return models.ErrKindNone
	}
	return result.ErrorCode.ErrorKind()
}

// completeEvent builds the terminal event; answer and error are exclusive.
func completeEvent(stepNum int, answer, errMsg string) models.TaskEvent {
	ev := models.TaskEvent{Type: models.EventComplete, StepNum: stepNum, Done: true}
	if errMsg != "" {
		ev.Error = errMsg
	} else {
		ev.Answer = answer
	}
	return ev
}

func sessionID(req models.TaskRequest) string {
	if req.SessionID != "" {
		return req.SessionID
	}
	if req.UserID != "" {
		return req.UserID
	}
	return "default"
}

// stepTimeout reads an explicit timeout param, defaulting conservatively.
// JSON numbers decode as float64, so both shapes are accepted.
func stepTimeout(step *models.Step) int {
	for _, key := range []string{"timeout", "timeout_seconds"} {
		switch v := step.Params[key].(type) {
		case float64:
			if v > 0 {
				return int(v)
			}
		case string:
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
	}
	return defaultRemoteTimeout
}
