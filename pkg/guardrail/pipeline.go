package guardrail

import (
	"fmt"
	"strings"

	"github.com/funnel-ops/funnel/pkg/models"
	"github.com/funnel-ops/funnel/pkg/session"
)

const (
	duplicateWindow = 10
	loopWindowSize  = 5
)

// completionHallucinationMarkers flag fabricated results inside a final
// answer: things the model could only know by inventing them when no real
// execution has happened.
var completionHallucinationMarkers = []string{
	"explorer.exe",
	"system32",
	`c:\`,
	"here are the top",
	"here are the largest",
}

// rule is one ordered check. A nil return passes the step to the next rule;
// a non-nil return is the pipeline's final output.
type rule func(step *models.Step, state *session.State) *models.Step

// Pipeline applies the fixed-order guardrail rules to each proposed step.
type Pipeline struct {
	rules []rule
}

// NewPipeline builds the pipeline with the canonical rule order.
func NewPipeline() *Pipeline {
	p := &Pipeline{}
	p.rules = []rule{
		p.validateExecute,
		p.forceRemoteAfterDiscovery,
		p.validateCompletion,
		p.suppressDuplicateExecute,
		p.detectLoops,
		p.dumpStateOnce,
		p.escalateReplaceFailures,
		p.vetoReRead,
		p.correctPath,
	}
	return p
}

// Apply runs the checks in order; the first rule that returns a step wins.
// The input step is returned unchanged when every rule passes.
func (p *Pipeline) Apply(step *models.Step, state *session.State) *models.Step {
	for _, r := range p.rules {
		if out := r(step, state); out != nil {
			return out
		}
	}
	return step
}

// validateExecute handles execute/remote_bash target and syntax validation.
func (p *Pipeline) validateExecute(step *models.Step, state *session.State) *models.Step {
	if !step.Tool.IsRemoteExecute() {
		return nil
	}
	agentID := step.AgentID()

	// localhost is always allowed: it is the discovery bootstrap target.
	if agentID == "localhost" {
		return nil
	}

	// Nothing discovered yet: rewrite to the discovery bootstrap instead of
	// letting the step fail on an unknown agent.
	if len(state.DiscoveredAgents) == 0 {
		out := step.WithParam("agent_id", "localhost")
		out = out.WithParam("command", "discover-peers")
		out.Reasoning = "no agents discovered yet; bootstrapping discovery first"
		return out
	}

	if !containsFold(state.DiscoveredAgents, agentID) {
		return models.NewCompleteStep(step.StepID, "",
			fmt.Sprintf("unknown agent %q; available agents: %s",
				agentID, strings.Join(state.DiscoveredAgents, ", ")))
	}

	if cmd := step.Command(); cmd != "" {
		if fixed, changed, _ := ValidatePowerShell(cmd); changed {
			return step.WithParam("command", fixed)
		}
	}
	return nil
}

// forceRemoteAfterDiscovery reroutes local tools to the remote agent the user
// asked about once agents exist. Running scan_workspace locally when the task
// names domain02 answers the wrong question.
func (p *Pipeline) forceRemoteAfterDiscovery(step *models.Step, state *session.State) *models.Step {
	if len(state.DiscoveredAgents) == 0 {
		return nil
	}
	if step.Tool != models.ToolScanWorkspace && step.Tool != models.ToolExecuteShell {
		return nil
	}

	request := lastUserRequest(state)
	matched, unavailable := MatchTargets(request, state.DiscoveredAgents)

	if len(matched) == 0 && len(unavailable) > 0 {
		return models.NewCompleteStep(step.StepID, "",
			fmt.Sprintf("requested target %q is not available; discovered agents: %s",
				unavailable[0], strings.Join(state.DiscoveredAgents, ", ")))
	}

	target := state.DiscoveredAgents[0]
	if len(matched) > 0 {
		target = matched[0]
	}

	command := step.Command()
	if command == "" {
		command = "ls -la"
	}
	return &models.Step{
		StepID: step.StepID,
		Tool:   models.ToolExecute,
		Params: map[string]any{
			"agent_id": target,
			"command":  command,
		},
		Reasoning: "agents are available; routing local action to " + target,
	}
}

// validateCompletion blocks completions whose answer is fabricated.
func (p *Pipeline) validateCompletion(step *models.Step, state *session.State) *models.Step {
	if step.Tool != models.ToolComplete {
		return nil
	}
	answer := step.Answer()
	if answer == "" {
		return nil
	}

	if containsHallucinationMarker(answer) && !hasRealProgress(state) {
		return models.NewCompleteStep(step.StepID, "",
			"completion rejected: the answer describes results but no step has actually succeeded")
	}

	// A long answer with no agents and nothing even attempted can only be
	// invented. Honest failure reports after attempted steps pass through.
	if len(answer) > 50 && len(state.DiscoveredAgents) == 0 && !hasAttemptedWork(state) {
		return models.NewCompleteStep(step.StepID, "",
			"no agent is available to have produced these results; run list_agents first")
	}
	return nil
}

// suppressDuplicateExecute blocks re-running a command that already succeeded.
func (p *Pipeline) suppressDuplicateExecute(step *models.Step, state *session.State) *models.Step {
	if !step.Tool.IsRemoteExecute() {
		return nil
	}
	agentID, command := step.AgentID(), step.Command()
	for _, done := range state.LastSteps(duplicateWindow) {
		if !done.Success || !done.Tool.IsRemoteExecute() {
			continue
		}
		prevAgent, _ := done.Params["agent_id"].(string)
		prevCmd, _ := done.Params["command"].(string)
		if prevAgent == agentID && prevCmd == command {
			return models.NewCompleteStep(step.StepID,
				fmt.Sprintf("result for %q on %s was already retrieved: %s",
					command, agentID, done.OutputSummary), "")
		}
	}
	return nil
}

// detectLoops forces completion when the recent window shows repetition.
// execute/remote_bash are exempt (suppressDuplicateExecute owns them), as are
// the meta tools that never touch the environment.
func (p *Pipeline) detectLoops(step *models.Step, state *session.State) *models.Step {
	switch {
	case step.Tool.IsRemoteExecute(),
		step.Tool == models.ToolThink,
		step.Tool == models.ToolComplete,
		step.Tool == models.ToolNone:
		return nil
	}

	recent := state.LastSteps(loopWindowSize)

	if step.Tool.IsFileMutation() {
		// Only successful repeats count: failed mutations are retries, and
		// repeated replace failures are escalateReplaceFailures' business.
		count := 0
		for _, done := range recent {
			if done.Success && done.Tool == step.Tool && paramPath(done.Params) == step.Path() {
				count++
			}
		}
		if count >= 2 {
			return models.NewCompleteStep(step.StepID, "",
				fmt.Sprintf("loop detected: %s on %s repeated without progress", step.Tool, step.Path()))
		}
		return nil
	}

	if step.Tool == models.ToolScanWorkspace || step.Tool == models.ToolDumpState {
		for _, done := range state.CompletedSteps {
			if done.Tool == step.Tool {
				return models.NewCompleteStep(step.StepID, "",
					fmt.Sprintf("loop detected: %s already ran; its results are in the session state", step.Tool))
			}
		}
		return nil
	}

	count := 0
	for _, done := range recent {
		if done.Tool == step.Tool {
			count++
		}
	}
	if count >= 2 {
		return models.NewCompleteStep(step.StepID, "",
			fmt.Sprintf("loop detected: %s repeated %d times in the last %d steps", step.Tool, count, loopWindowSize))
	}
	return nil
}

// dumpStateOnce allows dump_state at most once per session.
func (p *Pipeline) dumpStateOnce(step *models.Step, state *session.State) *models.Step {
	if step.Tool != models.ToolDumpState {
		return nil
	}
	for _, done := range state.CompletedSteps {
		if done.Tool == models.ToolDumpState {
			return models.NewCompleteStep(step.StepID, "", "dump_state is allowed once per session")
		}
	}
	return nil
}

// escalateReplaceFailures rewrites a replace_in_file to an insert after the
// same path failed to replace twice recently. The search text clearly does
// not exist in the file; inserting at the start at least makes progress.
func (p *Pipeline) escalateReplaceFailures(step *models.Step, state *session.State) *models.Step {
	if step.Tool != models.ToolReplaceInFile {
		return nil
	}
	failures := 0
	for _, done := range state.LastSteps(loopWindowSize) {
		if done.Tool == models.ToolReplaceInFile && !done.Success && paramPath(done.Params) == step.Path() {
			failures++
		}
	}
	if failures < 2 {
		return nil
	}
	out := &models.Step{
		StepID: step.StepID,
		Tool:   models.ToolInsertInFile,
		Params: map[string]any{
			"path":     step.Path(),
			"position": "start",
		},
		Reasoning: "replace_in_file failed repeatedly; inserting at start instead",
	}
	if content, ok := step.Params["new_content"]; ok {
		out.Params["content"] = content
	} else if content, ok := step.Params["content"]; ok {
		out.Params["content"] = content
	}
	return out
}

// vetoReRead turns a redundant read_file into a no-op; the content is already
// in session state and re-reading only burns a step.
func (p *Pipeline) vetoReRead(step *models.Step, state *session.State) *models.Step {
	if step.Tool != models.ToolReadFile {
		return nil
	}
	if state.HasRead(step.Path()) {
		return &models.Step{
			StepID:    step.StepID,
			Tool:      models.ToolNone,
			Params:    map[string]any{},
			Reasoning: fmt.Sprintf("%s was already read this session", step.Path()),
		}
	}
	return nil
}

// correctPath rewrites a bare filename to the unique known file it suffixes.
// Ambiguous suffixes are left alone: guessing between matches would silently
// edit the wrong file.
func (p *Pipeline) correctPath(step *models.Step, state *session.State) *models.Step {
	if !step.Tool.IsFileMutation() {
		return nil
	}
	path := step.Path()
	if path == "" || containsExact(state.Files, path) {
		return nil
	}
	var match string
	for _, f := range state.Files {
		if strings.HasSuffix(f, path) && f != path {
			if match != "" {
				return nil // ambiguous
			}
			match = f
		}
	}
	if match == "" {
		return nil
	}
	return step.WithParam("path", match)
}

func lastUserRequest(state *session.State) string {
	if state.Ledger == nil || len(state.Ledger.UserRequests) == 0 {
		return ""
	}
	return state.Ledger.UserRequests[len(state.Ledger.UserRequests)-1]
}

func hasAttemptedWork(state *session.State) bool {
	for _, done := range state.CompletedSteps {
		if done.Tool != models.ToolThink && done.Tool != models.ToolNone {
			return true
		}
	}
	return false
}

func hasRealProgress(state *session.State) bool {
	for _, done := range state.CompletedSteps {
		if done.Success && done.Tool != models.ToolThink && done.Tool != models.ToolNone {
			return true
		}
	}
	return false
}

func containsHallucinationMarker(answer string) bool {
	lower := strings.ToLower(answer)
	for _, marker := range completionHallucinationMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func containsExact(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func paramPath(params map[string]any) string {
	if p, ok := params["path"].(string); ok {
		return p
	}
	if p, ok := params["file_path"].(string); ok {
		return p
	}
	return ""
}
