package models

import (
	"fmt"
	"strings"
	"time"
)

// Tool identifies one of the closed set of actions the LLM may request.
type Tool string

const (
	ToolThink         Tool = "think"
	ToolComplete      Tool = "complete"
	ToolListAgents    Tool = "list_agents"
	ToolExecute       Tool = "execute"
	ToolRemoteBash    Tool = "remote_bash" // legacy alias for execute, kept for prompt compatibility
	ToolScanWorkspace Tool = "scan_workspace"
	ToolReadFile      Tool = "read_file"
	ToolWriteFile     Tool = "write_file"
	ToolReplaceInFile Tool = "replace_in_file"
	ToolInsertInFile  Tool = "insert_in_file"
	ToolAppendToFile  Tool = "append_to_file"
	ToolExecuteShell  Tool = "execute_shell"
	ToolDumpState     Tool = "dump_state"
	ToolNone          Tool = "none"
)

// knownTools is the closed set used by ParseTool for exact and partial matching.
var knownTools = []Tool{
	ToolThink, ToolComplete, ToolListAgents, ToolExecute, ToolRemoteBash,
	ToolScanWorkspace, ToolReadFile, ToolWriteFile, ToolReplaceInFile,
	ToolInsertInFile, ToolAppendToFile, ToolExecuteShell, ToolDumpState, ToolNone,
}

// ParseTool normalizes an LLM-provided tool name to a known Tool.
// Exact match wins; otherwise a unique substring match in either direction
// recovers sloppy names like "execute_command" → execute. Unknown names
// return ToolNone with ok=false so the caller can surface a format error.
func ParseTool(name string) (Tool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	for _, t := range knownTools {
		if normalized == string(t) {
			return t, true
		}
	}
	var candidates []Tool
	for _, t := range knownTools {
		if strings.Contains(normalized, string(t)) || strings.Contains(string(t), normalized) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 1 && normalized != "" {
		return candidates[0], true
	}
	return ToolNone, false
}

// IsRemoteExecute reports whether the tool dispatches to a remote agent.
func (t Tool) IsRemoteExecute() bool {
	return t == ToolExecute || t == ToolRemoteBash
}

// IsFileMutation reports whether the tool writes to the local workspace.
func (t Tool) IsFileMutation() bool {
	switch t {
	case ToolWriteFile, ToolReplaceInFile, ToolInsertInFile, ToolAppendToFile:
		return true
	}
	return false
}

// IsIdempotent reports whether repeating the tool yields no new information.
func (t Tool) IsIdempotent() bool {
	switch t {
	case ToolListAgents, ToolDumpState, ToolScanWorkspace:
		return true
	}
	return false
}

// Step is one LLM-proposed OODA action.
type Step struct {
	StepID    string         `json:"step_id"`
	Tool      Tool           `json:"tool"`
	Params    map[string]any `json:"params"`
	BatchID   string         `json:"batch_id,omitempty"`
	Reasoning string         `json:"reasoning,omitempty"`
}

// ParamString returns a string-valued param, or "" if absent or non-string.
func (s *Step) ParamString(key string) string {
	if s.Params == nil {
		return ""
	}
	if v, ok := s.Params[key].(string); ok {
		return v
	}
	return ""
}

// AgentID returns the target agent for execute/remote_bash steps.
func (s *Step) AgentID() string { return s.ParamString("agent_id") }

// Command returns the command param for execute/shell steps.
func (s *Step) Command() string { return s.ParamString("command") }

// Path returns the path param for file tools.
func (s *Step) Path() string {
	if p := s.ParamString("path"); p != "" {
		return p
	}
	return s.ParamString("file_path")
}

// Answer returns the final answer of a complete step.
func (s *Step) Answer() string { return s.ParamString("answer") }

// WithParam returns a shallow copy of the step with one param replaced.
// Steps flowing through guardrails are treated as immutable.
func (s *Step) WithParam(key string, value any) *Step {
	params := make(map[string]any, len(s.Params)+1)
	for k, v := range s.Params {
		params[k] = v
	}
	params[key] = value
	out := *s
	out.Params = params
	return &out
}

// NewCompleteStep builds a terminal complete step carrying either an answer
// or an error, never both.
func NewCompleteStep(stepID, answer, errMsg string) *Step {
	params := map[string]any{}
	if errMsg != "" {
		params["error"] = errMsg
	} else {
		params["answer"] = answer
	}
	return &Step{StepID: stepID, Tool: ToolComplete, Params: params}
}

// StepResult is what the executor observed for one step.
type StepResult struct {
	Success      bool      `json:"success"`
	Output       string    `json:"output"`
	ErrorKind    ErrorKind `json:"error_kind,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// CompletedStep is the immutable session-state record of an executed step.
// Params are stored with file content stripped; the output is summarized.
type CompletedStep struct {
	StepID        string         `json:"step_id"`
	Tool          Tool           `json:"tool"`
	Params        map[string]any `json:"params"`
	OutputSummary string         `json:"output_summary"`
	Success       bool           `json:"success"`
	ErrorKind     ErrorKind      `json:"error_kind,omitempty"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}

// PlanStatus is the lifecycle state of one task-plan item.
type PlanStatus string

const (
	PlanPending    PlanStatus = "pending"
	PlanInProgress PlanStatus = "in_progress"
	PlanCompleted  PlanStatus = "completed"
	PlanSkipped    PlanStatus = "skipped"
)

// Terminal reports whether the item needs no further work.
func (p PlanStatus) Terminal() bool {
	return p == PlanCompleted || p == PlanSkipped
}

// TaskPlanItem is one entry of the LLM-generated task plan.
type TaskPlanItem struct {
	Index       int        `json:"index"`
	Description string     `json:"description"`
	Status      PlanStatus `json:"status"`
	ToolHint    string     `json:"tool_hint,omitempty"`
}

func (i TaskPlanItem) String() string {
	return fmt.Sprintf("%d. [%s] %s", i.Index, i.Status, i.Description)
}
