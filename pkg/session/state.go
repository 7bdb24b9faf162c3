// Package session holds the per-session ground-truth record of everything the
// orchestrator has observed, and formats it into the bounded context block
// that is the LLM's only view of state.
package session

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/funnel-ops/funnel/pkg/models"
)

// maxObservations bounds the free-form observation list in EnvironmentFacts.
const maxObservations = 20

// EnvironmentFacts aggregates what scans and shell output revealed about the
// environment the session operates in.
type EnvironmentFacts struct {
	FileCount     int      `json:"file_count"`
	DirCount      int      `json:"dir_count"`
	TotalBytes    int64    `json:"total_bytes"`
	ProjectTypes  []string `json:"project_types,omitempty"`  // python|node|docker|...
	Frameworks    []string `json:"frameworks,omitempty"`     // fastapi|pytest|...
	GitBranch     string   `json:"git_branch,omitempty"`
	PythonVersion string   `json:"python_version,omitempty"`
	NodeVersion   string   `json:"node_version,omitempty"`
	WorkingDir    string   `json:"working_dir,omitempty"`
	DockerRunning bool     `json:"docker_running,omitempty"`
	Observations  []string `json:"observations,omitempty"`
}

// FileMetadata is what a scan row revealed about one file.
type FileMetadata struct {
	SizeBytes int64     `json:"size_bytes"`
	HumanSize string    `json:"human_size"`
	Modified  time.Time `json:"modified,omitzero"`
	FileType  string    `json:"file_type,omitempty"`
	LineCount int       `json:"line_count,omitempty"`
}

// State is the ground-truth record for one session. Mutation is confined to
// the driver goroutine that owns the session; only the registry is shared.
type State struct {
	SessionID string

	ScannedPaths map[string]bool
	Files        []string
	Dirs         []string
	FileMetadata map[string]FileMetadata

	ReadFiles   map[string]bool
	EditedFiles map[string]bool

	CompletedSteps []models.CompletedStep

	Environment EnvironmentFacts
	Ledger      *Ledger

	DiscoveredAgents []string
	QueriedAgents    []string
	AgentsVerified   bool

	TaskPlan []models.TaskPlanItem

	// UserInfo persists across tasks within the session (name, preferences).
	UserInfo map[string]string
}

// New creates an empty session state for the given id.
func New(sessionID string) *State {
	return &State{
		SessionID:    sessionID,
		ScannedPaths: make(map[string]bool),
		FileMetadata: make(map[string]FileMetadata),
		ReadFiles:    make(map[string]bool),
		EditedFiles:  make(map[string]bool),
		Ledger:       NewLedger(),
		UserInfo:     make(map[string]string),
	}
}

// Reset clears observations for a fresh task while preserving cross-task
// memory (user info and the conversation ledger).
func (s *State) Reset() {
	ledger := s.Ledger
	userInfo := s.UserInfo
	*s = *New(s.SessionID)
	s.Ledger = ledger
	s.UserInfo = userInfo
}

// HasRead reports whether path was already read this session.
func (s *State) HasRead(path string) bool { return s.ReadFiles[path] }

// HasEdited reports whether path was mutated this session.
func (s *State) HasEdited(path string) bool { return s.EditedFiles[path] }

// HasScanned reports whether path's listing was already ingested.
func (s *State) HasScanned(path string) bool { return s.ScannedPaths[path] }

// GetEditableFiles returns discovered files that were read and so may be
// edited with full knowledge of their contents.
func (s *State) GetEditableFiles() []string {
	var out []string
	for _, f := range s.Files {
		if s.ReadFiles[f] {
			out = append(out, f)
		}
	}
	return out
}

// GetUnreadFiles returns discovered files not yet read.
func (s *State) GetUnreadFiles() []string {
	var out []string
	for _, f := range s.Files {
		if !s.ReadFiles[f] {
			out = append(out, f)
		}
	}
	return out
}

// agentListPattern matches one line of list_agents output ("- id (platform) ...").
var agentListPattern = regexp.MustCompile(`(?m)^- (\S+)`)

// UpdateFromStep ingests one executed step: appends exactly one CompletedStep,
// mutates the observation sets for the tool, and runs ledger extraction on
// success. tool=none is the only no-op (idempotent by contract).
func (s *State) UpdateFromStep(tool models.Tool, params map[string]any, output string, success bool) {
	if tool == models.ToolNone {
		return
	}

	step := models.CompletedStep{
		StepID:        fmt.Sprintf("step-%d", len(s.CompletedSteps)+1),
		Tool:          tool,
		Params:        stripContent(params),
		OutputSummary: summarize(output, 80),
		Success:       success,
		Timestamp:     time.Now(),
	}
	if !success {
		step.ErrorKind = ClassifyError(output)
		step.ErrorMessage = truncate(output, 200)
	}
	if id, ok := params["step_id"].(string); ok && id != "" {
		step.StepID = id
	}
	s.CompletedSteps = append(s.CompletedSteps, step)

	outcome := "ok"
	if !success {
		outcome = "failed"
	}
	s.Ledger.RecordAction(fmt.Sprintf("%s %s: %s", tool, outcome, step.OutputSummary))

	if success {
		s.applyObservations(tool, params, output)
		s.Ledger.ExtractFrom(tool, paramString(params, "command"), output)
		if tool == models.ToolExecuteShell {
			s.extractShellFacts(output)
		}
	}
}

// applyObservations applies the per-tool state transitions for a successful step.
func (s *State) applyObservations(tool models.Tool, params map[string]any, output string) {
	path := paramString(params, "path")
	if path == "" {
		path = paramString(params, "file_path")
	}

	switch tool {
	case models.ToolScanWorkspace:
		scanPath := path
		if scanPath == "" {
			scanPath = "."
		}
		s.ScannedPaths[scanPath] = true
		s.IngestScanOutput(output)
		s.detectProjectType()

	case models.ToolReadFile:
		if path != "" {
			s.ReadFiles[path] = true
		}

	case models.ToolWriteFile, models.ToolReplaceInFile, models.ToolInsertInFile, models.ToolAppendToFile:
		if path != "" {
			s.EditedFiles[path] = true
			if !contains(s.Files, path) {
				s.Files = append(s.Files, path)
			}
		}

	case models.ToolListAgents:
		s.AgentsVerified = true
		for _, m := range agentListPattern.FindAllStringSubmatch(output, -1) {
			if !contains(s.DiscoveredAgents, m[1]) {
				s.DiscoveredAgents = append(s.DiscoveredAgents, m[1])
			}
		}

	case models.ToolExecute, models.ToolRemoteBash:
		if agent := paramString(params, "agent_id"); agent != "" && agent != "localhost" {
			if containsFold(s.DiscoveredAgents, agent) && !containsFold(s.QueriedAgents, agent) {
				s.QueriedAgents = append(s.QueriedAgents, agent)
			}
		}
	}
}

// AddObservation records a free-form environment observation, bounded.
func (s *State) AddObservation(obs string) {
	if obs == "" || contains(s.Environment.Observations, obs) {
		return
	}
	if len(s.Environment.Observations) >= maxObservations {
		return
	}
	s.Environment.Observations = append(s.Environment.Observations, obs)
}

// RemainingAgents returns discovered agents not yet queried, preserving order.
func (s *State) RemainingAgents() []string {
	var out []string
	for _, a := range s.DiscoveredAgents {
		if !containsFold(s.QueriedAgents, a) {
			out = append(out, a)
		}
	}
	return out
}

// CurrentPlanItem returns the first non-terminal plan item, or nil when the
// plan is empty or fully terminal.
func (s *State) CurrentPlanItem() *models.TaskPlanItem {
	for i := range s.TaskPlan {
		if !s.TaskPlan[i].Status.Terminal() {
			return &s.TaskPlan[i]
		}
	}
	return nil
}

// SetTaskPlan replaces the task plan with pending items built from descriptions.
func (s *State) SetTaskPlan(descriptions []string) {
	s.TaskPlan = s.TaskPlan[:0]
	for i, d := range descriptions {
		s.TaskPlan = append(s.TaskPlan, models.TaskPlanItem{
			Index:       i + 1,
			Description: d,
			Status:      models.PlanPending,
		})
	}
}

// AdvancePlan marks the current item completed and promotes the next to
// in_progress, keeping the exactly-one-current invariant.
func (s *State) AdvancePlan() {
	for i := range s.TaskPlan {
		if !s.TaskPlan[i].Status.Terminal() {
			s.TaskPlan[i].Status = models.PlanCompleted
			if i+1 < len(s.TaskPlan) {
				s.TaskPlan[i+1].Status = models.PlanInProgress
			}
			return
		}
	}
}

// LastSteps returns up to n most recent completed steps, oldest first.
func (s *State) LastSteps(n int) []models.CompletedStep {
	if len(s.CompletedSteps) <= n {
		return s.CompletedSteps
	}
	return s.CompletedSteps[len(s.CompletedSteps)-n:]
}

// stripContent removes bulky values (file contents) from params before they
// enter the immutable step record.
func stripContent(params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		if k == "content" || k == "new_content" || k == "old_content" {
			if str, ok := v.(string); ok {
				out[k] = fmt.Sprintf("<%d bytes>", len(str))
				continue
			}
		}
		out[k] = v
	}
	return out
}

// summarize collapses output into a single bounded line.
func summarize(output string, limit int) string {
	line := strings.Join(strings.Fields(output), " ")
	return truncate(line, limit)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func paramString(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// containsFold matches agent ids the way the guardrails do: case-insensitively.
func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
