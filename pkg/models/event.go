package models

// EventType is the kind of one SSE-style task event.
type EventType string

const (
	EventPlan     EventType = "plan"
	EventThinking EventType = "thinking"
	EventStatus   EventType = "status"
	EventResult   EventType = "result"
	EventComplete EventType = "complete"
)

// TaskEvent is one entry of the append-only event stream a task emits.
// A complete event carries either Answer or Error, never both.
type TaskEvent struct {
	Type    EventType      `json:"event_type"`
	StepNum int            `json:"step_num,omitempty"`
	Tool    Tool           `json:"tool,omitempty"`
	Content string         `json:"content,omitempty"`
	Result  *StepResult    `json:"result,omitempty"`
	Status  string         `json:"status,omitempty"`
	Plan    []TaskPlanItem `json:"plan,omitempty"`
	Answer  string         `json:"answer,omitempty"`
	Error   string         `json:"error,omitempty"`
	Done    bool           `json:"done,omitempty"`
}

// TaskRequest is the driver-boundary input for one task run.
type TaskRequest struct {
	Task          string `json:"task"`
	WorkspaceRoot string `json:"workspace_root,omitempty"`
	UserID        string `json:"user_id,omitempty"`
	SessionID     string `json:"session_id,omitempty"`
	MaxSteps      int    `json:"max_steps,omitempty"`
	PreserveState bool   `json:"preserve_state,omitempty"`
}
