package models

// TaskType is the execution mode requested from an agent.
type TaskType string

const (
	TaskShell         TaskType = "shell"
	TaskPowerShell    TaskType = "powershell"
	TaskReadFile      TaskType = "read_file"
	TaskWriteFile     TaskType = "write_file"
	TaskListDirectory TaskType = "list_directory"
	TaskDotnetCode    TaskType = "dotnet_code"
)

// TaskErrorCode is the structured error reported for a remote execution.
type TaskErrorCode string

const (
	TaskErrNone              TaskErrorCode = "none"
	TaskErrTimeout           TaskErrorCode = "timeout"
	TaskErrElevationRequired TaskErrorCode = "elevation_required"
	TaskErrNotFound          TaskErrorCode = "not_found"
	TaskErrPermissionDenied  TaskErrorCode = "permission_denied"
	TaskErrInternal          TaskErrorCode = "internal"
	TaskErrCancelled         TaskErrorCode = "cancelled"
	TaskErrGRPC              TaskErrorCode = "grpc_error"
)

// ErrorKind maps a structured agent error code to the session error taxonomy.
// Structured codes take precedence over output-substring classification.
func (c TaskErrorCode) ErrorKind() ErrorKind {
	switch c {
	case TaskErrNone:
		return ErrKindNone
	case TaskErrTimeout:
		return ErrKindTimeout
	case TaskErrElevationRequired, TaskErrPermissionDenied:
		return ErrKindPermissionDenied
	case TaskErrNotFound:
		return ErrKindNotFound
	case TaskErrGRPC:
		return ErrKindConnection
	case TaskErrCancelled, TaskErrInternal:
		return ErrKindExecution
	default:
		return ErrKindExecution
	}
}

// TaskResult is the normalized outcome of one remote execution.
// Invariant: ErrorCode == TaskErrNone iff Success.
type TaskResult struct {
	Success    bool          `json:"success"`
	Stdout     string        `json:"stdout"`
	Stderr     string        `json:"stderr"`
	ExitCode   int           `json:"exit_code"`
	ErrorCode  TaskErrorCode `json:"error_code"`
	DurationMs int64         `json:"duration_ms"`
	TaskID     string        `json:"task_id"`
}

// OutputType tags one chunk of a streaming execution.
type OutputType string

const (
	OutputStdout OutputType = "stdout"
	OutputStderr OutputType = "stderr"
	OutputStatus OutputType = "status"
	OutputError  OutputType = "error"
)

// TaskOutput is one chunk of a server-streaming execution.
type TaskOutput struct {
	TaskID      string     `json:"task_id"`
	OutputType  OutputType `json:"output_type"`
	Content     string     `json:"content"`
	TimestampMs int64      `json:"timestamp_ms"`
}
