package models

// ErrorKind classifies a failed step for prompt feedback and replanning.
type ErrorKind string

const (
	ErrKindNone             ErrorKind = ""
	ErrKindSyntax           ErrorKind = "syntax_error"
	ErrKindTimeout          ErrorKind = "timeout"
	ErrKindPermissionDenied ErrorKind = "permission_denied"
	ErrKindNotFound         ErrorKind = "not_found"
	ErrKindConnection       ErrorKind = "connection_error"
	ErrKindResource         ErrorKind = "resource_error"
	ErrKindExecution        ErrorKind = "execution_error"
	ErrKindGRPC             ErrorKind = "grpc_error"
	ErrKindHallucination    ErrorKind = "hallucination"
	ErrKindLoopDetected     ErrorKind = "loop_detected"
	ErrKindUnknownAgent     ErrorKind = "unknown_agent"
)

// Adaptation returns the replanning hint surfaced to the LLM for a kind.
// The hint is the sole adaptation channel: errors never raise, they reappear
// in the next prompt.
func (k ErrorKind) Adaptation() string {
	switch k {
	case ErrKindSyntax:
		return "fix the command syntax before retrying"
	case ErrKindTimeout:
		return "narrow the scope or split the command"
	case ErrKindPermissionDenied:
		return "try an alternative path or non-privileged command"
	case ErrKindNotFound:
		return "verify the path or name exists before acting on it"
	case ErrKindConnection:
		return "re-discover agents and retry once"
	case ErrKindResource:
		return "do not retry; report the resource limit"
	case ErrKindExecution:
		return "inspect the error output and adjust the approach"
	default:
		return "review the error and adjust"
	}
}
