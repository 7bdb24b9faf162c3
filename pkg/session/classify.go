package session

import (
	"strings"

	"github.com/funnel-ops/funnel/pkg/models"
)

// classifyRule maps output substrings to an error kind. Rules are ordered;
// the first match wins.
type classifyRule struct {
	kind    models.ErrorKind
	matches []string
}

// classifyRules is the ordered substring rule list. Text heuristics are the
// fallback path only: structured agent error codes take precedence upstream.
var classifyRules = []classifyRule{
	{models.ErrKindSyntax, []string{
		"syntax error", "parse error", "unexpected token", "parsererror",
		"is not recognized as", "command not found: -",
	}},
	{models.ErrKindTimeout, []string{
		"timed out", "timeout", "deadline exceeded",
	}},
	{models.ErrKindPermissionDenied, []string{
		"permission denied", "access denied", "access is denied",
		"operation not permitted", "unauthorized",
	}},
	{models.ErrKindNotFound, []string{
		"no such file", "not found", "cannot find", "does not exist",
		"no such container",
	}},
	{models.ErrKindConnection, []string{
		"connection refused", "connection reset", "unreachable",
		"could not resolve", "no route to host", "unavailable",
	}},
	{models.ErrKindResource, []string{
		"out of memory", "disk full", "no space left", "quota exceeded",
		"too many open files",
	}},
}

// ClassifyError maps failed-step output to an error kind. Matching is
// case-insensitive; anything unmatched is an execution_error.
func ClassifyError(output string) models.ErrorKind {
	lower := strings.ToLower(output)
	for _, rule := range classifyRules {
		for _, m := range rule.matches {
			if strings.Contains(lower, m) {
				return rule.kind
			}
		}
	}
	return models.ErrKindExecution
}
