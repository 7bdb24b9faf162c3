package session

import (
	"testing"

	"github.com/funnel-ops/funnel/pkg/models"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		output string
		want   models.ErrorKind
	}{
		{"ParserError: unexpected token '}'", models.ErrKindSyntax},
		{"'foo' is not recognized as an internal or external command", models.ErrKindSyntax},
		{"command timed out after 30s", models.ErrKindTimeout},
		{"context deadline exceeded", models.ErrKindTimeout},
		{"bash: /etc/shadow: Permission denied", models.ErrKindPermissionDenied},
		{"Access is denied.", models.ErrKindPermissionDenied},
		{"cat: missing.txt: No such file or directory", models.ErrKindNotFound},
		{"The system cannot find the path specified", models.ErrKindNotFound},
		{"dial tcp 10.0.0.5:50051: connection refused", models.ErrKindConnection},
		{"fork: Cannot allocate memory: out of memory", models.ErrKindResource},
		{"no space left on device", models.ErrKindResource},
		{"exit status 1", models.ErrKindExecution},
		{"", models.ErrKindExecution},
	}

	for _, tt := range tests {
		if got := ClassifyError(tt.output); got != tt.want {
			t.Errorf("ClassifyError(%q) = %s, want %s", tt.output, got, tt.want)
		}
	}
}

func TestClassifyError_FirstRuleWins(t *testing.T) {
	// Contains both a syntax marker and a not-found marker; syntax is
	// earlier in the rule order.
	out := "syntax error near unexpected token; file not found"
	if got := ClassifyError(out); got != models.ErrKindSyntax {
		t.Errorf("got %s, want syntax_error", got)
	}
}
