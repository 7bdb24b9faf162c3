package reasoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/models"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{
			name:  "plain object",
			text:  `{"tool": "think"}`,
			want:  `{"tool": "think"}`,
			found: true,
		},
		{
			name:  "surrounded by prose",
			text:  `Here is the step: {"tool": "think"} as requested.`,
			want:  `{"tool": "think"}`,
			found: true,
		},
		{
			name:  "nested objects",
			text:  `{"tool": "execute", "params": {"agent_id": "web01", "command": "df -h"}}`,
			want:  `{"tool": "execute", "params": {"agent_id": "web01", "command": "df -h"}}`,
			found: true,
		},
		{
			name:  "braces inside strings do not count",
			text:  `{"tool": "execute_shell", "params": {"command": "awk '{print $1}'"}} trailing`,
			want:  `{"tool": "execute_shell", "params": {"command": "awk '{print $1}'"}}`,
			found: true,
		},
		{
			name:  "escaped quote inside string",
			text:  `{"note": "say \"hi\""} extra`,
			want:  `{"note": "say \"hi\""}`,
			found: true,
		},
		{
			name:  "unterminated returns prefix",
			text:  `{"tool": "think", "params": {`,
			want:  `{"tool": "think", "params": {`,
			found: true,
		},
		{
			name:  "no object",
			text:  "just some prose with no braces",
			want:  "",
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractJSONObject(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepairBackslashes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"windows path", `{"path": "C:\Users\bob"}`, `{"path": "C:\\Users\\bob"}`},
		{"valid escapes untouched", `{"a": "line\nbreak \"q\" \\ \u00e9"}`, `{"a": "line\nbreak \"q\" \\ \u00e9"}`},
		{"trailing lone backslash", `{"a": "end\`, `{"a": "end\\`},
		{"no backslashes", `{"a": 1}`, `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairBackslashes(tt.in))
		})
	}
}

func TestParseStep(t *testing.T) {
	t.Run("canonical form", func(t *testing.T) {
		step, err := ParseStep(`{"tool": "execute", "params": {"agent_id": "web01", "command": "uptime"}, "reasoning": "check load"}`, "step-3")
		require.NoError(t, err)
		assert.Equal(t, "step-3", step.StepID)
		assert.Equal(t, models.ToolExecute, step.Tool)
		assert.Equal(t, "web01", step.AgentID())
		assert.Equal(t, "uptime", step.Command())
		assert.Equal(t, "check load", step.Reasoning)
	})

	t.Run("alternate tool keys", func(t *testing.T) {
		for _, payload := range []string{
			`{"action": "list_agents"}`,
			`{"step": "list_agents"}`,
			`{"task": "list_agents"}`,
			`{"instruction": "list_agents"}`,
		} {
			step, err := ParseStep(payload, "s")
			require.NoError(t, err, payload)
			assert.Equal(t, models.ToolListAgents, step.Tool, payload)
		}
	})

	t.Run("convenience keys lifted into params", func(t *testing.T) {
		step, err := ParseStep(`{"tool": "read_file", "path": "main.py"}`, "s")
		require.NoError(t, err)
		assert.Equal(t, "main.py", step.Path())
	})

	t.Run("backslash repair retry", func(t *testing.T) {
		step, err := ParseStep(`{"tool": "execute", "params": {"agent_id": "dc01", "command": "dir C:\Users"}}`, "s")
		require.NoError(t, err)
		assert.Equal(t, `dir C:\Users`, step.Command())
	})

	t.Run("substring tool recovery", func(t *testing.T) {
		step, err := ParseStep(`{"tool": "scan"}`, "s")
		require.NoError(t, err)
		assert.Equal(t, models.ToolScanWorkspace, step.Tool)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := ParseStep(`{"tool": "teleport"}`, "s")
		assert.ErrorContains(t, err, "unknown tool")
	})

	t.Run("missing tool name", func(t *testing.T) {
		_, err := ParseStep(`{"params": {}}`, "s")
		assert.ErrorContains(t, err, "no tool name")
	})

	t.Run("no JSON at all", func(t *testing.T) {
		_, err := ParseStep("I will now list the agents.", "s")
		assert.ErrorContains(t, err, "no JSON object")
	})
}
