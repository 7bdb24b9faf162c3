package guardrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/models"
	"github.com/funnel-ops/funnel/pkg/session"
)

func verifiedState(t *testing.T, agents ...string) *session.State {
	t.Helper()
	s := session.New("test")
	out := ""
	for _, a := range agents {
		out += "- " + a + " (linux)\n"
	}
	s.UpdateFromStep(models.ToolListAgents, nil, out, true)
	return s
}

func executeStep(agent, command string) *models.Step {
	return &models.Step{
		StepID: "step-x",
		Tool:   models.ToolExecute,
		Params: map[string]any{"agent_id": agent, "command": command},
	}
}

func TestExecute_LocalhostAlwaysAllowed(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")

	step := executeStep("localhost", "discover-peers")
	out := p.Apply(step, s)
	assert.Equal(t, step, out)
}

func TestExecute_BootstrapsDiscoveryWhenNoAgents(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")

	out := p.Apply(executeStep("domain02", "Restart-Computer"), s)
	require.Equal(t, models.ToolExecute, out.Tool)
	assert.Equal(t, "localhost", out.AgentID())
	assert.Equal(t, "discover-peers", out.Command())
}

func TestExecute_UnknownAgentBlocked(t *testing.T) {
	p := NewPipeline()
	s := verifiedState(t, "ws1", "ws2")

	out := p.Apply(executeStep("ghost", "hostname"), s)
	require.Equal(t, models.ToolComplete, out.Tool)
	err := out.ParamString("error")
	assert.Contains(t, err, "ghost")
	assert.Contains(t, err, "ws1, ws2", "error names available agents")
}

func TestExecute_PowerShellAutoFix(t *testing.T) {
	p := NewPipeline()
	s := verifiedState(t, "ws1")

	out := p.Apply(executeStep("ws1", `Write-Output “hi” && hostname`), s)
	require.Equal(t, models.ToolExecute, out.Tool)
	assert.Equal(t, `Write-Output "hi"; hostname`, out.Command())
}

func TestForceRemote_RoutesToRequestedAgent(t *testing.T) {
	p := NewPipeline()
	s := verifiedState(t, "domain02", "ians-r16")
	s.Ledger.RecordRequest("reboot domain02 and create /home/ian/aj-test.txt on my workstation")

	step := &models.Step{StepID: "s", Tool: models.ToolExecuteShell,
		Params: map[string]any{"command": "shutdown -r now"}}
	out := p.Apply(step, s)

	require.Equal(t, models.ToolExecute, out.Tool)
	assert.Equal(t, "domain02", out.AgentID())
	assert.Equal(t, "shutdown -r now", out.Command())
}

func TestForceRemote_DefaultsToFirstDiscovered(t *testing.T) {
	p := NewPipeline()
	s := verifiedState(t, "ws1", "ws2")
	s.Ledger.RecordRequest("list the files please")

	step := &models.Step{StepID: "s", Tool: models.ToolScanWorkspace, Params: map[string]any{}}
	out := p.Apply(step, s)

	require.Equal(t, models.ToolExecute, out.Tool)
	assert.Equal(t, "ws1", out.AgentID())
}

func TestForceRemote_UnavailableTargetBlocked(t *testing.T) {
	p := NewPipeline()
	s := verifiedState(t, "ws1")
	s.Ledger.RecordRequest("reboot domain02")

	step := &models.Step{StepID: "s", Tool: models.ToolExecuteShell,
		Params: map[string]any{"command": "reboot"}}
	out := p.Apply(step, s)

	require.Equal(t, models.ToolComplete, out.Tool)
	assert.Contains(t, out.ParamString("error"), "domain02")
}

func TestForceRemote_NotAppliedBeforeDiscovery(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")

	step := &models.Step{StepID: "s", Tool: models.ToolExecuteShell,
		Params: map[string]any{"command": "ls"}}
	assert.Equal(t, step, p.Apply(step, s))
}

func TestCompletion_HallucinatedAnswerBlocked(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")

	step := &models.Step{StepID: "s", Tool: models.ToolComplete, Params: map[string]any{
		"answer": `Here are the top 5 largest files in C:\Windows, found via explorer.exe`,
	}}
	out := p.Apply(step, s)

	require.Equal(t, models.ToolComplete, out.Tool)
	assert.Empty(t, out.Answer())
	assert.NotEmpty(t, out.ParamString("error"))
}

func TestCompletion_LongAnswerWithoutAgentsBlocked(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")

	step := &models.Step{StepID: "s", Tool: models.ToolComplete, Params: map[string]any{
		"answer": "I inspected every host and everything is configured correctly across the fleet.",
	}}
	out := p.Apply(step, s)
	assert.NotEmpty(t, out.ParamString("error"))
}

func TestCompletion_ShortHonestAnswerPasses(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")

	step := &models.Step{StepID: "s", Tool: models.ToolComplete, Params: map[string]any{
		"answer": "No agents are available.",
	}}
	assert.Equal(t, step, p.Apply(step, s))
}

func TestDuplicateExecute_Suppressed(t *testing.T) {
	p := NewPipeline()
	s := verifiedState(t, "ws1")
	s.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "ws1", "command": "hostname"}, "WS1", true)

	out := p.Apply(executeStep("ws1", "hostname"), s)
	require.Equal(t, models.ToolComplete, out.Tool)
	assert.Contains(t, out.Answer(), "already retrieved")
	assert.Empty(t, out.ParamString("error"), "informational completion, not an error")
}

func TestDuplicateExecute_FailedRunsNotSuppressed(t *testing.T) {
	p := NewPipeline()
	s := verifiedState(t, "ws1")
	s.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "ws1", "command": "hostname"}, "timeout", false)

	out := p.Apply(executeStep("ws1", "hostname"), s)
	assert.Equal(t, models.ToolExecute, out.Tool, "retry after failure is allowed")
}

func TestLoop_FileMutationRepetition(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")
	params := map[string]any{"path": "a.txt", "content": "x"}
	s.UpdateFromStep(models.ToolWriteFile, params, "ok", true)
	s.UpdateFromStep(models.ToolWriteFile, params, "ok", true)

	step := &models.Step{StepID: "s", Tool: models.ToolWriteFile, Params: params}
	out := p.Apply(step, s)
	require.Equal(t, models.ToolComplete, out.Tool)
	assert.Contains(t, out.ParamString("error"), "loop detected")
}

func TestLoop_SecondScanForcedComplete(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")
	s.UpdateFromStep(models.ToolScanWorkspace, nil, "NAME TYPE SIZE MODIFIED", true)

	step := &models.Step{StepID: "s", Tool: models.ToolScanWorkspace, Params: map[string]any{}}
	out := p.Apply(step, s)
	assert.Equal(t, models.ToolComplete, out.Tool)
}

func TestDumpState_OncePerSession(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")

	step := &models.Step{StepID: "s", Tool: models.ToolDumpState, Params: map[string]any{}}
	assert.Equal(t, step, p.Apply(step, s))

	s.UpdateFromStep(models.ToolDumpState, nil, "state dump", true)
	out := p.Apply(step, s)
	assert.Equal(t, models.ToolComplete, out.Tool)
}

func TestReplaceEscalation(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")
	params := map[string]any{"path": "cfg.ini", "old_content": "x", "new_content": "y"}
	s.UpdateFromStep(models.ToolReplaceInFile, params, "pattern not found", false)
	s.UpdateFromStep(models.ToolReplaceInFile, params, "pattern not found", false)

	step := &models.Step{StepID: "s", Tool: models.ToolReplaceInFile, Params: params}
	out := p.Apply(step, s)

	require.Equal(t, models.ToolInsertInFile, out.Tool)
	assert.Equal(t, "cfg.ini", out.Path())
	assert.Equal(t, "start", out.ParamString("position"))
	assert.Equal(t, "y", out.ParamString("content"))
}

func TestReRead_Vetoed(t *testing.T) {
	p := NewPipeline()
	s := session.New("test")
	s.UpdateFromStep(models.ToolReadFile, map[string]any{"path": "a.txt"}, "contents", true)

	step := &models.Step{StepID: "s", Tool: models.ToolReadFile, Params: map[string]any{"path": "a.txt"}}
	out := p.Apply(step, s)
	assert.Equal(t, models.ToolNone, out.Tool)
}

func TestPathCorrection(t *testing.T) {
	p := NewPipeline()

	t.Run("unique suffix corrected", func(t *testing.T) {
		s := session.New("test")
		s.Files = []string{"src/app/config.yaml", "src/main.go"}
		step := &models.Step{StepID: "s", Tool: models.ToolAppendToFile,
			Params: map[string]any{"path": "config.yaml", "content": "k: v"}}
		out := p.Apply(step, s)
		assert.Equal(t, "src/app/config.yaml", out.Path())
	})

	t.Run("ambiguous suffix untouched", func(t *testing.T) {
		s := session.New("test")
		s.Files = []string{"a/config.yaml", "b/config.yaml"}
		step := &models.Step{StepID: "s", Tool: models.ToolAppendToFile,
			Params: map[string]any{"path": "config.yaml", "content": "k: v"}}
		out := p.Apply(step, s)
		assert.Equal(t, "config.yaml", out.Path())
	})
}

func TestPipeline_FixedPoint(t *testing.T) {
	p := NewPipeline()

	cases := []struct {
		name  string
		state func() *session.State
		step  *models.Step
	}{
		{
			name:  "bootstrap rewrite",
			state: func() *session.State { return session.New("t") },
			step:  executeStep("domain02", "Restart-Computer"),
		},
		{
			name:  "unknown agent completion",
			state: func() *session.State { return verifiedState(t, "ws1") },
			step:  executeStep("ghost", "x"),
		},
		{
			name: "forced remote routing",
			state: func() *session.State {
				s := verifiedState(t, "ws1")
				s.Ledger.RecordRequest("check disk on ws1")
				return s
			},
			step: &models.Step{StepID: "s", Tool: models.ToolExecuteShell,
				Params: map[string]any{"command": "df -h"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.state()
			once := p.Apply(tc.step, s)
			twice := p.Apply(once, s)
			assert.Equal(t, once, twice)
		})
	}
}

func TestExecute_UnverifiedNeverSurvivesUnmodified(t *testing.T) {
	// Property: with agents_verified=false, an execute targeting anything but
	// localhost never passes through unchanged.
	p := NewPipeline()
	s := session.New("test")
	require.False(t, s.AgentsVerified)

	for _, agent := range []string{"domain02", "ws1", "anything"} {
		out := p.Apply(executeStep(agent, "hostname"), s)
		assert.NotEqual(t, agent, out.AgentID())
	}
}
