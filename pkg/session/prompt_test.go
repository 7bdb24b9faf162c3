package session

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funnel-ops/funnel/pkg/models"
)

func TestFormatForPrompt_Empty(t *testing.T) {
	s := New("s1")
	out := s.FormatForPrompt()

	assert.Contains(t, out, "WORKSPACE: not scanned yet")
	assert.Contains(t, out, "AGENTS: NOT VERIFIED")
}

func TestFormatForPrompt_SectionOrder(t *testing.T) {
	s := New("s1")
	s.SetTaskPlan([]string{"discover agents", "run command"})
	s.UpdateFromStep(models.ToolListAgents, nil, "- ws1 (linux)", true)
	s.UpdateFromStep(models.ToolScanWorkspace, nil, sampleScan, true)

	out := s.FormatForPrompt()
	planIdx := strings.Index(out, "TASK PLAN:")
	wsIdx := strings.Index(out, "WORKSPACE:")
	agentIdx := strings.Index(out, "AGENTS:")
	stepsIdx := strings.Index(out, "RECENT STEPS")

	assert.True(t, planIdx >= 0 && planIdx < wsIdx, "plan before workspace")
	assert.True(t, wsIdx < agentIdx, "workspace before agents")
	assert.True(t, agentIdx < stepsIdx, "agents before steps")
}

func TestFormatForPrompt_CurrentPlanItemMarked(t *testing.T) {
	s := New("s1")
	s.SetTaskPlan([]string{"first", "second"})
	s.AdvancePlan()

	out := s.FormatForPrompt()
	assert.Contains(t, out, "> 2. [in_progress] second")
	assert.NotContains(t, out, "> 1.")
}

func TestFormatForPrompt_LoopWarning(t *testing.T) {
	s := New("s1")
	s.UpdateFromStep(models.ToolListAgents, nil, "- ws1 (linux)", true)
	params := map[string]any{"agent_id": "ws1", "command": "hostname"}
	s.UpdateFromStep(models.ToolExecute, params, "WS1", true)
	s.UpdateFromStep(models.ToolExecute, params, "WS1", true)

	assert.Contains(t, s.FormatForPrompt(), "LOOP WARNING")
}

func TestFormatForPrompt_LoopWarningIdempotentTool(t *testing.T) {
	s := New("s1")
	s.UpdateFromStep(models.ToolScanWorkspace, nil, sampleScan, true)
	s.UpdateFromStep(models.ToolScanWorkspace, nil, sampleScan, true)

	assert.Contains(t, s.FormatForPrompt(), "LOOP WARNING")
}

func TestFormatForPrompt_NoLoopWarningForDistinctAgents(t *testing.T) {
	s := New("s1")
	s.UpdateFromStep(models.ToolListAgents, nil, "- a1 (linux)\n- a2 (linux)", true)
	s.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "a1", "command": "reboot"}, "ok", true)
	s.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "a2", "command": "touch f"}, "ok", true)

	assert.NotContains(t, s.FormatForPrompt(), "LOOP WARNING")
}

func TestFormatForPrompt_FailureAnalysis(t *testing.T) {
	s := New("s1")
	s.UpdateFromStep(models.ToolReadFile, map[string]any{"path": "x"}, "no such file", false)

	out := s.FormatForPrompt()
	assert.Contains(t, out, "FAILURE ANALYSIS")
	assert.Contains(t, out, "not_found")
	assert.Contains(t, out, "verify the path")
}

func TestFormatForPrompt_MultiTargetProgress(t *testing.T) {
	s := New("s1")
	s.UpdateFromStep(models.ToolListAgents, nil, "- domain02 (windows)\n- ians-r16 (linux)", true)
	s.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "domain02", "command": "reboot"}, "ok", true)

	out := s.FormatForPrompt()
	assert.Contains(t, out, "queried [domain02]")
	assert.Contains(t, out, "remaining [ians-r16]")
}

func TestFormatForPrompt_Bounded(t *testing.T) {
	s := New("s1")
	// Pile on far more state than the caps allow.
	for i := 0; i < 200; i++ {
		name := fmt.Sprintf("file%03d.txt", i)
		s.Files = append(s.Files, name)
		s.FileMetadata[name] = FileMetadata{SizeBytes: int64(i) * 1000}
		s.ReadFiles[name] = true
	}
	for i := 0; i < 100; i++ {
		s.UpdateFromStep(models.ToolExecuteShell,
			map[string]any{"command": fmt.Sprintf("cmd-%d", i)},
			strings.Repeat("output ", 100), true)
		s.Ledger.RecordRequest(fmt.Sprintf("request %d", i))
	}

	out := s.FormatForPrompt()
	assert.Less(t, len(out), 8*1024, "prompt must stay under 8 KiB after truncation")
	assert.Contains(t, out, "+170 more", "file list truncated to 30")
}

func TestFormatForPrompt_Deterministic(t *testing.T) {
	s := New("s1")
	s.UpdateFromStep(models.ToolScanWorkspace, nil, sampleScan, true)
	s.Ledger.set("ip:10.0.0.1", "10.0.0.1")
	s.Ledger.set("port:80", "80")
	s.UserInfo["name"] = "ian"
	s.UserInfo["editor"] = "vim"

	first := s.FormatForPrompt()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.FormatForPrompt())
	}
}
