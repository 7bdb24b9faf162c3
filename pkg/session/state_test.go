package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/models"
)

func TestUpdateFromStep_AppendsExactlyOne(t *testing.T) {
	s := New("s1")

	s.UpdateFromStep(models.ToolExecuteShell, map[string]any{"command": "ls"}, "a b c", true)
	require.Len(t, s.CompletedSteps, 1)

	s.UpdateFromStep(models.ToolExecuteShell, map[string]any{"command": "ls"}, "a b c", true)
	require.Len(t, s.CompletedSteps, 2, "identical inputs still append for non-none tools")

	// tool=none is the only idempotent no-op
	s.UpdateFromStep(models.ToolNone, nil, "", true)
	require.Len(t, s.CompletedSteps, 2)
}

func TestUpdateFromStep_Immutable(t *testing.T) {
	s := New("s1")
	s.UpdateFromStep(models.ToolReadFile, map[string]any{"path": "a.txt"}, "contents", true)
	first := s.CompletedSteps[0]

	s.UpdateFromStep(models.ToolReadFile, map[string]any{"path": "b.txt"}, "more", true)
	assert.Equal(t, first, s.CompletedSteps[0], "earlier entries are never rewritten")
}

func TestUpdateFromStep_FileTracking(t *testing.T) {
	s := New("s1")

	s.UpdateFromStep(models.ToolReadFile, map[string]any{"path": "main.py"}, "print()", true)
	assert.True(t, s.HasRead("main.py"))
	assert.False(t, s.HasEdited("main.py"))

	s.UpdateFromStep(models.ToolWriteFile, map[string]any{"path": "new.txt", "content": "hello"}, "ok", true)
	assert.True(t, s.HasEdited("new.txt"))
	assert.Contains(t, s.Files, "new.txt", "written paths join the file set")

	// Failed mutation must not mark the file edited
	s.UpdateFromStep(models.ToolReplaceInFile, map[string]any{"path": "ro.txt"}, "permission denied", false)
	assert.False(t, s.HasEdited("ro.txt"))
}

func TestUpdateFromStep_ContentStripped(t *testing.T) {
	s := New("s1")
	s.UpdateFromStep(models.ToolWriteFile, map[string]any{
		"path":    "big.txt",
		"content": "0123456789",
	}, "ok", true)

	got := s.CompletedSteps[0].Params["content"]
	assert.Equal(t, "<10 bytes>", got)
}

func TestUpdateFromStep_AgentVerification(t *testing.T) {
	s := New("s1")
	assert.False(t, s.AgentsVerified)

	output := "Found 2 agents:\n- domain02 (windows) 10.0.0.5:50051\n- ians-r16 (linux) 10.0.0.7:50051"
	s.UpdateFromStep(models.ToolListAgents, nil, output, true)

	assert.True(t, s.AgentsVerified)
	assert.Equal(t, []string{"domain02", "ians-r16"}, s.DiscoveredAgents)

	// execute against a discovered agent marks it queried
	s.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "domain02", "command": "hostname"}, "DOMAIN02", true)
	assert.Equal(t, []string{"domain02"}, s.QueriedAgents)
	assert.Equal(t, []string{"ians-r16"}, s.RemainingAgents())

	// unknown agents never enter queried (queried ⊆ discovered)
	s.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "ghost", "command": "x"}, "", true)
	assert.Equal(t, []string{"domain02"}, s.QueriedAgents)
}

func TestUpdateFromStep_RecordsLedgerTimeline(t *testing.T) {
	s := New("s1")

	s.UpdateFromStep(models.ToolScanWorkspace, nil, "a file 10 2026-08-01", true)
	s.UpdateFromStep(models.ToolExecuteShell, map[string]any{"command": "ls"}, "a b c", true)
	require.Len(t, s.Ledger.Entries, 2, "every executed step lands in the ledger")
	assert.Contains(t, s.Ledger.Entries[1].Summary, "execute_shell ok")

	prompt := s.FormatForPrompt()
	assert.Contains(t, prompt, "TIMELINE:")
	assert.Contains(t, prompt, "a b c")

	// failures are part of the timeline too
	s.UpdateFromStep(models.ToolReadFile, map[string]any{"path": "x"}, "no such file", false)
	require.Len(t, s.Ledger.Entries, 3)
	assert.Contains(t, s.Ledger.Entries[2].Summary, "read_file failed")
}

func TestUpdateFromStep_AgentIDCaseInsensitive(t *testing.T) {
	s := New("s1")
	output := "Found 2 agents:\n- domain02 (windows) 10.0.0.5:50051\n- ians-r16 (linux) 10.0.0.7:50051"
	s.UpdateFromStep(models.ToolListAgents, nil, output, true)

	// Discovery advertises lowercase ids; plans may echo the host's casing.
	s.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "Domain02", "command": "hostname"}, "DOMAIN02", true)
	require.Equal(t, []string{"Domain02"}, s.QueriedAgents)
	assert.Equal(t, []string{"ians-r16"}, s.RemainingAgents())

	// a re-query under different casing never duplicates
	s.UpdateFromStep(models.ToolExecute, map[string]any{"agent_id": "DOMAIN02", "command": "whoami"}, "user", true)
	assert.Len(t, s.QueriedAgents, 1)
}

func TestUpdateFromStep_FailedListAgentsDoesNotVerify(t *testing.T) {
	s := New("s1")
	s.UpdateFromStep(models.ToolListAgents, nil, "discovery timed out", false)
	assert.False(t, s.AgentsVerified)
	assert.Empty(t, s.DiscoveredAgents)
}

func TestReset_PreservesUserInfoAndLedger(t *testing.T) {
	s := New("s1")
	s.UserInfo["name"] = "ian"
	s.Ledger.RecordRequest("index files on S:")
	s.UpdateFromStep(models.ToolScanWorkspace, nil, "a file 10 2026-08-01", true)
	require.NotEmpty(t, s.CompletedSteps)

	s.Reset()

	assert.Empty(t, s.CompletedSteps)
	assert.Empty(t, s.Files)
	assert.Equal(t, "ian", s.UserInfo["name"])
	assert.Equal(t, []string{"index files on S:"}, s.Ledger.UserRequests)
}

func TestTaskPlan_ExactlyOneCurrent(t *testing.T) {
	s := New("s1")
	s.SetTaskPlan([]string{"scan", "read", "report"})

	cur := s.CurrentPlanItem()
	require.NotNil(t, cur)
	assert.Equal(t, 1, cur.Index)

	s.AdvancePlan()
	cur = s.CurrentPlanItem()
	require.NotNil(t, cur)
	assert.Equal(t, 2, cur.Index)
	assert.Equal(t, models.PlanInProgress, cur.Status)

	s.AdvancePlan()
	s.AdvancePlan()
	assert.Nil(t, s.CurrentPlanItem(), "all terminal after plan exhausted")
}

func TestGetEditableAndUnreadFiles(t *testing.T) {
	s := New("s1")
	s.Files = []string{"a.go", "b.go", "c.go"}
	s.ReadFiles["b.go"] = true

	assert.Equal(t, []string{"b.go"}, s.GetEditableFiles())
	assert.Equal(t, []string{"a.go", "c.go"}, s.GetUnreadFiles())
}

func TestErrorClassificationOnFailure(t *testing.T) {
	s := New("s1")
	s.UpdateFromStep(models.ToolReadFile, map[string]any{"path": "x"}, "cat: x: No such file or directory", false)

	st := s.CompletedSteps[0]
	assert.Equal(t, models.ErrKindNotFound, st.ErrorKind)
	assert.False(t, st.Success)
	assert.LessOrEqual(t, len(st.ErrorMessage), 200)
}
