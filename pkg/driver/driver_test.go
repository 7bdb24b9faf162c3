package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/dispatch"
	"github.com/funnel-ops/funnel/pkg/guardrail"
	"github.com/funnel-ops/funnel/pkg/llm"
	"github.com/funnel-ops/funnel/pkg/masking"
	"github.com/funnel-ops/funnel/pkg/models"
	"github.com/funnel-ops/funnel/pkg/reasoning"
	"github.com/funnel-ops/funnel/pkg/session"
)

// scriptedLLM plays back canned step responses in order. Non-streaming
// prompts (intent, plan, goal check, replan) are answered by prompt shape so
// the step script stays readable.
type scriptedLLM struct {
	mu    sync.Mutex
	steps []string
	next  int
}

func (s *scriptedLLM) Complete(_ context.Context, msgs []llm.Message) (string, error) {
	prompt := msgs[len(msgs)-1].Content
	switch {
	case strings.Contains(prompt, "Classify the user message"):
		return "task", nil
	case strings.Contains(prompt, "numbered list of concrete steps"):
		return "1. Work toward the goal\n2. Report the result", nil
	case strings.Contains(prompt, "Is the goal satisfied"):
		return `{"satisfied": false, "confidence": 0.3, "reason": "", "suggested_action": "continue"}`, nil
	case strings.Contains(prompt, "is failing"):
		return "1. Report the failure", nil
	}
	return "", errors.New("unscripted completion prompt")
}

func (s *scriptedLLM) Stream(_ context.Context, _ []llm.Message) (<-chan llm.Token, error) {
	s.mu.Lock()
	if s.next >= len(s.steps) {
		s.mu.Unlock()
		return nil, errors.New("script exhausted")
	}
	text := s.steps[s.next]
	s.next++
	s.mu.Unlock()

	out := make(chan llm.Token)
	go func() {
		defer close(out)
		for i := 0; i < len(text); i += 7 {
			end := i + 7
			if end > len(text) {
				end = len(text)
			}
			out <- llm.Token{Text: text[i:end]}
		}
	}()
	return out, nil
}

func (s *scriptedLLM) ModelStatus(_ context.Context) (*llm.ModelStatus, error) {
	return &llm.ModelStatus{Loaded: true}, nil
}

type fakeDirectory struct {
	agents []*models.AgentCapabilities
}

func (f *fakeDirectory) Discover(_ context.Context, _ bool) []*models.AgentCapabilities {
	return f.agents
}

func (f *fakeDirectory) GetAgent(id string) (*models.AgentCapabilities, bool) {
	for _, a := range f.agents {
		if strings.EqualFold(a.AgentID, id) || strings.EqualFold(a.Hostname, id) {
			return a, true
		}
	}
	return nil, false
}

type fakeRemote struct {
	mu    sync.Mutex
	calls []dispatch.ExecuteRequest
}

func (f *fakeRemote) Execute(_ context.Context, req dispatch.ExecuteRequest) (*models.TaskResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return &models.TaskResult{
		Success:   true,
		Stdout:    fmt.Sprintf("ran %q on %s", req.Command, req.AgentID),
		ErrorCode: models.TaskErrNone,
		TaskID:    fmt.Sprintf("task-%d", len(f.calls)),
	}, nil
}

func (f *fakeRemote) executed() []dispatch.ExecuteRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dispatch.ExecuteRequest(nil), f.calls...)
}

type harness struct {
	driver *Driver
	remote *fakeRemote
	events []models.TaskEvent
	mu     sync.Mutex
}

func newHarness(steps []string, agents ...*models.AgentCapabilities) *harness {
	h := &harness{remote: &fakeRemote{}}
	h.driver = New(Options{
		Engine:     reasoning.NewEngine(&scriptedLLM{steps: steps}),
		Guardrails: guardrail.NewPipeline(),
		Discovery:  &fakeDirectory{agents: agents},
		Remote:     h.remote,
		Sessions:   session.NewRegistry(),
		Masker:     masking.NewService(),
	})
	return h
}

func (h *harness) run(t *testing.T, req models.TaskRequest) []models.TaskEvent {
	t.Helper()
	h.driver.Run(context.Background(), req, func(ev models.TaskEvent) {
		h.mu.Lock()
		h.events = append(h.events, ev)
		h.mu.Unlock()
	})
	require.NotEmpty(t, h.events)
	return h.events
}

func agent(id, platform string) *models.AgentCapabilities {
	return &models.AgentCapabilities{
		AgentID: id, Hostname: id, Platform: platform,
		IPAddress: "10.0.0.5", GRPCPort: 50051,
	}
}

func eventsOfType(events []models.TaskEvent, t models.EventType) []models.TaskEvent {
	var out []models.TaskEvent
	for _, ev := range events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func finalEvent(t *testing.T, events []models.TaskEvent) models.TaskEvent {
	t.Helper()
	last := events[len(events)-1]
	require.Equal(t, models.EventComplete, last.Type, "stream must end with complete")
	require.True(t, last.Done)
	return last
}

func TestRun_AdaptivePlanningOnMissingFile(t *testing.T) {
	root := t.TempDir()
	h := newHarness([]string{
		`<think>Read the file the user asked about.</think>
{"tool": "read_file", "params": {"path": "nonexistent.txt"}}`,
		`<think>The file does not exist; report honestly.</think>
{"tool": "complete", "params": {"answer": "Could not read nonexistent.txt: the file does not exist in the workspace."}}`,
	})

	events := h.run(t, models.TaskRequest{Task: "read nonexistent.txt", WorkspaceRoot: root, SessionID: "s1"})

	require.Len(t, eventsOfType(events, models.EventPlan), 1)
	require.NotEmpty(t, eventsOfType(events, models.EventThinking))

	results := eventsOfType(events, models.EventResult)
	require.Len(t, results, 1)
	assert.False(t, results[0].Result.Success)
	assert.Equal(t, models.ErrKindNotFound, results[0].Result.ErrorKind)

	final := finalEvent(t, events)
	assert.Contains(t, final.Answer, "nonexistent.txt")
	assert.Empty(t, final.Error)
}

func TestRun_NoAgentsMeansNoHallucination(t *testing.T) {
	h := newHarness([]string{
		`{"tool": "execute", "params": {"agent_id": "my-pc", "command": "dir C:\\Windows"}}`,
		`{"tool": "complete", "params": {"answer": "Here are the files in C:\\Windows: explorer.exe, System32, notepad.exe"}}`,
	}) // no agents on the network

	events := h.run(t, models.TaskRequest{Task: `list all files in C:\Windows on my PC`, SessionID: "s1"})

	final := finalEvent(t, events)
	assert.NotContains(t, final.Answer, "explorer.exe")
	assert.NotContains(t, final.Answer, "System32")
	assert.NotContains(t, final.Answer, `C:\`)
	assert.NotEmpty(t, final.Error, "a fabricated listing must be rejected")

	assert.Empty(t, h.remote.executed(), "nothing may reach a remote agent")
}

func TestRun_LoopPreventionWithinStepBudget(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o644))

	scan := `{"tool": "scan_workspace", "params": {}}`
	h := newHarness([]string{scan, scan, scan, scan, scan, scan, scan})

	events := h.run(t, models.TaskRequest{Task: "keep scanning", WorkspaceRoot: root, SessionID: "s1", MaxSteps: 5})

	for _, ev := range events {
		assert.LessOrEqual(t, ev.StepNum, 5)
	}
	final := finalEvent(t, events)
	assert.Contains(t, final.Error, "loop detected")
	assert.LessOrEqual(t, len(eventsOfType(events, models.EventResult)), 2,
		"the second scan is already blocked")
}

func TestRun_MultiTargetRouting(t *testing.T) {
	h := newHarness([]string{
		`{"tool": "list_agents", "params": {}}`,
		`{"tool": "execute", "params": {"agent_id": "domain02", "command": "sudo reboot"}}`,
		`{"tool": "execute", "params": {"agent_id": "ians-r16", "command": "touch /home/ian/aj-test.txt"}}`,
		`{"tool": "complete", "params": {"answer": "Rebooted domain02 and created the file on ians-r16."}}`,
	}, agent("domain02", "linux"), agent("ians-r16", "linux"))

	events := h.run(t, models.TaskRequest{
		Task:      "reboot domain02 and create /home/ian/aj-test.txt on my workstation",
		SessionID: "s1",
	})

	calls := h.remote.executed()
	require.Len(t, calls, 2)
	assert.Equal(t, "domain02", calls[0].AgentID)
	assert.Contains(t, calls[0].Command, "reboot")
	assert.Equal(t, "ians-r16", calls[1].AgentID)
	assert.Contains(t, calls[1].Command, "aj-test.txt")

	final := finalEvent(t, events)
	assert.NotEmpty(t, final.Answer)
}

func TestRun_WrongTargetPrevention(t *testing.T) {
	// The model proposes a local shell command; with agents discovered and the
	// request naming domain02, the guardrails must route it there and nowhere
	// else.
	h := newHarness([]string{
		`{"tool": "list_agents", "params": {}}`,
		`{"tool": "execute_shell", "params": {"command": "reboot"}}`,
		`{"tool": "complete", "params": {"answer": "Reboot issued on domain02."}}`,
	}, agent("web01", "linux"), agent("domain02", "linux"), agent("db01", "linux"))

	h.run(t, models.TaskRequest{Task: "Reboot domain02", SessionID: "s1"})

	calls := h.remote.executed()
	require.Len(t, calls, 1)
	assert.Equal(t, "domain02", calls[0].AgentID)
}

func TestRun_DuplicateExecuteSuppression(t *testing.T) {
	same := `{"tool": "execute", "params": {"agent_id": "ws1", "command": "hostname"}}`
	h := newHarness([]string{
		`{"tool": "list_agents", "params": {}}`,
		same,
		same,
	}, agent("ws1", "linux"))

	events := h.run(t, models.TaskRequest{Task: "what is the hostname of ws1", SessionID: "s1"})

	require.Len(t, h.remote.executed(), 1, "the duplicate must not reach the agent")
	final := finalEvent(t, events)
	assert.Contains(t, final.Answer, "already retrieved")
	assert.Empty(t, final.Error)
}

func TestRun_StepLimitReached(t *testing.T) {
	think := `{"tool": "think", "params": {}, "reasoning": "pondering"}`
	h := newHarness([]string{think, think, think})

	events := h.run(t, models.TaskRequest{Task: "ponder forever", SessionID: "s1", MaxSteps: 3})

	final := finalEvent(t, events)
	assert.Contains(t, final.Error, "step limit")
}

func TestRun_RemoteOutputIsMasked(t *testing.T) {
	h := newHarness([]string{
		`{"tool": "list_agents", "params": {}}`,
		`{"tool": "execute", "params": {"agent_id": "web01", "command": "env"}}`,
		`{"tool": "complete", "params": {"answer": "Environment captured."}}`,
	}, agent("web01", "linux")) // fakeRemote echoes the command back

	h.remoteReturns("API_KEY=sk-verysecretvalue123")
	events := h.run(t, models.TaskRequest{Task: "dump env on web01", SessionID: "s1"})

	for _, ev := range eventsOfType(events, models.EventResult) {
		assert.NotContains(t, ev.Result.Output, "sk-verysecretvalue123")
	}
}

// remoteReturns swaps the fake remote for one returning fixed stdout.
func (h *harness) remoteReturns(stdout string) {
	h.remote = &fakeRemote{}
	fixed := &fixedRemote{inner: h.remote, stdout: stdout}
	h.driver.remote = fixed
}

type fixedRemote struct {
	inner  *fakeRemote
	stdout string
}

func (f *fixedRemote) Execute(ctx context.Context, req dispatch.ExecuteRequest) (*models.TaskResult, error) {
	res, err := f.inner.Execute(ctx, req)
	if err == nil {
		res.Stdout = f.stdout
	}
	return res, err
}
