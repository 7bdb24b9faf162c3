package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/driver"
	"github.com/funnel-ops/funnel/pkg/llm"
	"github.com/funnel-ops/funnel/pkg/models"
	"github.com/funnel-ops/funnel/pkg/session"
)

type fakeRunner struct {
	gotReq models.TaskRequest
	events []models.TaskEvent
}

func (f *fakeRunner) Run(_ context.Context, req models.TaskRequest, emit driver.EmitFunc) {
	f.gotReq = req
	for _, ev := range f.events {
		emit(ev)
	}
}

type fakeLister struct {
	gotForce bool
	agents   []*models.AgentCapabilities
}

func (f *fakeLister) Discover(_ context.Context, force bool) []*models.AgentCapabilities {
	f.gotForce = force
	return f.agents
}

type fakeModel struct {
	status *llm.ModelStatus
	err    error
}

func (f *fakeModel) ModelStatus(context.Context) (*llm.ModelStatus, error) {
	return f.status, f.err
}

func newTestServer(runner TaskRunner, lister AgentLister, model ModelStatusClient) (*Server, *session.Registry) {
	sessions := session.NewRegistry()
	s := NewServer(Options{
		ListenAddr: ":0",
		Runner:     runner,
		Agents:     lister,
		Sessions:   sessions,
		Model:      model,
	})
	return s, sessions
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func parseSSE(t *testing.T, body string) []models.TaskEvent {
	t.Helper()
	var events []models.TaskEvent
	for _, frame := range strings.Split(body, "\n\n") {
		frame = strings.TrimSpace(frame)
		if frame == "" {
			continue
		}
		require.True(t, strings.HasPrefix(frame, "data: "), "frame %q lacks data prefix", frame)
		var ev models.TaskEvent
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frame, "data: ")), &ev))
		events = append(events, ev)
	}
	return events
}

func TestCreateTask_StreamsEvents(t *testing.T) {
	runner := &fakeRunner{events: []models.TaskEvent{
		{Type: models.EventPlan, Plan: []models.TaskPlanItem{{Description: "list agents"}}},
		{Type: models.EventThinking, StepNum: 1, Content: "checking the network"},
		{Type: models.EventResult, StepNum: 1, Tool: models.ToolListAgents, Result: &models.StepResult{Success: true, Output: "- web01"}},
		{Type: models.EventComplete, StepNum: 2, Answer: "One agent found.", Done: true},
	}}
	s, _ := newTestServer(runner, &fakeLister{}, nil)

	w := doRequest(s, http.MethodPost, "/api/v1/tasks",
		`{"task": "which agents are online?", "session_id": "ops-1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "which agents are online?", runner.gotReq.Task)
	assert.Equal(t, "ops-1", runner.gotReq.SessionID)

	events := parseSSE(t, w.Body.String())
	require.Len(t, events, 4)
	assert.Equal(t, models.EventPlan, events[0].Type)
	last := events[len(events)-1]
	assert.Equal(t, models.EventComplete, last.Type)
	assert.True(t, last.Done)
	assert.Equal(t, "One agent found.", last.Answer)
}

func TestCreateTask_Rejections(t *testing.T) {
	s, _ := newTestServer(&fakeRunner{}, &fakeLister{}, nil)

	w := doRequest(s, http.MethodPost, "/api/v1/tasks", `{"task": "   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "task must not be empty")

	w = doRequest(s, http.MethodPost, "/api/v1/tasks", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAgents(t *testing.T) {
	lister := &fakeLister{agents: []*models.AgentCapabilities{
		{AgentID: "web01", Platform: "linux", IPAddress: "192.168.1.10", GRPCPort: 50051},
		{AgentID: "domain02", Platform: "windows", IPAddress: "192.168.1.11", GRPCPort: 50051},
	}}
	s, _ := newTestServer(&fakeRunner{}, lister, nil)

	w := doRequest(s, http.MethodGet, "/api/v1/agents?force=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, lister.gotForce)

	var resp struct {
		Agents []*models.AgentCapabilities `json:"agents"`
		Count  int                         `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "web01", resp.Agents[0].AgentID)
}

type fakeProber struct {
	results map[string]error
}

func (f *fakeProber) PingAll(context.Context) map[string]error {
	return f.results
}

func TestListAgents_ProbeReportsReachability(t *testing.T) {
	lister := &fakeLister{agents: []*models.AgentCapabilities{
		{AgentID: "web01"}, {AgentID: "db01"},
	}}
	sessions := session.NewRegistry()
	s := NewServer(Options{
		Runner:   &fakeRunner{},
		Agents:   lister,
		Sessions: sessions,
		Prober: &fakeProber{results: map[string]error{
			"web01": nil,
			"db01":  assert.AnError,
		}},
	})

	w := doRequest(s, http.MethodGet, "/api/v1/agents?probe=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reachability map[string]string `json:"reachability"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Reachability["web01"])
	assert.Contains(t, resp.Reachability["db01"], assert.AnError.Error())
}

func TestListAgents_EmptyIsArray(t *testing.T) {
	s, _ := newTestServer(&fakeRunner{}, &fakeLister{}, nil)

	w := doRequest(s, http.MethodGet, "/api/v1/agents", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"agents":[]`)
}

func TestSessionLifecycle(t *testing.T) {
	s, sessions := newTestServer(&fakeRunner{}, &fakeLister{}, nil)
	sessions.GetOrCreate("ops-1")

	w := doRequest(s, http.MethodPost, "/api/v1/sessions/ops-1/reset", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(s, http.MethodDelete, "/api/v1/sessions/ops-1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(s, http.MethodDelete, "/api/v1/sessions/ops-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(s, http.MethodPost, "/api/v1/sessions/never-created/reset", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModelStatus(t *testing.T) {
	s, _ := newTestServer(&fakeRunner{}, &fakeLister{},
		&fakeModel{status: &llm.ModelStatus{Loaded: true, VRAMPercent: 87}})

	w := doRequest(s, http.MethodGet, "/api/v1/model/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"loaded":true`)

	s, _ = newTestServer(&fakeRunner{}, &fakeLister{}, nil)
	w = doRequest(s, http.MethodGet, "/api/v1/model/status", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(&fakeRunner{}, &fakeLister{}, nil)

	w := doRequest(s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestHealth_DegradedOnDBFailure(t *testing.T) {
	sessions := session.NewRegistry()
	s := NewServer(Options{
		Runner:   &fakeRunner{},
		Agents:   &fakeLister{},
		Sessions: sessions,
		DBPing: func(context.Context) error {
			return assert.AnError
		},
	})

	w := doRequest(s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.Contains(t, w.Body.String(), `"database":{"message"`)
}
