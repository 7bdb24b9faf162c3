package discovery

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/models"
)

// fakeAgent answers discovery datagrams on loopback with canned JSON replies.
type fakeAgent struct {
	conn    net.PacketConn
	replies [][]byte
	probes  atomic.Int64
}

func startFakeAgent(t *testing.T, replies ...string) *fakeAgent {
	t.Helper()
	conn, err := net.ListenPacket("udp4", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	f := &fakeAgent{conn: conn}
	for _, r := range replies {
		f.replies = append(f.replies, []byte(r))
	}
	go f.serve()
	return f
}

func (f *fakeAgent) serve() {
	buf := make([]byte, 1024)
	for {
		n, from, err := f.conn.ReadFrom(buf)
		if err != nil {
			return
		}
		if string(buf[:n]) != Magic {
			continue
		}
		f.probes.Add(1)
		for _, reply := range f.replies {
			f.conn.WriteTo(reply, from)
		}
	}
}

func (f *fakeAgent) port() int {
	return f.conn.LocalAddr().(*net.UDPAddr).Port
}

func testConfig(agent *fakeAgent) Config {
	return Config{
		Port:        agent.port(),
		Timeout:     300 * time.Millisecond,
		TTL:         DefaultTTL,
		HostAddress: "localhost",
	}
}

func TestDiscover_DirectProbe(t *testing.T) {
	agent := startFakeAgent(t,
		`{"agentId": "web01", "hostname": "web01.lan", "platform": "linux", "capabilities": ["shell", "docker"], "grpcPort": 50051}`)
	svc := NewService(testConfig(agent))

	agents := svc.Discover(context.Background(), false)
	require.Len(t, agents, 1)
	assert.Equal(t, "web01", agents[0].AgentID)
	assert.Equal(t, "linux", agents[0].Platform)
	assert.Equal(t, 50051, agents[0].GRPCPort)
	assert.False(t, agents[0].LastSeen.IsZero())
	// Direct-probe replies keep the configured host string so container DNS
	// stays usable.
	assert.Equal(t, "localhost", agents[0].IPAddress)
}

func TestDiscover_SnakeCaseReplyAccepted(t *testing.T) {
	agent := startFakeAgent(t,
		`{"agent_id": "dc01", "hostname": "dc01", "platform": "windows", "grpc_port": 50051, "workspace_roots": ["C:\\Shares"]}`)
	svc := NewService(testConfig(agent))

	agents := svc.Discover(context.Background(), false)
	require.Len(t, agents, 1)
	assert.Equal(t, "dc01", agents[0].AgentID)
	assert.Equal(t, 50051, agents[0].GRPCPort)
	assert.Equal(t, []string{`C:\Shares`}, agents[0].WorkspaceRoots)
}

func TestDiscover_DedupeAndMalformed(t *testing.T) {
	agent := startFakeAgent(t,
		`{"agentId": "web01", "platform": "linux"}`,
		`not json at all`,
		`{"agentId": "web01", "platform": "linux"}`,
		`{"platform": "linux"}`,
		`{"agentId": "db01", "platform": "linux"}`,
	)
	svc := NewService(testConfig(agent))

	agents := svc.Discover(context.Background(), false)
	require.Len(t, agents, 2)
	assert.Equal(t, "db01", agents[0].AgentID, "results are sorted by id")
	assert.Equal(t, "web01", agents[1].AgentID)
}

func TestDiscover_CacheWithinTTL(t *testing.T) {
	agent := startFakeAgent(t, `{"agentId": "web01", "platform": "linux"}`)
	svc := NewService(testConfig(agent))

	first := svc.Discover(context.Background(), false)
	require.Len(t, first, 1)
	probesAfterFirst := agent.probes.Load()

	second := svc.Discover(context.Background(), false)
	require.Len(t, second, 1)
	assert.Equal(t, probesAfterFirst, agent.probes.Load(), "cached round must not hit the network")

	svc.Discover(context.Background(), true)
	assert.Greater(t, agent.probes.Load(), probesAfterFirst, "force always probes")
}

func TestDiscover_NoResponders(t *testing.T) {
	// Bind a silent socket so the port is valid but nothing answers.
	conn, err := net.ListenPacket("udp4", "127.0.0.1:0")
	require.NoError(t, err)
	defer conn.Close()

	svc := NewService(Config{
		Port:        conn.LocalAddr().(*net.UDPAddr).Port,
		Timeout:     200 * time.Millisecond,
		HostAddress: "127.0.0.1",
	})

	assert.Empty(t, svc.Discover(context.Background(), false))
	assert.Empty(t, svc.snapshot())
}

func (s *Service) snapshot() []*models.AgentCapabilities {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// seed installs agents directly into the cache for lookup tests.
func seed(svc *Service, agents ...*models.AgentCapabilities) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, a := range agents {
		svc.cache[a.AgentID] = a
	}
	svc.lastDiscovery = time.Now()
}

func TestGetAgent_CaseInsensitive(t *testing.T) {
	svc := NewService(Config{})
	seed(svc,
		&models.AgentCapabilities{AgentID: "Domain02", Hostname: "domain02.lan"},
		&models.AgentCapabilities{AgentID: "ians-r16", Hostname: "IANS-R16"},
	)

	got, ok := svc.GetAgent("domain02")
	require.True(t, ok)
	assert.Equal(t, "Domain02", got.AgentID)

	got, ok = svc.GetAgent("ians-r16.lan")
	assert.False(t, ok)
	assert.Nil(t, got)

	got, ok = svc.GetAgent("IANS-R16")
	require.True(t, ok, "hostname lookup works too")
	assert.Equal(t, "ians-r16", got.AgentID)
}

func TestGetAgentsWithCapability(t *testing.T) {
	svc := NewService(Config{})
	seed(svc,
		&models.AgentCapabilities{AgentID: "dc01", Capabilities: []string{"PowerShell"}},
		&models.AgentCapabilities{AgentID: "web01", Capabilities: []string{"shell", "docker"}},
		&models.AgentCapabilities{AgentID: "db01", Capabilities: []string{"shell"}},
	)

	got := svc.GetAgentsWithCapability("SHELL")
	require.Len(t, got, 2)
	assert.Equal(t, "db01", got[0].AgentID)
	assert.Equal(t, "web01", got[1].AgentID)
}

func TestGetAgentsForWorkspace(t *testing.T) {
	svc := NewService(Config{})
	seed(svc,
		&models.AgentCapabilities{AgentID: "dc01", WorkspaceRoots: []string{`S:\Index`}},
		&models.AgentCapabilities{AgentID: "web01", WorkspaceRoots: []string{"/srv/www"}},
	)

	got := svc.GetAgentsForWorkspace(`s:/index/photos`)
	require.Len(t, got, 1)
	assert.Equal(t, "dc01", got[0].AgentID, "separator and case differences are ignored")

	got = svc.GetAgentsForWorkspace("/srv/www/site")
	require.Len(t, got, 1)
	assert.Equal(t, "web01", got[0].AgentID)

	assert.Empty(t, svc.GetAgentsForWorkspace("/tmp"))
}

func TestMarkAgentStaleAndInvalidate(t *testing.T) {
	svc := NewService(Config{})
	seed(svc,
		&models.AgentCapabilities{AgentID: "web01"},
		&models.AgentCapabilities{AgentID: "db01"},
	)

	svc.MarkAgentStale("WEB01")
	_, ok := svc.GetAgent("web01")
	assert.False(t, ok)
	_, ok = svc.GetAgent("db01")
	assert.True(t, ok)

	svc.InvalidateCache()
	assert.Empty(t, svc.snapshot())
	assert.True(t, svc.lastDiscovery.IsZero())
}
