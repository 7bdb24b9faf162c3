// Package discovery locates execution agents on the LAN. Agents answer a UDP
// magic datagram with a JSON capability announcement; results are cached
// process-wide with a TTL.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/funnel-ops/funnel/pkg/models"
)

const (
	// Magic is the exact datagram payload agents respond to.
	Magic = "FUNNEL_DISCOVER"

	DefaultPort    = 41234
	DefaultTimeout = 2 * time.Second
	DefaultTTL     = 300 * time.Second

	maxReplySize = 64 * 1024
)

// Config controls one discovery service.
type Config struct {
	Port    int
	Timeout time.Duration
	TTL     time.Duration

	// HostAddress, when set, is probed directly in addition to the LAN
	// broadcast. Used inside containers where the Docker host bridges to the
	// LAN and 255.255.255.255 does not reach it.
	HostAddress string
}

func (c Config) withDefaults() Config {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	return c
}

// Service discovers agents and caches the results. Safe for concurrent use;
// one instance is shared by all sessions.
type Service struct {
	cfg Config
	log *slog.Logger

	mu            sync.RWMutex
	cache         map[string]*models.AgentCapabilities
	lastDiscovery time.Time
}

// NewService creates a discovery service with the given config. Zero config
// fields fall back to defaults.
func NewService(cfg Config) *Service {
	return &Service{
		cfg:   cfg.withDefaults(),
		log:   slog.With("component", "discovery"),
		cache: make(map[string]*models.AgentCapabilities),
	}
}

// Discover returns the known agents, running a fresh UDP round when the cache
// has expired or force is set. Network failures yield an empty result and
// leave the previous cache untouched, but an expired cache is never served.
func (s *Service) Discover(ctx context.Context, force bool) []*models.AgentCapabilities {
	s.mu.RLock()
	fresh := !force && time.Since(s.lastDiscovery) < s.cfg.TTL && len(s.cache) > 0
	if fresh {
		agents := s.snapshotLocked()
		s.mu.RUnlock()
		return agents
	}
	s.mu.RUnlock()

	found, err := s.discoveryRound(ctx)
	if err != nil {
		s.log.Warn("Discovery round failed", "error", err)
		return nil
	}

	s.mu.Lock()
	s.cache = found
	s.lastDiscovery = time.Now()
	agents := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info("Discovery complete", "agents", len(agents))
	return agents
}

// discoveryRound sends the magic to the configured host (if any) and the LAN
// broadcast address, then collects replies until the timeout window closes.
func (s *Service) discoveryRound(ctx context.Context) (map[string]*models.AgentCapabilities, error) {
	conn, err := broadcastSocket(ctx)
	if err != nil {
		return nil, fmt.Errorf("open discovery socket: %w", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(s.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set discovery deadline: %w", err)
	}

	var directIP string
	if s.cfg.HostAddress != "" {
		addr, err := net.ResolveUDPAddr("udp4", fmt.Sprintf("%s:%d", s.cfg.HostAddress, s.cfg.Port))
		if err != nil {
			s.log.Warn("Host address did not resolve", "host", s.cfg.HostAddress, "error", err)
		} else {
			directIP = addr.IP.String()
			if _, err := conn.WriteTo([]byte(Magic), addr); err != nil {
				s.log.Warn("Direct probe send failed", "host", s.cfg.HostAddress, "error", err)
			}
		}
	}

	bcast := &net.UDPAddr{IP: net.IPv4bcast, Port: s.cfg.Port}
	if _, err := conn.WriteTo([]byte(Magic), bcast); err != nil {
		if directIP == "" {
			return nil, fmt.Errorf("broadcast discovery probe: %w", err)
		}
		// Loopback-only networks reject broadcast; the direct probe can
		// still answer.
		s.log.Warn("Broadcast send failed", "error", err)
	}

	found := make(map[string]*models.AgentCapabilities)
	buf := make([]byte, maxReplySize)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			// Deadline expiry ends the collection window.
			break
		}

		var cap models.AgentCapabilities
		if err := json.Unmarshal(buf[:n], &cap); err != nil {
			s.log.Warn("Malformed discovery reply", "from", from.String(), "error", err)
			continue
		}
		if cap.AgentID == "" {
			s.log.Warn("Discovery reply without agent id", "from", from.String())
			continue
		}

		sourceIP := ""
		if udp, ok := from.(*net.UDPAddr); ok {
			sourceIP = udp.IP.String()
		}
		// The reply's source address is authoritative, except for the direct
		// host probe: there the configured name is kept so Docker DNS keeps
		// resolving it.
		if sourceIP == directIP && s.cfg.HostAddress != "" {
			cap.IPAddress = s.cfg.HostAddress
		} else if sourceIP != "" {
			cap.IPAddress = sourceIP
		}
		cap.LastSeen = time.Now()

		if _, seen := found[cap.AgentID]; !seen {
			found[cap.AgentID] = &cap
			s.log.Debug("Agent discovered", "agent_id", cap.AgentID, "ip", cap.IPAddress, "platform", cap.Platform)
		}
	}
	return found, nil
}

// broadcastSocket binds an ephemeral UDP socket with SO_BROADCAST enabled.
func broadcastSocket(ctx context.Context) (net.PacketConn, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var sockErr error
			err := c.Control(func(fd uintptr) {
				sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1)
			})
			if err != nil {
				return err
			}
			return sockErr
		},
	}
	return lc.ListenPacket(ctx, "udp4", ":0")
}

// GetAgent looks an agent up by id or hostname, case-insensitively.
func (s *Service) GetAgent(id string) (*models.AgentCapabilities, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cap := range s.cache {
		if strings.EqualFold(cap.AgentID, id) || strings.EqualFold(cap.Hostname, id) {
			clone := *cap
			return &clone, true
		}
	}
	return nil, false
}

// GetAgentsWithCapability returns agents advertising the named capability.
func (s *Service) GetAgentsWithCapability(capability string) []*models.AgentCapabilities {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.AgentCapabilities
	for _, cap := range s.cache {
		for _, c := range cap.Capabilities {
			if strings.EqualFold(c, capability) {
				clone := *cap
				out = append(out, &clone)
				break
			}
		}
	}
	sortAgents(out)
	return out
}

// GetAgentsForWorkspace returns agents whose workspace roots contain the
// path. Comparison ignores case and path-separator style.
func (s *Service) GetAgentsForWorkspace(path string) []*models.AgentCapabilities {
	needle := normalizePath(path)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.AgentCapabilities
	for _, cap := range s.cache {
		for _, root := range cap.WorkspaceRoots {
			if strings.HasPrefix(needle, normalizePath(root)) {
				clone := *cap
				out = append(out, &clone)
				break
			}
		}
	}
	sortAgents(out)
	return out
}

// MarkAgentStale evicts one agent so the next discovery round re-verifies it.
func (s *Service) MarkAgentStale(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, cap := range s.cache {
		if strings.EqualFold(cap.AgentID, id) || strings.EqualFold(cap.Hostname, id) {
			delete(s.cache, key)
			s.log.Info("Agent marked stale", "agent_id", key)
			return
		}
	}
}

// InvalidateCache clears everything; the next Discover always goes to the
// network.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*models.AgentCapabilities)
	s.lastDiscovery = time.Time{}
}

// snapshotLocked copies the cache into a deterministic slice. Callers hold at
// least the read lock.
func (s *Service) snapshotLocked() []*models.AgentCapabilities {
	out := make([]*models.AgentCapabilities, 0, len(s.cache))
	for _, cap := range s.cache {
		clone := *cap
		out = append(out, &clone)
	}
	sortAgents(out)
	return out
}

func sortAgents(agents []*models.AgentCapabilities) {
	sort.Slice(agents, func(i, j int) bool { return agents[i].AgentID < agents[j].AgentID })
}

func normalizePath(p string) string {
	return strings.ToLower(strings.ReplaceAll(p, `\`, "/"))
}
