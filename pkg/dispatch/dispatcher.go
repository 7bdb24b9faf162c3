// Package dispatch carries commands to remote agents over gRPC. Connections
// are pooled per agent endpoint, secured with mTLS when certificates are
// configured, and health-checked before reuse.
package dispatch

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/funnel-ops/funnel/pkg/discovery"
	"github.com/funnel-ops/funnel/pkg/models"
	pb "github.com/funnel-ops/funnel/proto"
)

const (
	// maxMessageSize accommodates full directory listings in one response.
	maxMessageSize = 500 * 1024 * 1024

	keepaliveInterval = 30 * time.Second
	keepaliveTimeout  = 10 * time.Second

	// timeoutSlack is added to the command timeout so the agent, not the
	// client, surfaces command-level timeouts.
	timeoutSlack = 10 * time.Second
)

// TLSConfig locates the orchestrator's client certificate material.
type TLSConfig struct {
	CertPath string
	KeyPath  string
	CAPath   string

	// CAFingerprint, when set, is a hex SHA-256 of the CA certificate DER.
	// A mismatching CA file is rejected at channel creation.
	CAFingerprint string

	// Insecure disables mTLS entirely. Development only.
	Insecure bool
}

// ExecuteRequest describes one remote command.
type ExecuteRequest struct {
	AgentID          string
	Command          string
	Type             models.TaskType
	TimeoutSeconds   int
	RequireElevation bool
	WorkingDirectory string
	Environment      map[string]string
}

// Dispatcher owns the agent channel pool. One instance serves all sessions.
type Dispatcher struct {
	disc *discovery.Service
	tls  TLSConfig
	log  *slog.Logger

	mu    sync.Mutex
	conns map[connKey]*agentConn
}

type connKey struct {
	agentID string
	ip      string
	port    int
}

type agentConn struct {
	conn   *grpc.ClientConn
	client pb.AgentServiceClient
}

// NewDispatcher creates a dispatcher backed by the given discovery service.
func NewDispatcher(disc *discovery.Service, tlsCfg TLSConfig) *Dispatcher {
	return &Dispatcher{
		disc:  disc,
		tls:   tlsCfg,
		log:   slog.With("component", "dispatch"),
		conns: make(map[connKey]*agentConn),
	}
}

// Execute runs one command to completion on the named agent. Transport
// failures come back as a failed TaskResult, not an error: the OODA loop
// adapts through observed results.
func (d *Dispatcher) Execute(ctx context.Context, req ExecuteRequest) (*models.TaskResult, error) {
	client, agent, err := d.clientFor(ctx, req.AgentID)
	if err != nil {
		return nil, err
	}

	taskID := uuid.NewString()
	timeout := time.Duration(req.TimeoutSeconds)*time.Second + timeoutSlack
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	d.log.Info("Dispatching command", "agent_id", agent.AgentID, "task_id", taskID, "type", req.Type)
	resp, err := client.Execute(callCtx, d.buildRequest(taskID, req))
	if err != nil {
		d.handleTransportError(agent.AgentID, err)
		return transportFailure(taskID, err), nil
	}
	return normalizeResponse(resp), nil
}

// ExecuteStreaming runs one command and yields output chunks as the agent
// produces them. Stream errors arrive as a final error-typed chunk.
func (d *Dispatcher) ExecuteStreaming(ctx context.Context, req ExecuteRequest) (<-chan models.TaskOutput, error) {
	client, agent, err := d.clientFor(ctx, req.AgentID)
	if err != nil {
		return nil, err
	}

	taskID := uuid.NewString()
	timeout := time.Duration(req.TimeoutSeconds)*time.Second + timeoutSlack
	callCtx, cancel := context.WithTimeout(ctx, timeout)

	stream, err := client.ExecuteStreaming(callCtx, d.buildRequest(taskID, req))
	if err != nil {
		cancel()
		d.handleTransportError(agent.AgentID, err)
		return nil, fmt.Errorf("open stream to %s: %w", agent.AgentID, err)
	}

	out := make(chan models.TaskOutput, 16)
	go func() {
		defer close(out)
		defer cancel()
		for {
			chunk, err := stream.Recv()
			if err != nil {
				if !isEOF(err) {
					d.handleTransportError(agent.AgentID, err)
					out <- models.TaskOutput{
						TaskID:      taskID,
						OutputType:  models.OutputError,
						Content:     err.Error(),
						TimestampMs: time.Now().UnixMilli(),
					}
				}
				return
			}
			out <- models.TaskOutput{
				TaskID:      chunk.GetTaskId(),
				OutputType:  outputTypeFromProto(chunk.GetOutputType()),
				Content:     chunk.GetContent(),
				TimestampMs: chunk.GetTimestampMs(),
			}
		}
	}()
	return out, nil
}

// Ping checks agent liveness.
func (d *Dispatcher) Ping(ctx context.Context, agentID string) error {
	client, agent, err := d.clientFor(ctx, agentID)
	if err != nil {
		return err
	}
	callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := client.Ping(callCtx, &pb.PingRequest{SenderId: "orchestrator"}); err != nil {
		d.handleTransportError(agent.AgentID, err)
		return fmt.Errorf("ping %s: %w", agent.AgentID, err)
	}
	return nil
}

// GetStatus reports progress of a running task.
func (d *Dispatcher) GetStatus(ctx context.Context, agentID, taskID string) (running bool, elapsedMs int64, err error) {
	client, agent, err := d.clientFor(ctx, agentID)
	if err != nil {
		return false, 0, err
	}
	resp, err := client.GetStatus(ctx, &pb.TaskStatusRequest{TaskId: taskID})
	if err != nil {
		d.handleTransportError(agent.AgentID, err)
		return false, 0, fmt.Errorf("status of %s on %s: %w", taskID, agent.AgentID, err)
	}
	return resp.GetRunning(), resp.GetElapsedMs(), nil
}

// Cancel aborts a running task on the agent.
func (d *Dispatcher) Cancel(ctx context.Context, agentID, taskID string) error {
	client, agent, err := d.clientFor(ctx, agentID)
	if err != nil {
		return err
	}
	resp, err := client.Cancel(ctx, &pb.CancelRequest{TaskId: taskID})
	if err != nil {
		d.handleTransportError(agent.AgentID, err)
		return fmt.Errorf("cancel %s on %s: %w", taskID, agent.AgentID, err)
	}
	if !resp.GetCancelled() {
		return fmt.Errorf("agent %s did not cancel task %s", agent.AgentID, taskID)
	}
	return nil
}

// Close tears the whole channel pool down.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, ac := range d.conns {
		ac.conn.Close()
		delete(d.conns, key)
	}
}

// clientFor resolves an agent and returns a healthy stub for it. A discovery
// cache miss forces exactly one fresh round before giving up.
func (d *Dispatcher) clientFor(ctx context.Context, agentID string) (pb.AgentServiceClient, *models.AgentCapabilities, error) {
	agent, ok := d.disc.GetAgent(agentID)
	if !ok {
		d.disc.Discover(ctx, true)
		if agent, ok = d.disc.GetAgent(agentID); !ok {
			return nil, nil, fmt.Errorf("agent %q not found", agentID)
		}
	}
	if agent.IPAddress == "" || agent.GRPCPort == 0 {
		return nil, nil, fmt.Errorf("agent %q has no usable endpoint", agentID)
	}

	key := connKey{agentID: agent.AgentID, ip: agent.IPAddress, port: agent.GRPCPort}

	d.mu.Lock()
	defer d.mu.Unlock()

	if ac, ok := d.conns[key]; ok {
		switch ac.conn.GetState() {
		case connectivity.Shutdown, connectivity.TransientFailure:
			d.log.Info("Evicting unhealthy channel", "agent_id", key.agentID, "state", ac.conn.GetState())
			ac.conn.Close()
			delete(d.conns, key)
		default:
			return ac.client, agent, nil
		}
	}

	conn, err := d.dial(agent)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to agent %q: %w", agentID, err)
	}
	ac := &agentConn{conn: conn, client: pb.NewAgentServiceClient(conn)}
	d.conns[key] = ac
	return ac.client, agent, nil
}

func (d *Dispatcher) dial(agent *models.AgentCapabilities) (*grpc.ClientConn, error) {
	creds, err := d.credentials(agent.Hostname)
	if err != nil {
		return nil, err
	}
	target := fmt.Sprintf("%s:%d", agent.IPAddress, agent.GRPCPort)
	return grpc.NewClient(target,
		grpc.WithTransportCredentials(creds),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                keepaliveInterval,
			Timeout:             keepaliveTimeout,
			PermitWithoutStream: true,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMessageSize),
			grpc.MaxCallSendMsgSize(maxMessageSize),
		),
	)
}

// credentials builds mTLS credentials when all three PEM files exist,
// otherwise falls back to plaintext with a visible warning.
func (d *Dispatcher) credentials(serverName string) (credentials.TransportCredentials, error) {
	if d.tls.Insecure || !filesExist(d.tls.CertPath, d.tls.KeyPath, d.tls.CAPath) {
		d.log.Warn("mTLS material unavailable, using insecure channel",
			"cert", d.tls.CertPath, "key", d.tls.KeyPath, "ca", d.tls.CAPath)
		return insecure.NewCredentials(), nil
	}

	cert, err := tls.LoadX509KeyPair(d.tls.CertPath, d.tls.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("load client certificate: %w", err)
	}

	caPEM, err := os.ReadFile(d.tls.CAPath)
	if err != nil {
		return nil, fmt.Errorf("read CA certificate: %w", err)
	}
	if err := verifyCAFingerprint(caPEM, d.tls.CAFingerprint); err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("CA file %s contains no certificates", d.tls.CAPath)
	}

	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		ServerName:   serverName,
		MinVersion:   tls.VersionTLS12,
	}), nil
}

// verifyCAFingerprint pins the CA by hex SHA-256 of its DER bytes.
func verifyCAFingerprint(caPEM []byte, want string) error {
	if want == "" {
		return nil
	}
	block, _ := pem.Decode(caPEM)
	if block == nil {
		return fmt.Errorf("CA file is not PEM")
	}
	got := hex.EncodeToString(func() []byte { s := sha256.Sum256(block.Bytes); return s[:] }())
	if !strings.EqualFold(got, strings.ReplaceAll(want, ":", "")) {
		return fmt.Errorf("CA fingerprint mismatch: have %s", got)
	}
	return nil
}

func (d *Dispatcher) buildRequest(taskID string, req ExecuteRequest) *pb.TaskRequest {
	return &pb.TaskRequest{
		TaskId:           taskID,
		Type:             taskTypeToProto(req.Type),
		Command:          req.Command,
		TimeoutSeconds:   int32(req.TimeoutSeconds),
		RequireElevation: req.RequireElevation,
		WorkingDirectory: req.WorkingDirectory,
		Environment:      req.Environment,
	}
}

// handleTransportError marks the agent stale on connection-level failures so
// the next resolution re-discovers it.
func (d *Dispatcher) handleTransportError(agentID string, err error) {
	if isConnectionError(err) {
		d.log.Warn("Transport failure, marking agent stale", "agent_id", agentID, "error", err)
		d.disc.MarkAgentStale(agentID)
	}
}

func filesExist(paths ...string) bool {
	if len(paths) == 0 {
		return false
	}
	for _, p := range paths {
		if p == "" {
			return false
		}
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}
