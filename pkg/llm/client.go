// Package llm wraps the gRPC connection to the model runtime. The rest of
// the orchestrator only sees token streams and plain completions.
package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	pb "github.com/funnel-ops/funnel/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// warmupTimeout bounds the initial model-load request.
const warmupTimeout = 60 * time.Second

// Message is one chat turn sent to the model.
type Message struct {
	Role    string `json:"role"` // system|user|assistant
	Content string `json:"content"`
}

// Token is one element of a streaming response. Err is terminal: no further
// tokens follow it.
type Token struct {
	Text string
	Err  error
}

// ModelStatus reports whether the model is resident and usable.
type ModelStatus struct {
	Loaded      bool   `json:"loaded"`
	VRAMPercent int    `json:"vram_percent"`
	Details     string `json:"details"`
}

// Client is the interface the reasoning engine programs against. The gRPC
// implementation is the production path; tests substitute scripted clients.
type Client interface {
	// Complete returns the full response text for a conversation.
	Complete(ctx context.Context, messages []Message) (string, error)

	// Stream returns a channel of tokens. The channel is closed when the
	// stream ends; a Token with non-nil Err terminates it early.
	Stream(ctx context.Context, messages []Message) (<-chan Token, error)

	// ModelStatus reports model residency for warmup and status endpoints.
	ModelStatus(ctx context.Context) (*ModelStatus, error)
}

// GRPCClient talks to the LLM service over gRPC.
type GRPCClient struct {
	conn        *grpc.ClientConn
	client      pb.LLMServiceClient
	temperature float32
	maxTokens   int32
	warmedUp    bool
}

// NewGRPCClient connects to the LLM service. The connection is lazy; the
// first request triggers the actual dial.
func NewGRPCClient(addr string, temperature float32, maxTokens int32) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:        conn,
		client:      pb.NewLLMServiceClient(conn),
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Close closes the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) request(messages []Message, stream bool) *pb.GenerateRequest {
	req := &pb.GenerateRequest{
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Stream:      stream,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, &pb.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return req
}

// Complete drains a generation stream into a single string.
func (c *GRPCClient) Complete(ctx context.Context, messages []Message) (string, error) {
	tokens, err := c.Stream(ctx, messages)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for tok := range tokens {
		if tok.Err != nil {
			return b.String(), tok.Err
		}
		b.WriteString(tok.Text)
	}
	return b.String(), nil
}

// Stream opens a generation stream and pumps tokens into a channel. The
// producer goroutine exits when the stream ends or ctx is cancelled.
func (c *GRPCClient) Stream(ctx context.Context, messages []Message) (<-chan Token, error) {
	stream, err := c.client.Generate(ctx, c.request(messages, true))
	if err != nil {
		return nil, fmt.Errorf("LLM Generate call failed: %w", err)
	}

	ch := make(chan Token, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- Token{Err: err}:
				case <-ctx.Done():
				}
				return
			}
			if resp.Error != "" {
				select {
				case ch <- Token{Err: fmt.Errorf("LLM error: %s", resp.Error)}:
				case <-ctx.Done():
				}
				return
			}
			if resp.Done {
				return
			}
			select {
			case ch <- Token{Text: resp.Token}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// ModelStatus queries model residency.
func (c *GRPCClient) ModelStatus(ctx context.Context) (*ModelStatus, error) {
	resp, err := c.client.GetModelStatus(ctx, &pb.ModelStatusRequest{})
	if err != nil {
		return nil, fmt.Errorf("model status query failed: %w", err)
	}
	return &ModelStatus{
		Loaded:      resp.Loaded,
		VRAMPercent: int(resp.VramPercent),
		Details:     resp.Details,
	}, nil
}

// Warmup issues a tiny prompt so the runtime loads the model before the
// first real task hits it. Safe to call more than once.
func (c *GRPCClient) Warmup(ctx context.Context) error {
	if c.warmedUp {
		return nil
	}
	warmCtx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()

	start := time.Now()
	_, err := c.Complete(warmCtx, []Message{{Role: "user", Content: "ok"}})
	if err != nil {
		return fmt.Errorf("model warmup failed: %w", err)
	}
	c.warmedUp = true
	slog.Info("Model warmed up", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
