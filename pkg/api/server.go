// Package api exposes the orchestrator over HTTP: task submission with a
// server-sent event stream, agent listing, session management, and health.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/funnel-ops/funnel/pkg/driver"
	"github.com/funnel-ops/funnel/pkg/llm"
	"github.com/funnel-ops/funnel/pkg/models"
	"github.com/funnel-ops/funnel/pkg/session"
)

const shutdownTimeout = 10 * time.Second

// TaskRunner drives one task and emits its event stream. *driver.Driver
// implements it.
type TaskRunner interface {
	Run(ctx context.Context, req models.TaskRequest, emit driver.EmitFunc)
}

// AgentLister answers agent listing requests. *discovery.Service implements
// it.
type AgentLister interface {
	Discover(ctx context.Context, force bool) []*models.AgentCapabilities
}

// ModelStatusClient reports inference model residency.
type ModelStatusClient interface {
	ModelStatus(ctx context.Context) (*llm.ModelStatus, error)
}

// AgentProber sweeps known agents for reachability. *dispatch.Dispatcher
// implements it.
type AgentProber interface {
	PingAll(ctx context.Context) map[string]error
}

// Options wires a Server's collaborators. Model and DBPing are optional.
type Options struct {
	ListenAddr string
	Runner     TaskRunner
	Agents     AgentLister
	Sessions   *session.Registry
	Model      ModelStatusClient
	Prober     AgentProber

	// DBPing checks capture store connectivity when capture is enabled.
	DBPing func(context.Context) error
}

// Server is the HTTP front end.
type Server struct {
	addr     string
	runner   TaskRunner
	agents   AgentLister
	sessions *session.Registry
	model    ModelStatusClient
	prober   AgentProber
	dbPing   func(context.Context) error
	log      *slog.Logger
}

// NewServer creates the HTTP server from its collaborators.
func NewServer(opts Options) *Server {
	return &Server{
		addr:     opts.ListenAddr,
		runner:   opts.Runner,
		agents:   opts.Agents,
		sessions: opts.Sessions,
		model:    opts.Model,
		prober:   opts.Prober,
		dbPing:   opts.DBPing,
		log:      slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/tasks", s.createTaskHandler)
		v1.GET("/agents", s.listAgentsHandler)
		v1.GET("/model/status", s.modelStatusHandler)
		v1.POST("/sessions/:id/reset", s.resetSessionHandler)
		v1.DELETE("/sessions/:id", s.deleteSessionHandler)
	}
	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
