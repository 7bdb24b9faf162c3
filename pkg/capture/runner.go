package capture

import (
	"context"
	"log/slog"

	"github.com/funnel-ops/funnel/pkg/driver"
	"github.com/funnel-ops/funnel/pkg/models"
)

// TaskRunner is the inner runner being decorated. *driver.Driver implements
// it.
type TaskRunner interface {
	Run(ctx context.Context, req models.TaskRequest, emit driver.EmitFunc)
}

// Runner decorates a task runner with capture persistence. Events reach the
// caller first; persistence happens behind the same callback so ordering in
// the store matches the emitted stream.
type Runner struct {
	inner TaskRunner
	store Store
	log   *slog.Logger
}

// NewRunner wraps a runner with the given store.
func NewRunner(inner TaskRunner, store Store) *Runner {
	return &Runner{
		inner: inner,
		store: store,
		log:   slog.With("component", "capture"),
	}
}

// Run drives the inner runner, persisting the run as it streams. Thinking
// token frames are not persisted; the step results they lead to are.
func (r *Runner) Run(ctx context.Context, req models.TaskRequest, emit driver.EmitFunc) {
	// Persistence outlives the request context so a cancelled task still
	// gets its terminal state written.
	persistCtx := context.WithoutCancel(ctx)

	runID, err := r.store.StartRun(persistCtx, req.SessionID, req.Task)
	if err != nil {
		r.log.Warn("Capture disabled for this run", "error", err)
		r.inner.Run(ctx, req, emit)
		return
	}

	seq := 0
	steps := 0
	r.inner.Run(ctx, req, func(ev models.TaskEvent) {
		emit(ev)

		if ev.Type == models.EventThinking {
			return
		}
		seq++
		if err := r.store.RecordEvent(persistCtx, runID, seq, ev); err != nil {
			r.log.Warn("Failed to record event", "run_id", runID, "error", err)
		}

		switch ev.Type {
		case models.EventResult:
			steps++
			if err := r.store.RecordStep(persistCtx, runID, ev); err != nil {
				r.log.Warn("Failed to record step", "run_id", runID, "error", err)
			}
		case models.EventComplete:
			if err := r.store.FinishRun(persistCtx, runID, ev, steps); err != nil {
				r.log.Warn("Failed to finish run", "run_id", runID, "error", err)
			}
		}
	})
}
