// Package capture persists task runs to the capture store for audit and
// later training. Capture is best-effort: persistence failures are logged
// and never fail the task that produced them.
package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/funnel-ops/funnel/ent/taskrun"
	"github.com/funnel-ops/funnel/pkg/database"
	"github.com/funnel-ops/funnel/pkg/models"
)

// Store is the persistence surface the runner writes through. *Service is
// the Postgres implementation.
type Store interface {
	StartRun(ctx context.Context, sessionID, task string) (string, error)
	RecordEvent(ctx context.Context, runID string, seq int, ev models.TaskEvent) error
	RecordStep(ctx context.Context, runID string, ev models.TaskEvent) error
	FinishRun(ctx context.Context, runID string, final models.TaskEvent, stepsTotal int) error
}

// Service writes runs, steps, and events through the ent client.
type Service struct {
	db  *database.Client
	log *slog.Logger
}

// NewService creates a capture service on an open database client.
func NewService(db *database.Client) *Service {
	return &Service{
		db:  db,
		log: slog.With("component", "capture"),
	}
}

// StartRun records a new task run and returns its id.
func (s *Service) StartRun(ctx context.Context, sessionID, task string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.TaskRun.Create().
		SetID(id).
		SetSessionID(sessionID).
		SetTask(task).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create task run: %w", err)
	}
	return id, nil
}

// RecordEvent appends one emitted event to the run's stream.
func (s *Service) RecordEvent(ctx context.Context, runID string, seq int, ev models.TaskEvent) error {
	payload, err := eventPayload(ev)
	if err != nil {
		return err
	}
	_, err = s.db.RunEvent.Create().
		SetID(uuid.NewString()).
		SetRunID(runID).
		SetSequence(seq).
		SetEventType(string(ev.Type)).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// RecordStep persists one executed step from its result event. The output in
// the event has already been masked by the driver.
func (s *Service) RecordStep(ctx context.Context, runID string, ev models.TaskEvent) error {
	if ev.Result == nil {
		return fmt.Errorf("result event without result payload")
	}
	_, err := s.db.CapturedStep.Create().
		SetID(uuid.NewString()).
		SetRunID(runID).
		SetStepNum(ev.StepNum).
		SetTool(string(ev.Tool)).
		SetOutput(ev.Result.Output).
		SetSuccess(ev.Result.Success).
		SetErrorKind(string(ev.Result.ErrorKind)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record step: %w", err)
	}
	return nil
}

// FinishRun stamps the run's terminal state from its complete event.
func (s *Service) FinishRun(ctx context.Context, runID string, final models.TaskEvent, stepsTotal int) error {
	status := taskrun.StatusCompleted
	if final.Error != "" {
		status = taskrun.StatusFailed
	}
	err := s.db.TaskRun.UpdateOneID(runID).
		SetStatus(status).
		SetAnswer(final.Answer).
		SetError(final.Error).
		SetStepsTotal(stepsTotal).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish task run: %w", err)
	}
	return nil
}

func eventPayload(ev models.TaskEvent) (map[string]interface{}, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to build event payload: %w", err)
	}
	return payload, nil
}
