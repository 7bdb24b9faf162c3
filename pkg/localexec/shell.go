package localexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"github.com/funnel-ops/funnel/pkg/models"
)

// killGrace is how long a process group gets between SIGTERM and SIGKILL.
const killGrace = 5 * time.Second

// runShell executes a command under /bin/sh with the handler's timeout.
// The command runs in its own process group; on timeout the whole group is
// terminated, escalating from SIGTERM to SIGKILL.
func (h *Handler) runShell(ctx context.Context, command string) *models.StepResult {
	if command == "" {
		return failure(models.ErrKindSyntax, "command parameter is required")
	}

	runCtx, cancel := context.WithTimeout(ctx, h.shellTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "/bin/sh", "-c", command)
	cmd.Dir = h.root
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		// Negative pid signals the whole group, catching children the shell
		// spawned.
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	}
	cmd.WaitDelay = killGrace

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	h.log.Info("Running local command", "command", command)
	err := cmd.Run()
	output := out.String()

	switch {
	case err == nil:
		return &models.StepResult{Success: true, Output: output}
	case runCtx.Err() != nil:
		return failure(models.ErrKindTimeout,
			fmt.Sprintf("command timed out after %s", h.shellTimeout))
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result := failure(models.ErrKindExecution,
				fmt.Sprintf("exit code %d", exitErr.ExitCode()))
			result.Output = output
			return result
		}
		return failure(models.ErrKindExecution, err.Error())
	}
}
