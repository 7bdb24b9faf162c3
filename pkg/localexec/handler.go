// Package localexec implements the tool handlers that act on the local
// workspace: scanning, file operations, and shell execution. Every handler
// returns a StepResult; failures never panic or leak outside the workspace
// root.
package localexec

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/funnel-ops/funnel/pkg/models"
)

const (
	// maxReadSize caps read_file output so one large file cannot blow up the
	// prompt.
	maxReadSize = 256 * 1024

	defaultShellTimeout = 60 * time.Second
)

// Handler executes local tool steps rooted at a workspace directory.
type Handler struct {
	root         string
	shellTimeout time.Duration
	log          *slog.Logger
}

// New creates a handler confined to root.
func New(root string) *Handler {
	return &Handler{
		root:         root,
		shellTimeout: defaultShellTimeout,
		log:          slog.With("component", "localexec"),
	}
}

// SetShellTimeout overrides the execute_shell deadline.
func (h *Handler) SetShellTimeout(d time.Duration) {
	if d > 0 {
		h.shellTimeout = d
	}
}

// Execute runs one local step and returns its observed result.
func (h *Handler) Execute(ctx context.Context, step *models.Step) *models.StepResult {
	switch step.Tool {
	case models.ToolScanWorkspace:
		return h.scan(step.ParamString("path"))
	case models.ToolReadFile:
		return h.readFile(step.Path())
	case models.ToolWriteFile:
		return h.writeFile(step.Path(), step.ParamString("content"))
	case models.ToolReplaceInFile:
		return h.replaceInFile(step.Path(), step.ParamString("old_content"), step.ParamString("new_content"))
	case models.ToolInsertInFile:
		return h.insertInFile(step.Path(), step.ParamString("position"), step.ParamString("content"))
	case models.ToolAppendToFile:
		return h.appendToFile(step.Path(), step.ParamString("content"))
	case models.ToolExecuteShell:
		return h.runShell(ctx, step.Command())
	default:
		return failure(models.ErrKindExecution, fmt.Sprintf("no local handler for tool %q", step.Tool))
	}
}

// resolve joins a workspace-relative path and rejects escapes from the root.
func (h *Handler) resolve(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("path parameter is required")
	}
	abs := filepath.Clean(filepath.Join(h.root, filepath.FromSlash(rel)))
	rootAbs := filepath.Clean(h.root)
	if abs != rootAbs && !strings.HasPrefix(abs, rootAbs+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the workspace", rel)
	}
	return abs, nil
}

func (h *Handler) readFile(rel string) *models.StepResult {
	abs, err := h.resolve(rel)
	if err != nil {
		return failure(models.ErrKindPermissionDenied, err.Error())
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fileError(rel, err)
	}
	if info.IsDir() {
		return failure(models.ErrKindExecution, fmt.Sprintf("%s is a directory", rel))
	}
	if info.Size() > maxReadSize {
		return failure(models.ErrKindResource,
			fmt.Sprintf("%s is %d bytes, over the %d byte read limit", rel, info.Size(), maxReadSize))
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return fileError(rel, err)
	}
	return &models.StepResult{Success: true, Output: string(data)}
}

func (h *Handler) writeFile(rel, content string) *models.StepResult {
	abs, err := h.resolve(rel)
	if err != nil {
		return failure(models.ErrKindPermissionDenied, err.Error())
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fileError(rel, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return fileError(rel, err)
	}
	return &models.StepResult{Success: true, Output: fmt.Sprintf("wrote %d bytes to %s", len(content), rel)}
}

func (h *Handler) replaceInFile(rel, oldContent, newContent string) *models.StepResult {
	if oldContent == "" {
		return failure(models.ErrKindSyntax, "old_content parameter is required")
	}
	abs, err := h.resolve(rel)
	if err != nil {
		return failure(models.ErrKindPermissionDenied, err.Error())
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return fileError(rel, err)
	}
	text := string(data)
	if !strings.Contains(text, oldContent) {
		return failure(models.ErrKindNotFound, fmt.Sprintf("old_content not found in %s", rel))
	}
	text = strings.Replace(text, oldContent, newContent, 1)
	if err := os.WriteFile(abs, []byte(text), 0o644); err != nil {
		return fileError(rel, err)
	}
	return &models.StepResult{Success: true, Output: fmt.Sprintf("replaced 1 occurrence in %s", rel)}
}

func (h *Handler) insertInFile(rel, position, content string) *models.StepResult {
	abs, err := h.resolve(rel)
	if err != nil {
		return failure(models.ErrKindPermissionDenied, err.Error())
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return fileError(rel, err)
	}
	text := string(data)
	switch position {
	case "start", "":
		text = glue(content, text)
	case "end":
		text = glue(text, content)
	default:
		return failure(models.ErrKindSyntax, fmt.Sprintf("unknown insert position %q", position))
	}
	if err := os.WriteFile(abs, []byte(text), 0o644); err != nil {
		return fileError(rel, err)
	}
	return &models.StepResult{Success: true, Output: fmt.Sprintf("inserted %d bytes at %s of %s", len(content), positionName(position), rel)}
}

func (h *Handler) appendToFile(rel, content string) *models.StepResult {
	abs, err := h.resolve(rel)
	if err != nil {
		return failure(models.ErrKindPermissionDenied, err.Error())
	}
	f, err := os.OpenFile(abs, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fileError(rel, err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return fileError(rel, err)
	}
	return &models.StepResult{Success: true, Output: fmt.Sprintf("appended %d bytes to %s", len(content), rel)}
}

// glue joins two text pieces with exactly one separating newline.
func glue(head, tail string) string {
	if head == "" || strings.HasSuffix(head, "\n") {
		return head + tail
	}
	return head + "\n" + tail
}

func positionName(position string) string {
	if position == "" {
		return "start"
	}
	return position
}

func failure(kind models.ErrorKind, msg string) *models.StepResult {
	return &models.StepResult{Success: false, Output: msg, ErrorKind: kind, ErrorMessage: msg}
}

// fileError classifies an OS-level file failure.
func fileError(rel string, err error) *models.StepResult {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return failure(models.ErrKindNotFound, fmt.Sprintf("%s: file not found", rel))
	case errors.Is(err, fs.ErrPermission):
		return failure(models.ErrKindPermissionDenied, fmt.Sprintf("%s: permission denied", rel))
	default:
		return failure(models.ErrKindExecution, fmt.Sprintf("%s: %v", rel, err))
	}
}
