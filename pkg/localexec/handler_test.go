package localexec

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/models"
	"github.com/funnel-ops/funnel/pkg/session"
)

func step(tool models.Tool, params map[string]any) *models.Step {
	return &models.Step{StepID: "s1", Tool: tool, Params: params}
}

func newWorkspace(t *testing.T) (*Handler, string) {
	t.Helper()
	root := t.TempDir()
	return New(root), root
}

func TestReadFile(t *testing.T) {
	h, root := newWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello"), 0o644))

	t.Run("reads content", func(t *testing.T) {
		res := h.Execute(context.Background(), step(models.ToolReadFile, map[string]any{"path": "notes.txt"}))
		require.True(t, res.Success)
		assert.Equal(t, "hello", res.Output)
	})

	t.Run("missing file is not_found", func(t *testing.T) {
		res := h.Execute(context.Background(), step(models.ToolReadFile, map[string]any{"path": "nonexistent.txt"}))
		require.False(t, res.Success)
		assert.Equal(t, models.ErrKindNotFound, res.ErrorKind)
		assert.Contains(t, res.ErrorMessage, "nonexistent.txt")
	})

	t.Run("oversized file is refused", func(t *testing.T) {
		big := make([]byte, maxReadSize+1)
		require.NoError(t, os.WriteFile(filepath.Join(root, "big.bin"), big, 0o644))
		res := h.Execute(context.Background(), step(models.ToolReadFile, map[string]any{"path": "big.bin"}))
		require.False(t, res.Success)
		assert.Equal(t, models.ErrKindResource, res.ErrorKind)
	})
}

func TestPathConfinement(t *testing.T) {
	h, _ := newWorkspace(t)

	for _, escape := range []string{"../outside.txt", "../../etc/passwd", "a/../../b"} {
		res := h.Execute(context.Background(), step(models.ToolReadFile, map[string]any{"path": escape}))
		require.False(t, res.Success, escape)
		assert.Equal(t, models.ErrKindPermissionDenied, res.ErrorKind, escape)
	}

	res := h.Execute(context.Background(), step(models.ToolReadFile, map[string]any{}))
	require.False(t, res.Success)
}

func TestWriteFile(t *testing.T) {
	h, root := newWorkspace(t)

	res := h.Execute(context.Background(), step(models.ToolWriteFile,
		map[string]any{"path": "sub/dir/out.txt", "content": "written"}))
	require.True(t, res.Success)

	data, err := os.ReadFile(filepath.Join(root, "sub", "dir", "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "written", string(data))
}

func TestReplaceInFile(t *testing.T) {
	h, root := newWorkspace(t)
	path := filepath.Join(root, "conf.ini")
	require.NoError(t, os.WriteFile(path, []byte("port=8080\nport=8080\n"), 0o644))

	t.Run("replaces first occurrence only", func(t *testing.T) {
		res := h.Execute(context.Background(), step(models.ToolReplaceInFile,
			map[string]any{"path": "conf.ini", "old_content": "port=8080", "new_content": "port=9090"}))
		require.True(t, res.Success)
		data, _ := os.ReadFile(path)
		assert.Equal(t, "port=9090\nport=8080\n", string(data))
	})

	t.Run("absent old_content is not_found", func(t *testing.T) {
		res := h.Execute(context.Background(), step(models.ToolReplaceInFile,
			map[string]any{"path": "conf.ini", "old_content": "no such text", "new_content": "x"}))
		require.False(t, res.Success)
		assert.Equal(t, models.ErrKindNotFound, res.ErrorKind)
	})

	t.Run("missing old_content param is syntax error", func(t *testing.T) {
		res := h.Execute(context.Background(), step(models.ToolReplaceInFile,
			map[string]any{"path": "conf.ini", "new_content": "x"}))
		require.False(t, res.Success)
		assert.Equal(t, models.ErrKindSyntax, res.ErrorKind)
	})
}

func TestInsertInFile(t *testing.T) {
	h, root := newWorkspace(t)
	path := filepath.Join(root, "doc.md")

	require.NoError(t, os.WriteFile(path, []byte("body\n"), 0o644))
	res := h.Execute(context.Background(), step(models.ToolInsertInFile,
		map[string]any{"path": "doc.md", "position": "start", "content": "# Title"}))
	require.True(t, res.Success)
	data, _ := os.ReadFile(path)
	assert.Equal(t, "# Title\nbody\n", string(data))

	res = h.Execute(context.Background(), step(models.ToolInsertInFile,
		map[string]any{"path": "doc.md", "position": "end", "content": "footer"}))
	require.True(t, res.Success)
	data, _ = os.ReadFile(path)
	assert.Equal(t, "# Title\nbody\nfooter", string(data))

	res = h.Execute(context.Background(), step(models.ToolInsertInFile,
		map[string]any{"path": "doc.md", "position": "middle", "content": "x"}))
	require.False(t, res.Success)
	assert.Equal(t, models.ErrKindSyntax, res.ErrorKind)
}

func TestAppendToFile(t *testing.T) {
	h, root := newWorkspace(t)

	// Appending creates the file when absent.
	res := h.Execute(context.Background(), step(models.ToolAppendToFile,
		map[string]any{"path": "log.txt", "content": "one\n"}))
	require.True(t, res.Success)
	res = h.Execute(context.Background(), step(models.ToolAppendToFile,
		map[string]any{"path": "log.txt", "content": "two\n"}))
	require.True(t, res.Success)

	data, err := os.ReadFile(filepath.Join(root, "log.txt"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestScanWorkspace(t *testing.T) {
	h, root := newWorkspace(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "HEAD"), []byte("ref"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.py"), []byte("print('hi')"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "app.py"), []byte("x = 1"), 0o644))

	res := h.Execute(context.Background(), step(models.ToolScanWorkspace, map[string]any{}))
	require.True(t, res.Success)

	assert.Contains(t, res.Output, "NAME")
	assert.Contains(t, res.Output, "main.py")
	assert.Contains(t, res.Output, "src/app.py")
	assert.Contains(t, res.Output, "TOTAL: 3 items (1 dirs, 2 files)")
	assert.NotContains(t, res.Output, ".git", "version control internals stay hidden")

	// The table must round-trip through the session ingester.
	st := session.New("s1")
	st.UpdateFromStep(models.ToolScanWorkspace, map[string]any{}, res.Output, true)
	assert.Equal(t, []string{"main.py", "src/app.py"}, st.Files)
	assert.Equal(t, []string{"src"}, st.Dirs)
	assert.Equal(t, int64(11), st.FileMetadata["main.py"].SizeBytes)
	assert.Contains(t, st.Environment.ProjectTypes, "python")
}

func TestScanMissingPath(t *testing.T) {
	h, _ := newWorkspace(t)
	res := h.Execute(context.Background(), step(models.ToolScanWorkspace, map[string]any{"path": "no/such/dir"}))
	require.False(t, res.Success)
	assert.Equal(t, models.ErrKindNotFound, res.ErrorKind)
}

func TestExecuteShell(t *testing.T) {
	h, root := newWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "data.txt"), []byte("42\n"), 0o644))

	t.Run("captures output", func(t *testing.T) {
		res := h.Execute(context.Background(), step(models.ToolExecuteShell,
			map[string]any{"command": "cat data.txt"}))
		require.True(t, res.Success)
		assert.Equal(t, "42\n", res.Output)
	})

	t.Run("runs in workspace root", func(t *testing.T) {
		res := h.Execute(context.Background(), step(models.ToolExecuteShell,
			map[string]any{"command": "pwd"}))
		require.True(t, res.Success)
		assert.Contains(t, res.Output, filepath.Base(root))
	})

	t.Run("nonzero exit is execution_error with output", func(t *testing.T) {
		res := h.Execute(context.Background(), step(models.ToolExecuteShell,
			map[string]any{"command": "echo oops >&2; exit 3"}))
		require.False(t, res.Success)
		assert.Equal(t, models.ErrKindExecution, res.ErrorKind)
		assert.Contains(t, res.ErrorMessage, "exit code 3")
		assert.Contains(t, res.Output, "oops")
	})

	t.Run("timeout kills the process group", func(t *testing.T) {
		h.SetShellTimeout(200 * time.Millisecond)
		defer h.SetShellTimeout(defaultShellTimeout)

		start := time.Now()
		res := h.Execute(context.Background(), step(models.ToolExecuteShell,
			map[string]any{"command": "sleep 30"}))
		require.False(t, res.Success)
		assert.Equal(t, models.ErrKindTimeout, res.ErrorKind)
		assert.Less(t, time.Since(start), 10*time.Second)
	})

	t.Run("empty command is syntax error", func(t *testing.T) {
		res := h.Execute(context.Background(), step(models.ToolExecuteShell, map[string]any{}))
		require.False(t, res.Success)
		assert.Equal(t, models.ErrKindSyntax, res.ErrorKind)
	})
}
