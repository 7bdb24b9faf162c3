package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleScan = `NAME            TYPE  SIZE     MODIFIED
cmd             dir   -        2026-08-01 10:00
main.py         file  2048     2026-08-01 10:00
data.bin        file  1.5 MiB  2026-08-02 11:30
requirements.txt file 120 B    2026-08-01 09:00
garbage row that matches nothing
TOTAL: 5 items (1 dirs, 4 files)`

func TestIngestScanOutput(t *testing.T) {
	s := New("s1")
	s.IngestScanOutput(sampleScan)

	assert.Equal(t, []string{"cmd"}, s.Dirs)
	assert.Equal(t, []string{"main.py", "data.bin", "requirements.txt"}, s.Files)

	assert.Equal(t, int64(2048), s.FileMetadata["main.py"].SizeBytes)
	assert.Equal(t, "2.0 KiB", s.FileMetadata["main.py"].HumanSize)
	assert.Equal(t, int64(1572864), s.FileMetadata["data.bin"].SizeBytes)
	assert.Equal(t, int64(120), s.FileMetadata["requirements.txt"].SizeBytes)

	assert.Equal(t, 1, s.Environment.DirCount)
	assert.Equal(t, 4, s.Environment.FileCount)
}

func TestIngestScanOutput_DuplicatesSuppressed(t *testing.T) {
	s := New("s1")
	s.IngestScanOutput(sampleScan)
	total := s.Environment.TotalBytes
	s.IngestScanOutput(sampleScan)

	assert.Len(t, s.Files, 3)
	assert.Equal(t, total, s.Environment.TotalBytes, "re-ingest must not double-count sizes")
}

func TestIngestScanOutput_EmptyAndMalformed(t *testing.T) {
	s := New("s1")

	// Zero file rows: no files, no panic
	s.IngestScanOutput("")
	assert.Empty(t, s.Files)

	s.IngestScanOutput("completely unstructured text\nwith no table at all")
	assert.Empty(t, s.Files)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		token string
		want  int64
		ok    bool
	}{
		{"1024", 1024, true},
		{"1 KiB", 1024, true},
		{"2.5 MiB", 2621440, true},
		{"1 GiB", 1 << 30, true},
		{"3 KB", 3000, true},
		{"-", 0, false},
		{"", 0, false},
		{"huge", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseSize(tt.token)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseSize(%q) = (%d, %v), want (%d, %v)", tt.token, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDetectProjectType(t *testing.T) {
	tests := []struct {
		name           string
		files          []string
		wantTypes      []string
		wantFrameworks []string
	}{
		{
			name:      "python via extension",
			files:     []string{"main.py", "util.py"},
			wantTypes: []string{"python"},
		},
		{
			name:      "docker via compose",
			files:     []string{"docker-compose.yml"},
			wantTypes: []string{"docker"},
		},
		{
			name:      "node via package.json",
			files:     []string{"package.json", "index.js"},
			wantTypes: []string{"node"},
		},
		{
			name:           "fastapi and pytest",
			files:          []string{"app/fastapi_main.py", "test_app.py", "pytest.ini"},
			wantTypes:      []string{"python"},
			wantFrameworks: []string{"fastapi", "pytest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("s1")
			s.Files = tt.files
			s.detectProjectType()
			assert.Equal(t, tt.wantTypes, s.Environment.ProjectTypes)
			assert.Equal(t, tt.wantFrameworks, s.Environment.Frameworks)
		})
	}
}

func TestDetectProjectType_Monotonic(t *testing.T) {
	s := New("s1")
	s.Files = []string{"main.py"}
	s.detectProjectType()
	s.detectProjectType()
	assert.Equal(t, []string{"python"}, s.Environment.ProjectTypes, "repeat detection adds nothing")
}

func TestExtractShellFacts(t *testing.T) {
	s := New("s1")

	s.extractShellFacts("On branch feature/discovery\nnothing to commit")
	assert.Equal(t, "feature/discovery", s.Environment.GitBranch)

	s.extractShellFacts("Python 3.12.1")
	assert.Equal(t, "3.12.1", s.Environment.PythonVersion)

	s.extractShellFacts("v20.11.0")
	assert.Equal(t, "20.11.0", s.Environment.NodeVersion)

	s.extractShellFacts("/home/ian/projects")
	assert.Equal(t, "/home/ian/projects", s.Environment.WorkingDir)

	s.extractShellFacts("CONTAINER ID   IMAGE   COMMAND")
	assert.True(t, s.Environment.DockerRunning)
}
