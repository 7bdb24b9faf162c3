package session

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Scan output is a fixed text table:
//
//	NAME            TYPE  SIZE     MODIFIED
//	cmd             dir   -        2026-08-01 10:00
//	main.go         file  1.2 KiB  2026-08-01 10:00
//	TOTAL: 12 items (3 dirs, 9 files)
//
// Rows are classified by the TYPE column. Unparseable rows are skipped
// silently; the ingester never fails on malformed input.
var (
	totalLinePattern = regexp.MustCompile(`TOTAL:\s*\d+\s+items?\s*\((\d+)\s+dirs?,\s*(\d+)\s+files?\)`)
	scanRowPattern   = regexp.MustCompile(`^(\S+)\s+(file|dir)\s+(\S+(?:\s[KMGT]i?B)?)\s*(.*)$`)
	sizeUnitPattern  = regexp.MustCompile(`^([\d.]+)\s*(B|KiB|MiB|GiB|TiB|KB|MB|GB|TB)$`)
)

var sizeUnits = map[string]int64{
	"B":   1,
	"KiB": 1 << 10,
	"MiB": 1 << 20,
	"GiB": 1 << 30,
	"TiB": 1 << 40,
	"KB":  1000,
	"MB":  1000 * 1000,
	"GB":  1000 * 1000 * 1000,
	"TB":  1000 * 1000 * 1000 * 1000,
}

// IngestScanOutput parses a scan table, adding new files/dirs and metadata.
// Duplicates are suppressed by path. A TOTAL footer updates environment totals.
func (s *State) IngestScanOutput(output string) {
	for _, rawLine := range strings.Split(output, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "NAME") {
			continue
		}

		if m := totalLinePattern.FindStringSubmatch(line); m != nil {
			// Parse errors impossible: the pattern only matches digits.
			dirs, _ := strconv.Atoi(m[1])
			files, _ := strconv.Atoi(m[2])
			s.Environment.DirCount = dirs
			s.Environment.FileCount = files
			continue
		}

		m := scanRowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, kind, sizeToken := m[1], m[2], strings.TrimSpace(m[3])

		switch kind {
		case "dir":
			if !contains(s.Dirs, name) {
				s.Dirs = append(s.Dirs, name)
			}
		case "file":
			if contains(s.Files, name) {
				continue
			}
			s.Files = append(s.Files, name)
			if bytes, ok := parseSize(sizeToken); ok {
				s.FileMetadata[name] = FileMetadata{
					SizeBytes: bytes,
					HumanSize: humanSize(bytes),
				}
				s.Environment.TotalBytes += bytes
			}
		}
	}
}

// parseSize accepts integer bytes or a number with a unit (B, KiB, MiB, ...).
func parseSize(token string) (int64, bool) {
	if token == "" || token == "-" {
		return 0, false
	}
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return n, true
	}
	m := sizeUnitPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return int64(value * float64(sizeUnits[m[2]])), true
}

// humanSize renders bytes with binary units, one decimal place.
func humanSize(bytes int64) string {
	switch {
	case bytes >= 1<<40:
		return fmt.Sprintf("%.1f TiB", float64(bytes)/(1<<40))
	case bytes >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(bytes)/(1<<30))
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// detectProjectType applies the rule-based project/framework detection over
// the discovered file set. Detections are idempotent and monotonic: a tag is
// added once and never removed within a session.
func (s *State) detectProjectType() {
	addType := func(t string) {
		if !contains(s.Environment.ProjectTypes, t) {
			s.Environment.ProjectTypes = append(s.Environment.ProjectTypes, t)
		}
	}
	addFramework := func(f string) {
		if !contains(s.Environment.Frameworks, f) {
			s.Environment.Frameworks = append(s.Environment.Frameworks, f)
		}
	}

	for _, f := range s.Files {
		base := f
		if idx := strings.LastIndexAny(f, "/\\"); idx >= 0 {
			base = f[idx+1:]
		}
		lower := strings.ToLower(f)

		switch {
		case strings.HasSuffix(base, ".py"),
			base == "requirements.txt", base == "pyproject.toml", base == "setup.py":
			addType("python")
		}
		if base == "Dockerfile" || base == "docker-compose.yml" || base == "docker-compose.yaml" {
			addType("docker")
		}
		if base == "package.json" || strings.HasSuffix(base, ".js") || strings.HasSuffix(base, ".ts") {
			addType("node")
		}

		if strings.Contains(lower, "uvicorn") || strings.Contains(lower, "fastapi") {
			addFramework("fastapi")
		}
		if base == "pytest.ini" || strings.HasPrefix(base, "test_") && strings.HasSuffix(base, ".py") {
			addFramework("pytest")
		}
	}
}

// Shell-fact regexes. Applied only to successful execute_shell output; at
// most one fact per regex per step.
var (
	gitBranchPattern   = regexp.MustCompile(`(?m)^(?:On branch |\* )(\S+)`)
	pythonVersionRe    = regexp.MustCompile(`Python (\d+\.\d+\.\d+)`)
	nodeVersionRe      = regexp.MustCompile(`v(\d+\.\d+\.\d+)`)
	pwdPattern         = regexp.MustCompile(`(?m)^(/[^\s]*)$`)
	dockerStatePattern = regexp.MustCompile(`CONTAINER ID|Server Version`)
)

// extractShellFacts fills environment fields from execute_shell output.
func (s *State) extractShellFacts(output string) {
	if m := gitBranchPattern.FindStringSubmatch(output); m != nil {
		s.Environment.GitBranch = m[1]
	}
	if m := pythonVersionRe.FindStringSubmatch(output); m != nil {
		s.Environment.PythonVersion = m[1]
	}
	if m := nodeVersionRe.FindStringSubmatch(output); m != nil && s.Environment.NodeVersion == "" {
		s.Environment.NodeVersion = m[1]
	}
	if m := pwdPattern.FindStringSubmatch(output); m != nil && s.Environment.WorkingDir == "" {
		s.Environment.WorkingDir = m[1]
	}
	if dockerStatePattern.MatchString(output) {
		s.Environment.DockerRunning = true
	}
}
