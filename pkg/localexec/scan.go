package localexec

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/funnel-ops/funnel/pkg/models"
)

// scanLimit bounds how many entries one scan reports.
const scanLimit = 500

// Hidden trees that never belong in a listing.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
}

type scanEntry struct {
	path     string
	isDir    bool
	size     int64
	modified string
}

// scan walks the workspace under rel and renders the fixed listing table:
//
//	NAME            TYPE  SIZE      MODIFIED
//	cmd             dir   -         2026-08-01 10:00
//	main.go         file  1234      2026-08-01 10:00
//	TOTAL: 12 items (3 dirs, 9 files)
//
// Sizes are plain bytes; names are workspace-relative with forward slashes.
func (h *Handler) scan(rel string) *models.StepResult {
	if rel == "" {
		rel = "."
	}
	abs, err := h.resolve(rel)
	if err != nil {
		return failure(models.ErrKindPermissionDenied, err.Error())
	}
	if _, err := os.Stat(abs); err != nil {
		return fileError(rel, err)
	}

	var entries []scanEntry
	truncated := false
	walkErr := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep going
		}
		if path == abs {
			return nil
		}
		if d.IsDir() && skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		if len(entries) >= scanLimit {
			truncated = true
			return filepath.SkipAll
		}

		relPath, err := filepath.Rel(h.root, path)
		if err != nil {
			return nil
		}
		entry := scanEntry{path: filepath.ToSlash(relPath), isDir: d.IsDir()}
		if info, err := d.Info(); err == nil {
			entry.size = info.Size()
			entry.modified = info.ModTime().Format("2006-01-02 15:04")
		}
		entries = append(entries, entry)
		return nil
	})
	if walkErr != nil {
		return failure(models.ErrKindExecution, fmt.Sprintf("scan %s: %v", rel, walkErr))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })
	return &models.StepResult{Success: true, Output: renderScanTable(entries, truncated)}
}

func renderScanTable(entries []scanEntry, truncated bool) string {
	nameWidth := len("NAME")
	for _, e := range entries {
		if len(e.path) > nameWidth {
			nameWidth = len(e.path)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %-4s  %-10s  %s\n", nameWidth, "NAME", "TYPE", "SIZE", "MODIFIED")

	dirs, files := 0, 0
	for _, e := range entries {
		kind, size := "file", fmt.Sprintf("%d", e.size)
		if e.isDir {
			kind, size = "dir", "-"
			dirs++
		} else {
			files++
		}
		fmt.Fprintf(&b, "%-*s  %-4s  %-10s  %s\n", nameWidth, e.path, kind, size, e.modified)
	}

	fmt.Fprintf(&b, "TOTAL: %d items (%d dirs, %d files)\n", dirs+files, dirs, files)
	if truncated {
		fmt.Fprintf(&b, "(listing truncated at %d entries)\n", scanLimit)
	}
	return b.String()
}
