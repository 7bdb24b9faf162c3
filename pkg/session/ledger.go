package session

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/funnel-ops/funnel/pkg/models"
)

const (
	maxUserRequests  = 20
	maxLedgerEntries = 30
	maxURLsPerStep   = 3
	maxURLLength     = 100
)

// Extraction regexes. Deliberately a small whitelist with per-step caps:
// everything extracted here ends up in every prompt, so unbounded extraction
// would blow up the formatter.
var (
	ipv4Pattern      = regexp.MustCompile(`\b(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})\b`)
	httpsURLPattern  = regexp.MustCompile(`https://[^\s"'<>]+`)
	portPattern      = regexp.MustCompile(`(?i)(?:port\s+|listening on\s+|:)(\d{2,5})\b`)
	shortShaPattern  = regexp.MustCompile(`\b([0-9a-f]{7,12})\b`)
	containerPattern = regexp.MustCompile(`\b([0-9a-f]{12})\b`)
	errorLinePattern = regexp.MustCompile(`(?im)^.*\b(?:error|fatal|exception)\b.*$`)
)

// excludedIPs never enter the ledger.
var excludedIPs = map[string]bool{
	"0.0.0.0":         true,
	"127.0.0.1":       true,
	"255.255.255.255": true,
}

// Entry is one chronological ledger record.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Summary   string    `json:"summary"`
}

// Ledger is the per-session record of user requests, key/value extractions,
// and recent actions surfaced into every LLM prompt.
type Ledger struct {
	UserRequests    []string          `json:"user_requests"`
	ExtractedValues map[string]string `json:"extracted_values"`
	Entries         []Entry           `json:"entries"`
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{ExtractedValues: make(map[string]string)}
}

// RecordRequest appends a user request, keeping the most recent entries.
func (l *Ledger) RecordRequest(text string) {
	if text == "" {
		return
	}
	l.UserRequests = append(l.UserRequests, text)
	if len(l.UserRequests) > maxUserRequests {
		l.UserRequests = l.UserRequests[len(l.UserRequests)-maxUserRequests:]
	}
}

// RecordAction appends a chronological entry, bounded.
func (l *Ledger) RecordAction(summary string) {
	l.Entries = append(l.Entries, Entry{Timestamp: time.Now(), Summary: summary})
	if len(l.Entries) > maxLedgerEntries {
		l.Entries = l.Entries[len(l.Entries)-maxLedgerEntries:]
	}
}

// set stores a value only if the key is new. Extraction is idempotent by key:
// the first observed value wins until the ledger is rebuilt.
func (l *Ledger) set(key, value string) {
	if _, exists := l.ExtractedValues[key]; !exists && value != "" {
		l.ExtractedValues[key] = value
	}
}

// ExtractFrom mines key/value pairs from a successful tool output. Commit
// hashes are trusted only for git commands and container ids only for docker
// commands, because both regexes are ambiguous hex matches otherwise.
func (l *Ledger) ExtractFrom(tool models.Tool, command, output string) {
	for _, m := range ipv4Pattern.FindAllString(output, -1) {
		if !excludedIPs[m] && validIPv4(m) {
			l.set("ip:"+m, m)
		}
	}

	urls := httpsURLPattern.FindAllString(output, maxURLsPerStep)
	for i, u := range urls {
		if len(u) > maxURLLength {
			u = u[:maxURLLength]
		}
		l.set(fmt.Sprintf("url:%d:%s", i, u), u)
	}

	if m := portPattern.FindStringSubmatch(output); m != nil {
		l.set("port:"+m[1], m[1])
	}

	isShell := tool == models.ToolExecuteShell || tool.IsRemoteExecute()
	if isShell && strings.Contains(command, "git") {
		if m := shortShaPattern.FindStringSubmatch(output); m != nil {
			l.set("git_sha", m[1])
		}
	}
	if isShell && strings.Contains(command, "docker") {
		if m := containerPattern.FindStringSubmatch(output); m != nil {
			l.set("container_id", m[1])
		}
	}

	if m := errorLinePattern.FindString(output); m != "" {
		// Last error line is the one value that may be overwritten.
		l.ExtractedValues["last_error"] = strings.TrimSpace(truncate(m, maxURLLength))
	}
}

// validIPv4 rejects octets above 255 that the loose regex lets through.
func validIPv4(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if len(part) > 1 && part[0] == '0' {
			return false
		}
		n := 0
		for _, c := range part {
			n = n*10 + int(c-'0')
		}
		if n > 255 {
			return false
		}
	}
	return true
}
