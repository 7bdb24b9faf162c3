package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/funnel-ops/funnel/pkg/models"
)

const (
	promptListLimit  = 30
	promptStepLimit  = 10
	promptSizeLimit  = 10
	loopWindow       = 5
	recentRequestCap = 5
)

// FormatForPrompt renders the bounded context block that is the LLM's entire
// view of session state. Output is deterministic: every list is emitted in
// insertion or sorted order, and every section is truncated to a fixed cap.
func (s *State) FormatForPrompt() string {
	var b strings.Builder

	s.writePlan(&b)
	s.writeWorkspaceStatus(&b)
	s.writeAgentStatus(&b)
	s.writeRecentSteps(&b)
	s.writeLoopWarning(&b)
	s.writeFailureAnalysis(&b)
	s.writeFileState(&b)
	s.writeUserInfo(&b)
	s.writeEnvironment(&b)
	s.writeLargestFiles(&b)
	s.writeLedger(&b)

	return strings.TrimRight(b.String(), "\n")
}

func (s *State) writePlan(b *strings.Builder) {
	if len(s.TaskPlan) == 0 {
		return
	}
	b.WriteString("TASK PLAN:\n")
	current := s.CurrentPlanItem()
	for _, item := range s.TaskPlan {
		marker := "  "
		if current != nil && item.Index == current.Index {
			marker = "> "
		}
		fmt.Fprintf(b, "%s%d. [%s] %s\n", marker, item.Index, item.Status, item.Description)
	}
	b.WriteString("\n")
}

func (s *State) writeWorkspaceStatus(b *strings.Builder) {
	if len(s.ScannedPaths) > 0 {
		fmt.Fprintf(b, "WORKSPACE: scanned (%d files, %d dirs known)\n", len(s.Files), len(s.Dirs))
	} else {
		b.WriteString("WORKSPACE: not scanned yet\n")
	}
}

func (s *State) writeAgentStatus(b *strings.Builder) {
	if !s.AgentsVerified {
		b.WriteString("AGENTS: NOT VERIFIED - run list_agents before any execute\n\n")
		return
	}
	fmt.Fprintf(b, "AGENTS: verified, %d discovered: %s\n",
		len(s.DiscoveredAgents), strings.Join(s.DiscoveredAgents, ", "))
	if remaining := s.RemainingAgents(); len(s.QueriedAgents) > 0 || len(remaining) > 0 {
		fmt.Fprintf(b, "AGENT PROGRESS: queried [%s], remaining [%s]\n",
			strings.Join(s.QueriedAgents, ", "), strings.Join(remaining, ", "))
	}
	b.WriteString("\n")
}

func (s *State) writeRecentSteps(b *strings.Builder) {
	steps := s.LastSteps(promptStepLimit)
	if len(steps) == 0 {
		return
	}
	fmt.Fprintf(b, "RECENT STEPS (last %d of %d):\n", len(steps), len(s.CompletedSteps))
	for _, st := range steps {
		mark := "OK "
		if !st.Success {
			mark = "ERR"
		}
		detail := st.OutputSummary
		if !st.Success && st.ErrorKind != models.ErrKindNone {
			detail = fmt.Sprintf("[%s] %s", st.ErrorKind, st.ErrorMessage)
		}
		fmt.Fprintf(b, "  %s %s %s: %s\n", mark, st.StepID, st.Tool, truncate(detail, 80))
	}
	b.WriteString("\n")
}

// writeLoopWarning emits a prominent warning when the recent window shows
// repetition: the same execute against the same agent twice, or any
// idempotent tool run twice.
func (s *State) writeLoopWarning(b *strings.Builder) {
	steps := s.LastSteps(loopWindow)
	executeSeen := map[string]int{}
	idempotentSeen := map[models.Tool]int{}
	for _, st := range steps {
		if st.Tool.IsRemoteExecute() {
			agent, _ := st.Params["agent_id"].(string)
			executeSeen[string(st.Tool)+"|"+agent]++
		}
		if st.Tool.IsIdempotent() {
			idempotentSeen[st.Tool]++
		}
	}
	looping := false
	for _, n := range executeSeen {
		if n >= 2 {
			looping = true
		}
	}
	for _, n := range idempotentSeen {
		if n >= 2 {
			looping = true
		}
	}
	if looping {
		b.WriteString("*** LOOP WARNING: you are repeating recent actions. " +
			"Do something different or complete the task. ***\n\n")
	}
}

func (s *State) writeFailureAnalysis(b *strings.Builder) {
	steps := s.LastSteps(loopWindow)
	kinds := map[models.ErrorKind]bool{}
	failures := 0
	for _, st := range steps {
		if !st.Success {
			failures++
			if st.ErrorKind != models.ErrKindNone {
				kinds[st.ErrorKind] = true
			}
		}
	}
	if failures == 0 {
		return
	}
	fmt.Fprintf(b, "FAILURE ANALYSIS: %d of last %d steps failed\n", failures, len(steps))
	ordered := make([]string, 0, len(kinds))
	for k := range kinds {
		ordered = append(ordered, string(k))
	}
	sort.Strings(ordered)
	for _, k := range ordered {
		fmt.Fprintf(b, "  %s: %s\n", k, models.ErrorKind(k).Adaptation())
	}
	b.WriteString("\n")
}

func (s *State) writeFileState(b *strings.Builder) {
	if len(s.Dirs) > 0 {
		fmt.Fprintf(b, "DIRS: %s\n", joinTruncated(topLevel(s.Dirs), promptListLimit))
	}
	if len(s.Files) > 0 {
		fmt.Fprintf(b, "FILES: %s\n", joinTruncated(topLevel(s.Files), promptListLimit))
	}
	if len(s.ReadFiles) > 0 {
		fmt.Fprintf(b, "READ: %s\n", joinTruncated(sortedKeys(s.ReadFiles), promptListLimit))
	}
	if len(s.EditedFiles) > 0 {
		fmt.Fprintf(b, "EDITED: %s\n", joinTruncated(sortedKeys(s.EditedFiles), promptListLimit))
	}
}

func (s *State) writeUserInfo(b *strings.Builder) {
	if len(s.UserInfo) == 0 {
		return
	}
	b.WriteString("USER INFO:\n")
	for _, k := range sortedKeys(s.UserInfo) {
		fmt.Fprintf(b, "  %s: %s\n", k, s.UserInfo[k])
	}
}

func (s *State) writeEnvironment(b *strings.Builder) {
	env := s.Environment
	var parts []string
	if env.FileCount > 0 || env.DirCount > 0 {
		parts = append(parts, fmt.Sprintf("%d files, %d dirs, %s total",
			env.FileCount, env.DirCount, humanSize(env.TotalBytes)))
	}
	if len(env.ProjectTypes) > 0 {
		parts = append(parts, "project: "+strings.Join(env.ProjectTypes, "+"))
	}
	if len(env.Frameworks) > 0 {
		parts = append(parts, "frameworks: "+strings.Join(env.Frameworks, "+"))
	}
	if env.GitBranch != "" {
		parts = append(parts, "branch: "+env.GitBranch)
	}
	if env.PythonVersion != "" {
		parts = append(parts, "python "+env.PythonVersion)
	}
	if env.NodeVersion != "" {
		parts = append(parts, "node "+env.NodeVersion)
	}
	if env.WorkingDir != "" {
		parts = append(parts, "cwd: "+env.WorkingDir)
	}
	if env.DockerRunning {
		parts = append(parts, "docker: running")
	}
	if len(parts) > 0 {
		fmt.Fprintf(b, "ENVIRONMENT: %s\n", strings.Join(parts, "; "))
	}
	for _, obs := range env.Observations {
		fmt.Fprintf(b, "  note: %s\n", truncate(obs, 80))
	}
}

func (s *State) writeLargestFiles(b *strings.Builder) {
	if len(s.FileMetadata) == 0 {
		return
	}
	type sized struct {
		path  string
		bytes int64
	}
	all := make([]sized, 0, len(s.FileMetadata))
	for p, m := range s.FileMetadata {
		all = append(all, sized{p, m.SizeBytes})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].bytes != all[j].bytes {
			return all[i].bytes > all[j].bytes
		}
		return all[i].path < all[j].path
	})
	if len(all) > promptSizeLimit {
		all = all[:promptSizeLimit]
	}
	b.WriteString("LARGEST FILES:\n")
	for _, f := range all {
		fmt.Fprintf(b, "  %s (%s)\n", f.path, humanSize(f.bytes))
	}
}

func (s *State) writeLedger(b *strings.Builder) {
	l := s.Ledger
	if l == nil {
		return
	}
	if len(l.ExtractedValues) > 0 {
		b.WriteString("QUICK REFERENCE:\n")
		for _, k := range sortedKeys(l.ExtractedValues) {
			fmt.Fprintf(b, "  %s = %s\n", k, l.ExtractedValues[k])
		}
	}
	if len(l.UserRequests) > 0 {
		reqs := l.UserRequests
		if len(reqs) > recentRequestCap {
			reqs = reqs[len(reqs)-recentRequestCap:]
		}
		b.WriteString("RECENT REQUESTS:\n")
		for _, r := range reqs {
			fmt.Fprintf(b, "  - %s\n", truncate(r, 100))
		}
	}
	if len(l.Entries) > 0 {
		entries := l.Entries
		if len(entries) > promptStepLimit {
			entries = entries[len(entries)-promptStepLimit:]
		}
		b.WriteString("TIMELINE:\n")
		for _, e := range entries {
			fmt.Fprintf(b, "  %s %s\n", e.Timestamp.Format("15:04:05"), truncate(e.Summary, 80))
		}
	}
}

// topLevel filters a path list to entries without a separator.
func topLevel(paths []string) []string {
	var out []string
	for _, p := range paths {
		if !strings.ContainsAny(p, "/\\") {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return paths
	}
	return out
}

func joinTruncated(items []string, limit int) string {
	if len(items) > limit {
		return strings.Join(items[:limit], ", ") + fmt.Sprintf(" (+%d more)", len(items)-limit)
	}
	return strings.Join(items, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
