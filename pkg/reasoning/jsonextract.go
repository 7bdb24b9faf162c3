package reasoning

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/funnel-ops/funnel/pkg/models"
)

// ExtractJSONObject locates the first balanced {...} in text, tracking string
// state and backslash escapes. An unterminated object returns the prefix from
// the opening brace (found=true) so the caller can attempt repair.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return text[start:], true
}

// repairBackslashes escapes lone backslashes that are not part of a valid
// JSON escape. LLMs emit Windows paths like "C:\Users" constantly; without
// this the whole step would be discarded.
func repairBackslashes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(s) && strings.IndexByte(`\nrt"u/bf`, s[i+1]) >= 0 {
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteString(`\\`)
	}
	return b.String()
}

// rawStep is the neutral shape decoded before normalization. The LLM names
// the tool under several keys; all are accepted and normalized here rather
// than scattered through dispatch.
type rawStep struct {
	Tool        string         `json:"tool"`
	Action      string         `json:"action"`
	Step        string         `json:"step"`
	Task        string         `json:"task"`
	Instruction string         `json:"instruction"`
	Params      map[string]any `json:"params"`
	Note        string         `json:"note"`
	Reasoning   string         `json:"reasoning"`
	Description string         `json:"description"`
	BatchID     string         `json:"batch_id"`

	// Convenience keys lifted into params when params is absent.
	Path     string `json:"path"`
	FilePath string `json:"file_path"`
	Command  string `json:"command"`
	Answer   string `json:"answer"`
	AgentID  string `json:"agent_id"`
}

// ParseStep decodes the post-think payload into a Step. Decoding failures are
// retried once with backslash repair. The error names what went wrong so the
// driver can turn it into an INVALID FORMAT completion.
func ParseStep(payload string, stepID string) (*models.Step, error) {
	objText, found := ExtractJSONObject(payload)
	if !found {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var raw rawStep
	if err := json.Unmarshal([]byte(objText), &raw); err != nil {
		repaired := repairBackslashes(objText)
		if err2 := json.Unmarshal([]byte(repaired), &raw); err2 != nil {
			return nil, fmt.Errorf("step JSON did not parse: %w", err)
		}
	}

	name := firstNonEmpty(raw.Tool, raw.Action, raw.Step, raw.Task, raw.Instruction)
	if name == "" {
		return nil, fmt.Errorf("step JSON has no tool name")
	}
	tool, ok := models.ParseTool(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}

	params := raw.Params
	if params == nil {
		params = map[string]any{}
		// Documented normalization: top-level convenience keys become params.
		for key, val := range map[string]string{
			"path":      raw.Path,
			"file_path": raw.FilePath,
			"command":   raw.Command,
			"answer":    raw.Answer,
			"agent_id":  raw.AgentID,
		} {
			if val != "" {
				params[key] = val
			}
		}
	}

	return &models.Step{
		StepID:    stepID,
		Tool:      tool,
		Params:    params,
		BatchID:   raw.BatchID,
		Reasoning: firstNonEmpty(raw.Note, raw.Reasoning, raw.Description, raw.Instruction),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
