package reasoning

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	numberedItemPattern = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)
	dashItemPattern     = regexp.MustCompile(`^\s*[-*]\s+(.+)$`)
)

// ParsePlanResponse extracts step descriptions from whatever the model
// produced: a numbered list, a dash list, a JSON object with "steps"/"plan",
// or a bare JSON array. Duplicates are removed with order preserved.
func ParsePlanResponse(text string) []string {
	trimmed := strings.TrimSpace(text)

	if steps := parseJSONPlan(trimmed); len(steps) > 0 {
		return dedupe(steps)
	}

	var steps []string
	for _, line := range strings.Split(trimmed, "\n") {
		if m := numberedItemPattern.FindStringSubmatch(line); m != nil {
			steps = append(steps, strings.TrimSpace(m[1]))
			continue
		}
		if m := dashItemPattern.FindStringSubmatch(line); m != nil {
			steps = append(steps, strings.TrimSpace(m[1]))
		}
	}
	return dedupe(steps)
}

// parseJSONPlan handles {"steps": [...]}, {"plan": [...]}, and bare arrays.
func parseJSONPlan(text string) []string {
	if strings.HasPrefix(text, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(text), &arr); err == nil {
			return arr
		}
		return nil
	}
	if !strings.HasPrefix(text, "{") {
		return nil
	}
	objText, found := ExtractJSONObject(text)
	if !found {
		return nil
	}
	var obj struct {
		Steps []string `json:"steps"`
		Plan  []string `json:"plan"`
	}
	if err := json.Unmarshal([]byte(objText), &obj); err != nil {
		return nil
	}
	if len(obj.Steps) > 0 {
		return obj.Steps
	}
	return obj.Plan
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
