package reasoning

import (
	"regexp"
	"strings"
)

// Fabrication patterns matched against the raw LLM response before JSON
// extraction. Each one is something only a model inventing tool results
// would produce.
var hallucinationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\*\*tool output:?\*\*`),
	regexp.MustCompile(`(?i)\bgot \d+ results\b`),
	regexp.MustCompile(`(?i)\bcommand (?:was )?executed successfully\b`),
	regexp.MustCompile(`(?i)\bscript (?:was )?executed successfully\b`),
}

// narrativeLimit is how much prose after </think> is tolerated before the
// response counts as narrative instead of a step.
const narrativeLimit = 100

// DetectHallucination inspects a full raw response for fabricated tool
// output. Code fences are only suspicious outside the think block: models
// may legitimately sketch commands while reasoning.
func DetectHallucination(raw string) bool {
	for _, p := range hallucinationPatterns {
		if p.MatchString(raw) {
			return true
		}
	}
	return strings.Contains(stripThink(raw), "```")
}

// IsNarrative reports whether the post-think payload is prose without a JSON
// step: long text and no opening brace.
func IsNarrative(payload string) bool {
	trimmed := strings.TrimSpace(payload)
	if strings.ContainsRune(trimmed, '{') {
		return false
	}
	return len(trimmed) > narrativeLimit
}

// completionFabrications are markers of invented results inside a final
// answer: concrete paths and listings that no executed step produced.
var completionFabrications = []string{
	"explorer.exe",
	"system32",
	`c:\users\`,
	`c:\windows\`,
	"here are the top",
	"the largest files are",
}

// DetectCompletionHallucination checks a final answer for made-up file
// listings or paths. Used when nothing has actually executed.
func DetectCompletionHallucination(answer string) bool {
	lower := strings.ToLower(answer)
	for _, marker := range completionFabrications {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

var thinkBlockPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)

// stripThink removes the first think block from a response.
func stripThink(raw string) string {
	return thinkBlockPattern.ReplaceAllString(raw, "")
}
