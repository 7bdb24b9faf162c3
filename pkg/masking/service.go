package masking

import (
	"log/slog"
	"regexp"
)

// Service applies the built-in patterns plus any code-based maskers.
// Stateless after construction; safe for concurrent use.
type Service struct {
	patterns []*CompiledPattern
	maskers  []Masker
	log      *slog.Logger
}

// NewService creates a masking service with the built-in rule set.
func NewService() *Service {
	return &Service{
		patterns: builtinPatterns,
		maskers:  []Masker{pemBlockMasker{}},
		log:      slog.With("component", "masking"),
	}
}

// AddPattern registers an extra regex rule. Invalid patterns are logged and
// skipped rather than failing startup.
func (s *Service) AddPattern(name, pattern, replacement string) {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		s.log.Error("Invalid masking pattern, skipping", "pattern", name, "error", err)
		return
	}
	s.patterns = append(s.patterns, &CompiledPattern{Name: name, Regex: compiled, Replacement: replacement})
}

// MaskOutput scrubs one tool output. Code-based maskers run first so regex
// rules see framed blocks already collapsed.
func (s *Service) MaskOutput(data string) string {
	if data == "" {
		return data
	}
	for _, m := range s.maskers {
		if m.AppliesTo(data) {
			data = m.Mask(data)
		}
	}
	for _, p := range s.patterns {
		data = p.Regex.ReplaceAllString(data, p.Replacement)
	}
	return data
}
