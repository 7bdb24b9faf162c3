package guardrail

import (
	"regexp"
	"strings"
)

// quotedNamePattern extracts "quoted" or 'quoted' names from a request.
var quotedNamePattern = regexp.MustCompile(`["']([\w.-]+)["']`)

// actionTargetPattern extracts hostnames following action verbs or routing
// prepositions: "reboot domain02", "restart web01", "on ians-r16".
var actionTargetPattern = regexp.MustCompile(`(?i)\b(?:reboot|restart|shutdown|on|to|against)\s+([A-Za-z][\w-]{2,})`)

// commonWords are tokens the action pattern may capture that are never
// hostnames. Prevents "on my workstation" from flagging "my" as a target.
var commonWords = map[string]bool{
	"the": true, "my": true, "your": true, "this": true, "that": true,
	"all": true, "each": true, "every": true, "it": true, "them": true,
	"workstation": true, "machine": true, "computer": true, "server": true,
	"host": true, "agent": true, "pc": true, "and": true, "then": true,
}

// MatchTargets resolves which discovered agents a user request names.
// Matching is case-insensitive and ordered by appearance in the request, so
// multi-target tasks route in the order the user stated them. unavailable
// holds names the user clearly asked for that no discovered agent carries.
func MatchTargets(request string, discovered []string) (matched, unavailable []string) {
	lower := strings.ToLower(request)

	type hit struct {
		id  string
		pos int
	}
	var hits []hit
	for _, id := range discovered {
		if pos := strings.Index(lower, strings.ToLower(id)); pos >= 0 {
			hits = append(hits, hit{id, pos})
		}
	}
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if hits[j].pos < hits[i].pos {
				hits[i], hits[j] = hits[j], hits[i]
			}
		}
	}
	for _, h := range hits {
		matched = append(matched, h.id)
	}

	// Explicitly named targets that are not available. Only quoted names and
	// action-verb captures count: free text is too noisy to trust.
	candidates := map[string]bool{}
	for _, m := range quotedNamePattern.FindAllStringSubmatch(request, -1) {
		candidates[strings.ToLower(m[1])] = true
	}
	for _, m := range actionTargetPattern.FindAllStringSubmatch(request, -1) {
		candidates[strings.ToLower(m[1])] = true
	}
	for name := range candidates {
		if commonWords[name] {
			continue
		}
		if !looksLikeHostname(name) {
			continue
		}
		found := false
		for _, id := range discovered {
			if strings.EqualFold(id, name) {
				found = true
				break
			}
		}
		if !found {
			unavailable = append(unavailable, name)
		}
	}
	return matched, unavailable
}

// looksLikeHostname requires a digit, hyphen, or dot so plain dictionary
// words don't get treated as machine names.
func looksLikeHostname(name string) bool {
	return strings.ContainsAny(name, "0123456789-.")
}
