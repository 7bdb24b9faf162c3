package masking

import "regexp"

// CompiledPattern is one regex rule with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns cover the credential shapes that show up in command output:
// exported secrets, connection strings, tokens pasted into logs. Order
// matters only for overlapping matches; each pattern is applied in sequence.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9\-._~+/]{16,}=*`),
		Replacement: "Bearer ***MASKED***",
	},
	{
		Name:        "api_key_assignment",
		Regex:       regexp.MustCompile(`(?i)\b([A-Z0-9_]*(?:API_?KEY|APIKEY|SECRET|TOKEN|PASSWORD|PASSWD|PWD)[A-Z0-9_]*)\s*[=:]\s*["']?[^\s"']{8,}["']?`),
		Replacement: "$1=***MASKED***",
	},
	{
		Name:        "aws_access_key",
		Regex:       regexp.MustCompile(`\b(?:AKIA|ASIA)[0-9A-Z]{16}\b`),
		Replacement: "***MASKED_AWS_KEY***",
	},
	{
		Name:        "basic_auth_url",
		Regex:       regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.-]*://)[^\s/:@]+:[^\s/@]+@`),
		Replacement: "$1***MASKED***@",
	},
	{
		Name:        "github_token",
		Regex:       regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{20,}\b`),
		Replacement: "***MASKED_GH_TOKEN***",
	},
}
