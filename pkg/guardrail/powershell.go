// Package guardrail validates, rewrites, or blocks LLM-proposed steps.
// Every rule is a pure function over (step, session state): no I/O, and
// applying the pipeline to its own output is a fixed point.
package guardrail

import "strings"

// smartQuoteReplacer normalizes typographic quotes LLMs love to emit.
// PowerShell treats U+201C/U+2018 as literal characters, not quoting.
var smartQuoteReplacer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

// ValidatePowerShell checks a command for syntax problems the agent would
// reject, applying conservative auto-fixes. Returns the (possibly rewritten)
// command, whether it was changed, and a non-empty problem description when
// the command is broken in a way that cannot be fixed here.
func ValidatePowerShell(command string) (fixed string, changed bool, problem string) {
	fixed = command

	if replaced := smartQuoteReplacer.Replace(fixed); replaced != fixed {
		fixed = replaced
		changed = true
	}

	// "powershell -Command ..." wrappers double-invoke the shell on the agent.
	for _, prefix := range []string{"powershell -Command ", "powershell.exe -Command "} {
		if strings.HasPrefix(fixed, prefix) {
			fixed = strings.TrimPrefix(fixed, prefix)
			fixed = strings.Trim(fixed, `"`)
			changed = true
		}
	}

	// PowerShell 5 has no && / || pipeline chain operators.
	if strings.Contains(fixed, " && ") {
		fixed = strings.ReplaceAll(fixed, " && ", "; ")
		changed = true
	}

	if p := checkBalance(fixed); p != "" {
		return fixed, changed, p
	}
	return fixed, changed, ""
}

// checkBalance detects unterminated strings and unbalanced braces/parens.
// These cannot be auto-fixed: guessing where a quote should close produces a
// different command than the LLM intended.
func checkBalance(command string) string {
	var inSingle, inDouble bool
	braces, parens := 0, 0

	runes := []rune(command)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		// Backtick escapes the next character inside double quotes.
		if inDouble && c == '`' {
			i++
			continue
		}

		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case inSingle || inDouble:
		case c == '{':
			braces++
		case c == '}':
			braces--
		case c == '(':
			parens++
		case c == ')':
			parens--
		}
		if braces < 0 || parens < 0 {
			return "unbalanced closing bracket"
		}
	}

	switch {
	case inSingle || inDouble:
		return "unterminated string literal"
	case braces != 0:
		return "unbalanced braces"
	case parens != 0:
		return "unbalanced parentheses"
	}
	return ""
}
