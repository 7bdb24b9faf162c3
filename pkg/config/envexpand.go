package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment references in raw YAML using Go template
// syntax, {{.VAR_NAME}}. Plain $ is left untouched so masking regexes and
// passwords containing $ survive the round trip.
//
// Missing variables expand to the empty string; validation catches required
// fields that end up empty. Content that fails to parse as a template is
// returned unchanged so template-free YAML always passes through.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
