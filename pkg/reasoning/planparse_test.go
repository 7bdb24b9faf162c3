package reasoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlanResponse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "numbered list",
			text: "1. Discover agents\n2. Run df -h on each\n3. Report results",
			want: []string{"Discover agents", "Run df -h on each", "Report results"},
		},
		{
			name: "numbered with parens",
			text: "1) Scan the workspace\n2) Read main.py",
			want: []string{"Scan the workspace", "Read main.py"},
		},
		{
			name: "dash list",
			text: "- Discover agents\n- Check uptime\n* Report",
			want: []string{"Discover agents", "Check uptime", "Report"},
		},
		{
			name: "json steps object",
			text: `{"steps": ["Discover agents", "Run command"]}`,
			want: []string{"Discover agents", "Run command"},
		},
		{
			name: "json plan object",
			text: `{"plan": ["Step one", "Step two"]}`,
			want: []string{"Step one", "Step two"},
		},
		{
			name: "bare json array",
			text: `["Alpha", "Beta"]`,
			want: []string{"Alpha", "Beta"},
		},
		{
			name: "duplicates removed in order",
			text: "1. Check disk\n2. Check disk\n3. Report",
			want: []string{"Check disk", "Report"},
		},
		{
			name: "prose around the list",
			text: "Here is my plan:\n1. Discover agents\n2. Report\nLet me know!",
			want: []string{"Discover agents", "Report"},
		},
		{
			name: "nothing parseable",
			text: "I will just do the task directly without a plan.",
			want: nil,
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePlanResponse(tt.text))
		})
	}
}
