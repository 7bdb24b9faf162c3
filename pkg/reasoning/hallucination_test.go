package reasoning

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectHallucination(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"tool output header", "**Tool Output:** 5 files found", true},
		{"got N results", "I ran the scan and got 12 results back", true},
		{"command executed", "The command was executed successfully on web01", true},
		{"script executed", "Script executed successfully.", true},
		{"code fence after think", "<think>plan</think>```\nfile1\nfile2\n```", true},
		{"code fence inside think is fine", "<think>maybe run ```df -h```</think>{\"tool\": \"think\"}", false},
		{"clean step", `<think>list first</think>{"tool": "list_agents"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectHallucination(tt.raw))
		})
	}
}

func TestIsNarrative(t *testing.T) {
	longProse := strings.Repeat("I am going to list the agents now. ", 5)
	assert.True(t, IsNarrative(longProse))
	assert.False(t, IsNarrative(`{"tool": "list_agents"}`))
	assert.False(t, IsNarrative("ok"), "short prose is not narrative")
	assert.False(t, IsNarrative(longProse+`{"tool": "think"}`), "a brace anywhere means a step may be present")
}

func TestDetectCompletionHallucination(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{`The largest files are C:\Windows\explorer.exe and pagefile.sys`, true},
		{"Here are the top 5 processes by memory", true},
		{`Found it under C:\Users\admin\Desktop`, true},
		{"I could not complete the task: no agents were discovered.", false},
		{"Disk usage on web01 is 42%.", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectCompletionHallucination(tt.answer), tt.answer)
	}
}

func TestStripThink(t *testing.T) {
	assert.Equal(t, "payload", stripThink("<think>reasoning</think>payload"))
	assert.Equal(t, "no block", stripThink("no block"))
	assert.Equal(t, "ab", stripThink("<think>multi\nline</think>ab"))
}
