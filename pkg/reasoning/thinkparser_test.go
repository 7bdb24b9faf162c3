package reasoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// feedInChunks pushes text through the parser in fixed-size chunks and
// returns the concatenation of everything Feed and Finish yielded.
func feedInChunks(p *ThinkStreamParser, text string, size int) string {
	var out string
	for i := 0; i < len(text); i += size {
		end := i + size
		if end > len(text) {
			end = len(text)
		}
		out += p.Feed(text[i:end])
	}
	out += p.Finish()
	return out
}

func TestThinkStreamParser_ChunkingInvariant(t *testing.T) {
	response := `<think>I should list the agents first, then run df -h on each one.</think>
{"tool": "list_agents", "params": {}}`
	wantThink := "I should list the agents first, then run df -h on each one."
	wantPayload := "\n{\"tool\": \"list_agents\", \"params\": {}}"

	// The emitted think text must be identical no matter how the stream is
	// chunked, including one byte at a time.
	for _, size := range []int{1, 2, 3, 5, 7, 8, 9, 13, len(response)} {
		p := NewThinkStreamParser()
		got := feedInChunks(p, response, size)
		assert.Equal(t, wantThink, got, "chunk size %d", size)
		assert.Equal(t, wantThink, p.Thinking(), "chunk size %d", size)
		assert.Equal(t, wantPayload, p.Payload(), "chunk size %d", size)
	}
}

func TestThinkStreamParser_SplitTags(t *testing.T) {
	p := NewThinkStreamParser()
	var got string
	// Both tags arrive split across chunk boundaries.
	for _, chunk := range []string{"<th", "ink>reason", "ing here</th", "ink>{}"} {
		got += p.Feed(chunk)
	}
	got += p.Finish()

	assert.Equal(t, "reasoning here", got)
	assert.Equal(t, "{}", p.Payload())
}

func TestThinkStreamParser_NoThinkBlock(t *testing.T) {
	p := NewThinkStreamParser()
	emitted := p.Feed(`{"tool": "complete", "params": {"answer": "done"}}`)
	emitted += p.Finish()

	assert.Empty(t, emitted, "nothing to surface without a think block")
	assert.Equal(t, `{"tool": "complete", "params": {"answer": "done"}}`, p.Payload())
	assert.Empty(t, p.Thinking())
}

func TestThinkStreamParser_UnterminatedThink(t *testing.T) {
	p := NewThinkStreamParser()
	emitted := p.Feed("<think>the stream died mid-thought")
	final := p.Finish()

	assert.Equal(t, "the stream died mid-thought", emitted+final)
	assert.NotEmpty(t, final, "held bytes must flush on Finish")
	assert.Empty(t, p.Payload())
}

func TestThinkStreamParser_PreambleKept(t *testing.T) {
	p := NewThinkStreamParser()
	feedInChunks(p, "Sure, let me work on that. <think>plan</think>{}", 4)

	assert.Equal(t, "Sure, let me work on that. ", p.Preamble())
	assert.Equal(t, "plan", p.Thinking())
	assert.Equal(t, "{}", p.Payload())
}

func TestThinkStreamParser_CloseTagNeverLeaks(t *testing.T) {
	response := "<think>abc</think>payload"
	for size := 1; size <= len(response); size++ {
		p := NewThinkStreamParser()
		got := feedInChunks(p, response, size)
		assert.NotContains(t, got, "</think>", "chunk size %d", size)
		assert.Equal(t, "abc", got, "chunk size %d", size)
	}
}
