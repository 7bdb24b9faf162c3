package reasoning

import "strings"

const (
	openTag  = "<think>"
	closeTag = "</think>"

	// holdback is how many trailing bytes stay buffered while inside the
	// think block. It must exceed the longest tag (8 bytes) so a split
	// "</think>" can never leak into emitted text, regardless of how the
	// upstream stream chunks its tokens.
	holdback = 9
)

// thinkState tracks where the parser is in the response.
type thinkState int

const (
	stateSearchingOpen thinkState = iota
	stateInThink
	stateAfterClose
)

// ThinkStreamParser splits an LLM token stream into the reasoning text inside
// the first <think>...</think> block and the payload after it. Feed returns
// only safely complete think text; everything after the closing tag is
// accumulated silently for the JSON step parser.
//
// Invariant: concatenating every Feed return value equals the text strictly
// inside the first think block, independent of token chunking.
type ThinkStreamParser struct {
	state    thinkState
	pending  []byte
	preamble strings.Builder // text before <think>, kept for diagnostics
	thinkAll strings.Builder // full think content (emitted + held)
	payload  strings.Builder // text after </think>
}

// NewThinkStreamParser creates a parser ready for the first chunk.
func NewThinkStreamParser() *ThinkStreamParser {
	return &ThinkStreamParser{}
}

// Feed consumes one chunk and returns think text that is safe to surface.
func (p *ThinkStreamParser) Feed(chunk string) string {
	if chunk == "" {
		return ""
	}
	p.pending = append(p.pending, chunk...)

	var emitted strings.Builder
	for {
		switch p.state {
		case stateSearchingOpen:
			if !p.consumeOpenTag() {
				return emitted.String()
			}

		case stateInThink:
			text, closed := p.consumeThink()
			if text != "" {
				emitted.WriteString(text)
				p.thinkAll.WriteString(text)
			}
			if !closed {
				return emitted.String()
			}

		case stateAfterClose:
			p.payload.Write(p.pending)
			p.pending = p.pending[:0]
			return emitted.String()
		}
	}
}

// consumeOpenTag scans pending for <think>. Bytes before the tag become
// preamble. Returns true when the tag was found and state advanced.
func (p *ThinkStreamParser) consumeOpenTag() bool {
	idx := strings.Index(string(p.pending), openTag)
	if idx >= 0 {
		p.preamble.Write(p.pending[:idx])
		p.pending = p.pending[idx+len(openTag):]
		p.state = stateInThink
		return true
	}
	// Keep a tail that could be a split "<think>"; everything before it is
	// definitively preamble.
	if keep := len(openTag) - 1; len(p.pending) > keep {
		cut := len(p.pending) - keep
		p.preamble.Write(p.pending[:cut])
		p.pending = p.pending[cut:]
	}
	return false
}

// consumeThink emits pending think text up to the holdback window, or up to
// a closing tag when one is present. Returns closed=true once </think> is
// consumed and state advanced.
func (p *ThinkStreamParser) consumeThink() (string, bool) {
	if idx := strings.Index(string(p.pending), closeTag); idx >= 0 {
		text := string(p.pending[:idx])
		p.pending = p.pending[idx+len(closeTag):]
		p.state = stateAfterClose
		return text, true
	}
	if len(p.pending) > holdback {
		cut := len(p.pending) - holdback
		text := string(p.pending[:cut])
		p.pending = p.pending[cut:]
		return text, false
	}
	return "", false
}

// Finish flushes the stream end. Held think bytes (the stream ended without
// a closing tag) are returned as the final emitted text.
func (p *ThinkStreamParser) Finish() (finalThink string) {
	switch p.state {
	case stateSearchingOpen:
		// No think block: the whole response is payload.
		p.payload.Write(p.pending)
		p.pending = nil
	case stateInThink:
		finalThink = string(p.pending)
		p.thinkAll.WriteString(finalThink)
		p.pending = nil
	case stateAfterClose:
		p.payload.Write(p.pending)
		p.pending = nil
	}
	return finalThink
}

// Thinking returns the full think-block content seen so far.
func (p *ThinkStreamParser) Thinking() string { return p.thinkAll.String() }

// Payload returns everything after the closing tag (or the whole response
// when no think block was present). Valid after Finish.
func (p *ThinkStreamParser) Payload() string {
	if p.state == stateSearchingOpen {
		return p.preamble.String() + p.payload.String()
	}
	return p.payload.String()
}

// Preamble returns any text seen before the think block opened.
func (p *ThinkStreamParser) Preamble() string { return p.preamble.String() }
