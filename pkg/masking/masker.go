// Package masking scrubs credentials from tool output before it reaches the
// session ledger, the LLM prompt, or the capture store. Masking is best
// effort and must never fail: on any processing error the original text is
// returned.
package masking

// Masker is a code-based masker needing structural awareness beyond regex
// matching (multi-line blocks, framed content).
type Masker interface {
	// Name identifies the masker.
	Name() string

	// AppliesTo is a cheap pre-check (substring, not parsing).
	AppliesTo(data string) bool

	// Mask returns the scrubbed text. Defensive: original data on error.
	Mask(data string) string
}
