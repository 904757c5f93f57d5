// Package asr defines the boundary to the speech-recognition collaborator.
//
// cuealign does not run a recognizer itself; it consumes the JSON result an
// upstream Whisper-style tool already produced (word-level timestamps and the
// flattened transcript text). The package loads that artifact into the token
// sequence the alignment core operates on.
package asr

// Token is a single transcribed word with timing in seconds.
// Tokens are ordered by Start, non-decreasing, with End >= Start.
type Token struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Segment is a transcribed utterance span. Segment timing survives even when
// the recognizer produced no word-level timestamps.
type Segment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Words []Token `json:"words"`
}

// Transcript is the full recognizer output for one audio file.
type Transcript struct {
	// Text is the flattened transcript.
	Text string
	// Language is the normalized BCP-47 tag reported by the recognizer,
	// empty when unknown.
	Language string
	// Tokens is the flattened word sequence with timing. May be empty when
	// the recognizer produced no word-level timestamps.
	Tokens []Token
	// Segments preserves the recognizer's utterance grouping.
	Segments []Segment
}

// Duration returns the end time of the last token, falling back to the last
// segment when no word timing exists. Zero for an empty transcript.
func (t *Transcript) Duration() float64 {
	if n := len(t.Tokens); n > 0 {
		return t.Tokens[n-1].End
	}
	if n := len(t.Segments); n > 0 {
		return t.Segments[n-1].End
	}
	return 0
}
