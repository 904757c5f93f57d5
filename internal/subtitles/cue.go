package subtitles

import "strings"

// AlignedWord is one canonical word carrying timing borrowed from the ASR
// token stream (or interpolated when no token matched).
type AlignedWord struct {
	Text  string
	Start float64
	End   float64
}

// Cue is one timed subtitle display unit.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Duration returns the cue's display duration in seconds.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// Words splits the cue text on whitespace.
func (c Cue) Words() []string {
	return strings.Fields(c.Text)
}

// JoinCueText concatenates all cue texts with single spaces, reproducing the
// aligned word sequence.
func JoinCueText(cues []Cue) string {
	parts := make([]string, 0, len(cues))
	for _, cue := range cues {
		if text := strings.TrimSpace(cue.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// Reindex rewrites cue indexes sequentially from 1, preserving order.
func Reindex(cues []Cue) []Cue {
	for i := range cues {
		cues[i].Index = i + 1
	}
	return cues
}

// ChronologicallyValid reports whether the cue list is non-empty, indexed
// from 1, and ordered by start time with non-negative durations.
func ChronologicallyValid(cues []Cue) bool {
	if len(cues) == 0 {
		return false
	}
	for i, cue := range cues {
		if cue.Index != i+1 {
			return false
		}
		if cue.End < cue.Start {
			return false
		}
		if i > 0 && cue.Start < cues[i-1].Start {
			return false
		}
	}
	return true
}
