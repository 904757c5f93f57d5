package subtitles

import "strings"

// placeholderText is the marker text for the last-resort cue emitted when
// every alignment strategy fails.
const placeholderText = "[subtitle generation failed]"

// placeholderDuration is the display window for the placeholder cue.
const placeholderDuration = 5.0

// FallbackBuilder produces uniformly timed cues from canonical text and a
// known total duration. It serves when no ASR output exists at all.
type FallbackBuilder struct {
	// ChunkWords is how many words each uniform cue holds.
	ChunkWords int
}

// Build splits the script into fixed-size word chunks, each assigned an
// equal, sequential slice of the total duration. The last chunk absorbs the
// remainder words.
func (b FallbackBuilder) Build(script string, duration float64) []Cue {
	words := strings.Fields(script)
	if len(words) == 0 {
		return []Cue{PlaceholderCue()}
	}
	chunkWords := b.ChunkWords
	if chunkWords <= 0 {
		chunkWords = 1
	}
	if duration <= 0 {
		duration = placeholderDuration
	}

	var chunks []string
	for start := 0; start < len(words); start += chunkWords {
		end := start + chunkWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}

	slice := duration / float64(len(chunks))
	cues := make([]Cue, len(chunks))
	for i, chunk := range chunks {
		cues[i] = Cue{
			Index: i + 1,
			Start: float64(i) * slice,
			End:   float64(i+1) * slice,
			Text:  chunk,
		}
	}
	return cues
}

// PlaceholderCue is the absolute last resort: a single short cue carrying a
// failure marker, emitted instead of propagating an error to the caller.
func PlaceholderCue() Cue {
	return Cue{Index: 1, Start: 0, End: placeholderDuration, Text: placeholderText}
}
