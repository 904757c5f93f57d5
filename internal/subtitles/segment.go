package subtitles

import "strings"

// cueBreakSuffixes close a cue early when the accumulated word ends with one
// of them, regardless of how many words have accumulated.
var cueBreakSuffixes = []string{".", "!", "?", ":"}

// PhraseSegmenter groups aligned words into display cues honoring
// punctuation and a maximum word count per cue.
type PhraseSegmenter struct {
	// MaxWords caps how many words accumulate into one cue. Karaoke pacing
	// uses a small cap, standard readability a larger one.
	MaxWords int
}

// Segment converts the aligned word sequence to an ordered cue list. Every
// input word lands in exactly one cue, in order; the final cue may hold fewer
// than MaxWords words.
func (s PhraseSegmenter) Segment(words []AlignedWord) []Cue {
	maxWords := s.MaxWords
	if maxWords <= 0 {
		maxWords = 1
	}

	var (
		cues    []Cue
		current []AlignedWord
	)
	flush := func() {
		if len(current) == 0 {
			return
		}
		texts := make([]string, len(current))
		for i, word := range current {
			texts[i] = word.Text
		}
		cues = append(cues, Cue{
			Index: len(cues) + 1,
			Start: current[0].Start,
			End:   current[len(current)-1].End,
			Text:  strings.Join(texts, " "),
		})
		current = current[:0]
	}

	for _, word := range words {
		current = append(current, word)
		if len(current) >= maxWords || endsCue(word.Text) {
			flush()
		}
	}
	flush()
	return cues
}

func endsCue(word string) bool {
	for _, suffix := range cueBreakSuffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}
