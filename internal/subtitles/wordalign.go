package subtitles

import (
	"strings"

	"cuealign/internal/asr"
	"cuealign/internal/textutil"
)

// WordAligner maps canonical words onto ASR token timings using bounded
// lookahead matching. It is the primary alignment strategy.
type WordAligner struct {
	// MatchThreshold is the minimum similarity score for a token to lend
	// its timing to a canonical word.
	MatchThreshold float64
	// LookaheadWindow is how many tokens past the cursor are considered
	// for each canonical word.
	LookaheadWindow int
	// DefaultDuration substitutes for the token span when the token
	// sequence is empty and interpolation has nothing to stretch over.
	DefaultDuration float64
}

// Align produces one AlignedWord per canonical word. The output length always
// equals len(canonical) and start times are non-decreasing; missing or
// unmatchable tokens are resolved by linear interpolation, never an error.
func (a WordAligner) Align(tokens []asr.Token, canonical []string) []AlignedWord {
	if len(canonical) == 0 {
		return nil
	}

	// Fast path: equal lengths zip directly.
	if len(tokens) == len(canonical) {
		aligned := make([]AlignedWord, len(canonical))
		for i, word := range canonical {
			aligned[i] = AlignedWord{Text: word, Start: tokens[i].Start, End: tokens[i].End}
		}
		return aligned
	}

	var spanStart, spanEnd float64
	if len(tokens) > 0 {
		spanStart = tokens[0].Start
		spanEnd = tokens[len(tokens)-1].End
	} else {
		spanEnd = a.DefaultDuration
	}
	timePerWord := (spanEnd - spanStart) / float64(len(canonical))

	window := a.LookaheadWindow
	if window <= 0 {
		window = 1
	}

	aligned := make([]AlignedWord, 0, len(canonical))
	cursor := 0
	for i, word := range canonical {
		matched := -1
		bestScore := 0.0
		limit := cursor + window
		if limit > len(tokens) {
			limit = len(tokens)
		}
		for j := cursor; j < limit; j++ {
			score := textutil.WordScore(word, tokens[j].Word)
			if score > bestScore {
				bestScore = score
				matched = j
			}
		}

		if matched >= 0 && bestScore > a.MatchThreshold {
			aligned = append(aligned, AlignedWord{
				Text:  word,
				Start: tokens[matched].Start,
				End:   tokens[matched].End,
			})
			cursor = matched + 1
			continue
		}

		// No acceptable match: interpolate over the token span. The cursor
		// stays put so the next canonical word can still claim this token.
		start := spanStart + float64(i)*timePerWord
		aligned = append(aligned, AlignedWord{
			Text:  word,
			Start: start,
			End:   start + timePerWord,
		})
	}

	return enforceMonotonic(aligned)
}

// AlignTranscript splits the canonical script on whitespace and aligns it
// against the transcript's token stream.
func (a WordAligner) AlignTranscript(transcript *asr.Transcript, script string) []AlignedWord {
	canonical := strings.Fields(script)
	var tokens []asr.Token
	if transcript != nil {
		tokens = transcript.Tokens
		if a.DefaultDuration <= 0 {
			a.DefaultDuration = transcript.Duration()
		}
	}
	return a.Align(tokens, canonical)
}

// enforceMonotonic clamps start/end times so the sequence never moves
// backwards. Interleaving matched and interpolated timings can produce small
// local inversions; downstream cue ordering requires non-decreasing starts.
func enforceMonotonic(words []AlignedWord) []AlignedWord {
	var floor float64
	for i := range words {
		if words[i].Start < floor {
			words[i].Start = floor
		}
		if words[i].End < words[i].Start {
			words[i].End = words[i].Start
		}
		floor = words[i].Start
	}
	return words
}
