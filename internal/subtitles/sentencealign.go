package subtitles

import (
	"log/slog"
	"strings"

	"cuealign/internal/logging"
	"cuealign/internal/textutil"
)

// SentenceAligner corrects transcript text at sentence or chunk granularity
// against the canonical script. It trades per-word timing precision for text
// correctness and serves when word-level timestamps are absent or a second
// correction pass runs over existing cues.
type SentenceAligner struct {
	// MatchThreshold is the minimum similarity ratio for a canonical
	// sentence or window to replace transcript text.
	MatchThreshold float64
	// ProtectedPhrases are fixed phrases (intro/outro lines) that must
	// survive correction; they are reinstated verbatim when missing.
	ProtectedPhrases []string

	Logger *slog.Logger
}

// ReplaceSentences rewrites each transcript sentence with its best-matching
// canonical sentence. Sentences without an acceptable match stay unchanged.
func (a SentenceAligner) ReplaceSentences(transcript, script string) string {
	transcriptSentences := splitSentences(transcript)
	canonicalSentences := splitSentences(script)
	if len(transcriptSentences) == 0 || len(canonicalSentences) == 0 {
		return transcript
	}

	logger := a.logger()
	replaced := make([]string, 0, len(transcriptSentences))
	for _, sentence := range transcriptSentences {
		best := ""
		bestRatio := 0.0
		for _, candidate := range canonicalSentences {
			if ratio := textutil.Ratio(sentence, candidate); ratio > bestRatio {
				bestRatio = ratio
				best = candidate
			}
		}
		if bestRatio >= a.MatchThreshold {
			replaced = append(replaced, best)
		} else {
			logger.Debug("sentence kept from transcript",
				logging.String("sentence", sentence),
				logging.Float64("best_ratio", bestRatio))
			replaced = append(replaced, sentence)
		}
	}

	result := strings.Join(replaced, " ")
	return a.reinstateProtected(result)
}

// ReplaceChunks rewrites each cue's text with the best-matching contiguous
// canonical-word window of the same length, keeping the cue's timing. Cues
// without an acceptable match keep their transcript text.
func (a SentenceAligner) ReplaceChunks(cues []Cue, script string) []Cue {
	canonical := strings.Fields(script)
	if len(cues) == 0 || len(canonical) == 0 {
		return cues
	}

	out := make([]Cue, len(cues))
	copy(out, cues)
	for i := range out {
		chunkWords := out[i].Words()
		if len(chunkWords) == 0 || len(chunkWords) > len(canonical) {
			continue
		}
		best := ""
		bestRatio := 0.0
		for start := 0; start+len(chunkWords) <= len(canonical); start++ {
			window := strings.Join(canonical[start:start+len(chunkWords)], " ")
			if ratio := textutil.Ratio(out[i].Text, window); ratio > bestRatio {
				bestRatio = ratio
				best = window
			}
		}
		if bestRatio >= a.MatchThreshold {
			out[i].Text = best
		}
	}
	return out
}

func (a SentenceAligner) reinstateProtected(text string) string {
	lower := strings.ToLower(text)
	for i, phrase := range a.ProtectedPhrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(phrase)) {
			continue
		}
		// First phrase is treated as the intro, the rest as outro lines.
		if i == 0 {
			text = phrase + " " + text
		} else {
			text = text + " " + phrase
		}
		lower = strings.ToLower(text)
	}
	return text
}

func (a SentenceAligner) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return logging.NewNop()
}

// splitSentences splits text on sentence-ending punctuation, trimming
// whitespace and dropping empties. The terminator stays with its sentence.
func splitSentences(text string) []string {
	var (
		sentences []string
		builder   strings.Builder
	)
	flush := func() {
		if sentence := strings.TrimSpace(builder.String()); sentence != "" {
			sentences = append(sentences, sentence)
		}
		builder.Reset()
	}
	for _, r := range text {
		builder.WriteRune(r)
		switch r {
		case '.', '!', '?':
			flush()
		}
	}
	flush()
	return sentences
}
