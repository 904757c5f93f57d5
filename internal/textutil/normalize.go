// Package textutil provides text normalization and similarity scoring for
// transcript alignment.
//
// Alignment compares machine-transcribed words against a separately authored
// canonical script, so every comparison here is deliberately lossy: case,
// punctuation, and diacritics are folded away before scoring. Speech
// recognizers routinely drop diacritics ("chào" comes back as "chao"), which
// is why folding is part of normalization rather than an optional step.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// trailingPunctuation is stripped from token edges before comparison.
const trailingPunctuation = ".,!?:;\"'“”‘’()"

var diacriticFolder = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// FoldDiacritics removes combining marks from s ("người" → "nguoi").
// Returns s unchanged when the transform fails.
func FoldDiacritics(s string) string {
	folded, _, err := transform.String(diacriticFolder, s)
	if err != nil {
		return s
	}
	return folded
}

// NormalizeWord lowercases a single token and strips surrounding punctuation
// and diacritics. The result is the comparison form used by word scoring.
func NormalizeWord(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, trailingPunctuation)
	return FoldDiacritics(s)
}

// NormalizeText prepares a multi-word string for comparison: lowercase,
// punctuation removed, diacritics folded, whitespace collapsed.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = FoldDiacritics(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// StripTrailingPunctuation removes sentence punctuation from the end of a
// word while preserving its case and diacritics.
func StripTrailingPunctuation(s string) string {
	return strings.TrimRight(s, trailingPunctuation)
}
