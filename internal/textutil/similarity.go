package textutil

import "github.com/antzucaro/matchr"

// Word score tiers, in priority order. A canonical word and a transcript
// token that normalize identically are a certain match; a shared 3-character
// prefix catches inflection and recognizer truncation; a Double Metaphone
// code overlap catches phonetic misrecognitions that share no prefix.
const (
	scoreExact    = 1.0
	scorePrefix   = 0.7
	scorePhonetic = 0.6

	prefixLength = 3
)

// WordScore compares a canonical word against a transcript token and returns
// a similarity score in [0, 1]. Both inputs are normalized (case,
// punctuation, diacritics) before comparison. Pure function, no side effects.
func WordScore(canonical, token string) float64 {
	a := NormalizeWord(canonical)
	b := NormalizeWord(token)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return scoreExact
	}
	if prefixesOverlap(a, b) {
		return scorePrefix
	}
	if metaphoneOverlap(a, b) {
		return scorePhonetic
	}
	return 0
}

// prefixesOverlap reports whether the first prefixLength runes of either
// word prefix the other. Words shorter than prefixLength use their full
// length, so "ai" still prefixes "airport".
func prefixesOverlap(a, b string) bool {
	return hasRunePrefix(b, a) || hasRunePrefix(a, b)
}

func hasRunePrefix(s, prefixSource string) bool {
	prefix := []rune(prefixSource)
	if len(prefix) > prefixLength {
		prefix = prefix[:prefixLength]
	}
	runes := []rune(s)
	if len(runes) < len(prefix) {
		return false
	}
	return string(runes[:len(prefix)]) == string(prefix)
}

// metaphoneOverlap reports whether the two words share a Double Metaphone
// code (primary or alternate).
func metaphoneOverlap(a, b string) bool {
	p1, s1 := matchr.DoubleMetaphone(a)
	p2, s2 := matchr.DoubleMetaphone(b)
	for _, code := range []string{p1, s1} {
		if code == "" {
			continue
		}
		if code == p2 || (s2 != "" && code == s2) {
			return true
		}
	}
	return false
}

// Ratio computes a similarity ratio in [0, 1] between two strings based on
// their longest common subsequence: 2·LCS / (len(a) + len(b)). Inputs are
// normalized before comparison, so the ratio ignores case, punctuation, and
// diacritics. Used for sentence- and chunk-level matching where the
// word-score tiers are too coarse.
func Ratio(a, b string) float64 {
	ra := []rune(NormalizeText(a))
	rb := []rune(NormalizeText(b))
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	common := lcsLength(ra, rb)
	return 2 * float64(common) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest common subsequence length with a
// two-row DP table. Inputs are sentence-sized, so O(m·n) is fine.
func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
