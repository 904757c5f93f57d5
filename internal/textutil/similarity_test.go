package textutil_test

import (
	"math"
	"testing"

	"cuealign/internal/textutil"
)

func TestWordScoreTiers(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		token     string
		want      float64
	}{
		{name: "identical", canonical: "hello", token: "hello", want: 1.0},
		{name: "case insensitive", canonical: "Hello", token: "hELLO", want: 1.0},
		{name: "trailing punctuation ignored", canonical: "người.", token: "nguoi", want: 1.0},
		{name: "diacritics folded", canonical: "chào", token: "chao", want: 1.0},
		{name: "shared prefix", canonical: "walking", token: "walked", want: 0.7},
		{name: "short word prefixes longer", canonical: "ai", token: "airport", want: 0.7},
		{name: "phonetic match", canonical: "knight", token: "night", want: 0.6},
		{name: "no similarity", canonical: "apple", token: "zebra", want: 0.0},
		{name: "empty token", canonical: "hello", token: "", want: 0.0},
		{name: "empty canonical", canonical: "", token: "hello", want: 0.0},
		{name: "punctuation only token", canonical: "hello", token: "...", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textutil.WordScore(tt.canonical, tt.token)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("WordScore(%q, %q) = %v, want %v", tt.canonical, tt.token, got, tt.want)
			}
		})
	}
}

func TestWordScorePrefersExactOverPrefix(t *testing.T) {
	// "walk" vs "walk" shares a prefix too, but the exact tier must win.
	if got := textutil.WordScore("walk", "WALK."); got != 1.0 {
		t.Fatalf("expected exact tier, got %v", got)
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "hello world", b: "hello world", want: 1.0},
		{name: "identical modulo punctuation", a: "Hello, world!", b: "hello world", want: 1.0},
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "one empty", a: "hello", b: "", want: 0.0},
		{name: "disjoint", a: "xxxx", b: "yyyy", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textutil.Ratio(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioPartialOverlap(t *testing.T) {
	got := textutil.Ratio("the quick brown fox", "the quick red fox")
	if got <= 0.6 || got >= 1.0 {
		t.Fatalf("expected ratio between 0.6 and 1.0 for near-match, got %v", got)
	}

	low := textutil.Ratio("the quick brown fox", "completely different sentence")
	if low >= got {
		t.Fatalf("expected unrelated sentences to score below near-match: %v >= %v", low, got)
	}
}

func TestRatioSymmetric(t *testing.T) {
	a, b := "một hai ba bốn", "mot hai bon"
	if textutil.Ratio(a, b) != textutil.Ratio(b, a) {
		t.Fatal("expected Ratio to be symmetric")
	}
}
