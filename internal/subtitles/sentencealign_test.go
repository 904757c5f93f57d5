package subtitles_test

import (
	"strings"
	"testing"

	"cuealign/internal/subtitles"
)

func newSentenceAligner() subtitles.SentenceAligner {
	return subtitles.SentenceAligner{MatchThreshold: 0.6}
}

func TestReplaceSentencesCorrectsCloseMatches(t *testing.T) {
	transcript := "the quick brown focks jumped over the fence. totally unrelated noise here."
	script := "The quick brown fox jumped over the fence. Another canonical sentence entirely."

	got := newSentenceAligner().ReplaceSentences(transcript, script)
	if !strings.Contains(got, "The quick brown fox jumped over the fence.") {
		t.Errorf("expected canonical sentence in output, got %q", got)
	}
}

func TestReplaceSentencesKeepsUnmatchedTranscript(t *testing.T) {
	transcript := "zzz qqq xxx vvv."
	script := "A completely different canonical narration with nothing in common."

	got := newSentenceAligner().ReplaceSentences(transcript, script)
	if !strings.Contains(got, "zzz qqq xxx vvv.") {
		t.Errorf("expected unmatched transcript sentence to survive, got %q", got)
	}
}

func TestReplaceSentencesReinstatesProtectedPhrases(t *testing.T) {
	aligner := subtitles.SentenceAligner{
		MatchThreshold:   0.6,
		ProtectedPhrases: []string{"Welcome to the show.", "Thanks for watching."},
	}

	got := aligner.ReplaceSentences("some middle narration goes here.", "some middle narration goes here.")
	if !strings.HasPrefix(got, "Welcome to the show.") {
		t.Errorf("expected intro phrase prepended, got %q", got)
	}
	if !strings.HasSuffix(got, "Thanks for watching.") {
		t.Errorf("expected outro phrase appended, got %q", got)
	}
}

func TestReplaceSentencesDoesNotDuplicateProtectedPhrases(t *testing.T) {
	aligner := subtitles.SentenceAligner{
		MatchThreshold:   0.6,
		ProtectedPhrases: []string{"Welcome to the show."},
	}

	text := "welcome to the show. more narration."
	got := aligner.ReplaceSentences(text, text)
	if count := strings.Count(strings.ToLower(got), "welcome to the show."); count != 1 {
		t.Errorf("protected phrase appears %d times, want 1: %q", count, got)
	}
}

func TestReplaceChunksKeepsTiming(t *testing.T) {
	cues := []subtitles.Cue{
		{Index: 1, Start: 0.0, End: 2.0, Text: "the kwick brown focks"},
		{Index: 2, Start: 2.0, End: 4.0, Text: "jumps ovur the dog"},
	}
	script := "the quick brown fox jumps over the dog"

	got := newSentenceAligner().ReplaceChunks(cues, script)
	if got[0].Text != "the quick brown fox" {
		t.Errorf("first chunk text = %q, want canonical window", got[0].Text)
	}
	if got[1].Text != "jumps over the dog" {
		t.Errorf("second chunk text = %q, want canonical window", got[1].Text)
	}
	for i := range got {
		if got[i].Start != cues[i].Start || got[i].End != cues[i].End {
			t.Errorf("chunk %d timing changed: (%v, %v) != (%v, %v)",
				i, got[i].Start, got[i].End, cues[i].Start, cues[i].End)
		}
	}
}

func TestReplaceChunksKeepsUnmatchedText(t *testing.T) {
	cues := []subtitles.Cue{{Index: 1, Start: 0, End: 1, Text: "zzz qqq"}}
	got := newSentenceAligner().ReplaceChunks(cues, "totally different canonical words here")
	if got[0].Text != "zzz qqq" {
		t.Errorf("unmatched chunk text changed: %q", got[0].Text)
	}
}

func TestReplaceChunksDoesNotMutateInput(t *testing.T) {
	cues := []subtitles.Cue{{Index: 1, Start: 0, End: 1, Text: "the kwick brown focks"}}
	newSentenceAligner().ReplaceChunks(cues, "the quick brown fox")
	if cues[0].Text != "the kwick brown focks" {
		t.Errorf("input cue mutated: %q", cues[0].Text)
	}
}
