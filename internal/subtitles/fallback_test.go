package subtitles_test

import (
	"math"
	"strings"
	"testing"

	"cuealign/internal/subtitles"
)

func TestFallbackBuilderUniformSlices(t *testing.T) {
	words := make([]string, 25)
	for i := range words {
		words[i] = "word"
	}
	script := strings.Join(words, " ")

	cues := subtitles.FallbackBuilder{ChunkWords: 10}.Build(script, 10.0)
	if len(cues) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(cues))
	}

	slice := 10.0 / 3.0
	for i, cue := range cues {
		if math.Abs(cue.Duration()-slice) > 1e-9 {
			t.Errorf("cue %d duration = %v, want %v", i, cue.Duration(), slice)
		}
		if math.Abs(cue.Start-float64(i)*slice) > 1e-9 {
			t.Errorf("cue %d start = %v, want %v", i, cue.Start, float64(i)*slice)
		}
	}

	if got := len(cues[2].Words()); got != 5 {
		t.Errorf("last cue holds %d words, want 5", got)
	}
	if got := subtitles.JoinCueText(cues); got != script {
		t.Errorf("cue text does not reconstruct the script")
	}
}

func TestFallbackBuilderEmptyScript(t *testing.T) {
	cues := subtitles.FallbackBuilder{ChunkWords: 10}.Build("   ", 10.0)
	if len(cues) != 1 {
		t.Fatalf("expected single placeholder cue, got %d", len(cues))
	}
	if cues[0] != subtitles.PlaceholderCue() {
		t.Fatalf("expected placeholder cue, got %+v", cues[0])
	}
}

func TestFallbackBuilderFewerWordsThanChunk(t *testing.T) {
	cues := subtitles.FallbackBuilder{ChunkWords: 10}.Build("just three words", 6.0)
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Start != 0 || cues[0].End != 6.0 {
		t.Errorf("cue timing = (%v, %v), want (0, 6)", cues[0].Start, cues[0].End)
	}
}

func TestPlaceholderCueIsValid(t *testing.T) {
	cue := subtitles.PlaceholderCue()
	if cue.Index != 1 {
		t.Errorf("index = %d, want 1", cue.Index)
	}
	if cue.End <= cue.Start {
		t.Errorf("placeholder cue has no display window: (%v, %v)", cue.Start, cue.End)
	}
	if strings.TrimSpace(cue.Text) == "" {
		t.Error("placeholder cue has empty text")
	}
}
