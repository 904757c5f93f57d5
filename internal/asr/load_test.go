package asr_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cuealign/internal/asr"
	"cuealign/internal/services"
)

const whisperJSON = `{
  "text": "Xin chao moi nguoi",
  "language": "vi",
  "segments": [
    {
      "text": "Xin chao",
      "start": 0.0,
      "end": 0.6,
      "words": [
        {"word": " xin", "start": 0.0, "end": 0.3},
        {"word": "chao ", "start": 0.3, "end": 0.6}
      ]
    },
    {
      "text": "moi nguoi",
      "start": 0.6,
      "end": 1.3,
      "words": [
        {"word": "moi", "start": 0.6, "end": 0.9},
        {"word": "  ", "start": 0.9, "end": 1.0},
        {"word": "nguoi", "start": 0.9, "end": 1.3}
      ]
    }
  ]
}`

func TestParseTranscript(t *testing.T) {
	transcript, err := asr.ParseTranscript([]byte(whisperJSON))
	if err != nil {
		t.Fatalf("ParseTranscript failed: %v", err)
	}

	if transcript.Text != "Xin chao moi nguoi" {
		t.Errorf("text = %q", transcript.Text)
	}
	if transcript.Language != "vi" {
		t.Errorf("language = %q, want vi", transcript.Language)
	}
	if len(transcript.Segments) != 2 {
		t.Errorf("segments = %d, want 2", len(transcript.Segments))
	}

	// Whitespace-only words are dropped; token text keeps its spelling but
	// loses surrounding spaces.
	wantTokens := []string{"xin", "chao", "moi", "nguoi"}
	if len(transcript.Tokens) != len(wantTokens) {
		t.Fatalf("tokens = %d, want %d", len(transcript.Tokens), len(wantTokens))
	}
	for i, want := range wantTokens {
		if transcript.Tokens[i].Word != want {
			t.Errorf("token %d = %q, want %q", i, transcript.Tokens[i].Word, want)
		}
	}

	if got := transcript.Duration(); got != 1.3 {
		t.Errorf("duration = %v, want 1.3", got)
	}
}

func TestParseTranscriptJoinsSegmentTextWhenTopLevelMissing(t *testing.T) {
	payload := `{"segments": [{"text": " first part ", "start": 0, "end": 1}, {"text": "second part", "start": 1, "end": 2}]}`
	transcript, err := asr.ParseTranscript([]byte(payload))
	if err != nil {
		t.Fatalf("ParseTranscript failed: %v", err)
	}
	if transcript.Text != "first part second part" {
		t.Errorf("text = %q", transcript.Text)
	}
}

func TestParseTranscriptRejectsInvalidJSON(t *testing.T) {
	_, err := asr.ParseTranscript([]byte("not json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}

func TestLoadTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.json")
	if err := os.WriteFile(path, []byte(whisperJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	transcript, err := asr.LoadTranscript(path)
	if err != nil {
		t.Fatalf("LoadTranscript failed: %v", err)
	}
	if len(transcript.Tokens) != 4 {
		t.Errorf("tokens = %d, want 4", len(transcript.Tokens))
	}
}

func TestLoadTranscriptMissingFile(t *testing.T) {
	_, err := asr.LoadTranscript(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got %v", err)
	}
}

func TestLoadTranscriptEmptyPath(t *testing.T) {
	if _, err := asr.LoadTranscript("  "); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"vi", "vi", false},
		{"EN", "en", false},
		{"en-US", "en-US", false},
		{"not a language", "", true},
	}
	for _, tt := range tests {
		got, err := asr.NormalizeLanguage(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeLanguage(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeLanguage(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
