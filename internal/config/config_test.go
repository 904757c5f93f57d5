package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cuealign/internal/config"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[alignment]
mode = "karaoke"
word_match_threshold = 0.55
protected_phrases = ["Welcome to the show."]

[segmenter]
enabled = true
model = "qwen3:8b"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be reported as existing")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Alignment.Mode != config.ModeKaraoke {
		t.Errorf("mode = %q", cfg.Alignment.Mode)
	}
	if cfg.Alignment.WordMatchThreshold != 0.55 {
		t.Errorf("word threshold = %v", cfg.Alignment.WordMatchThreshold)
	}
	if cfg.Segmenter.Model != "qwen3:8b" {
		t.Errorf("segmenter model = %q", cfg.Segmenter.Model)
	}
	if len(cfg.Alignment.ProtectedPhrases) != 1 {
		t.Errorf("protected phrases = %v", cfg.Alignment.ProtectedPhrases)
	}
	// Unset fields keep their defaults.
	if cfg.Alignment.LookaheadWindow != config.Default().Alignment.LookaheadWindow {
		t.Errorf("lookahead window = %d, want default", cfg.Alignment.LookaheadWindow)
	}
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing file to be reported as not existing")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Alignment.Mode != config.ModeStandard {
		t.Errorf("expected default mode, got %q", cfg.Alignment.Mode)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad mode", func(c *config.Config) { c.Alignment.Mode = "frantic" }},
		{"threshold above one", func(c *config.Config) { c.Alignment.WordMatchThreshold = 1.5 }},
		{"negative threshold", func(c *config.Config) { c.Alignment.SentenceMatchThreshold = -0.1 }},
		{"zero lookahead", func(c *config.Config) { c.Alignment.LookaheadWindow = 0 }},
		{"zero cue words", func(c *config.Config) { c.Alignment.MaxWordsPerCue = 0 }},
		{"segmenter enabled without model", func(c *config.Config) {
			c.Segmenter.Enabled = true
			c.Segmenter.Model = ""
		}},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestWordsPerCueFollowsMode(t *testing.T) {
	cfg := config.Default()
	cfg.Alignment.Mode = config.ModeStandard
	standard := cfg.WordsPerCue()

	cfg.Alignment.Mode = config.ModeKaraoke
	karaoke := cfg.WordsPerCue()

	if karaoke >= standard {
		t.Fatalf("karaoke cap %d should be below standard cap %d", karaoke, standard)
	}
	if karaoke != cfg.Alignment.KaraokeWordsPerCue {
		t.Errorf("karaoke cap = %d, want %d", karaoke, cfg.Alignment.KaraokeWordsPerCue)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, fragment := range []string{"[alignment]", "[segmenter]", "[logging]"} {
		if !strings.Contains(string(data), fragment) {
			t.Errorf("sample config missing %q", fragment)
		}
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}
	got, err := config.ExpandPath("~/cuealign-test")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(home, "cuealign-test") {
		t.Errorf("ExpandPath = %q", got)
	}
}
