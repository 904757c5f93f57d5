package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir   string `toml:"data_dir"`
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Alignment contains the tunable constants of the alignment chain.
//
// The thresholds are defaults, not contractual behavior: the values were
// carried over from the tuning that worked for the original narration corpus
// and can be adjusted per deployment.
type Alignment struct {
	// Mode selects cue pacing: "standard" (up to MaxWordsPerCue words) or
	// "karaoke" (rapid phrases of KaraokeWordsPerCue words).
	Mode string `toml:"mode"`
	// WordMatchThreshold is the minimum similarity score required to accept a
	// token match in the windowed word aligner.
	WordMatchThreshold float64 `toml:"word_match_threshold"`
	// SentenceMatchThreshold is the minimum similarity ratio required to
	// replace a transcript sentence or chunk with canonical text.
	SentenceMatchThreshold float64 `toml:"sentence_match_threshold"`
	// LookaheadWindow is the number of tokens inspected ahead of the cursor
	// when matching a canonical word.
	LookaheadWindow int `toml:"lookahead_window"`
	// MaxWordsPerCue caps cue length in standard mode.
	MaxWordsPerCue int `toml:"max_words_per_cue"`
	// KaraokeWordsPerCue caps cue length in karaoke mode.
	KaraokeWordsPerCue int `toml:"karaoke_words_per_cue"`
	// FallbackChunkWords is the word count per cue when timing the canonical
	// script uniformly over a known duration.
	FallbackChunkWords int `toml:"fallback_chunk_words"`
	// ProtectedPhrases are fixed phrases (intro/outro lines) that must be
	// present in the reconstructed text; the sentence aligner reinstates them
	// verbatim when alignment loses them.
	ProtectedPhrases []string `toml:"protected_phrases"`
}

// Segmenter contains configuration for the remote segmentation service
// (an Ollama-hosted text generation model).
type Segmenter struct {
	Enabled        bool    `toml:"enabled"`
	BaseURL        string  `toml:"base_url"`
	Model          string  `toml:"model"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	Temperature    float64 `toml:"temperature"`
	MaxTokens      int     `toml:"max_tokens"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for cuealign.
//
// Configuration sections by subsystem:
//   - Paths: data, output, and log directories
//   - Alignment: similarity thresholds, lookahead window, cue pacing
//   - Segmenter: remote segmentation model connection settings
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Alignment Alignment `toml:"alignment"`
	Segmenter Segmenter `toml:"segmenter"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cuealign/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. A missing file is not
// an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cuealign.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return err
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return err
	}

	c.Alignment.Mode = strings.ToLower(strings.TrimSpace(c.Alignment.Mode))
	if c.Alignment.Mode == "" {
		c.Alignment.Mode = defaultAlignmentMode
	}

	phrases := make([]string, 0, len(c.Alignment.ProtectedPhrases))
	for _, phrase := range c.Alignment.ProtectedPhrases {
		if trimmed := strings.TrimSpace(phrase); trimmed != "" {
			phrases = append(phrases, trimmed)
		}
	}
	c.Alignment.ProtectedPhrases = phrases

	c.Segmenter.BaseURL = strings.TrimRight(strings.TrimSpace(c.Segmenter.BaseURL), "/")
	c.Segmenter.Model = strings.TrimSpace(c.Segmenter.Model)
	return nil
}

// EnsureDirectories creates the directories required for a run.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.OutputDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// SegmenterTimeout returns the bounded timeout for remote segmentation calls.
func (c *Config) SegmenterTimeout() time.Duration {
	if c.Segmenter.TimeoutSeconds <= 0 {
		return time.Duration(defaultSegmenterTimeoutSeconds) * time.Second
	}
	return time.Duration(c.Segmenter.TimeoutSeconds) * time.Second
}

// WordsPerCue returns the cue word cap for the configured mode.
func (c *Config) WordsPerCue() int {
	if c.Alignment.Mode == ModeKaraoke {
		return c.Alignment.KaraokeWordsPerCue
	}
	return c.Alignment.MaxWordsPerCue
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
