package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if err := c.validateSegmenter(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAlignment() error {
	a := c.Alignment
	if a.Mode != ModeStandard && a.Mode != ModeKaraoke {
		return fmt.Errorf("alignment.mode must be %q or %q, got %q", ModeStandard, ModeKaraoke, a.Mode)
	}
	if a.WordMatchThreshold < 0 || a.WordMatchThreshold > 1 {
		return errors.New("alignment.word_match_threshold must be between 0 and 1")
	}
	if a.SentenceMatchThreshold < 0 || a.SentenceMatchThreshold > 1 {
		return errors.New("alignment.sentence_match_threshold must be between 0 and 1")
	}
	if a.LookaheadWindow < 1 {
		return errors.New("alignment.lookahead_window must be at least 1")
	}
	if a.MaxWordsPerCue < 1 {
		return errors.New("alignment.max_words_per_cue must be at least 1")
	}
	if a.KaraokeWordsPerCue < 1 {
		return errors.New("alignment.karaoke_words_per_cue must be at least 1")
	}
	if a.FallbackChunkWords < 1 {
		return errors.New("alignment.fallback_chunk_words must be at least 1")
	}
	return nil
}

func (c *Config) validateSegmenter() error {
	if !c.Segmenter.Enabled {
		return nil
	}
	if strings.TrimSpace(c.Segmenter.BaseURL) == "" {
		return errors.New("segmenter.base_url must be set when segmenter.enabled is true")
	}
	if strings.TrimSpace(c.Segmenter.Model) == "" {
		return errors.New("segmenter.model must be set when segmenter.enabled is true")
	}
	if c.Segmenter.TimeoutSeconds < 0 {
		return errors.New("segmenter.timeout_seconds must not be negative")
	}
	if c.Segmenter.Temperature < 0 || c.Segmenter.Temperature > 2 {
		return errors.New("segmenter.temperature must be between 0 and 2")
	}
	if c.Segmenter.MaxTokens < 1 {
		return errors.New("segmenter.max_tokens must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}
