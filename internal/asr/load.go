package asr

import (
	"encoding/json"
	"os"
	"strings"

	"cuealign/internal/services"
)

type whisperPayload struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// LoadTranscript reads a Whisper/WhisperX-style JSON result from path and
// flattens it into a Transcript. Word tokens are collected from
// segments[].words in order; tokens with empty text are dropped.
func LoadTranscript(path string) (*Transcript, error) {
	if strings.TrimSpace(path) == "" {
		return nil, services.Wrap(services.ErrValidation, "asr", "load", "transcript path required", nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "asr", "load", "transcript file not found", err)
		}
		return nil, services.Wrap(services.ErrTransient, "asr", "load", "read transcript", err)
	}
	return ParseTranscript(data)
}

// ParseTranscript decodes a recognizer JSON payload.
func ParseTranscript(data []byte) (*Transcript, error) {
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, services.Wrap(services.ErrValidation, "asr", "parse", "transcript is not valid recognizer JSON", err)
	}

	t := &Transcript{
		Text:     strings.TrimSpace(payload.Text),
		Segments: payload.Segments,
	}
	if lang, err := NormalizeLanguage(payload.Language); err == nil {
		t.Language = lang
	}

	for _, segment := range payload.Segments {
		for _, word := range segment.Words {
			word.Word = strings.TrimSpace(word.Word)
			if word.Word == "" {
				continue
			}
			t.Tokens = append(t.Tokens, word)
		}
	}

	if t.Text == "" {
		parts := make([]string, 0, len(payload.Segments))
		for _, segment := range payload.Segments {
			if trimmed := strings.TrimSpace(segment.Text); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		t.Text = strings.Join(parts, " ")
	}

	return t, nil
}
