package ollama

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DecodeStringArray extracts a JSON array of strings from raw model output.
//
// Models frequently wrap the requested array in prose or markdown fences, and
// occasionally truncate it mid-element. The decoder recovers by isolating the
// outermost bracketed region and, when a straight parse fails, trimming back
// to the last complete element before retrying.
func DecodeStringArray(content string) ([]string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("decode array: empty content")
	}

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 {
		return nil, errors.New("decode array: no JSON array found")
	}
	var candidate string
	if end > start {
		candidate = content[start : end+1]
	} else {
		// Truncated before the closing bracket; take the rest and let the
		// repair loop close it.
		candidate = content[start:]
	}

	if parsed, err := parseStringArray(candidate); err == nil {
		return parsed, nil
	}

	// Repair pass: drop trailing partial elements one comma at a time and
	// close the array after each cut.
	working := strings.TrimSuffix(strings.TrimSpace(candidate), "]")
	for {
		cut := strings.LastIndex(working, ",")
		if cut <= 0 {
			return nil, errors.New("decode array: unrecoverable JSON array")
		}
		working = strings.TrimSpace(working[:cut])
		if parsed, err := parseStringArray(working + "]"); err == nil {
			return parsed, nil
		}
	}
}

func parseStringArray(candidate string) ([]string, error) {
	var parsed []string
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, fmt.Errorf("decode array: %w", err)
	}
	return parsed, nil
}
