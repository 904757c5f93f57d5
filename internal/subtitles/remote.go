package subtitles

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cuealign/internal/logging"
	"cuealign/internal/services/ollama"
)

// Generator produces text from a prompt. Satisfied by the Ollama client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RemoteSegmenter asks a remote language model to split the canonical script
// into exactly N segments matching the transcript's pacing. Any failure —
// network, timeout, malformed response, wrong count — resolves to a
// deterministic even split; the segmenter never returns an error.
type RemoteSegmenter struct {
	Client Generator
	Logger *slog.Logger
}

// Segment returns exactly n non-empty segments whose concatenation
// reproduces the canonical script's words when the remote response is
// unusable. The second result reports whether the remote response was used.
func (s RemoteSegmenter) Segment(ctx context.Context, script, transcript string, n int) ([]string, bool) {
	if n <= 0 {
		return nil, false
	}
	logger := s.logger()

	if s.Client == nil {
		return EvenSplit(script, n), false
	}

	response, err := s.Client.Generate(ctx, segmentationPrompt(script, transcript, n))
	if err != nil {
		logger.Warn("remote segmentation failed, using even split", logging.Error(err))
		return EvenSplit(script, n), false
	}

	segments, err := ollama.DecodeStringArray(response)
	if err != nil {
		logger.Warn("remote segmentation response unusable, using even split", logging.Error(err))
		return EvenSplit(script, n), false
	}
	if err := validateSegments(segments, n); err != nil {
		logger.Warn("remote segmentation rejected, using even split",
			logging.Error(err), logging.Int("want_segments", n), logging.Int("got_segments", len(segments)))
		return EvenSplit(script, n), false
	}

	trimmed := make([]string, n)
	for i, segment := range segments {
		trimmed[i] = strings.TrimSpace(segment)
	}
	return trimmed, true
}

func validateSegments(segments []string, n int) error {
	if len(segments) != n {
		return fmt.Errorf("expected %d segments, got %d", n, len(segments))
	}
	for i, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return fmt.Errorf("segment %d is empty", i+1)
		}
	}
	return nil
}

// EvenSplit divides the script's words into n nearly equal contiguous
// chunks. Remainder words go to the last chunk. Always returns exactly n
// entries; trailing entries are empty only when the script has fewer than n
// words.
func EvenSplit(script string, n int) []string {
	words := strings.Fields(script)
	chunks := make([]string, n)
	if len(words) == 0 || n <= 0 {
		return chunks
	}

	size := len(words) / n
	if size == 0 {
		size = 1
	}
	for i := 0; i < n; i++ {
		start := i * size
		if start >= len(words) {
			break
		}
		end := start + size
		if i == n-1 || end > len(words) {
			end = len(words)
		}
		chunks[i] = strings.Join(words[start:end], " ")
	}
	return chunks
}

func segmentationPrompt(script, transcript string, n int) string {
	var builder strings.Builder
	builder.WriteString("Split the SCRIPT below into exactly ")
	fmt.Fprintf(&builder, "%d", n)
	builder.WriteString(" ordered segments so that segment i covers roughly the same part of the narration as segment i of the TRANSCRIPT. ")
	builder.WriteString("Preserve every word of the SCRIPT in order; do not add, drop, or rephrase words. ")
	builder.WriteString("Respond with a JSON array of ")
	fmt.Fprintf(&builder, "%d", n)
	builder.WriteString(" strings and nothing else.\n\nSCRIPT:\n")
	builder.WriteString(script)
	builder.WriteString("\n\nTRANSCRIPT:\n")
	builder.WriteString(transcript)
	return builder.String()
}

func (s RemoteSegmenter) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.NewNop()
}
