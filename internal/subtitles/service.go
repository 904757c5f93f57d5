package subtitles

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cuealign/internal/asr"
	"cuealign/internal/config"
	"cuealign/internal/logging"
)

// Strategy names the path that produced a cue list.
type Strategy string

const (
	// StrategyAligned is word-level alignment against ASR token timings.
	StrategyAligned Strategy = "aligned"
	// StrategyRemote is LLM-assisted segmentation mapped onto ASR segment timings.
	StrategyRemote Strategy = "remote"
	// StrategyLocal is sentence/chunk correction over ASR segment timings.
	StrategyLocal Strategy = "local"
	// StrategyFallback is uniform chunking with no ASR input at all.
	StrategyFallback Strategy = "fallback"
	// StrategyPlaceholder is the single failure-marker cue.
	StrategyPlaceholder Strategy = "placeholder"
)

// Result carries the produced cues and how they were produced.
type Result struct {
	Cues     []Cue
	Strategy Strategy
	// Degraded is set when the primary strategy for the available input
	// failed and a lower-fidelity path produced the cues.
	Degraded bool
	// Issue describes the degradation, empty otherwise.
	Issue string
}

// Service coordinates the alignment strategies. One service handles one
// generation at a time; invocations share no mutable state.
type Service struct {
	cfg    *config.Config
	logger *slog.Logger
	remote *RemoteSegmenter
}

// NewService constructs the alignment service. client may be nil, disabling
// remote segmentation.
func NewService(cfg *config.Config, logger *slog.Logger, client Generator) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("subtitles service requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "subtitles")

	svc := &Service{cfg: cfg, logger: logger}
	if client != nil && cfg.Segmenter.Enabled {
		svc.remote = &RemoteSegmenter{Client: client, Logger: logger}
	}
	return svc, nil
}

// GenerateCues produces a cue list for the canonical script using the best
// strategy the transcript supports. The returned cue list is always non-empty
// and chronologically valid; failures degrade through the fallback chain down
// to a single placeholder cue.
func (s *Service) GenerateCues(ctx context.Context, transcript *asr.Transcript, script string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("alignment panicked, emitting placeholder cue",
				logging.Any("panic", r))
			result = Result{
				Cues:     []Cue{PlaceholderCue()},
				Strategy: StrategyPlaceholder,
				Degraded: true,
				Issue:    fmt.Sprintf("alignment panic: %v", r),
			}
		}
	}()

	script = strings.TrimSpace(script)
	if script == "" && transcript != nil {
		script = strings.TrimSpace(transcript.Text)
	}
	if script == "" {
		s.logger.Warn("no script or transcript text, emitting placeholder cue")
		return Result{
			Cues:     []Cue{PlaceholderCue()},
			Strategy: StrategyPlaceholder,
			Degraded: true,
			Issue:    "no text to align",
		}
	}

	switch {
	case transcript != nil && len(transcript.Tokens) > 0:
		result = s.alignWords(transcript, script)
	case transcript != nil && len(transcript.Segments) > 0:
		result = s.alignSegments(ctx, transcript, script)
	default:
		s.logger.Info("no usable transcript, building uniform cues")
		builder := FallbackBuilder{ChunkWords: s.cfg.Alignment.FallbackChunkWords}
		result = Result{
			Cues:     builder.Build(script, transcriptDuration(transcript)),
			Strategy: StrategyFallback,
		}
	}

	if !ChronologicallyValid(result.Cues) {
		s.logger.Error("strategy produced invalid cue list, emitting placeholder cue",
			logging.String(logging.FieldStrategy, string(result.Strategy)))
		return Result{
			Cues:     []Cue{PlaceholderCue()},
			Strategy: StrategyPlaceholder,
			Degraded: true,
			Issue:    fmt.Sprintf("strategy %s produced an invalid cue list", result.Strategy),
		}
	}
	return result
}

// FallbackCues builds uniformly timed cues directly, for callers that have no
// transcript at all but know the narration duration.
func (s *Service) FallbackCues(script string, duration float64) Result {
	builder := FallbackBuilder{ChunkWords: s.cfg.Alignment.FallbackChunkWords}
	cues := builder.Build(script, duration)
	s.logger.Info("uniform cues built",
		logging.Int("cues", len(cues)),
		logging.Float64("duration_seconds", duration))
	return Result{Cues: cues, Strategy: StrategyFallback}
}

// Realign regenerates the text of existing cues against a corrected script,
// keeping the original timing. The remote segmenter is asked for exactly one
// part per cue when configured; any failure resolves to a deterministic even
// split. A chunk-window pass then snaps each cue back to the closest
// same-length canonical window, catching remote answers that drifted from
// the script's words.
func (s *Service) Realign(ctx context.Context, cues []Cue, script string) ([]Cue, Strategy) {
	if len(cues) == 0 {
		return nil, StrategyLocal
	}

	segmenter := s.remote
	if segmenter == nil {
		segmenter = &RemoteSegmenter{Logger: s.logger}
	}
	texts, usedRemote := segmenter.Segment(ctx, script, JoinCueText(cues), len(cues))
	strategy := StrategyLocal
	if usedRemote {
		strategy = StrategyRemote
	}

	realigned := make([]Cue, len(cues))
	for i, cue := range cues {
		cue.Text = texts[i]
		realigned[i] = cue
	}
	realigned = s.sentenceAligner().ReplaceChunks(realigned, script)
	s.logger.Info("realignment complete",
		logging.String(logging.FieldStrategy, string(strategy)),
		logging.Int("cues", len(realigned)))
	return Reindex(realigned), strategy
}

func (s *Service) alignWords(transcript *asr.Transcript, script string) Result {
	aligner := WordAligner{
		MatchThreshold:  s.cfg.Alignment.WordMatchThreshold,
		LookaheadWindow: s.cfg.Alignment.LookaheadWindow,
		DefaultDuration: transcript.Duration(),
	}
	words := aligner.AlignTranscript(transcript, script)
	cues := PhraseSegmenter{MaxWords: s.cfg.WordsPerCue()}.Segment(words)
	s.logger.Info("word alignment complete",
		logging.Int("canonical_words", len(words)),
		logging.Int("tokens", len(transcript.Tokens)),
		logging.Int("cues", len(cues)))
	return Result{Cues: cues, Strategy: StrategyAligned}
}

// alignSegments handles transcripts that carry segment timing but no
// word-level timestamps. Remote segmentation is preferred when configured;
// otherwise the sentence aligner corrects the transcript text locally.
func (s *Service) alignSegments(ctx context.Context, transcript *asr.Transcript, script string) Result {
	segments := transcript.Segments
	strategy := StrategyLocal
	var texts []string

	if s.remote != nil {
		remoteTexts, used := s.remote.Segment(ctx, script, transcript.Text, len(segments))
		if used {
			texts = remoteTexts
			strategy = StrategyRemote
		}
	}
	if texts == nil {
		corrected := s.sentenceAligner().ReplaceSentences(transcript.Text, script)
		texts = EvenSplit(corrected, len(segments))
	}

	var words []AlignedWord
	for i, segment := range segments {
		words = append(words, spreadWords(texts[i], segment.Start, segment.End)...)
	}
	cues := PhraseSegmenter{MaxWords: s.cfg.WordsPerCue()}.Segment(words)
	s.logger.Info("segment alignment complete",
		logging.String(logging.FieldStrategy, string(strategy)),
		logging.Int("segments", len(segments)),
		logging.Int("cues", len(cues)))
	return Result{Cues: cues, Strategy: strategy}
}

func (s *Service) sentenceAligner() SentenceAligner {
	return SentenceAligner{
		MatchThreshold:   s.cfg.Alignment.SentenceMatchThreshold,
		ProtectedPhrases: s.cfg.Alignment.ProtectedPhrases,
		Logger:           s.logger,
	}
}

// spreadWords distributes a segment's words uniformly across its time span.
func spreadWords(text string, start, end float64) []AlignedWord {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	if end < start {
		end = start
	}
	perWord := (end - start) / float64(len(fields))
	words := make([]AlignedWord, len(fields))
	for i, field := range fields {
		words[i] = AlignedWord{
			Text:  field,
			Start: start + float64(i)*perWord,
			End:   start + float64(i+1)*perWord,
		}
	}
	return words
}

func transcriptDuration(transcript *asr.Transcript) float64 {
	if transcript == nil {
		return 0
	}
	return transcript.Duration()
}
