package config

// Alignment modes.
const (
	ModeStandard = "standard"
	ModeKaraoke  = "karaoke"
)

const (
	defaultDataDir   = "~/.local/share/cuealign"
	defaultOutputDir = "~/.local/share/cuealign/subtitles"
	defaultLogDir    = "~/.local/share/cuealign/logs"

	defaultAlignmentMode          = ModeStandard
	defaultWordMatchThreshold     = 0.5
	defaultSentenceMatchThreshold = 0.6
	defaultLookaheadWindow        = 3
	defaultMaxWordsPerCue         = 9
	defaultKaraokeWordsPerCue     = 4
	defaultFallbackChunkWords     = 10

	defaultSegmenterBaseURL        = "http://localhost:11434"
	defaultSegmenterModel          = "qwen2.5:4b"
	defaultSegmenterTimeoutSeconds = 60
	defaultSegmenterTemperature    = 0.1
	defaultSegmenterMaxTokens      = 2000

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Alignment: Alignment{
			Mode:                   defaultAlignmentMode,
			WordMatchThreshold:     defaultWordMatchThreshold,
			SentenceMatchThreshold: defaultSentenceMatchThreshold,
			LookaheadWindow:        defaultLookaheadWindow,
			MaxWordsPerCue:         defaultMaxWordsPerCue,
			KaraokeWordsPerCue:     defaultKaraokeWordsPerCue,
			FallbackChunkWords:     defaultFallbackChunkWords,
		},
		Segmenter: Segmenter{
			BaseURL:        defaultSegmenterBaseURL,
			Model:          defaultSegmenterModel,
			TimeoutSeconds: defaultSegmenterTimeoutSeconds,
			Temperature:    defaultSegmenterTemperature,
			MaxTokens:      defaultSegmenterMaxTokens,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
