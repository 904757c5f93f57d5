package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cuealign/internal/asr"
	"cuealign/internal/config"
	"cuealign/internal/logging"
	"cuealign/internal/runs"
	"cuealign/internal/services"
	"cuealign/internal/subtitles"
)

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var scriptPath string
	var outputPath string
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "align <transcript.json>",
		Short: "Align a canonical script against an ASR transcript and write SRT",
		Long: `Align reads a whisper-style transcript JSON (word timings or segment
timings) and a canonical script, assigns timing to the script text, and
writes the resulting cues as an SRT file. Without --script the transcript's
own text is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, logger, err := ctx.newService()
			if err != nil {
				return err
			}
			if err := applyModeOverride(cfg, modeFlag); err != nil {
				return err
			}

			transcriptPath := args[0]
			transcript, err := asr.LoadTranscript(transcriptPath)
			if err != nil {
				recordRun(cmd.Context(), logger, cfg, runs.Run{
					SourcePath: transcriptPath,
					Mode:       cfg.Alignment.Mode,
					Strategy:   runs.StrategyAligned,
					Status:     services.FailureStatus(err),
					ErrMessage: err.Error(),
				})
				return err
			}
			if transcript.Language != "" {
				logger.Info("transcript loaded",
					logging.String("language", asr.LanguageName(transcript.Language)),
					logging.Int("tokens", len(transcript.Tokens)),
					logging.Int("segments", len(transcript.Segments)))
			}

			script, err := readScript(scriptPath)
			if err != nil {
				return err
			}

			destination := resolveOutputPath(cfg, outputPath, transcriptPath)
			started := time.Now()
			result := svc.GenerateCues(cmd.Context(), transcript, script)
			if err := subtitles.WriteSRT(destination, result.Cues); err != nil {
				return err
			}

			recordRun(cmd.Context(), logger, cfg, runs.Run{
				SourcePath: transcriptPath,
				OutputPath: destination,
				Mode:       cfg.Alignment.Mode,
				Strategy:   runs.Strategy(result.Strategy),
				Status:     runStatus(result),
				CueCount:   len(result.Cues),
				Duration:   time.Since(started).Seconds(),
				ErrMessage: result.Issue,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d cues to %s (strategy: %s)\n", len(result.Cues), destination, result.Strategy)
			if result.Degraded {
				fmt.Fprintf(out, "Warning: output degraded: %s\n", result.Issue)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Path to the canonical script text file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination SRT path (defaults to the output directory)")
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "Cue pacing mode: standard or karaoke")
	return cmd
}

func applyModeOverride(cfg *config.Config, mode string) error {
	mode = strings.TrimSpace(strings.ToLower(mode))
	if mode == "" {
		return nil
	}
	if mode != config.ModeStandard && mode != config.ModeKaraoke {
		return fmt.Errorf("invalid mode %q (expected %s or %s)", mode, config.ModeStandard, config.ModeKaraoke)
	}
	cfg.Alignment.Mode = mode
	return nil
}

func readScript(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return strings.Join(strings.Fields(string(data)), " "), nil
}

func resolveOutputPath(cfg *config.Config, explicit, sourcePath string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	if base == "" {
		base = "subtitles"
	}
	return filepath.Join(cfg.Paths.OutputDir, base+".srt")
}

func runStatus(result subtitles.Result) runs.Status {
	if result.Degraded {
		return runs.StatusDegraded
	}
	return runs.StatusCompleted
}
