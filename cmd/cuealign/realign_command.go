package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cuealign/internal/runs"
	"cuealign/internal/subtitles"
)

func newRealignCommand(ctx *commandContext) *cobra.Command {
	var scriptPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "realign <subtitles.srt>",
		Short: "Regenerate cue text against a corrected script, keeping timing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, logger, err := ctx.newService()
			if err != nil {
				return err
			}
			if strings.TrimSpace(scriptPath) == "" {
				return fmt.Errorf("--script is required")
			}
			script, err := readScript(scriptPath)
			if err != nil {
				return err
			}

			sourcePath := args[0]
			cues, err := subtitles.ReadSRT(sourcePath)
			if err != nil {
				return err
			}
			if len(cues) == 0 {
				return fmt.Errorf("no cues found in %s", sourcePath)
			}

			destination := outputPath
			if strings.TrimSpace(destination) == "" {
				// In-place rewrite is the common case.
				destination = sourcePath
			}

			started := time.Now()
			realigned, strategy := svc.Realign(cmd.Context(), cues, script)
			if err := subtitles.WriteSRT(destination, realigned); err != nil {
				return err
			}

			recordRun(cmd.Context(), logger, cfg, runs.Run{
				SourcePath: sourcePath,
				OutputPath: destination,
				Mode:       cfg.Alignment.Mode,
				Strategy:   runs.Strategy(strategy),
				Status:     runs.StatusCompleted,
				CueCount:   len(realigned),
				Duration:   time.Since(started).Seconds(),
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Rewrote %d cues to %s (strategy: %s)\n", len(realigned), destination, strategy)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Path to the corrected script text file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination SRT path (defaults to rewriting in place)")
	return cmd
}
