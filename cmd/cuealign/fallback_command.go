package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cuealign/internal/runs"
	"cuealign/internal/subtitles"
)

func newFallbackCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var duration float64

	cmd := &cobra.Command{
		Use:   "fallback <script.txt>",
		Short: "Build uniformly timed cues from a script with no transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, logger, err := ctx.newService()
			if err != nil {
				return err
			}
			if duration <= 0 {
				return fmt.Errorf("--duration must be positive")
			}
			script, err := readScript(args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(script) == "" {
				return fmt.Errorf("script file %s is empty", args[0])
			}

			destination := resolveOutputPath(cfg, outputPath, args[0])
			started := time.Now()
			result := svc.FallbackCues(script, duration)
			if err := subtitles.WriteSRT(destination, result.Cues); err != nil {
				return err
			}

			recordRun(cmd.Context(), logger, cfg, runs.Run{
				SourcePath: args[0],
				OutputPath: destination,
				Mode:       cfg.Alignment.Mode,
				Strategy:   runs.StrategyFallback,
				Status:     runs.StatusCompleted,
				CueCount:   len(result.Cues),
				Duration:   time.Since(started).Seconds(),
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cues to %s\n", len(result.Cues), destination)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination SRT path (defaults to the output directory)")
	cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "Total narration duration in seconds (required)")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}
