package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"cuealign/internal/runs"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent alignment runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := runs.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			list, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(list))
			for _, run := range list {
				rows = append(rows, []string{
					strconv.FormatInt(run.ID, 10),
					run.CreatedAt.Local().Format(time.DateTime),
					string(run.Strategy),
					string(run.Status),
					strconv.Itoa(run.CueCount),
					fmt.Sprintf("%.2fs", run.Duration),
					run.OutputPath,
				})
			}
			columns := []tableColumn{
				{Header: "ID", Right: true},
				{Header: "Created"},
				{Header: "Strategy"},
				{Header: "Status", Colorize: statusColor},
				{Header: "Cues", Right: true},
				{Header: "Took", Right: true},
				{Header: "Output"},
			}
			fmt.Fprintln(out, renderTable(out, columns, rows))

			counts, err := store.CountByStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Totals: %d completed, %d degraded, %d failed\n",
				counts[runs.StatusCompleted], counts[runs.StatusDegraded], counts[runs.StatusFailed])
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	return cmd
}

func statusColor(status string) string {
	switch runs.Status(status) {
	case runs.StatusCompleted:
		return ansiGreen + status + ansiReset
	case runs.StatusDegraded:
		return ansiYellow + status + ansiReset
	case runs.StatusFailed:
		return ansiRed + status + ansiReset
	default:
		return status
	}
}
