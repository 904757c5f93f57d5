package main

import (
	"context"
	"log/slog"

	"cuealign/internal/config"
	"cuealign/internal/logging"
	"cuealign/internal/runs"
)

// recordRun appends the run to the ledger. Ledger failures are logged, never
// surfaced; the subtitle file is already on disk by the time this runs.
func recordRun(ctx context.Context, logger *slog.Logger, cfg *config.Config, run runs.Run) {
	store, err := runs.Open(cfg)
	if err != nil {
		logger.Warn("runs ledger unavailable", logging.Error(err))
		return
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("close runs ledger", logging.Error(closeErr))
		}
	}()

	recorded, err := store.Record(ctx, run)
	if err != nil {
		logger.Warn("record run", logging.Error(err))
		return
	}
	logger.Info("run recorded",
		logging.String(logging.FieldRunID, recorded.RunID),
		logging.String(logging.FieldStrategy, string(recorded.Strategy)),
		logging.String("status", string(recorded.Status)))
}
