// Package runs persists a ledger of alignment runs backed by SQLite.
//
// Every invocation that produces a subtitle file records one row: the source
// transcript, the strategy that ultimately produced the cues, the cue count,
// and a terminal status. The ledger is what `cuealign runs` reads. If you add
// new statuses or columns, update schema.sql and bump schemaVersion.
package runs
