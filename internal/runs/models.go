package runs

import "time"

// Status describes the terminal state of an alignment run.
type Status string

const (
	// StatusCompleted marks a run whose primary strategy succeeded.
	StatusCompleted Status = "completed"
	// StatusDegraded marks a run that produced output through a fallback
	// after the primary strategy failed.
	StatusDegraded Status = "degraded"
	// StatusFailed marks a run that could not produce output at all.
	StatusFailed Status = "failed"
)

// Strategy names the path that produced the final cue list.
type Strategy string

const (
	StrategyAligned     Strategy = "aligned"
	StrategyRemote      Strategy = "remote"
	StrategyLocal       Strategy = "local"
	StrategyFallback    Strategy = "fallback"
	StrategyPlaceholder Strategy = "placeholder"
)

// Run is one recorded alignment invocation.
type Run struct {
	ID         int64
	RunID      string
	SourcePath string
	OutputPath string
	Mode       string
	Strategy   Strategy
	Status     Status
	CueCount   int
	Duration   float64
	ErrMessage string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
