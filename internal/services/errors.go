// Package services defines shared error classification for cuealign
// components. Errors are tagged with sentinel markers so callers can map a
// failure to a run status without string matching.
package services

import (
	"errors"
	"fmt"
	"strings"

	"cuealign/internal/runs"
)

var (
	ErrExternalService = errors.New("external service error")
	ErrValidation      = errors.New("validation error")
	ErrConfiguration   = errors.New("configuration error")
	ErrNotFound        = errors.New("not found")
	ErrTimeout         = errors.New("timeout")
	ErrTransient       = errors.New("transient failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later status classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailureStatus maps a component error to the run status the CLI should
// persist. External-service problems leave the run degraded, since the
// alignment chain still produces output through its fallbacks; anything local
// (bad input, bad configuration, I/O) means the run produced nothing.
func FailureStatus(err error) runs.Status {
	switch {
	case errors.Is(err, ErrExternalService), errors.Is(err, ErrTimeout):
		return runs.StatusDegraded
	default:
		return runs.StatusFailed
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
