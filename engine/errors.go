package engine

import (
	"fmt"
	"strings"
)

// EstimationError means the input carried no measurement the estimator can
// anchor on.
type EstimationError struct {
	Reason string
}

func (e *EstimationError) Error() string {
	return fmt.Sprintf("measurement estimation failed: %s", e.Reason)
}

// MaterialContextError means the event context names a season without a
// material palette.
type MaterialContextError struct {
	Season string
}

func (e *MaterialContextError) Error() string {
	return fmt.Sprintf("no material palette for season %q", e.Season)
}

// GenerationError is returned when the assembler exhausts its retries with
// required components still missing.
type GenerationError struct {
	Missing []string
	Retries int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("outfit generation failed after %d retries, missing: %s",
		e.Retries, strings.Join(e.Missing, ", "))
}
