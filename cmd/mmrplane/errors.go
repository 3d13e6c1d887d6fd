package main

import (
	"errors"
	"fmt"

	"github.com/oxygene76/mmrplane/pkg/astronomy/plane"
	"github.com/oxygene76/mmrplane/pkg/astronomy/resonance"
)

// Exit codes for CLI commands.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2 // invalid flags or arguments
)

// ExitError carries the exit code a command failed with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(format string, args ...interface{}) *ExitError {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

var inputErrors = []error{
	resonance.ErrInvalidWindow,
	resonance.ErrInvalidSearchBounds,
	resonance.ErrShapeMismatch,
	resonance.ErrInvalidResonance,
	resonance.ErrInvalidTolerance,
	resonance.ErrInvalidPoint,
	plane.ErrTooFewBodies,
	plane.ErrInvalidPeriod,
	plane.ErrInvalidStarMass,
}

// GetExitCode extracts the exit code from an error. Rejected input maps to
// ExitUsage, anything else to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return ExitUsage
		}
	}
	return ExitFailure
}
