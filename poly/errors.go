package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrNonMonotoneStroke indicates a stroke whose points do not satisfy
	// points[i].Y <= points[i+1].Y. Callers must split at direction reversals.
	ErrNonMonotoneStroke = errors.New("poly: stroke is not y-monotone")

	// ErrDegenerateGridSize indicates a non-positive GridSize.
	ErrDegenerateGridSize = errors.New("poly: grid size must be positive")

	// ErrTooManyPolygons indicates more input polygons than the winding
	// bitmap can track (64) were passed to a set-boolean rule.
	ErrTooManyPolygons = errors.New("poly: more than 64 input polygons for a set-boolean rule")

	// ErrShortStroke indicates a stroke with fewer than two points.
	ErrShortStroke = errors.New("poly: stroke must have at least two points")
)

// FatalError reports a violated internal invariant. The engine has already
// written a PostScript dump of the offending polygon to DumpPath before
// returning this error.
type FatalError struct {
	Message  string
	DumpPath string
}

func (e *FatalError) Error() string {
	if e.DumpPath == "" {
		return fmt.Sprintf("poly: fatal: %s", e.Message)
	}
	return fmt.Sprintf("poly: fatal: %s (dump: %s)", e.Message, e.DumpPath)
}

// fatalPanic is raised by fatalf via panic and recovered at the top of Process.
type fatalPanic struct {
	err *FatalError
}
