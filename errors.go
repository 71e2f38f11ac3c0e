package pydocstring

import (
	"fmt"

	"github.com/xonecas/pydocstring/internal/locate"
)

// InvalidFormatterError is returned when the requested style is not
// registered. No parsing has happened when it is returned.
type InvalidFormatterError struct {
	Style string
	Err   error
}

func (e *InvalidFormatterError) Error() string {
	return fmt.Sprintf("invalid formatter %q", e.Style)
}

func (e *InvalidFormatterError) Unwrap() error { return e.Err }

// FailedToGenerateError is returned when no docstring can be produced for the
// given position: the position lies outside the source, or no declaration
// encloses it.
type FailedToGenerateError struct {
	Position locate.Position
	Err      error
}

func (e *FailedToGenerateError) Error() string {
	return fmt.Sprintf("failed to generate docstring at %s: %v", e.Position, e.Err)
}

func (e *FailedToGenerateError) Unwrap() error { return e.Err }

// ExtractionError is returned when a located declaration does not have the
// shape its kind implies.
type ExtractionError struct {
	Kind locate.Kind
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s facts: %v", e.Kind, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
