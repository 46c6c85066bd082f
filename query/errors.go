package query

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned when no table reference can be derived from the input
	ErrEmptyQuery = errors.New("empty query")

	// ErrInvalidFilter is returned when a filter stage has fewer than three words
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrMissingFilterValue is returned when a filter stage has no literal after its operator
	ErrMissingFilterValue = errors.New("missing value in filter")

	// ErrColumnNotFound is returned when a stage references a column the table does not have
	ErrColumnNotFound = errors.New("column not found")

	// ErrResourceLoad is returned when the table loader fails
	ErrResourceLoad = errors.New("failed to load table")
)

// ColumnNotFoundError reports a missing column and the stage that referenced it
type ColumnNotFoundError struct {
	Column    string
	Stage     StageKind
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%v: %q (%s stage)", ErrColumnNotFound, e.Column, e.Stage)
}

func (e *ColumnNotFoundError) Unwrap() error {
	return ErrColumnNotFound
}

// LoadError wraps a table loader failure
type LoadError struct {
	Table string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrResourceLoad, e.Table, e.Err)
}

// Unwrap exposes both ErrResourceLoad and the loader error to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	return []error{ErrResourceLoad, e.Err}
}
