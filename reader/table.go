package reader

import (
	"errors"
	"fmt"
)

var (
	// ErrTableNotFound is returned when a table reference resolves to no file
	ErrTableNotFound = errors.New("table not found")

	// ErrMalformedTable is returned when a file cannot be turned into a rectangular table
	ErrMalformedTable = errors.New("malformed table")

	// ErrUnsupportedFormat is returned for file extensions the reader cannot decode
	ErrUnsupportedFormat = errors.New("unsupported table format")
)

// Table is a fully materialized dataset.
//
// Headers are unique and every row carries exactly len(Headers) cells,
// aligned positionally to Headers.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Index returns a header name to column position mapping.
func (t *Table) Index() map[string]int {
	index := make(map[string]int, len(t.Headers))
	for i, name := range t.Headers {
		index[name] = i
	}
	return index
}

// Validate checks the table invariants: unique header names and equal-width rows.
func (t *Table) Validate() error {
	seen := make(map[string]bool, len(t.Headers))
	for _, name := range t.Headers {
		if seen[name] {
			return fmt.Errorf("%w: duplicate column %q", ErrMalformedTable, name)
		}
		seen[name] = true
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedTable, i+1, len(row), len(t.Headers))
		}
	}

	return nil
}
