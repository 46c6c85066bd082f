package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/flexiql/query"
)

// ErrUnsupportedFormat is returned by New for unknown format names
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formats lists the accepted format names
var Formats = []string{"table", "csv", "json"}

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a query result in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the result in the formatter's specific format
	Format(result *query.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Options tunes formatter rendering. Only the table formatter uses them.
type Options struct {
	// Color enables ANSI colors for headers and notices
	Color bool

	// MaxWidth truncates cells wider than this many terminal columns (0 = unlimited)
	MaxWidth int
}

// New returns the formatter registered under name
func New(name string, w io.Writer, opts Options) (Formatter, error) {
	switch strings.ToLower(name) {
	case "table":
		return NewTableFormatter(w, opts), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w '%s' (supported: %s)", ErrUnsupportedFormat, name, strings.Join(Formats, ", "))
	}
}
