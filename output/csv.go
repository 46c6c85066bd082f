package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vegasq/flexiql/query"
)

// CSVFormatter outputs results as CSV with a header row
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header row followed by the data rows.
// The header is written even when there are no data rows.
func (c *CSVFormatter) Format(result *query.Result) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(sanitizeRecord(result.Headers)); err != nil {
		return err
	}

	for _, row := range result.Rows {
		if err := csvWriter.Write(sanitizeRecord(row)); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

func sanitizeRecord(record []string) []string {
	out := make([]string, len(record))
	for i, cell := range record {
		out[i] = sanitizeCell(cell)
	}
	return out
}

// sanitizeCell guards against CSV injection by prefixing characters
// that could trigger formula execution in spreadsheet applications
func sanitizeCell(val string) string {
	if len(val) == 0 {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		// Negative numbers are data, not formulas
		if val[0] == '-' && isNumeric(val) {
			return val
		}
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
