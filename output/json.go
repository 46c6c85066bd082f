package output

import (
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/flexiql/query"
)

// JSONFormatter outputs results as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per data row, keyed by header name.
// When a header name repeats, the last cell wins.
func (j *JSONFormatter) Format(result *query.Result) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range result.Rows {
		obj := make(map[string]string, len(result.Headers))
		for i, name := range result.Headers {
			if i < len(row) {
				obj[name] = row[i]
			} else {
				obj[name] = ""
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
