package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/flexiql/query"
)

// NoResultsMessage is printed instead of a table when a result has no data rows
const NoResultsMessage = "No results found."

// TableFormatter renders results as an aligned text grid
type TableFormatter struct {
	writer io.Writer
	opts   Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer, opts Options) *TableFormatter {
	return &TableFormatter{writer: w, opts: opts}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the header, a separator line, the data rows and a row count footer
func (f *TableFormatter) Format(result *query.Result) error {
	if result.Len() == 0 {
		_, err := fmt.Fprintln(f.writer, f.paint(NoResultsMessage, color.FgYellow))
		return err
	}

	table := tablewriter.NewWriter(f.writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetColumnSeparator("|")
	table.SetCenterSeparator("|")
	table.SetRowSeparator("-")

	headers := make([]string, len(result.Headers))
	for i, h := range result.Headers {
		headers[i] = f.paint(f.truncate(h), color.FgCyan, color.Bold)
	}
	table.SetHeader(headers)

	for _, row := range result.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = f.truncate(cell)
		}
		table.Append(cells)
	}
	table.Render()

	_, err := fmt.Fprintf(f.writer, "\n%s\n", f.paint(rowCount(result.Len()), color.Faint))
	return err
}

func (f *TableFormatter) truncate(s string) string {
	if f.opts.MaxWidth <= 0 {
		return s
	}
	return runewidth.Truncate(s, f.opts.MaxWidth, "…")
}

func (f *TableFormatter) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if f.opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func rowCount(n int) string {
	if n == 1 {
		return "(1 row)"
	}
	return fmt.Sprintf("(%d rows)", n)
}
