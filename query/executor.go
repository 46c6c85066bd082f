package query

import (
	"errors"
	"log/slog"

	"github.com/vegasq/flexiql/reader"
)

// TableLoader materializes a table reference into memory
type TableLoader interface {
	Load(ref string) (*reader.Table, error)
}

// Executor runs parsed queries against tables supplied by a TableLoader
type Executor struct {
	loader TableLoader
	logger *slog.Logger
}

// NewExecutor creates an executor. A nil logger uses slog.Default().
func NewExecutor(loader TableLoader, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{loader: loader, logger: logger}
}

// Run parses input and executes it
func (e *Executor) Run(input string) (*Result, error) {
	q, err := NewParser(e.logger).Parse(input)
	if err != nil {
		return nil, err
	}
	return e.Execute(q)
}

// Execute loads the query table and runs the pipeline over it
func (e *Executor) Execute(q *Query) (*Result, error) {
	if q == nil {
		return nil, errors.New("nil query")
	}

	table, err := e.loader.Load(q.Table)
	if err != nil {
		return nil, &LoadError{Table: q.Table, Err: err}
	}
	e.logger.Debug("table loaded", "table", q.Table, "columns", len(table.Headers), "rows", len(table.Rows))

	return e.ExecuteTable(q, table)
}

// ExecuteTable runs the pipeline over an already loaded table.
//
// Stages run in a fixed order: filter, sort, limit, projection. Each stage
// produces a new row slice; table is never modified.
func (e *Executor) ExecuteTable(q *Query, table *reader.Table) (*Result, error) {
	index := table.Index()
	rows := append([][]string(nil), table.Rows...)

	var err error
	if q.Filter != nil {
		rows, err = ApplyFilter(rows, index, q.Filter)
		if err != nil {
			return nil, withAvailable(err, table.Headers)
		}
		e.logger.Debug("filter applied", "column", q.Filter.Column, "operator", q.Filter.Operator.String(), "rows", len(rows))
	}

	if q.SortColumn != "" {
		rows, err = ApplySort(rows, index, q.SortColumn, q.SortDesc)
		if err != nil {
			return nil, withAvailable(err, table.Headers)
		}
	}

	if q.Limit != nil {
		rows = ApplyLimit(rows, *q.Limit)
	}

	if q.Columns == nil {
		return &Result{
			Headers: append([]string(nil), table.Headers...),
			Rows:    rows,
		}, nil
	}

	rows, err = ApplyProjection(rows, index, q.Columns)
	if err != nil {
		return nil, withAvailable(err, table.Headers)
	}
	return &Result{
		Headers: append([]string(nil), q.Columns...),
		Rows:    rows,
	}, nil
}

// ApplyLimit keeps at most limit rows from the front of rows
func ApplyLimit(rows [][]string, limit int) [][]string {
	if limit <= 0 {
		return [][]string{}
	}
	if limit >= len(rows) {
		return rows
	}
	return rows[:limit]
}

// ApplyProjection builds rows holding only columns, in the given order.
// A column may appear more than once.
func ApplyProjection(rows [][]string, index map[string]int, columns []string) ([][]string, error) {
	positions := make([]int, len(columns))
	for i, col := range columns {
		pos, ok := index[col]
		if !ok {
			return nil, &ColumnNotFoundError{Column: col, Stage: StageProjection}
		}
		positions[i] = pos
	}

	projected := make([][]string, len(rows))
	for i, row := range rows {
		out := make([]string, len(positions))
		for j, pos := range positions {
			out[j] = cellAt(row, pos)
		}
		projected[i] = out
	}

	return projected, nil
}

// withAvailable attaches the table columns to a ColumnNotFoundError
func withAvailable(err error, headers []string) error {
	var colErr *ColumnNotFoundError
	if errors.As(err, &colErr) {
		colErr.Available = append([]string(nil), headers...)
	}
	return err
}
