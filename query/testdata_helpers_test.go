package query

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/flexiql/reader"
)

// mapLoader serves tables from memory, keyed by reference
type mapLoader map[string]*reader.Table

func (m mapLoader) Load(ref string) (*reader.Table, error) {
	table, ok := m[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %q", reader.ErrTableNotFound, ref)
	}
	return table, nil
}

// peopleTable returns the two-row table used throughout the examples
func peopleTable() *reader.Table {
	return &reader.Table{
		Headers: []string{"name", "age"},
		Rows: [][]string{
			{"Ann", "30"},
			{"Bob", "25"},
		},
	}
}

// employeesTable returns a table with ties, mixed case and non-numeric cells
func employeesTable() *reader.Table {
	return &reader.Table{
		Headers: []string{"id", "name", "department", "salary", "city"},
		Rows: [][]string{
			{"1", "Alice", "Engineering", "85000", "Berlin"},
			{"2", "bob", "Sales", "52000", "Paris"},
			{"3", "Charlie", "Engineering", "85000", "New York"},
			{"4", "Diana", "Marketing", "61000", "berlin"},
			{"5", "Eve", "Sales", "9000", "Oslo"},
			{"6", "Frank", "engineering", "120000", "Paris"},
		},
	}
}

// newTestExecutor returns an executor over the example tables
func newTestExecutor() *Executor {
	return NewExecutor(mapLoader{
		"t":         peopleTable(),
		"employees": employeesTable(),
	}, nil)
}

// writeCSVFile writes content to dir/name and returns the path
func writeCSVFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file %s: %v", name, err)
	}
	return path
}

// EmployeeRow defines the parquet fixture layout
type EmployeeRow struct {
	Name   string  `parquet:"name"`
	Age    int64   `parquet:"age"`
	Salary float64 `parquet:"salary"`
	Active bool    `parquet:"active"`
}

// createEmployeeParquetFile writes rows to dir/name with parquet-go
func createEmployeeParquetFile(t *testing.T, dir, name string, rows []EmployeeRow) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer func() { _ = f.Close() }()

	writer := parquet.NewGenericWriter[EmployeeRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	return path
}

// column extracts one column of a result by header name
func column(t *testing.T, result *Result, name string) []string {
	t.Helper()
	pos := -1
	for i, h := range result.Headers {
		if h == name {
			pos = i
			break
		}
	}
	if pos < 0 {
		t.Fatalf("result has no column %q (headers %v)", name, result.Headers)
	}

	values := make([]string, len(result.Rows))
	for i, row := range result.Rows {
		values[i] = row[pos]
	}
	return values
}
