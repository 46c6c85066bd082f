package query

import "fmt"

// StageDelimiter separates pipeline stages in a query string.
const StageDelimiter = ">>"

// StageKind identifies the role of a pipeline stage
type StageKind int

const (
	StageTable StageKind = iota
	StageFilter
	StageProjection
	StageSort
	StageLimit
)

// String returns the stage kind name used in diagnostics
func (k StageKind) String() string {
	switch k {
	case StageTable:
		return "table"
	case StageFilter:
		return "filter"
	case StageProjection:
		return "projection"
	case StageSort:
		return "sort"
	case StageLimit:
		return "limit"
	default:
		return fmt.Sprintf("StageKind(%d)", int(k))
	}
}

// Operator is the comparison applied by a filter condition
type Operator int

const (
	// OpUnknown is an operator token that matched no known synonym.
	// Conditions using it never match.
	OpUnknown Operator = iota
	OpEquals
	OpGreaterThan
	OpLessThan
	OpContains
)

// String returns the canonical keyword for the operator
func (o Operator) String() string {
	switch o {
	case OpEquals:
		return "equals"
	case OpGreaterThan:
		return "greater than"
	case OpLessThan:
		return "less than"
	case OpContains:
		return "contains"
	default:
		return "unknown"
	}
}

// Stage is one delimiter-separated segment of a query
type Stage struct {
	Index int
	Text  string
}

// Condition is a single column-operator-literal predicate
type Condition struct {
	Column   string
	Operator Operator
	// Token is the operator as written in the query, e.g. "greater than" or "==".
	Token string
	Value string
}

// Match reports whether a cell value satisfies the condition
func (c *Condition) Match(cell string) bool {
	return Evaluate(cell, c.Operator, c.Value)
}

// Query represents a parsed pipeline query.
//
// Columns, SortColumn and Limit are optional: a nil Columns slice means no
// projection, an empty SortColumn means no sort and a nil Limit means no
// row limit.
type Query struct {
	Table      string
	Filter     *Condition
	Columns    []string
	SortColumn string
	SortDesc   bool
	Limit      *int
}

// Result is the output of an executed query
type Result struct {
	Headers []string
	Rows    [][]string
}

// Len returns the number of data rows
func (r *Result) Len() int {
	return len(r.Rows)
}

// Records returns the header row followed by the data rows
func (r *Result) Records() [][]string {
	records := make([][]string, 0, len(r.Rows)+1)
	records = append(records, r.Headers)
	records = append(records, r.Rows...)
	return records
}
