package query

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Evaluate reports whether a cell value satisfies operator against literal.
//
// Equality and containment ignore case. Ordering comparisons are numeric
// when both sides parse as numbers and byte-wise string comparisons
// otherwise. OpUnknown never matches.
func Evaluate(cell string, operator Operator, literal string) bool {
	switch operator {
	case OpEquals:
		return strings.ToLower(cell) == strings.ToLower(literal)
	case OpGreaterThan:
		return compareCells(cell, literal) > 0
	case OpLessThan:
		return compareCells(cell, literal) < 0
	case OpContains:
		return strings.Contains(strings.ToLower(cell), strings.ToLower(literal))
	default:
		return false
	}
}

// compareCells compares two cells and returns:
// -1 if a < b
//
//	0 if a == b
//
// +1 if a > b
func compareCells(a, b string) int {
	aNum, aIsNum := parseNumber(a)
	bNum, bIsNum := parseNumber(b)
	if aIsNum && bIsNum {
		if aNum < bNum {
			return -1
		}
		if aNum > bNum {
			return 1
		}
		return 0
	}

	return strings.Compare(a, b)
}

// parseNumber parses a decimal floating point cell.
//
// Hexadecimal forms and NaN are not numbers here; overflowing values
// parse to infinity.
func parseNumber(s string) (float64, bool) {
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, false
		}
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ApplyFilter keeps the rows whose cell in the condition column matches.
//
// Row order is preserved. Rows too short to have the column never match.
func ApplyFilter(rows [][]string, index map[string]int, cond *Condition) ([][]string, error) {
	if cond == nil {
		return rows, nil
	}

	col, ok := index[cond.Column]
	if !ok {
		return nil, &ColumnNotFoundError{Column: cond.Column, Stage: StageFilter}
	}

	filtered := make([][]string, 0)
	for _, row := range rows {
		if col < len(row) && cond.Match(row[col]) {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}
