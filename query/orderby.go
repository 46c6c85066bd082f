package query

import "sort"

// ApplySort orders rows by the cells of column.
//
// The sort is stable. Descending order reverses the comparison, not the
// result, so rows with equal keys keep their original relative order in
// both directions.
func ApplySort(rows [][]string, index map[string]int, column string, desc bool) ([][]string, error) {
	col, ok := index[column]
	if !ok {
		return nil, &ColumnNotFoundError{Column: column, Stage: StageSort}
	}

	// Create a copy to avoid modifying the original slice
	sorted := make([][]string, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compareCells(cellAt(sorted[i], col), cellAt(sorted[j], col))
		if desc {
			return c > 0
		}
		return c < 0
	})

	return sorted, nil
}

// cellAt returns the cell at col, or "" if the row is too short
func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
