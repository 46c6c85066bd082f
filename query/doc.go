// Package query provides parsing and execution of flexiql pipeline queries.
//
// A query is a table reference followed by stages separated by ">>":
//
//	employees >> salary greater than 50000 >> sort salary desc >> take 5 >> show name, salary
//
// Supported stages:
//   - show <col>[,<col>...]   column projection (order and duplicates preserved)
//   - sort <col> [desc]       stable sort, numeric when both cells are numbers
//   - take <n> / limit <n>    keep the first n rows
//   - <col> <op> <value...>   filter, where <op> is one of equals, contains,
//     greater than, less than, =, ==, >, <
//
// Stages may appear in any order; they always run as filter, sort, limit,
// projection. When a stage kind is repeated, the last one wins.
//
// # Basic Usage
//
// Parse and execute a query against tables in a directory:
//
//	exec := query.NewExecutor(reader.DirLoader{Dir: "data"}, nil)
//	result, err := exec.Run("employees >> age greater than 30 >> show name")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Headers, result.Rows)
//
// Parsing and execution can also be separated:
//
//	q, err := query.Parse("employees >> sort age desc >> take 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := exec.Execute(q)
//
// # Filter Semantics
//
// equals and contains compare case-insensitively. greater than and less
// than compare numerically when both the cell and the literal parse as
// numbers and fall back to case-sensitive string comparison otherwise.
// An operator word outside the list above is accepted but never matches;
// the parser logs a warning for it.
//
// # Errors
//
// Parse errors wrap ErrEmptyQuery, ErrInvalidFilter or ErrMissingFilterValue.
// Execution errors are *ColumnNotFoundError (matching ErrColumnNotFound) and
// *LoadError (matching ErrResourceLoad and the loader's own error):
//
//	var colErr *query.ColumnNotFoundError
//	if errors.As(err, &colErr) {
//	    fmt.Printf("no column %q, have %v\n", colErr.Column, colErr.Available)
//	}
package query
