// Package output renders query results.
//
// Currently supported formats:
//   - table: aligned text grid for terminals, with a row count footer
//   - csv: comma-separated values with header row
//   - json: JSON Lines, one object per data row
//
// Example usage:
//
//	formatter, err := output.New("table", os.Stdout, output.Options{Color: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
//
// The table formatter prints NoResultsMessage instead of an empty grid
// when the result has no data rows. The csv formatter always writes the
// header row; the json formatter writes nothing for an empty result.
package output
