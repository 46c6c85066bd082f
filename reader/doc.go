// Package reader loads tabular datasets into memory for the query engine.
//
// A dataset is materialized as a Table: an ordered list of unique header
// names and an ordered list of rows, each row holding exactly one string
// cell per header. The package knows how to read:
//
//   - CSV files (.csv)
//   - Compressed CSV files (.csv.gz, .csv.zst, .csv.lz4, .csv.br)
//   - Apache Parquet files (.parquet)
//
// # Resolving Table References
//
// Queries name tables without an extension. DirLoader maps such a reference
// onto a file inside a data directory by probing the supported extensions
// in order:
//
//	loader := reader.DirLoader{Dir: "data"}
//	table, err := loader.Load("employees") // data/employees.csv, data/employees.csv.gz, ...
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A reference that already carries a supported extension is used as-is:
//
//	table, err := loader.Load("archive/2024.parquet")
//
// # Reading Files Directly
//
// ReadFile dispatches on the file extension:
//
//	table, err := reader.ReadFile("employees.csv.zst")
//
// # Cell Values
//
// CSV cells are kept verbatim. Parquet values are converted to strings:
// integers in decimal, floats in their shortest representation, booleans
// as true/false, byte arrays as text and timestamps in RFC 3339. Null values
// become empty strings. Nested (group) columns are flattened using dot
// notation, e.g. "address.city".
//
// # Errors
//
// Missing tables are reported with ErrTableNotFound, structurally invalid
// files (no header, ragged rows, duplicate header names) with
// ErrMalformedTable, and unknown extensions with ErrUnsupportedFormat.
// File system errors are wrapped and can be inspected with
// errors.Is(err, fs.ErrNotExist).
package reader
