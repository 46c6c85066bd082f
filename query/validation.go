package query

import (
	"errors"
	"fmt"
)

// Validation constants to prevent resource exhaustion
const (
	// MaxQueryLength is the maximum allowed query string length (1MB)
	MaxQueryLength = 1024 * 1024

	// MaxStages is the maximum number of stages in a query
	MaxStages = 1000

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256

	// MaxTableNameLength is the maximum length for a table reference
	MaxTableNameLength = 4096 // Allow long file paths
)

var (
	// ErrQueryTooLong is returned when query exceeds MaxQueryLength
	ErrQueryTooLong = errors.New("query too long")

	// ErrTooManyStages is returned when query has more than MaxStages stages
	ErrTooManyStages = errors.New("too many stages in query")

	// ErrColumnNameTooLong is returned when column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")

	// ErrTableNameTooLong is returned when table reference is too long
	ErrTableNameTooLong = errors.New("table name too long")
)

// ValidateQuery checks the raw query length
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(query), MaxQueryLength)
	}
	return nil
}

// ValidateStages checks the stage count
func ValidateStages(stages []Stage) error {
	if len(stages) > MaxStages {
		return fmt.Errorf("%w: %d stages (max %d)", ErrTooManyStages, len(stages), MaxStages)
	}
	return nil
}

// ValidateTableName validates table reference length
func ValidateTableName(name string) error {
	if len(name) > MaxTableNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrTableNameTooLong, len(name), MaxTableNameLength)
	}
	return nil
}

// ValidateColumnName validates column name length
func ValidateColumnName(name string) error {
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}
