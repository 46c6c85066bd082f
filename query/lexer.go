package query

import (
	"fmt"
	"strings"
)

// SplitStages splits a query on StageDelimiter and trims every stage.
//
// The first stage is the table reference and must not be empty. Later
// stages may be empty; the parser skips them.
func SplitStages(input string) ([]Stage, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyQuery
	}

	parts := strings.Split(input, StageDelimiter)
	stages := make([]Stage, len(parts))
	for i, part := range parts {
		stages[i] = Stage{Index: i, Text: strings.TrimSpace(part)}
	}

	if stages[0].Text == "" {
		return nil, fmt.Errorf("%w: missing table reference", ErrEmptyQuery)
	}

	return stages, nil
}

// classifyStage determines the stage kind from the first word of a stage
func classifyStage(keyword string) StageKind {
	switch strings.ToLower(keyword) {
	case "show":
		return StageProjection
	case "sort":
		return StageSort
	case "take", "limit":
		return StageLimit
	default:
		return StageFilter
	}
}
