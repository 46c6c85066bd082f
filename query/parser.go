package query

import (
	"log/slog"
	"strconv"
	"strings"
)

// Parser turns query strings into Query values.
//
// Malformed but tolerated input (an unparsable limit, an unknown filter
// operator, a repeated stage kind) does not fail parsing; it is reported
// as a warning on the parser's logger.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser that reports warnings to logger.
// A nil logger uses slog.Default().
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse parses a query using the default logger
func Parse(input string) (*Query, error) {
	return NewParser(nil).Parse(input)
}

// Parse parses: <table> [>> <stage>]...
func (p *Parser) Parse(input string) (*Query, error) {
	if err := ValidateQuery(input); err != nil {
		return nil, err
	}

	stages, err := SplitStages(input)
	if err != nil {
		return nil, err
	}
	if err := ValidateStages(stages); err != nil {
		return nil, err
	}

	q := &Query{Table: stages[0].Text}
	if err := ValidateTableName(q.Table); err != nil {
		return nil, err
	}

	// position of the stage that last set each kind, for override warnings
	seen := make(map[StageKind]int)

	for _, stage := range stages[1:] {
		words := strings.Fields(stage.Text)
		if len(words) == 0 {
			continue
		}

		kind := classifyStage(words[0])
		switch kind {
		case StageProjection:
			columns, err := parseColumns(stage.Text, words[0])
			if err != nil {
				return nil, err
			}
			q.Columns = columns

		case StageSort:
			if len(words) < 2 {
				p.logger.Warn("ignoring sort stage without a column", "stage", stage.Text)
				continue
			}
			if err := ValidateColumnName(words[1]); err != nil {
				return nil, err
			}
			q.SortColumn = words[1]
			q.SortDesc = len(words) >= 3 && strings.ToLower(words[2]) == "desc"
			if len(words) >= 3 && !q.SortDesc && strings.ToLower(words[2]) != "asc" {
				p.logger.Warn("ignoring unrecognized sort direction", "direction", words[2], "stage", stage.Text)
			}

		case StageLimit:
			if len(words) < 2 {
				p.logger.Warn("ignoring limit stage without a row count", "stage", stage.Text)
				continue
			}
			q.Limit = nil
			limit, err := strconv.ParseUint(words[1], 10, 0)
			if err != nil || limit > uint64(maxInt) {
				p.logger.Warn("ignoring invalid row limit", "limit", words[1], "stage", stage.Text)
			} else {
				n := int(limit)
				q.Limit = &n
			}

		case StageFilter:
			cond, err := ParseFilter(stage.Text)
			if err != nil {
				return nil, err
			}
			if cond.Operator == OpUnknown {
				p.logger.Warn("unrecognized filter operator never matches", "operator", cond.Token, "stage", stage.Text)
			}
			q.Filter = cond
		}

		if prev, ok := seen[kind]; ok {
			p.logger.Warn("stage overrides an earlier stage", "kind", kind.String(), "stage", stage.Index, "previous", prev)
		}
		seen[kind] = stage.Index
	}

	return q, nil
}

const maxInt = int(^uint(0) >> 1)

// parseColumns splits the text after the show keyword on commas
func parseColumns(stage, keyword string) ([]string, error) {
	rest := strings.TrimSpace(stage[len(keyword):])
	parts := strings.Split(rest, ",")

	columns := make([]string, len(parts))
	for i, part := range parts {
		columns[i] = strings.TrimSpace(part)
		if err := ValidateColumnName(columns[i]); err != nil {
			return nil, err
		}
	}
	return columns, nil
}
