package query

import (
	"fmt"
	"strings"
)

// operatorSynonyms maps single-word operator tokens to operators.
// The bare words "greater" and "less" are accepted without "than".
var operatorSynonyms = map[string]Operator{
	"equals":   OpEquals,
	"=":        OpEquals,
	"==":       OpEquals,
	"greater":  OpGreaterThan,
	">":        OpGreaterThan,
	"less":     OpLessThan,
	"<":        OpLessThan,
	"contains": OpContains,
}

// LookupOperator resolves a single operator token. Matching is case-sensitive;
// unrecognized tokens yield OpUnknown.
func LookupOperator(token string) Operator {
	if op, ok := operatorSynonyms[token]; ok {
		return op
	}
	return OpUnknown
}

// ParseFilter parses a filter stage: <column> <operator words> <value...>.
//
// Recognized operators are "equals", "contains", "greater than" and
// "less than" together with the symbols =, ==, > and <. Any other operator
// word is kept with OpUnknown. The value is the rest of the stage with
// runs of whitespace collapsed to single spaces.
func ParseFilter(stage string) (*Condition, error) {
	words := strings.Fields(stage)
	if len(words) < 3 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, stage)
	}

	cond := &Condition{Column: words[0]}
	if err := ValidateColumnName(cond.Column); err != nil {
		return nil, err
	}

	valueStart := 2
	switch {
	case len(words) >= 4 && words[1] == "greater" && words[2] == "than":
		cond.Operator = OpGreaterThan
		cond.Token = "greater than"
		valueStart = 3
	case len(words) >= 4 && words[1] == "less" && words[2] == "than":
		cond.Operator = OpLessThan
		cond.Token = "less than"
		valueStart = 3
	default:
		cond.Operator = LookupOperator(words[1])
		cond.Token = words[1]
	}

	if len(words) <= valueStart {
		return nil, fmt.Errorf("%w: %q", ErrMissingFilterValue, stage)
	}
	cond.Value = strings.Join(words[valueStart:], " ")

	return cond, nil
}
