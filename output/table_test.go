package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vegasq/flexiql/query"
)

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf, Options{})

	if err := formatter.Format(peopleResult()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"name", "age", "Ann", "30", "Bob", "25", "(2 rows)"} {
		if !strings.Contains(output, want) {
			t.Errorf("Format() output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "\x1b[") {
		t.Errorf("Format() output contains escape codes with color disabled:\n%s", output)
	}

	// header, separator, two rows
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 4 {
		t.Fatalf("Format() produced %d lines, want at least 4:\n%s", len(lines), output)
	}
	if !strings.Contains(lines[1], "-") {
		t.Errorf("second line %q should be the header separator", lines[1])
	}
	if strings.Index(output, "Ann") > strings.Index(output, "Bob") {
		t.Error("rows should keep result order")
	}
}

func TestTableFormatter_SingleRow(t *testing.T) {
	var buf bytes.Buffer
	result := &query.Result{Headers: []string{"name"}, Rows: [][]string{{"Ann"}}}

	if err := NewTableFormatter(&buf, Options{}).Format(result); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "(1 row)") {
		t.Errorf("Format() output missing singular row count:\n%s", buf.String())
	}
}

func TestTableFormatter_NoResults(t *testing.T) {
	tests := []struct {
		name   string
		result *query.Result
	}{
		{name: "headers without rows", result: emptyResult()},
		{name: "nothing at all", result: &query.Result{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTableFormatter(&buf, Options{}).Format(tt.result); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got := buf.String(); got != NoResultsMessage+"\n" {
				t.Errorf("Format() = %q, want %q", got, NoResultsMessage+"\n")
			}
		})
	}
}

func TestTableFormatter_Color(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf, Options{Color: true}).Format(peopleResult()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Format() output has no escape codes with color enabled:\n%s", buf.String())
	}
}

func TestTableFormatter_MaxWidth(t *testing.T) {
	result := &query.Result{
		Headers: []string{"description"},
		Rows:    [][]string{{"a rather long sentence"}},
	}

	var buf bytes.Buffer
	if err := NewTableFormatter(&buf, Options{MaxWidth: 8}).Format(result); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "a rather long sentence") {
		t.Errorf("cell was not truncated:\n%s", output)
	}
	if !strings.Contains(output, "a rathe…") {
		t.Errorf("Format() output missing truncated cell:\n%s", output)
	}
	if !strings.Contains(output, "descrip…") {
		t.Errorf("Format() output missing truncated header:\n%s", output)
	}
}

func TestTableFormatter_Truncate(t *testing.T) {
	tests := []struct {
		name     string
		maxWidth int
		in       string
		want     string
	}{
		{"unlimited", 0, "abcdefghij", "abcdefghij"},
		{"fits", 10, "abcdefghij", "abcdefghij"},
		{"cut", 5, "abcdefghij", "abcd…"},
		{"negative is unlimited", -1, "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTableFormatter(nil, Options{MaxWidth: tt.maxWidth})
			if got := f.truncate(tt.in); got != tt.want {
				t.Errorf("truncate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
