package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vegasq/flexiql/internal/config"
	"github.com/vegasq/flexiql/internal/logger"
	"github.com/vegasq/flexiql/output"
	"github.com/vegasq/flexiql/query"
	"github.com/vegasq/flexiql/reader"
)

const queryFormat = `<table> [>> <column> <operator> <value>] [>> show <col>,...] [>> sort <col> [desc]] [>> take <n>]`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printHint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   `flexiql [flags] "<query>"`,
		Short: "Query CSV and Parquet tables with a small pipeline language",
		Long: `flexiql runs a pipeline query over a single table.

Query format:
  ` + queryFormat + `

Operators: equals, contains, greater than, less than, =, ==, >, <

The table reference is resolved inside the data directory by trying the
extensions ` + strings.Join(reader.Extensions, ", ") + ` in order.`,
		Example: `  flexiql "employees >> salary greater than 50000 >> show name, salary"
  flexiql -d data "employees >> sort age desc >> take 5"
  flexiql -f csv "employees >> name contains an"
  FLEXIQL_DATA_DIR=data flexiql "employees >> department equals sales"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args[0])
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

// run executes one query and writes the formatted result to stdout
func run(stdout, stderr io.Writer, cfg *config.Config, input string) error {
	log, err := logger.New(stderr, logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}

	formatter, err := output.New(cfg.Format, stdout, output.Options{
		Color:    !cfg.NoColor && !color.NoColor,
		MaxWidth: cfg.MaxWidth,
	})
	if err != nil {
		return err
	}

	exec := query.NewExecutor(reader.DirLoader{Dir: cfg.DataDir}, log)
	result, err := exec.Run(input)
	if err != nil {
		return err
	}

	log.Debug("query executed", "rows", result.Len())

	if err := formatter.Format(result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

// printHint adds a follow-up line for errors the user can act on
func printHint(w io.Writer, err error) {
	var colErr *query.ColumnNotFoundError

	switch {
	case errors.As(err, &colErr):
		if len(colErr.Available) > 0 {
			fmt.Fprintf(w, "\nAvailable columns: %s\n", strings.Join(colErr.Available, ", "))
		}
	case errors.Is(err, reader.ErrTableNotFound), errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(w, "Please check the table name and the data directory (--data-dir).\n")
	case errors.Is(err, query.ErrEmptyQuery),
		errors.Is(err, query.ErrInvalidFilter),
		errors.Is(err, query.ErrMissingFilterValue):
		fmt.Fprintf(w, "\nQuery format: %s\n", queryFormat)
		fmt.Fprintf(w, "Example: employees >> age greater than 30 >> show name\n")
	}
}
