package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tabread/internal/cli/output"
)

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>... | -",
		Short: "Load CSV sources and render the typed tables",
		Long: `Load one or more CSV files (or stdin with "-") into typed tables and
render them. Cells are classified as integer, real number, or text; blank
rows are dropped; the table name is resolved from the name template.

Output adapts to environment:
  - Terminal: styled table output
  - Piped/Scripted: markdown

Use --output to override: auto, text, markdown, csv, json, yaml`,
		Example: `  # Load a file and render it
  tabread load data.csv

  # Load several files as JSON
  tabread load a.csv b.csv --output json

  # Load from stdin with an explicit delimiter
  cat data.tsv | tabread load - --delimiter $'\t'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, args)
		},
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg := getConfig(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))

	tables, err := loadAll(cmd.Context(), cmd, cfg, args)
	if err != nil {
		return err
	}

	for _, t := range tables {
		if err := r.Table(t); err != nil {
			return err
		}
	}
	return nil
}
