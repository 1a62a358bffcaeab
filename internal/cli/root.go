// Package cli provides the command-line interface for tabread.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tabread/internal/cli/commands"
	"github.com/leapstack-labs/tabread/internal/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var cfgFile string

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabread",
		Short: "tabread - load CSV data into typed tables",
		Long: `tabread loads tabular data from CSV files or text and normalizes it
into typed tables: each cell is classified as integer, real number, or
text, blank rows are dropped, and the table is named from a template.

Loaded tables can be rendered (text, markdown, csv, json, yaml) or stored
into SQLite, DuckDB, or PostgreSQL.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(commands.WithConfig(cmd.Context(), cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tabread.yaml)")
	rootCmd.PersistentFlags().StringP("delimiter", "d", ",", "Field delimiter (single character)")
	rootCmd.PersistentFlags().String("quote", `"`, "Field quote character (single character)")
	rootCmd.PersistentFlags().StringP("encoding", "e", "", "Source encoding label (default: autodetect)")
	rootCmd.PersistentFlags().StringSlice("headers", nil, "Explicit column names (default: first data row)")
	rootCmd.PersistentFlags().String("name-template", "", "Table name template (e.g. '%(filename)s')")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|csv|json|yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log load events to stderr")
	rootCmd.PersistentFlags().StringP("target", "t", "", "Sink type for store (sqlite|duckdb|postgres)")
	rootCmd.PersistentFlags().String("db-path", "", "Database file for embedded sinks")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "csv", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewLoadCommand())
	rootCmd.AddCommand(commands.NewStoreCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, GitCommit))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
