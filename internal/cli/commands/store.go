package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tabread/internal/cli/output"
	"github.com/leapstack-labs/tabread/internal/sink"
)

// NewStoreCommand creates the store command.
func NewStoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "store <file>... | -",
		Short: "Load CSV sources and store the tables into a database",
		Long: `Load one or more CSV sources and persist each resulting table into the
configured sink. Column types are derived from the loaded cell types.

Available sinks: ` + fmt.Sprint(sink.List()),
		Example: `  # Store into the default SQLite database (tabread.db)
  tabread store data.csv

  # Store into DuckDB
  tabread store data.csv --target duckdb --db-path tables.duckdb

  # Store into PostgreSQL (connection settings from tabread.yaml)
  tabread store data.csv --target postgres`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(cmd, args)
		},
	}
}

func runStore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfig(ctx)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))
	logger := newLogger(cmd, cfg)

	tables, err := loadAll(ctx, cmd, cfg, args)
	if err != nil {
		return err
	}

	sinkCfg := sink.Config{
		Type:     cfg.Sink.Type,
		Path:     cfg.Sink.Path,
		Host:     cfg.Sink.Host,
		Port:     cfg.Sink.Port,
		Database: cfg.Sink.Database,
		Username: cfg.Sink.Username,
		Password: cfg.Sink.Password,
	}
	s, err := sink.New(sinkCfg, logger)
	if err != nil {
		return err
	}
	if err := s.Connect(ctx, sinkCfg); err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	rows := 0
	for _, t := range tables {
		if err := s.CreateTable(ctx, t); err != nil {
			return fmt.Errorf("storing table %q: %w", t.Name, err)
		}
		rows += t.NumRows()
	}

	r.Println(fmt.Sprintf("Stored %d tables (%d rows) into %s", len(tables), rows, cfg.Sink.Type))
	return nil
}
