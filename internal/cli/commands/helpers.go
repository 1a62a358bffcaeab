package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/tabread/internal/config"
	"github.com/leapstack-labs/tabread/internal/namegen"
	"github.com/leapstack-labs/tabread/pkg/loader"
	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// newLoader builds a CSV loader for one source argument. The argument "-"
// reads stdin as an in-memory text source.
func newLoader(cmd *cobra.Command, cfg *config.Config, counter *namegen.Counter, logger *slog.Logger, arg string) (*loader.CSVLoader, error) {
	var l *loader.CSVLoader
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		l = loader.NewCSVTextLoader(string(data))
	} else {
		l = loader.NewCSVFileLoader(arg)
	}

	l.Headers = cfg.Headers
	l.Delimiter = cfg.Delimiter
	l.Quote = cfg.Quote
	l.Encoding = cfg.Encoding
	if cfg.NameTemplate != "" {
		l.NameTemplate = cfg.NameTemplate
	}
	l.Logger = logger
	l.Counter = counter
	return l, nil
}

// loadAll loads every source argument. Sources load concurrently; results
// keep argument order. All loaders share one id counter so table-name
// sequence ids are process-wide, as templates expect.
func loadAll(ctx context.Context, cmd *cobra.Command, cfg *config.Config, args []string) ([]*tabledata.Table, error) {
	counter := namegen.NewCounter()
	logger := newLogger(cmd, cfg)

	loaders := make([]*loader.CSVLoader, len(args))
	for i, arg := range args {
		l, err := newLoader(cmd, cfg, counter, logger, arg)
		if err != nil {
			return nil, err
		}
		loaders[i] = l
	}

	tables := make([]*tabledata.Table, len(loaders))
	g, gctx := errgroup.WithContext(ctx)
	for i, l := range loaders {
		g.Go(func() error {
			t, err := l.Load(gctx)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
