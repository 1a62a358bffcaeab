package sink

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

func init() {
	Register("duckdb", func(logger *slog.Logger) Sink {
		return &DuckDBSink{sqlSink{logger: logger, dialect: duckdbDialect}}
	})
}

var duckdbDialect = dialect{
	typeName: func(k tabledata.Kind) string {
		switch k {
		case tabledata.KindInteger:
			return "BIGINT"
		case tabledata.KindReal:
			return "DOUBLE"
		default:
			return "VARCHAR"
		}
	},
	placeholder: questionPlaceholder,
}

// DuckDBSink stores tables in a DuckDB database file.
type DuckDBSink struct {
	sqlSink
}

// Connect opens the DuckDB database at cfg.Path (empty for in-memory).
func (s *DuckDBSink) Connect(ctx context.Context, cfg Config) error {
	path := cfg.Path
	if path == ":memory:" {
		path = ""
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("open duckdb database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping duckdb database: %w", err)
	}

	s.db = db
	s.logger.Debug("connected duckdb sink", "path", cfg.Path)
	return nil
}

var _ Sink = (*DuckDBSink)(nil)
