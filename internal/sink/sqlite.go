package sink

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

func init() {
	Register("sqlite", func(logger *slog.Logger) Sink {
		return &SQLiteSink{sqlSink{logger: logger, dialect: sqliteDialect}}
	})
}

var sqliteDialect = dialect{
	typeName: func(k tabledata.Kind) string {
		switch k {
		case tabledata.KindInteger:
			return "INTEGER"
		case tabledata.KindReal:
			return "REAL"
		default:
			return "TEXT"
		}
	},
	placeholder: questionPlaceholder,
}

// SQLiteSink stores tables in an SQLite database file.
type SQLiteSink struct {
	sqlSink
}

// Connect opens the SQLite database at cfg.Path (":memory:" or empty for
// in-memory).
func (s *SQLiteSink) Connect(ctx context.Context, cfg Config) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping sqlite database: %w", err)
	}

	s.db = db
	s.logger.Debug("connected sqlite sink", "path", path)
	return nil
}

var _ Sink = (*SQLiteSink)(nil)
