package sink

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

func init() {
	Register("postgres", func(logger *slog.Logger) Sink {
		return &PostgresSink{sqlSink{logger: logger, dialect: postgresDialect}}
	})
}

var postgresDialect = dialect{
	typeName: func(k tabledata.Kind) string {
		switch k {
		case tabledata.KindInteger:
			return "BIGINT"
		case tabledata.KindReal:
			return "DOUBLE PRECISION"
		default:
			return "TEXT"
		}
	},
	placeholder: func(i int) string { return "$" + strconv.Itoa(i) },
}

// PostgresSink stores tables in a PostgreSQL database via pgx.
type PostgresSink struct {
	sqlSink
}

// Connect opens a connection to the PostgreSQL server described by cfg.
func (s *PostgresSink) Connect(ctx context.Context, cfg Config) error {
	if cfg.Host == "" {
		return fmt.Errorf("postgres sink requires a host")
	}
	if cfg.Database == "" {
		return fmt.Errorf("postgres sink requires a database name")
	}

	port := cfg.Port
	if port == 0 {
		port = 5432
	}
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, port),
		Path:   cfg.Database,
	}

	db, err := sql.Open("pgx", dsn.String())
	if err != nil {
		return fmt.Errorf("open postgres connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping postgres: %w", err)
	}

	s.db = db
	s.logger.Debug("connected postgres sink", "host", cfg.Host, "database", cfg.Database)
	return nil
}

var _ Sink = (*PostgresSink)(nil)
