package sink

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

// dialect captures the per-backend SQL differences the shared writer needs.
type dialect struct {
	// typeName maps a column kind to the backend's column type.
	typeName func(k tabledata.Kind) string
	// placeholder renders the i-th (1-based) bind placeholder.
	placeholder func(i int) string
}

// sqlSink provides the shared database/sql implementation. Concrete sinks
// embed it and supply Connect.
type sqlSink struct {
	db      *sql.DB
	logger  *slog.Logger
	dialect dialect
}

func (s *sqlSink) Close() error {
	if s.db == nil {
		return nil
	}
	s.logger.Debug("closing sink connection")
	return s.db.Close()
}

// CreateTable drops any previous version of the table, creates it with
// columns derived from the data, and inserts all rows in one transaction.
func (s *sqlSink) CreateTable(ctx context.Context, t *tabledata.Table) error {
	if s.db == nil {
		return fmt.Errorf("sink not connected")
	}
	if len(t.Headers) == 0 {
		return fmt.Errorf("table %q has no columns", t.Name)
	}

	cols := columnDefs(t, s.dialect)
	tableName := quoteIdent(t.Name)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+tableName); err != nil {
		return fmt.Errorf("drop table %s: %w", tableName, err)
	}
	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", tableName, strings.Join(cols, ", "))
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", tableName, err)
	}

	insert := insertStatement(tableName, len(t.Headers), s.dialect)
	for i := 0; i < t.NumRows(); i++ {
		if _, err := tx.ExecContext(ctx, insert, rowArgs(t.Row(i), len(t.Headers))...); err != nil {
			return fmt.Errorf("insert row %d into %s: %w", i, tableName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", tableName, err)
	}

	s.logger.Info("stored table", "table", t.Name, "rows", t.NumRows(), "columns", t.NumColumns())
	return nil
}

// columnDefs derives one column definition per header. A column's type is
// the widest kind observed in it: any text cell makes it text, otherwise
// any real cell makes it real, otherwise integer.
func columnDefs(t *tabledata.Table, d dialect) []string {
	defs := make([]string, len(t.Headers))
	for col, header := range t.Headers {
		kind := tabledata.KindInteger
		for _, row := range t.Rows {
			if col >= len(row) {
				continue
			}
			switch row[col].Kind() {
			case tabledata.KindText:
				kind = tabledata.KindText
			case tabledata.KindReal:
				if kind == tabledata.KindInteger {
					kind = tabledata.KindReal
				}
			}
			if kind == tabledata.KindText {
				break
			}
		}
		name := header
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("column_%d", col+1)
		}
		defs[col] = quoteIdent(name) + " " + d.typeName(kind)
	}
	return defs
}

func insertStatement(tableName string, columns int, d dialect) string {
	placeholders := make([]string, columns)
	for i := range placeholders {
		placeholders[i] = d.placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", tableName, strings.Join(placeholders, ", "))
}

// rowArgs widens or narrows a row to the header width. Missing cells become
// NULL; cells beyond the header width are dropped.
func rowArgs(row []tabledata.Value, columns int) []any {
	args := make([]any, columns)
	for i := 0; i < columns; i++ {
		if i < len(row) {
			args[i] = row[i].Any()
		}
	}
	return args
}

// quoteIdent quotes an identifier with double quotes, doubling any embedded
// quote characters.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func questionPlaceholder(int) string { return "?" }
