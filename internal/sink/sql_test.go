package sink

import (
	"context"
	"log/slog"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

func testTable() *tabledata.Table {
	return &tabledata.Table{
		Name:    "people",
		Headers: []string{"name", "age"},
		Rows: [][]tabledata.Value{
			{tabledata.Text("ann"), tabledata.Integer(34)},
			{tabledata.Text("bob"), tabledata.Integer(27)},
		},
	}
}

func TestColumnDefs(t *testing.T) {
	tests := []struct {
		name string
		tbl  *tabledata.Table
		want []string
	}{
		{
			name: "uniform integer columns",
			tbl: &tabledata.Table{
				Headers: []string{"a", "b"},
				Rows: [][]tabledata.Value{
					{tabledata.Integer(1), tabledata.Integer(2)},
				},
			},
			want: []string{`"a" INTEGER`, `"b" INTEGER`},
		},
		{
			name: "real widens integer",
			tbl: &tabledata.Table{
				Headers: []string{"a"},
				Rows: [][]tabledata.Value{
					{tabledata.Integer(1)},
					{tabledata.Real(2.5)},
				},
			},
			want: []string{`"a" REAL`},
		},
		{
			name: "text wins over numbers",
			tbl: &tabledata.Table{
				Headers: []string{"a"},
				Rows: [][]tabledata.Value{
					{tabledata.Integer(1)},
					{tabledata.Text("x")},
					{tabledata.Real(2.5)},
				},
			},
			want: []string{`"a" TEXT`},
		},
		{
			name: "blank header gets positional name",
			tbl: &tabledata.Table{
				Headers: []string{"", "b"},
				Rows: [][]tabledata.Value{
					{tabledata.Integer(1), tabledata.Integer(2)},
				},
			},
			want: []string{`"column_1" INTEGER`, `"b" INTEGER`},
		},
		{
			name: "short rows ignored for missing columns",
			tbl: &tabledata.Table{
				Headers: []string{"a", "b"},
				Rows: [][]tabledata.Value{
					{tabledata.Integer(1)},
				},
			},
			want: []string{`"a" INTEGER`, `"b" INTEGER`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, columnDefs(tt.tbl, sqliteDialect))
		})
	}
}

func TestInsertStatement(t *testing.T) {
	assert.Equal(t, `INSERT INTO "t" VALUES (?, ?, ?)`, insertStatement(`"t"`, 3, sqliteDialect))
	assert.Equal(t, `INSERT INTO "t" VALUES ($1, $2)`, insertStatement(`"t"`, 2, postgresDialect))
}

func TestRowArgs(t *testing.T) {
	row := []tabledata.Value{tabledata.Text("x"), tabledata.Integer(1)}

	assert.Equal(t, []any{"x", int64(1)}, rowArgs(row, 2))
	// Missing cells pad with NULL, extra cells are dropped.
	assert.Equal(t, []any{"x", int64(1), nil}, rowArgs(row, 3))
	assert.Equal(t, []any{"x"}, rowArgs(row, 1))
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"plain"`, quoteIdent("plain"))
	assert.Equal(t, `"with ""quote"""`, quoteIdent(`with "quote"`))
	assert.Equal(t, `"drop table"`, quoteIdent("drop table"))
}

func TestPostgresSink_CreateTable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	s := &PostgresSink{sqlSink{
		db:      db,
		logger:  slog.New(slog.DiscardHandler),
		dialect: postgresDialect,
	}}

	mock.ExpectBegin()
	mock.ExpectExec(`DROP TABLE IF EXISTS "people"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE "people" ("name" TEXT, "age" BIGINT)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "people" VALUES ($1, $2)`).
		WithArgs("ann", int64(34)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "people" VALUES ($1, $2)`).
		WithArgs("bob", int64(27)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.CreateTable(context.Background(), testTable()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSink_RollbackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	s := &PostgresSink{sqlSink{
		db:      db,
		logger:  slog.New(slog.DiscardHandler),
		dialect: postgresDialect,
	}}

	mock.ExpectBegin()
	mock.ExpectExec(`DROP TABLE IF EXISTS "people"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE "people" ("name" TEXT, "age" BIGINT)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "people" VALUES ($1, $2)`).
		WithArgs("ann", int64(34)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = s.CreateTable(context.Background(), testTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert row 0")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSink_NotConnected(t *testing.T) {
	s := &sqlSink{logger: slog.New(slog.DiscardHandler), dialect: sqliteDialect}
	require.Error(t, s.CreateTable(context.Background(), testTable()))
	require.NoError(t, s.Close())
}

func TestSQLSink_NoColumns(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &sqlSink{db: db, logger: slog.New(slog.DiscardHandler), dialect: sqliteDialect}
	err = s.CreateTable(context.Background(), &tabledata.Table{Name: "empty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no columns")
}
