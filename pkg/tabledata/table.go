package tabledata

// Table is the final output of a load: a resolved name, a header list, and
// the data matrix. A Table is constructed once per successful load and is
// not mutated afterwards.
type Table struct {
	// Name is the table name resolved from the loader's name template.
	Name string

	// Headers holds the column names, either configured explicitly or taken
	// from the first data row.
	Headers []string

	// Rows is the data matrix. Row widths are preserved as loaded; they are
	// not forced to match the header width.
	Rows [][]Value
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumColumns returns the number of header columns.
func (t *Table) NumColumns() int { return len(t.Headers) }

// Row returns the i-th data row. The returned slice is owned by the table
// and must not be modified.
func (t *Table) Row(i int) []Value { return t.Rows[i] }

// RowStrings renders the i-th data row as display strings.
func (t *Table) RowStrings(i int) []string {
	row := t.Rows[i]
	out := make([]string, len(row))
	for j, v := range row {
		out[j] = v.String()
	}
	return out
}
