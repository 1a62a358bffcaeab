package loader

import (
	"github.com/leapstack-labs/tabread/internal/namegen"
	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

// tableFormatter assembles the final table from the normalized matrix and
// the loader metadata: it decides the header (explicit vs. first row),
// slices the remaining rows as data, and resolves the table name.
type tableFormatter struct {
	matrix   [][]tabledata.Value
	headers  []string
	template string
	meta     namegen.Metadata
	counter  *namegen.Counter
	source   string
}

// Table builds the table. An empty matrix is reported as *EmptyDataError
// rather than returned as a degenerate table.
func (f tableFormatter) Table() (*tabledata.Table, error) {
	if len(f.matrix) == 0 {
		return nil, &EmptyDataError{Source: f.source}
	}

	name, err := namegen.Resolve(f.template, f.meta, f.counter)
	if err != nil {
		return nil, &ValidationError{Source: f.source, Reason: err.Error()}
	}

	headers := f.headers
	rows := f.matrix
	if len(headers) == 0 {
		first := rows[0]
		headers = make([]string, len(first))
		for i, v := range first {
			headers[i] = v.String()
		}
		rows = rows[1:]
	}

	return &tabledata.Table{Name: name, Headers: headers, Rows: rows}, nil
}
