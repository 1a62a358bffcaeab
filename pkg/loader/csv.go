package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/leapstack-labs/tabread/internal/namegen"
	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

const formatNameCSV = "csv"

// contextCheckInterval is how often (in rows) Load polls for context
// cancellation during row iteration.
const contextCheckInterval = 100

// CSVLoader extracts tabular data from one CSV source. Construct it with
// NewCSVFileLoader or NewCSVTextLoader, adjust the exported fields as
// needed, then call Load. Fields are read-only during Load.
//
// A CSVLoader owns no shared state; independent loaders may load
// concurrently. Loaders that should draw table-name ids from one sequence
// must be given the same Counter.
type CSVLoader struct {
	// Headers are the explicit column names. Empty means the first data
	// row becomes the header.
	Headers []string

	// Delimiter separates fields. Defaults to ','.
	Delimiter rune

	// Quote is the field quote character. Defaults to '"'. The tokenizer
	// follows RFC 4180 and supports only the double-quote; any other value
	// is rejected at Load as a validation error.
	Quote rune

	// Encoding is the source encoding label. Empty means autodetect.
	// Ignored by the text variant, whose input is already decoded.
	Encoding string

	// NameTemplate resolves the table name. File loaders default to
	// namegen.SpecFilename, text loaders to format name + format id.
	NameTemplate string

	// Logger receives one event per Load. Nil discards.
	Logger *slog.Logger

	// Counter issues the sequential ids referenced by NameTemplate.
	// Constructors install a private counter; overwrite it to share an id
	// space between loaders.
	Counter *namegen.Counter

	source    rowSource
	validator SourceValidator
}

// NewCSVFileLoader returns a loader that reads the CSV file at path.
// The table name defaults to the file's base name without extension.
func NewCSVFileLoader(path string) *CSVLoader {
	return &CSVLoader{
		Delimiter:    ',',
		Quote:        '"',
		NameTemplate: namegen.SpecFilename,
		Counter:      namegen.NewCounter(),
		source:       &fileSource{path: path},
		validator:    FileValidator{Path: path},
	}
}

// NewCSVTextLoader returns a loader that reads in-memory CSV text.
// The table name defaults to the format name plus a sequential format id.
func NewCSVTextLoader(text string) *CSVLoader {
	return &CSVLoader{
		Delimiter:    ',',
		Quote:        '"',
		NameTemplate: namegen.SpecFormatName + namegen.SpecFormatID,
		Counter:      namegen.NewCounter(),
		source:       &textSource{text: text},
		validator:    TextValidator{Text: text},
	}
}

// FormatName implements TableLoader.
func (l *CSVLoader) FormatName() string { return formatNameCSV }

// Load implements TableLoader. The source is fully consumed before Load
// returns; the underlying stream is released on every exit path.
func (l *CSVLoader) Load(ctx context.Context) (*tabledata.Table, error) {
	if err := l.validator.Validate(); err != nil {
		return nil, err
	}
	if err := l.validateConfig(); err != nil {
		return nil, err
	}

	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.InfoContext(ctx, "loading table data",
		"load_id", uuid.NewString(),
		"format", formatNameCSV,
		"source_kind", l.source.kind(),
		"source", l.source.describe(),
	)

	r, closer, err := l.source.open(l.Encoding)
	if err != nil {
		return nil, err
	}
	defer func() { _ = closer.Close() }()

	matrix, err := l.readMatrix(ctx, r)
	if err != nil {
		return nil, err
	}

	f := tableFormatter{
		matrix:   matrix,
		headers:  l.Headers,
		template: l.NameTemplate,
		meta:     l.source.meta(),
		counter:  l.Counter,
		source:   l.source.describe(),
	}
	return f.Table()
}

func (l *CSVLoader) validateConfig() error {
	if l.Quote != '"' {
		return &ValidationError{
			Source: l.source.describe(),
			Reason: fmt.Sprintf("unsupported quote character %q: only %q is supported", l.Quote, '"'),
		}
	}
	switch l.Delimiter {
	case 0, '"', '\r', '\n':
		return &ValidationError{
			Source: l.source.describe(),
			Reason: fmt.Sprintf("invalid delimiter %q", l.Delimiter),
		}
	}
	return nil
}

// readMatrix iterates the tokenizer, dropping blank rows and normalizing
// the rest. The whole matrix is materialized before formatting; nothing
// streams further downstream.
func (l *CSVLoader) readMatrix(ctx context.Context, r io.Reader) ([][]tabledata.Value, error) {
	cr := csv.NewReader(r)
	cr.Comma = l.Delimiter
	// Strict quoting: malformed quote sequences abort the load.
	cr.LazyQuotes = false
	// A space immediately after a delimiter is not part of the field.
	cr.TrimLeadingSpace = true
	// Row widths pass through unchecked; width mismatches are not a
	// loader concern.
	cr.FieldsPerRecord = -1

	var matrix [][]tabledata.Value
	for i := 0; ; i++ {
		if i%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return matrix, nil
		}
		if err != nil {
			// Tokenizer and decoding failures surface uniformly.
			return nil, &DataError{Source: l.source.describe(), Err: err}
		}
		if isBlankRow(record) {
			continue
		}

		row := make([]tabledata.Value, len(record))
		for j, cell := range record {
			row[j] = normalizeCell(cell)
		}
		matrix = append(matrix, row)
	}
}

var _ TableLoader = (*CSVLoader)(nil)
