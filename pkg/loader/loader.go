// Package loader extracts tabular data from CSV sources and normalizes it
// into typed tables. Loaders share one pipeline: validate the source,
// resolve its character encoding, tokenize rows, drop blank rows, classify
// each cell as integer, real, or text, then assemble the matrix into a
// named table.
package loader

import (
	"context"

	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

// TableLoader is the contract every source-format loader satisfies.
type TableLoader interface {
	// FormatName reports the loader's data format (e.g. "csv").
	FormatName() string

	// Load fully consumes the configured source and returns the assembled
	// table. Malformed content is reported as *DataError, an all-blank
	// source as *EmptyDataError, and an unusable source or configuration
	// as *ValidationError.
	Load(ctx context.Context) (*tabledata.Table, error)
}
