package loader

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

// Cell classification grammars. Pre-compiled once; the patterns anchor the
// whole cell so strconv never sees input it would accept more loosely than
// the grammar allows (hex floats, underscores, leading/trailing junk).
var (
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
	realPattern    = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// normalizeCell classifies one raw cell by ordered trial conversion:
// integer first, then real number, then text. The text fallback is total;
// normalizeCell never fails.
func normalizeCell(raw string) tabledata.Value {
	if integerPattern.MatchString(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return tabledata.Integer(n)
		}
		// Out of int64 range; falls through to the real-number trial.
	}
	if realPattern.MatchString(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return tabledata.Real(f)
		}
	}
	return tabledata.Text(raw)
}

// isBlankRow reports whether a raw row has no cells or only blank cells.
// Blank rows are dropped before normalization.
func isBlankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
