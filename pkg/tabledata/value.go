// Package tabledata defines the typed table representation produced by the
// tabread loaders. A loaded table is a name, a header list, and a matrix of
// typed cell values.
package tabledata

import "strconv"

// Kind discriminates the type of a cell value.
type Kind int

const (
	// KindText is a plain string cell.
	KindText Kind = iota
	// KindInteger is a cell that parsed as an integer.
	KindInteger
	// KindReal is a cell that parsed as a real number.
	KindReal
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	default:
		return "text"
	}
}

// Value is a single typed cell. The zero value is empty text.
// Values are immutable; construct them with Integer, Real, or Text.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Integer returns an integer-typed value.
func Integer(v int64) Value { return Value{kind: KindInteger, i: v} }

// Real returns a real-number-typed value.
func Real(v float64) Value { return Value{kind: KindReal, f: v} }

// Text returns a text-typed value.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Kind reports the type of the cell.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload. Meaningful only when Kind is KindInteger.
func (v Value) Int() int64 { return v.i }

// Float returns the numeric payload widened to float64.
// Integer values convert; text values return 0.
func (v Value) Float() float64 {
	if v.kind == KindInteger {
		return float64(v.i)
	}
	return v.f
}

// Any returns the payload as an untyped value, suitable for database/sql
// arguments and for JSON encoding.
func (v Value) Any() any {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindReal:
		return v.f
	default:
		return v.s
	}
}

// String renders the cell for display.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}
