package loader

import "fmt"

// ValidationError reports a source that failed the pre-load checks: a
// missing or unreadable file path, blank text input, or unusable loader
// configuration. Validation failures surface before any tokenizing starts
// and are never wrapped into a DataError.
type ValidationError struct {
	Source string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid source %s: %s", e.Source, e.Reason)
}

// DataError is the single error kind for bad content: malformed CSV
// structure reported by the tokenizer and character-decoding failures are
// both normalized into it, so callers have one kind to handle for
// "the content was bad".
type DataError struct {
	Source string
	Err    error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid table data in %s: %v", e.Source, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// EmptyDataError reports that the filtered data matrix contained no rows.
// It is distinct from DataError so callers can tell "no data" apart from
// "malformed data".
type EmptyDataError struct {
	Source string
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("no table data in %s", e.Source)
}
