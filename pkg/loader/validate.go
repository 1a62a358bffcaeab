package loader

import (
	"fmt"
	"os"
	"strings"
)

// SourceValidator checks that a source is usable before any I/O or
// tokenizing happens.
type SourceValidator interface {
	Validate() error
}

// FileValidator validates a file-path source: the path must name an
// existing regular file.
type FileValidator struct {
	Path string
}

// Validate implements SourceValidator.
func (v FileValidator) Validate() error {
	if strings.TrimSpace(v.Path) == "" {
		return &ValidationError{Source: "(file)", Reason: "file path is empty"}
	}
	info, err := os.Stat(v.Path)
	if err != nil {
		return &ValidationError{Source: v.Path, Reason: fmt.Sprintf("cannot stat: %v", err)}
	}
	if !info.Mode().IsRegular() {
		return &ValidationError{Source: v.Path, Reason: "not a regular file"}
	}
	return nil
}

// TextValidator validates an in-memory text source: the text must not be
// empty. Whitespace-only text passes validation and surfaces later as the
// empty-data condition, so callers can tell "no data" from caller misuse.
type TextValidator struct {
	Text string
}

// Validate implements SourceValidator.
func (v TextValidator) Validate() error {
	if v.Text == "" {
		return &ValidationError{Source: "(text)", Reason: "text source is empty"}
	}
	return nil
}
