// Package namegen resolves table-name templates and issues the sequential
// ids the templates can reference.
package namegen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Template specifiers recognized by Resolve.
const (
	// SpecFilename expands to the source file's base name without extension.
	// Empty for text sources.
	SpecFilename = "%(filename)s"
	// SpecFormatName expands to the loader's format name (e.g. "csv").
	SpecFormatName = "%(format_name)s"
	// SpecFormatID expands to a sequential id scoped to the format name.
	SpecFormatID = "%(format_id)s"
	// SpecGlobalID expands to a sequential id shared across all formats.
	SpecGlobalID = "%(global_id)s"
)

// Counter issues per-format and global sequence numbers for name templates.
// Loaders that should share an id space must share a Counter; there is no
// process-global instance.
type Counter struct {
	mu        sync.Mutex
	global    int
	perFormat map[string]int
}

// NewCounter returns a counter with all sequences starting at zero.
func NewCounter() *Counter {
	return &Counter{perFormat: make(map[string]int)}
}

// Next reserves the next id pair for the given format. Format ids increment
// independently per format name, the global id across all formats.
func (c *Counter) Next(format string) (formatID, globalID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	formatID = c.perFormat[format]
	c.perFormat[format]++
	globalID = c.global
	c.global++
	return formatID, globalID
}

// Metadata carries the loader attributes a template can reference.
type Metadata struct {
	// Format is the loader's format name.
	Format string
	// Filename is the source file's base name without extension, empty for
	// non-file sources.
	Filename string
}

// Resolve expands the template specifiers against meta. Sequence ids are
// consumed from counter only when the template references them, so names
// without id specifiers do not advance the sequences. An empty resolved
// name is an error.
func Resolve(template string, meta Metadata, counter *Counter) (string, error) {
	if strings.TrimSpace(template) == "" {
		return "", fmt.Errorf("table name template is empty")
	}

	name := template
	if strings.Contains(name, SpecFormatID) || strings.Contains(name, SpecGlobalID) {
		formatID, globalID := counter.Next(meta.Format)
		name = strings.ReplaceAll(name, SpecFormatID, strconv.Itoa(formatID))
		name = strings.ReplaceAll(name, SpecGlobalID, strconv.Itoa(globalID))
	}
	name = strings.ReplaceAll(name, SpecFilename, meta.Filename)
	name = strings.ReplaceAll(name, SpecFormatName, meta.Format)

	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("table name template %q resolved to an empty name", template)
	}
	return name, nil
}
