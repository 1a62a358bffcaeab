// Package sink persists loaded tables into embedded or networked
// databases. Sinks self-register by type name; the CLI selects one from
// configuration.
package sink

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

// Config holds the connection settings for a sink.
type Config struct {
	// Type selects the sink implementation (e.g. "sqlite", "duckdb",
	// "postgres").
	Type string

	// Path is the database file for embedded sinks. Empty or ":memory:"
	// means in-memory.
	Path string

	// Network settings for server-backed sinks.
	Host     string
	Port     int
	Database string
	Username string
	Password string
}

// Sink writes tables into a storage backend.
type Sink interface {
	// Connect establishes the connection described by cfg.
	Connect(ctx context.Context, cfg Config) error

	// Close releases the connection.
	Close() error

	// CreateTable creates (replacing any previous version) the table named
	// t.Name with columns derived from the data and inserts all rows in
	// one transaction.
	CreateTable(ctx context.Context, t *tabledata.Table) error
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func(*slog.Logger) Sink)
)

// Register adds a sink factory to the registry. Called by sink
// implementations in their init() functions.
func Register(name string, factory func(*slog.Logger) Sink) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// New creates a sink instance for cfg.Type. A nil logger discards.
func New(cfg Config, logger *slog.Logger) (Sink, error) {
	if cfg.Type == "" {
		return nil, fmt.Errorf("sink type not specified")
	}
	registryMu.RLock()
	factory, ok := registry[cfg.Type]
	registryMu.RUnlock()
	if !ok {
		return nil, &UnknownSinkError{Type: cfg.Type, Available: List()}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return factory(logger), nil
}

// List returns all registered sink type names, sorted.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownSinkError is returned when an unregistered sink type is requested.
type UnknownSinkError struct {
	Type      string
	Available []string
}

func (e *UnknownSinkError) Error() string {
	return fmt.Sprintf("unknown sink type %q (available: %v)", e.Type, e.Available)
}
