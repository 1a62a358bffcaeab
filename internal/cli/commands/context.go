// Package commands implements the tabread subcommands.
package commands

import (
	"context"

	"github.com/leapstack-labs/tabread/internal/config"
)

// configKey is used to store the loaded config in the command context.
type configKey struct{}

// WithConfig stores the config in ctx for command handlers.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// getConfig retrieves the config from the command context, falling back to
// defaults when the command runs outside the root's PersistentPreRunE.
func getConfig(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{
		Delimiter: config.DefaultDelimiter,
		Quote:     config.DefaultQuote,
		Output:    config.DefaultOutput,
		Sink: config.SinkConfig{
			Type: config.DefaultSinkType,
			Path: config.DefaultSinkPath,
		},
	}
}
