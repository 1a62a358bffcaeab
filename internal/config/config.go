// Package config provides the tabread configuration surface: loader
// options, output mode, and sink target, merged from defaults, the
// tabread.yaml project file, environment variables, and CLI flags.
package config

// Config file names searched in the working directory.
const (
	ConfigFileName    = "tabread.yaml"
	ConfigFileNameAlt = "tabread.yml"
)

// Defaults applied before any other configuration source.
const (
	DefaultDelimiter = ','
	DefaultQuote     = '"'
	DefaultOutput    = "auto"
	DefaultSinkType  = "sqlite"
	DefaultSinkPath  = "tabread.db"
)

// EnvPrefix is the prefix for environment variable overrides
// (e.g. TABREAD_DELIMITER, TABREAD_SINK__TYPE).
const EnvPrefix = "TABREAD_"

// Config is the merged tabread configuration.
type Config struct {
	// Headers are explicit column names applied to every load. Empty means
	// the first data row of each source becomes its header.
	Headers []string `koanf:"headers"`

	// Delimiter is the field separator, a single character.
	Delimiter rune `koanf:"delimiter"`

	// Quote is the field quote character, a single character.
	Quote rune `koanf:"quote"`

	// Encoding is the source encoding label. Empty means autodetect.
	Encoding string `koanf:"encoding"`

	// NameTemplate overrides the per-loader default table name template.
	NameTemplate string `koanf:"name_template"`

	// Output selects the render mode: auto, text, markdown, csv, json, yaml.
	Output string `koanf:"output"`

	// Verbose enables load logging to stderr.
	Verbose bool `koanf:"verbose"`

	// Sink is the storage target for the store command.
	Sink SinkConfig `koanf:"sink"`
}

// SinkConfig holds the storage target settings.
type SinkConfig struct {
	Type     string `koanf:"type"`
	Path     string `koanf:"path"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Database string `koanf:"database"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}
