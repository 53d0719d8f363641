// Package config provides configuration management for d2tdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - Annotate: base_url, timeout, retries, rate_limit, api_key
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Load.StagingDir, Load.AutoConfirm (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use D2TDB_ prefix with underscores for nesting:
//
//	D2TDB_DATABASE_HOST=localhost
//	D2TDB_DATABASE_PORT=5432
//	D2TDB_LOG_LEVEL=info
//	D2TDB_ANNOTATE_API_KEY=secret
package config

// Config represents the complete d2tdb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Annotate contains settings of the external dataset catalog client.
	Annotate AnnotateConfig `mapstructure:"annotate" yaml:"annotate"`

	// Load contains settings specific to the load command.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent catalog lookups during
	// dataset annotation. The catalog allows only a few requests per
	// second, so large values do not speed things up.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, staging and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the maximum number of canned analysis metadata rows
	// sent in one INSERT statement. Three parameters are used per row,
	// so values above 21000 exceed the PostgreSQL parameter limit.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// AnnotateConfig contains settings for the NCBI E-utilities client used
// to describe datasets that are not yet in the database.
type AnnotateConfig struct {
	// BaseURL is the E-utilities endpoint, without trailing slash.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Timeout is the limit in seconds for a single HTTP request.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`

	// Retries is the number of attempts for every catalog request.
	Retries int `mapstructure:"retries" yaml:"retries"`

	// RateLimit is the maximum number of catalog requests per second.
	// NCBI allows 3 requests per second without an API key and 10 with it.
	RateLimit int `mapstructure:"rate_limit" yaml:"rate_limit"`

	// APIKey is an optional NCBI API key.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
}

// LoadConfig contains settings specific to the load command.
type LoadConfig struct {
	// StagingDir is the directory where staging artifacts are written
	// before the commit decision. Empty means the default location
	// returned by StagingDir().
	StagingDir string `mapstructure:"staging_dir" yaml:"staging_dir"`

	// AutoConfirm skips the interactive confirmation and commits
	// the transaction when all steps succeed.
	AutoConfirm bool `mapstructure:"auto_confirm" yaml:"auto_confirm"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "datasets2tools",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Annotate: AnnotateConfig{
			BaseURL:   "https://eutils.ncbi.nlm.nih.gov/entrez/eutils",
			Timeout:   10,
			Retries:   3,
			RateLimit: 3,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: 3,
	}

	return res
}
