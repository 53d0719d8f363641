package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the maximum number of metadata rows
// per INSERT statement.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if !isValidInt("Batch Size", i) {
			return
		}
		if i > maxBatchSize {
			warnTooBig("Batch Size", i, maxBatchSize)
			return
		}
		c.Database.BatchSize = i
	}
}

// OptAnnotateBaseURL sets the E-utilities endpoint.
func OptAnnotateBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/")
	return func(c *Config) {
		if isValidString("Annotate Base URL", s) {
			c.Annotate.BaseURL = s
		}
	}
}

// OptAnnotateTimeout sets the per-request timeout in seconds.
func OptAnnotateTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Annotate Timeout", i) {
			c.Annotate.Timeout = i
		}
	}
}

// OptAnnotateRetries sets the number of attempts per catalog request.
func OptAnnotateRetries(i int) Option {
	return func(c *Config) {
		if isValidInt("Annotate Retries", i) {
			c.Annotate.Retries = i
		}
	}
}

// OptAnnotateRateLimit sets the maximum catalog requests per second.
func OptAnnotateRateLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("Annotate Rate Limit", i) {
			c.Annotate.RateLimit = i
		}
	}
}

// OptAnnotateAPIKey sets the NCBI API key.
func OptAnnotateAPIKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Annotate API Key", s) {
			c.Annotate.APIKey = s
		}
	}
}

// OptLoadStagingDir sets the directory for staging artifacts.
// Runtime-only field - not in ToOptions().
func OptLoadStagingDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Staging Directory", s) {
			c.Load.StagingDir = s
		}
	}
}

// OptLoadAutoConfirm sets whether the load command commits without
// asking the operator.
// Runtime-only field - not in ToOptions().
func OptLoadAutoConfirm(b bool) Option {
	return func(c *Config) {
		c.Load.AutoConfirm = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent catalog lookups.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, staging, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
