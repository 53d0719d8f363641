package config_test

import (
	"path/filepath"
	"testing"

	"github.com/d2tools/d2tdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "d2tdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "d2tdb", "logs"),
		},
		{
			msg: "staging dir",
			fn:  config.StagingDir,
			res: filepath.Join(tempHome, ".local", "share", "d2tdb", "staging"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "d2tdb", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "datasets2tools", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 5_000, cfg.Database.BatchSize)

		assert.Equal(t,
			"https://eutils.ncbi.nlm.nih.gov/entrez/eutils", cfg.Annotate.BaseURL)
		assert.Equal(t, 10, cfg.Annotate.Timeout)
		assert.Equal(t, 3, cfg.Annotate.Retries)
		assert.Equal(t, 3, cfg.Annotate.RateLimit)
		assert.Empty(t, cfg.Annotate.APIKey)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, 3, cfg.JobsNumber)
		assert.False(t, cfg.Load.AutoConfirm)
		assert.Empty(t, cfg.Load.StagingDir)
	})
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost",
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseHost(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid port", 6543, 6543},
		{"ignores zero", 0, 5432},
		{"ignores negative", -100, 5432},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabasePort(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"disable", "disable", "disable"},
		{"require", "require", "require"},
		{"verify-ca", "verify-ca", "verify-ca"},
		{"verify-full", "verify-full", "verify-full"},
		{"normalizes to lowercase", "REQUIRE", "require"},
		{"ignores invalid value", "invalid", "disable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseSSLMode(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionBatchSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid batch size", 10_000, 10_000},
		{"accepts the parameter limit", 21_000, 21_000},
		{"ignores too big", 30_000, 5_000},
		{"ignores zero", 0, 5_000},
		{"ignores negative", -1000, 5_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseBatchSize(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.BatchSize)
		})
	}
}

func TestOptionAnnotate(t *testing.T) {
	t.Run("base url drops trailing slash", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptAnnotateBaseURL(" http://localhost:8080/eutils/ "),
		})
		assert.Equal(t, "http://localhost:8080/eutils", cfg.Annotate.BaseURL)
	})

	t.Run("numeric settings reject non-positive values", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptAnnotateTimeout(0),
			config.OptAnnotateRetries(-1),
			config.OptAnnotateRateLimit(0),
		})
		assert.Equal(t, 10, cfg.Annotate.Timeout)
		assert.Equal(t, 3, cfg.Annotate.Retries)
		assert.Equal(t, 3, cfg.Annotate.RateLimit)
	})

	t.Run("numeric settings accept positive values", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptAnnotateTimeout(30),
			config.OptAnnotateRetries(5),
			config.OptAnnotateRateLimit(10),
			config.OptAnnotateAPIKey("abc123"),
		})
		assert.Equal(t, 30, cfg.Annotate.Timeout)
		assert.Equal(t, 5, cfg.Annotate.Retries)
		assert.Equal(t, 10, cfg.Annotate.RateLimit)
		assert.Equal(t, "abc123", cfg.Annotate.APIKey)
	})
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"debug", "debug", "debug"},
		{"info", "info", "info"},
		{"warn", "warn", "warn"},
		{"error", "error", "error"},
		{"normalizes to lowercase", "DEBUG", "debug"},
		{"ignores invalid value", "trace", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"file", "file", "file"},
		{"stderr", "STDERR", "stderr"},
		{"stdout", "stdout", "stdout"},
		{"ignores invalid value", "syslog", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogDestination(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Destination)
		})
	}
}

func TestOptionJobsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid jobs number", 8, 8},
		{"ignores zero", 0, 3},
		{"ignores negative", -5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptJobsNumber(tt.input)})
			assert.Equal(t, tt.expected, cfg.JobsNumber)
		})
	}
}

func TestStagingPath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/user")})
	assert.Equal(t,
		filepath.Join("/home/user", ".local", "share", "d2tdb", "staging"),
		cfg.StagingPath())

	cfg.Update([]config.Option{config.OptLoadStagingDir("/tmp/stage")})
	assert.Equal(t, "/tmp/stage", cfg.StagingPath())
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(6543),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptDatabaseBatchSize(1000),
			config.OptAnnotateBaseURL("http://localhost/eutils"),
			config.OptAnnotateTimeout(5),
			config.OptAnnotateRetries(2),
			config.OptAnnotateRateLimit(10),
			config.OptAnnotateAPIKey("key"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Annotate, newCfg.Annotate)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptLoadStagingDir("/custom/staging"),
			config.OptLoadAutoConfirm(true),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.Equal(t, "", newCfg.Load.StagingDir)
		assert.False(t, newCfg.Load.AutoConfirm)
	})
}
