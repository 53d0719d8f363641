package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "d2tdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/d2tdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/d2tdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// StagingDir returns the default directory for staging artifacts
// of the load command.
// Returns ~/.local/share/d2tdb/staging by default.
func StagingDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "staging")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/d2tdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// StagingPath returns the staging directory from the config, falling back
// to StagingDir(HomeDir) when it is not set.
func (c *Config) StagingPath() string {
	if c.Load.StagingDir != "" {
		return c.Load.StagingDir
	}
	return StagingDir(c.HomeDir)
}
