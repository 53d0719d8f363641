// Package iofs prepares directories and files d2tdb keeps in the user's
// home directory.
package iofs

import (
	"os"

	"github.com/d2tools/d2tdb/pkg/config"
	"github.com/d2tools/d2tdb/pkg/templates"
)

// EnsureDirs creates config, log and staging directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
		config.StagingDir(homeDir),
	}
	for _, v := range dirs {
		if err := TouchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// TouchDir creates a directory with its parents unless it exists.
func TouchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(templates.ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// WriteSeedExample writes an example seed file to path. An existing file
// is never overwritten.
func WriteSeedExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return FileExistsError(path)
	}

	if err := os.WriteFile(path, []byte(templates.SeedYAML), 0644); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}

// ReadFile reads a file returning a user-friendly error.
func ReadFile(path string) ([]byte, error) {
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}
