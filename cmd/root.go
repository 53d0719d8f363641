/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/d2tools/d2tdb/internal/iofs"
	"github.com/d2tools/d2tdb/internal/iologger"
	app "github.com/d2tools/d2tdb/pkg"
	"github.com/d2tools/d2tdb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "d2tdb",
		Short:   "Loads canned analyses into the datasets2tools database",
		Long: `d2tdb maintains the datasets2tools PostgreSQL database.

Canned analyses are precomputed results of analysis tools applied to
public datasets. d2tdb reconciles tables of canned analyses with the
database: it resolves tools and datasets by name, describes new GEO
datasets using NCBI E-utilities, creates missing metadata terms and
commits everything in one transaction after confirmation.

Commands:
  create   create database schema
  seed     load tools and repositories from a YAML file
  load     reconcile tables of canned analyses

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (D2TDB_*)
  3. Config file (~/.config/d2tdb/config.yaml)
  4. Built-in defaults

Examples:
  D2TDB_DATABASE_HOST      PostgreSQL host
  D2TDB_DATABASE_PASSWORD  PostgreSQL password
  D2TDB_ANNOTATE_API_KEY   NCBI API key`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "d2tdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for d2tdb")

	rootCmd.AddCommand(
		getCreateCmd(),
		getSeedCmd(),
		getLoadCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Hardcoded defaults until the config file is read.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

// reconfigureLogging reinitializes the logger with the loaded
// configuration, keeping messages logged during bootstrap.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// initEnvVars binds environment variables explicitly, so the list below is
// the complete list of supported variables. They match the fields of
// config.ToOptions().
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("D2TDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.host", "D2TDB_DATABASE_HOST")
	v.BindEnv("database.port", "D2TDB_DATABASE_PORT")
	v.BindEnv("database.user", "D2TDB_DATABASE_USER")
	v.BindEnv("database.password", "D2TDB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "D2TDB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "D2TDB_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "D2TDB_DATABASE_BATCH_SIZE")

	// Annotation client
	v.BindEnv("annotate.base_url", "D2TDB_ANNOTATE_BASE_URL")
	v.BindEnv("annotate.timeout", "D2TDB_ANNOTATE_TIMEOUT")
	v.BindEnv("annotate.retries", "D2TDB_ANNOTATE_RETRIES")
	v.BindEnv("annotate.rate_limit", "D2TDB_ANNOTATE_RATE_LIMIT")
	v.BindEnv("annotate.api_key", "D2TDB_ANNOTATE_API_KEY")

	// Log configuration
	v.BindEnv("log.level", "D2TDB_LOG_LEVEL")
	v.BindEnv("log.format", "D2TDB_LOG_FORMAT")
	v.BindEnv("log.destination", "D2TDB_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "D2TDB_JOBS_NUMBER")

	v.AutomaticEnv()
}
