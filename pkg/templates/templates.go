// Package templates provides embedded YAML templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for application
// configuration.
//
//go:embed config.yaml
var ConfigYAML string

// SeedYAML contains an example seed file with tools and repositories.
//
//go:embed seed.yaml
var SeedYAML string
