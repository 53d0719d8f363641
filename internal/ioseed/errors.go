package ioseed

import (
	"fmt"

	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
)

// FileError is returned for seed files that are not valid YAML.
func FileError(path string, err error) error {
	msg := "Cannot parse seed file <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.SeedFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse %s: %w", path, err),
	}
}

// ValidationError is returned for seed files with missing or
// repeated names.
func ValidationError(path string, err error) error {
	msg := "Seed file <em>%s</em> is invalid: %s"
	vars := []any{path, err.Error()}
	return &gn.Error{
		Code: errcode.SeedValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid seed file %s: %w", path, err),
	}
}

// InsertError is returned when a seed row cannot be written.
func InsertError(table, name string, err error) error {
	msg := "Cannot write <em>%s</em> '%s' to the database"
	vars := []any{table, name}
	return &gn.Error{
		Code: errcode.SeedInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("seed %s %q: %w", table, name, err),
	}
}
