package ioschema

import (
	"fmt"

	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError is returned when tables are created or checked
// before the operator opened its pool.
func NotConnectedError() error {
	msg := "No database connection for creating datasets2tools tables"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("operator pool is nil"),
	}
}

// GORMConnectionError wraps failures to open a GORM session on top
// of the pgx pool.
func GORMConnectionError(err error) error {
	msg := `Cannot open migration session

<em>How to fix:</em>
  1. Check <em>database</em> section of config.yaml
  2. Check D2TDB_DATABASE_* environment variables`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("gorm session over pgx pool: %w", err),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(err error) error {
	msg := `Cannot create database schema

<em>Possible causes:</em>
  - Insufficient database permissions
  - Tables exist with incompatible columns

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Recreate the schema with <em>d2tdb create --force</em>`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("automigrate datasets2tools tables: %w", err),
	}
}

// IndexError creates an error for failures of
// case-insensitive index creation.
func IndexError(stmt string, err error) error {
	msg := `Cannot create unique index

<em>%s</em>

<em>Possible causes:</em>
  - Existing rows have names that differ only by case`

	vars := []any{stmt}

	return &gn.Error{
		Code: errcode.SchemaIndexError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to run %q: %w", stmt, err),
	}
}
