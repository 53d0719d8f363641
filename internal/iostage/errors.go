package iostage

import (
	"fmt"

	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
)

// WriteError is returned when a staging table cannot be written.
func WriteError(path string, err error) error {
	msg := "Cannot write staging file <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.StagingWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}

// CleanupError is returned when staging files of a rolled back run
// cannot be removed.
func CleanupError(dir string, err error) error {
	msg := "Cannot remove staging directory <em>%s</em>"
	vars := []any{dir}
	return &gn.Error{
		Code: errcode.StagingCleanupError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot remove %s: %w", dir, err),
	}
}

// SentinelError is returned when the completion marker cannot be created.
func SentinelError(path string, err error) error {
	msg := `The transaction is committed, but <em>%s</em> cannot be created

Create the file manually to mark staging tables as loaded`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.StagingSentinelError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create %s: %w", path, err),
	}
}
