package iofs

import (
	"fmt"
	"runtime"

	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
)

// caller returns the name of the function that called an error
// constructor.
func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "unknown"
}

// CreateDirError is returned when a config, log or staging directory
// cannot be created.
func CreateDirError(dir string, err error) error {
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  "Cannot create directory <em>%s</em>",
		Vars: []any{dir},
		Err: fmt.Errorf("from %s: cannot create directory %s: %w",
			caller(), dir, err),
	}
}

// CopyFileError is returned when an embedded template cannot be written.
func CopyFileError(file string, err error) error {
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  "Cannot copy template to <em>%s</em>",
		Vars: []any{file},
		Err: fmt.Errorf("from %s: cannot copy file to %s: %w",
			caller(), file, err),
	}
}

func ReadFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: cannot read %s: %w", caller(), path, err),
	}
}

// FileExistsError is returned instead of overwriting a file the user
// may have edited.
func FileExistsError(path string) error {
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  "File <em>%s</em> already exists, not overwriting",
		Vars: []any{path},
		Err:  fmt.Errorf("file %s already exists", path),
	}
}
