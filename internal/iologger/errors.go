package iologger

import (
	"fmt"
	"runtime"

	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateLogFileError is returned when the log file cannot be opened for
// writing. Logs can go to STDERR until the problem is fixed.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot open log file <em>%s</em>

Set <em>D2TDB_LOG_DESTINATION=stderr</em> to log to the terminal`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open log file %s: %w", fn, path, err),
	}
}
