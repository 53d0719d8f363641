package ioinput

import (
	"fmt"
	"strings"

	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ReadError is returned when an input table cannot be read.
func ReadError(name string, err error) error {
	msg := "Cannot read input <em>%s</em>"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.InputReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read input %s: %w", name, err),
	}
}

// ColumnsError is returned when required columns are absent.
func ColumnsError(name string, missing []string) error {
	msg := `Input <em>%s</em> misses required columns: <em>%s</em>

Required columns: dataset_accession, tool_name, canned_analysis_url, metadata`

	list := strings.Join(missing, ", ")
	vars := []any{name, list}
	return &gn.Error{
		Code: errcode.InputColumnsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("input %s misses columns %s", name, list),
	}
}

// EmptyError is returned when an input has no usable rows.
func EmptyError(name string) error {
	msg := "Input <em>%s</em> has no canned analyses"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.InputEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("input %s is empty", name),
	}
}

// DuplicateError is returned when an input repeats rows. Lines come in
// pairs: the first occurrence and its repetition.
func DuplicateError(name string, lines []int) error {
	msg := `Input <em>%s</em> contains duplicated rows (line pairs): %v

Remove duplicates and load the table again`

	vars := []any{name, lines}
	return &gn.Error{
		Code: errcode.InputDuplicateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("input %s has duplicated rows at lines %v", name, lines),
	}
}
