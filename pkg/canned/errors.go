package canned

import (
	"fmt"
	"strings"

	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
)

// MissingToolsError is returned when records refer to tools that do not
// exist in the database.
func MissingToolsError(tools []string) error {
	msg := `Unknown tools: <em>%s</em>

<em>How to fix:</em>
  1. Add the tools to a seed file
  2. Run <em>d2tdb seed</em>
  3. Load the table again`

	list := strings.Join(tools, ", ")
	return &gn.Error{
		Code: errcode.ReconcileMissingToolError,
		Msg:  msg,
		Vars: []any{list},
		Err:  fmt.Errorf("tools not found in database: %s", list),
	}
}

// MetadataError is returned when metadata of a record is not a valid
// JSON object.
func MetadataError(row int, url string, err error) error {
	msg := "Record <em>%d</em> (%s) has malformed metadata"
	vars := []any{row, url}
	return &gn.Error{
		Code: errcode.InputMetadataError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("record %d: cannot parse metadata: %w", row, err),
	}
}
