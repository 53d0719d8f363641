package ioreconcile

import (
	"fmt"

	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
)

func TxBeginError(err error) error {
	msg := "Cannot start a database transaction"
	return &gn.Error{
		Code: errcode.ReconcileTxBeginError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot begin transaction: %w", err),
	}
}

func LockError(err error) error {
	msg := "Cannot acquire the loader lock, another load may be stuck"
	return &gn.Error{
		Code: errcode.ReconcileLockError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot take advisory lock: %w", err),
	}
}

// LookupError is returned when existing rows of a table cannot be read.
func LookupError(table string, err error) error {
	msg := "Cannot look up existing rows of <em>%s</em>"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.ReconcileLookupError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("lookup in %s: %w", table, err),
	}
}

// InsertError is returned when rows cannot be written to a table.
func InsertError(table string, err error) error {
	msg := "Cannot insert rows into <em>%s</em>, nothing is committed"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.ReconcileInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("insert into %s: %w", table, err),
	}
}

func CommitError(err error) error {
	msg := "Cannot commit the transaction, nothing is committed"
	return &gn.Error{
		Code: errcode.ReconcileCommitError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot commit: %w", err),
	}
}

// ConfirmError is returned when the answer of the operator cannot be read.
func ConfirmError(err error) error {
	msg := "Cannot read the answer, the transaction is rolled back"
	return &gn.Error{
		Code: errcode.ReconcileConfirmError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot read confirmation: %w", err),
	}
}

// AbortedError is returned when the operator declines the commit.
func AbortedError(name string) error {
	msg := "Loading of <em>%s</em> is aborted, no changes made"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.ReconcileAbortedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("transaction for %s aborted by operator", name),
	}
}

// CancelledError is returned when the run is interrupted while waiting
// for confirmation.
func CancelledError(err error) error {
	msg := "Interrupted, the transaction is rolled back"
	return &gn.Error{
		Code: errcode.ReconcileCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("confirmation cancelled: %w", err),
	}
}
