package db_test

import (
	"testing"

	"github.com/d2tools/d2tdb/internal/iodb"
	"github.com/d2tools/d2tdb/pkg/db"
)

// TestPgxOperatorImplementsInterface verifies that NewPgxOperator
// returns a db.Operator.
func TestPgxOperatorImplementsInterface(t *testing.T) {
	var _ db.Operator = iodb.NewPgxOperator()
}
