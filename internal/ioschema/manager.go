// Package ioschema implements SchemaManager interface for
// database schema creation. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/d2tools/d2tdb/pkg/d2tdb"
	"github.com/d2tools/d2tdb/pkg/db"
	"github.com/d2tools/d2tdb/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the d2tdb.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) d2tdb.SchemaManager {
	return &manager{operator: op}
}

// Create creates the database schema using GORM AutoMigrate
// and then adds unique indexes on lower-cased names.
func (m *manager) Create(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	for _, q := range schema.IndexDDL() {
		slog.Debug("Creating index", "sql", q)
		if _, err := pool.Exec(ctx, q); err != nil {
			return IndexError(q, err)
		}
	}

	return nil
}
