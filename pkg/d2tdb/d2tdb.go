// Package d2tdb defines the high-level components of the datasets2tools
// database loader. Implementations live in internal packages.
package d2tdb

import (
	"context"

	"github.com/d2tools/d2tdb/pkg/canned"
	"github.com/d2tools/d2tdb/pkg/seed"
)

// SchemaManager defines the interface for database schema creation.
// It uses GORM AutoMigrate and adds case-insensitive unique indexes.
// Schema creation is idempotent, it never alters existing columns.
type SchemaManager interface {
	// Create creates the six tables of the datasets2tools database.
	Create(ctx context.Context) error
}

// Seeder loads tools and repositories maintained by hand.
type Seeder interface {
	// Seed inserts or updates tools and repositories matched by name
	// ignoring case. All rows are written in one transaction.
	Seed(ctx context.Context, f *seed.File) (seed.Report, error)
}

// Reconciler loads one table of canned analyses.
type Reconciler interface {
	// Reconcile resolves references of the records, creates missing
	// datasets and terms, inserts analyses with their metadata and
	// commits everything at once after confirmation.
	Reconcile(ctx context.Context, in canned.Input) (canned.Result, error)
}
