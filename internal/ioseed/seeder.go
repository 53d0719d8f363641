// Package ioseed writes tools and repositories of a seed file into the
// datasets2tools database.
package ioseed

import (
	"context"
	"log/slog"

	"github.com/d2tools/d2tdb/internal/iodb"
	"github.com/d2tools/d2tdb/internal/iofs"
	"github.com/d2tools/d2tdb/pkg/d2tdb"
	"github.com/d2tools/d2tdb/pkg/db"
	"github.com/d2tools/d2tdb/pkg/seed"
	"github.com/jackc/pgx/v5"
)

// Empty seed values never erase values that are already in the database.
const (
	upsertTool = `
		INSERT INTO tool (
			tool_name, tool_icon_url, tool_homepage_url, tool_description
		)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ((lower(tool_name))) DO UPDATE SET
			tool_name = EXCLUDED.tool_name,
			tool_icon_url = COALESCE(
				NULLIF(EXCLUDED.tool_icon_url, ''), tool.tool_icon_url),
			tool_homepage_url = COALESCE(
				NULLIF(EXCLUDED.tool_homepage_url, ''), tool.tool_homepage_url),
			tool_description = COALESCE(
				NULLIF(EXCLUDED.tool_description, ''), tool.tool_description)
		RETURNING (xmax = 0)
	`

	upsertRepository = `
		INSERT INTO repository (
			repository_name, repository_icon_url, repository_description,
			repository_homepage_url
		)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ((lower(repository_name))) DO UPDATE SET
			repository_name = EXCLUDED.repository_name,
			repository_icon_url = COALESCE(
				NULLIF(EXCLUDED.repository_icon_url, ''),
				repository.repository_icon_url),
			repository_description = COALESCE(
				NULLIF(EXCLUDED.repository_description, ''),
				repository.repository_description),
			repository_homepage_url = COALESCE(
				NULLIF(EXCLUDED.repository_homepage_url, ''),
				repository.repository_homepage_url)
		RETURNING (xmax = 0)
	`
)

type seeder struct {
	operator db.Operator
}

// New creates a Seeder that uses a connected operator.
func New(op db.Operator) d2tdb.Seeder {
	return &seeder{operator: op}
}

// ReadFile reads and validates a seed file.
func ReadFile(path string) (*seed.File, error) {
	data, err := iofs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	res, err := seed.Decode(data)
	if err != nil {
		return nil, FileError(path, err)
	}
	if err = res.Validate(); err != nil {
		return nil, ValidationError(path, err)
	}
	for _, w := range res.Warnings {
		slog.Warn("Seed file issue", "path", path, "warning", w)
	}
	return res, nil
}

// Seed upserts all tools and repositories in one transaction.
func (s *seeder) Seed(ctx context.Context, f *seed.File) (seed.Report, error) {
	var res seed.Report
	pool := s.operator.Pool()
	if pool == nil {
		return res, iodb.NotConnectedError()
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return res, InsertError("transaction", "", err)
	}
	defer func() { _ = tx.Rollback(context.WithoutCancel(ctx)) }()

	for _, t := range f.Tools {
		isNew, err := upsert(ctx, tx, upsertTool,
			t.Name, t.IconURL, t.HomepageURL, t.Description)
		if err != nil {
			return res, InsertError("tool", t.Name, err)
		}
		res.Tools++
		if isNew {
			res.NewTools++
		}
	}

	for _, r := range f.Repositories {
		isNew, err := upsert(ctx, tx, upsertRepository,
			r.Name, r.IconURL, r.Description, r.HomepageURL)
		if err != nil {
			return res, InsertError("repository", r.Name, err)
		}
		res.Repositories++
		if isNew {
			res.NewRepositories++
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return seed.Report{}, InsertError("transaction", "", err)
	}
	slog.Info("Seed data loaded",
		"tools", res.Tools, "new_tools", res.NewTools,
		"repositories", res.Repositories,
		"new_repositories", res.NewRepositories,
	)
	return res, nil
}

func upsert(ctx context.Context, tx pgx.Tx, q string, args ...any) (bool, error) {
	var res bool
	err := tx.QueryRow(ctx, q, args...).Scan(&res)
	return res, err
}
