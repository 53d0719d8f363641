// Package ioreconcile loads tables of canned analyses into the
// datasets2tools database. It implements canned.Store on top of pgx and
// the d2tdb.Reconciler that drives one transaction per input table.
package ioreconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/d2tools/d2tdb/pkg/canned"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// lockKey identifies the advisory lock shared by all loader processes.
const lockKey int64 = 0x6432_7464_6c6f_6164

const insertAnalysisStmt = "insert_canned_analysis"

type pgxStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a canned.Store that uses the connection pool.
func NewStore(pool *pgxpool.Pool) canned.Store {
	return &pgxStore{pool: pool}
}

// Begin starts a read-committed transaction.
func (s *pgxStore) Begin(ctx context.Context) (canned.Tx, error) {
	if s.pool == nil {
		return nil, TxBeginError(fmt.Errorf("no database connection"))
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, TxBeginError(err)
	}
	return &pgxTx{tx: tx}, nil
}

type pgxTx struct {
	tx pgx.Tx
}

type keyID struct {
	Key string
	ID  int64
}

// Lock waits for the advisory lock of the loader.
func (t *pgxTx) Lock(ctx context.Context) error {
	_, err := t.tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey)
	if err != nil {
		return LockError(err)
	}
	return nil
}

// References looks up tools, datasets and terms by lower-cased names.
// Repositories are few, all of them are returned.
func (t *pgxTx) References(
	ctx context.Context,
	as []canned.Analysis,
) (canned.References, error) {
	res := canned.NewReferences()
	var tools, datasets, terms []string
	for _, a := range as {
		tools = append(tools, canned.Key(a.ToolName))
		datasets = append(datasets, canned.Key(a.DatasetAccession))
		for _, attr := range a.Attributes {
			terms = append(terms, attr.Name)
		}
	}

	lookups := []struct {
		table  string
		column string
		keys   []string
		res    map[string]int64
	}{
		{"tool", "tool_name", tools, res.Tools},
		{"dataset", "dataset_accession", datasets, res.Datasets},
		{"term", "term_name", terms, res.Terms},
	}
	for _, l := range lookups {
		q := fmt.Sprintf(
			"SELECT lower(%[1]s), id FROM %[2]s WHERE lower(%[1]s) = ANY($1)",
			l.column, pgx.Identifier{l.table}.Sanitize(),
		)
		if err := t.collect(ctx, q, l.res, l.keys); err != nil {
			return res, LookupError(l.table, err)
		}
	}

	q := "SELECT repository_name, id FROM repository"
	repos := make(map[string]int64)
	if err := t.collect(ctx, q, repos); err != nil {
		return res, LookupError("repository", err)
	}
	for k, v := range repos {
		res.Repositories[canned.RepositoryKey(k)] = v
	}
	return res, nil
}

// collect reads (key, id) rows into res.
func (t *pgxTx) collect(
	ctx context.Context,
	query string,
	res map[string]int64,
	args ...any,
) error {
	rows, err := t.tx.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	kids, err := pgx.CollectRows(rows, pgx.RowToStructByPos[keyID])
	if err != nil {
		return err
	}
	for _, v := range kids {
		res[v.Key] = v.ID
	}
	return nil
}

// InsertDatasets inserts all datasets with one statement.
func (t *pgxTx) InsertDatasets(
	ctx context.Context,
	ds []canned.Dataset,
) ([]canned.Dataset, error) {
	if len(ds) == 0 {
		return nil, nil
	}
	n := len(ds)
	accs := make([]string, n)
	titles := make([]string, n)
	descs := make([]string, n)
	urls := make([]string, n)
	repos := make([]*int64, n)
	for i, d := range ds {
		accs[i] = d.Accession
		titles[i] = d.Title
		descs[i] = d.Description
		urls[i] = d.LandingURL
		repos[i] = d.RepositoryID
	}

	q := `
		INSERT INTO dataset (
			dataset_accession, dataset_title, dataset_description,
			dataset_landing_url, repository_fk
		)
		SELECT * FROM unnest(
			$1::text[], $2::text[], $3::text[], $4::text[], $5::bigint[]
		)
		RETURNING lower(dataset_accession), id
	`
	ids := make(map[string]int64, n)
	err := t.collect(ctx, q, ids, accs, titles, descs, urls, repos)
	if err != nil {
		return nil, InsertError("dataset", err)
	}

	res := make([]canned.Dataset, n)
	for i, d := range ds {
		id, ok := ids[canned.Key(d.Accession)]
		if !ok {
			return nil, InsertError("dataset",
				fmt.Errorf("no id returned for %s", d.Accession))
		}
		d.ID = id
		res[i] = d
	}
	return res, nil
}

// InsertAnalyses inserts analyses one by one with a prepared statement.
func (t *pgxTx) InsertAnalyses(
	ctx context.Context,
	as []canned.Analysis,
) ([]int64, error) {
	q := `
		INSERT INTO canned_analysis (
			dataset_fk, tool_fk, canned_analysis_url, canned_analysis_title,
			canned_analysis_description, canned_analysis_preview_url
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	if _, err := t.tx.Prepare(ctx, insertAnalysisStmt, q); err != nil {
		return nil, InsertError("canned_analysis", err)
	}

	res := make([]int64, len(as))
	for i, a := range as {
		err := t.tx.QueryRow(ctx, insertAnalysisStmt,
			a.DatasetID, a.ToolID, a.URL, a.Title, a.Description, a.PreviewURL,
		).Scan(&res[i])
		if err != nil {
			return nil, InsertError("canned_analysis", err)
		}
	}
	return res, nil
}

// InsertTerms inserts all terms with one statement.
func (t *pgxTx) InsertTerms(
	ctx context.Context,
	ts []canned.Term,
) ([]canned.Term, error) {
	if len(ts) == 0 {
		return nil, nil
	}
	names := make([]string, len(ts))
	descs := make([]string, len(ts))
	for i, v := range ts {
		names[i] = v.Name
		descs[i] = v.Description
	}

	q := `
		INSERT INTO term (term_name, term_description)
		SELECT * FROM unnest($1::text[], $2::text[])
		RETURNING lower(term_name), id
	`
	ids := make(map[string]int64, len(ts))
	if err := t.collect(ctx, q, ids, names, descs); err != nil {
		return nil, InsertError("term", err)
	}

	res := make([]canned.Term, len(ts))
	for i, v := range ts {
		id, ok := ids[canned.Key(v.Name)]
		if !ok {
			return nil, InsertError("term",
				fmt.Errorf("no id returned for %s", v.Name))
		}
		v.ID = id
		res[i] = v
	}
	return res, nil
}

// InsertMetadata upserts rows with a multi-row VALUES statement.
func (t *pgxTx) InsertMetadata(
	ctx context.Context,
	rows []canned.MetadataRow,
) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO canned_analysis_metadata
		(canned_analysis_fk, term_fk, value) VALUES `)
	args := make([]any, 0, len(rows)*3)
	for i, r := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, r.AnalysisID, r.TermID, r.Value)
	}
	sb.WriteString(` ON CONFLICT (canned_analysis_fk, term_fk)
		DO UPDATE SET value = EXCLUDED.value`)

	tag, err := t.tx.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, InsertError("canned_analysis_metadata", err)
	}
	return tag.RowsAffected(), nil
}

func (t *pgxTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return CommitError(err)
	}
	return nil
}

// Rollback aborts the transaction. Rolling back a closed transaction
// is not an error.
func (t *pgxTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
