package canned

import "context"

// Store opens transactions against the datasets2tools database.
type Store interface {
	// Begin starts the transaction that spans a whole reconciliation run.
	Begin(ctx context.Context) (Tx, error)
}

// Tx runs all reads and writes of one reconciliation run. Nothing is
// visible to other clients until Commit.
type Tx interface {
	// Lock takes the lock that keeps concurrent runs from creating the
	// same datasets or terms. It is released at Commit or Rollback.
	Lock(ctx context.Context) error

	// References finds tools, datasets and terms referenced by analyses,
	// and all repositories.
	References(ctx context.Context, as []Analysis) (References, error)

	// InsertDatasets inserts datasets and returns them with identifiers.
	InsertDatasets(ctx context.Context, ds []Dataset) ([]Dataset, error)

	// InsertAnalyses inserts analyses and returns their identifiers in
	// the same order.
	InsertAnalyses(ctx context.Context, as []Analysis) ([]int64, error)

	// InsertTerms inserts terms and returns them with identifiers.
	InsertTerms(ctx context.Context, ts []Term) ([]Term, error)

	// InsertMetadata upserts one chunk of metadata rows and returns the
	// number of affected rows.
	InsertMetadata(ctx context.Context, rows []MetadataRow) (int64, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Annotator describes datasets using an external catalog. It never fails:
// when the catalog is not available it returns Placeholder.
type Annotator interface {
	Annotate(ctx context.Context, accession string) Annotation
}

// Confirmer decides if a pending transaction should be committed.
type Confirmer interface {
	Confirm(ctx context.Context, s Summary) (bool, error)
}

// Stager keeps a copy of the rows created by a run for review.
type Stager interface {
	// Write saves staging tables.
	Write(st Staged) error

	// Complete marks staging tables as committed.
	Complete() error

	// Remove deletes staging tables of a rolled back run.
	Remove() error
}

// StagerFactory creates a Stager for the input with the given name.
type StagerFactory func(name string) Stager

// Staged contains all rows created by one run.
type Staged struct {
	Datasets []Dataset
	Analyses []Analysis
	Metadata []MetadataRow
	Terms    []Term
}

// Summary is shown to the operator before the commit decision.
type Summary struct {
	Name     string
	Analyses int
	Datasets int
	Terms    int
	Metadata int
}

// Summarize counts rows of staged tables.
func (s Staged) Summarize(name string) Summary {
	return Summary{
		Name:     name,
		Analyses: len(s.Analyses),
		Datasets: len(s.Datasets),
		Terms:    len(s.Terms),
		Metadata: len(s.Metadata),
	}
}
