package ioreconcile

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/d2tools/d2tdb/internal/ioannot"
	"github.com/d2tools/d2tdb/pkg/canned"
	"github.com/d2tools/d2tdb/pkg/config"
	"github.com/d2tools/d2tdb/pkg/d2tdb"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

type coordinator struct {
	cfg       *config.Config
	store     canned.Store
	annotator canned.Annotator
	confirmer canned.Confirmer
	stagers   canned.StagerFactory
	progress  bool
}

// New creates a Reconciler. Every run gets its own Stager from stagers.
func New(
	cfg *config.Config,
	store canned.Store,
	annotator canned.Annotator,
	confirmer canned.Confirmer,
	stagers canned.StagerFactory,
) d2tdb.Reconciler {
	return &coordinator{
		cfg:       cfg,
		store:     store,
		annotator: annotator,
		confirmer: confirmer,
		stagers:   stagers,
		progress:  isatty.IsTerminal(os.Stderr.Fd()),
	}
}

// run keeps the state of one reconciliation.
type run struct {
	log *slog.Logger
	res canned.Result
}

func (r *run) advance(next canned.State) {
	if !r.res.State.Next(next) {
		panic(fmt.Sprintf("transition %s -> %s", r.res.State, next))
	}
	r.log.Debug("State changed", "from", r.res.State.String(), "to", next.String())
	r.res.State = next
}

// Reconcile runs a reconciliation of one input table in a single
// transaction. Errors that happen before the transaction opens leave
// the result in StateOpen. Any later error rolls the transaction back
// and removes staging tables written by the run.
func (c *coordinator) Reconcile(
	ctx context.Context,
	in canned.Input,
) (canned.Result, error) {
	id := uuid.NewString()
	r := &run{
		log: slog.With("run_id", id, "input", in.Name),
		res: canned.Result{RunID: id, State: canned.StateOpen},
	}

	as, err := canned.Prepare(in.Records)
	if err != nil {
		return r.res, err
	}

	tx, err := c.store.Begin(ctx)
	if err != nil {
		return r.res, err
	}
	r.log.Info("Transaction started", "records", len(as))

	stager := c.stagers(in.Name)
	committed := false
	defer func() {
		if committed {
			return
		}
		cleanCtx := context.WithoutCancel(ctx)
		if err := tx.Rollback(cleanCtx); err != nil {
			r.log.Error("Rollback failed", "error", err)
		}
		if err := stager.Remove(); err != nil {
			r.log.Error("Cannot remove staging tables", "error", err)
		}
		r.advance(canned.StateRolledBack)
		r.log.Info("Transaction rolled back")
	}()

	staged, err := c.upsert(ctx, r, tx, as)
	if err != nil {
		return r.res, err
	}
	r.res.Summary = staged.Summarize(in.Name)

	if err = stager.Write(staged); err != nil {
		return r.res, err
	}
	r.advance(canned.StatePending)

	ok, err := c.confirmer.Confirm(ctx, r.res.Summary)
	if err != nil {
		return r.res, err
	}
	if !ok {
		return r.res, AbortedError(in.Name)
	}

	if err = tx.Commit(ctx); err != nil {
		return r.res, err
	}
	committed = true
	r.advance(canned.StateCommitted)
	r.log.Info("Transaction committed",
		"analyses", r.res.Summary.Analyses,
		"datasets", r.res.Summary.Datasets,
		"terms", r.res.Summary.Terms,
		"metadata", r.res.Summary.Metadata,
	)

	if err = stager.Complete(); err != nil {
		return r.res, err
	}
	return r.res, nil
}

// upsert writes datasets, analyses, terms and metadata on the open
// transaction.
func (c *coordinator) upsert(
	ctx context.Context,
	r *run,
	tx canned.Tx,
	as []canned.Analysis,
) (canned.Staged, error) {
	var res canned.Staged

	if err := tx.Lock(ctx); err != nil {
		return res, err
	}

	refs, err := tx.References(ctx, as)
	if err != nil {
		return res, err
	}
	if as, err = canned.Resolve(as, refs); err != nil {
		return res, err
	}
	r.advance(canned.StateValidated)

	accs := canned.MissingDatasets(as)
	if len(accs) > 0 {
		r.log.Info("Annotating new datasets", "datasets", len(accs))
		anns := ioannot.AnnotateAll(
			ctx, c.annotator, accs, c.cfg.JobsNumber, c.progress,
		)
		ds := make([]canned.Dataset, len(accs))
		for i, acc := range accs {
			ds[i] = canned.NewDataset(acc, anns[i], refs.Repositories)
			if ds[i].RepositoryID == nil {
				r.log.Warn("Dataset has no known repository",
					"accession", acc,
					"repository", anns[i].RepositoryName,
				)
			}
		}
		if res.Datasets, err = tx.InsertDatasets(ctx, ds); err != nil {
			return res, err
		}
		as = canned.WithDatasetIDs(as, res.Datasets)
	}
	if u := canned.Unresolved(as); len(u) > 0 {
		return res, InsertError("dataset",
			fmt.Errorf("dataset %s has no id", u[0].DatasetAccession))
	}

	ids, err := tx.InsertAnalyses(ctx, as)
	if err != nil {
		return res, err
	}
	res.Analyses = canned.WithIDs(as, ids)

	if ts := canned.MissingTerms(res.Analyses, refs.Terms); len(ts) > 0 {
		if res.Terms, err = tx.InsertTerms(ctx, ts); err != nil {
			return res, err
		}
	}
	terms := canned.TermIDs(refs.Terms, res.Terms)

	rows, unknown := canned.Flatten(res.Analyses, terms)
	if len(unknown) > 0 {
		return res, InsertError("term",
			fmt.Errorf("term %s has no id", unknown[0]))
	}
	res.Metadata = rows

	var affected int64
	for _, chunk := range canned.Chunks(rows, c.cfg.Database.BatchSize) {
		n, err := tx.InsertMetadata(ctx, chunk)
		if err != nil {
			return res, err
		}
		affected += n
	}
	r.log.Info("Rows inserted",
		"datasets", len(res.Datasets),
		"analyses", len(res.Analyses),
		"terms", len(res.Terms),
		"metadata", affected,
	)
	r.advance(canned.StateUpserted)
	return res, nil
}
