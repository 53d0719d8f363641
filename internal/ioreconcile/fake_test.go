package ioreconcile_test

import (
	"context"
	"errors"
	"maps"

	"github.com/d2tools/d2tdb/pkg/canned"
)

// fakeDB keeps committed rows in memory.
type fakeDB struct {
	tools    map[string]int64
	repos    map[string]int64
	datasets map[string]int64
	terms    map[string]int64
	analyses []canned.Analysis
	metadata map[[2]int64]string
	nextID   int64

	// failOn makes the named Tx method return an error.
	failOn string

	begun, commits, rollbacks int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		tools:    map[string]int64{"enrichr": 1, "paea": 2},
		repos:    map[string]int64{canned.GEORepository: 1},
		datasets: make(map[string]int64),
		terms:    map[string]int64{"organism": 1},
		metadata: make(map[[2]int64]string),
		nextID:   100,
	}
}

func (db *fakeDB) Begin(context.Context) (canned.Tx, error) {
	db.begun++
	return &fakeTx{
		db:       db,
		datasets: maps.Clone(db.datasets),
		terms:    maps.Clone(db.terms),
		metadata: maps.Clone(db.metadata),
	}, nil
}

var errFake = errors.New("fake failure")

type fakeTx struct {
	db       *fakeDB
	datasets map[string]int64
	terms    map[string]int64
	analyses []canned.Analysis
	metadata map[[2]int64]string
	closed   bool
}

func (t *fakeTx) fail(method string) error {
	if t.db.failOn == method {
		return errFake
	}
	return nil
}

func (t *fakeTx) id() int64 {
	t.db.nextID++
	return t.db.nextID
}

func (t *fakeTx) Lock(context.Context) error {
	return t.fail("Lock")
}

func (t *fakeTx) References(
	_ context.Context,
	as []canned.Analysis,
) (canned.References, error) {
	res := canned.NewReferences()
	if err := t.fail("References"); err != nil {
		return res, err
	}
	maps.Copy(res.Repositories, t.db.repos)
	for _, a := range as {
		if id, ok := t.db.tools[canned.Key(a.ToolName)]; ok {
			res.Tools[canned.Key(a.ToolName)] = id
		}
		if id, ok := t.datasets[canned.Key(a.DatasetAccession)]; ok {
			res.Datasets[canned.Key(a.DatasetAccession)] = id
		}
		for _, attr := range a.Attributes {
			if id, ok := t.terms[attr.Name]; ok {
				res.Terms[attr.Name] = id
			}
		}
	}
	return res, nil
}

func (t *fakeTx) InsertDatasets(
	_ context.Context,
	ds []canned.Dataset,
) ([]canned.Dataset, error) {
	if err := t.fail("InsertDatasets"); err != nil {
		return nil, err
	}
	res := make([]canned.Dataset, len(ds))
	for i, d := range ds {
		d.ID = t.id()
		t.datasets[canned.Key(d.Accession)] = d.ID
		res[i] = d
	}
	return res, nil
}

func (t *fakeTx) InsertAnalyses(
	_ context.Context,
	as []canned.Analysis,
) ([]int64, error) {
	if err := t.fail("InsertAnalyses"); err != nil {
		return nil, err
	}
	res := make([]int64, len(as))
	for i, a := range as {
		res[i] = t.id()
		a.ID = res[i]
		t.analyses = append(t.analyses, a)
	}
	return res, nil
}

func (t *fakeTx) InsertTerms(
	_ context.Context,
	ts []canned.Term,
) ([]canned.Term, error) {
	if err := t.fail("InsertTerms"); err != nil {
		return nil, err
	}
	res := make([]canned.Term, len(ts))
	for i, v := range ts {
		v.ID = t.id()
		t.terms[canned.Key(v.Name)] = v.ID
		res[i] = v
	}
	return res, nil
}

func (t *fakeTx) InsertMetadata(
	_ context.Context,
	rows []canned.MetadataRow,
) (int64, error) {
	if err := t.fail("InsertMetadata"); err != nil {
		return 0, err
	}
	for _, r := range rows {
		t.metadata[[2]int64{r.AnalysisID, r.TermID}] = r.Value
	}
	return int64(len(rows)), nil
}

func (t *fakeTx) Commit(context.Context) error {
	if err := t.fail("Commit"); err != nil {
		return err
	}
	t.closed = true
	t.db.commits++
	t.db.datasets = t.datasets
	t.db.terms = t.terms
	t.db.metadata = t.metadata
	t.db.analyses = append(t.db.analyses, t.analyses...)
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.db.rollbacks++
	return nil
}

// fakeAnnotator describes GEO datasets without network access.
type fakeAnnotator struct{}

func (fakeAnnotator) Annotate(_ context.Context, acc string) canned.Annotation {
	res := canned.Placeholder(acc)
	if canned.IsGEO(acc) {
		res.Title = "Title of " + acc
		res.Summary = "Summary of " + acc
		res.LandingURL = canned.GEOLandingURL(acc)
	}
	return res
}

type fakeConfirmer struct {
	answer bool
	err    error
	seen   []canned.Summary
}

func (c *fakeConfirmer) Confirm(
	_ context.Context,
	s canned.Summary,
) (bool, error) {
	c.seen = append(c.seen, s)
	return c.answer, c.err
}

// fakeStager records calls and fails Write when err is set.
type fakeStager struct {
	err              error
	writes, removals int
	completed        bool
}

func (s *fakeStager) factory(string) canned.Stager {
	return s
}

func (s *fakeStager) Write(canned.Staged) error {
	s.writes++
	return s.err
}

func (s *fakeStager) Complete() error {
	s.completed = true
	return nil
}

func (s *fakeStager) Remove() error {
	s.removals++
	return nil
}
