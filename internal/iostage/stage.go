// Package iostage writes tab-separated copies of the rows created by a
// reconciliation run. The files let operators review a run before and
// after the commit decision. A zero-byte "<name>-all.load" file marks
// staging tables of a committed run.
package iostage

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/d2tools/d2tdb/internal/iofs"
	"github.com/d2tools/d2tdb/pkg/canned"
)

const (
	fileDatasets = "datasets"
	fileAnalyses = "canned_analyses"
	fileMetadata = "canned_analysis_metadata"
	fileTerms    = "terms"
	fileSentinel = "all.load"
)

type stager struct {
	dir  string
	name string

	// written keeps tables created by this stager.
	written []string
}

// New creates a Stager that keeps files in Dir(stagingDir, name).
func New(stagingDir, name string) canned.Stager {
	return &stager{dir: Dir(stagingDir, name), name: name}
}

// NewFactory returns a canned.StagerFactory that creates stagers
// under stagingDir.
func NewFactory(stagingDir string) canned.StagerFactory {
	return func(name string) canned.Stager {
		return New(stagingDir, name)
	}
}

// Dir returns the directory of staging files for an input name.
func Dir(stagingDir, name string) string {
	return filepath.Join(stagingDir, name)
}

// Files returns paths of the staging tables in the order they are written.
func Files(stagingDir, name string) []string {
	dir := Dir(stagingDir, name)
	res := make([]string, 0, 4)
	for _, f := range []string{fileDatasets, fileAnalyses, fileMetadata, fileTerms} {
		res = append(res, filepath.Join(dir, name+"-"+f+".txt"))
	}
	return res
}

// Sentinel returns the path of the file that marks a committed run.
func Sentinel(stagingDir, name string) string {
	return filepath.Join(Dir(stagingDir, name), name+"-"+fileSentinel)
}

func (s *stager) path(file string) string {
	return filepath.Join(s.dir, s.name+"-"+file+".txt")
}

func (s *stager) sentinel() string {
	return filepath.Join(s.dir, s.name+"-"+fileSentinel)
}

// Write saves the four staging tables, replacing tables of earlier runs.
// The sentinel of an earlier commit is left alone.
func (s *stager) Write(st canned.Staged) error {
	if err := iofs.TouchDir(s.dir); err != nil {
		return err
	}

	tables := []struct {
		file string
		rows [][]string
	}{
		{fileDatasets, datasetRows(st.Datasets)},
		{fileAnalyses, analysisRows(st.Analyses)},
		{fileMetadata, metadataRows(st.Metadata)},
		{fileTerms, termRows(st.Terms)},
	}
	for _, t := range tables {
		path := s.path(t.file)
		s.written = append(s.written, path)
		if err := writeTSV(path, t.rows); err != nil {
			return err
		}
	}
	return nil
}

// Complete creates the sentinel file.
func (s *stager) Complete() error {
	f, err := os.Create(s.sentinel())
	if err != nil {
		return SentinelError(s.sentinel(), err)
	}
	if err = f.Close(); err != nil {
		return SentinelError(s.sentinel(), err)
	}
	return nil
}

// Remove deletes tables written by this stager. The directory is
// removed only when nothing else is left in it.
func (s *stager) Remove() error {
	for _, path := range s.written {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return CleanupError(path, err)
		}
	}
	s.written = nil

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return CleanupError(s.dir, err)
	}
	if len(entries) > 0 {
		return nil
	}
	if err = os.Remove(s.dir); err != nil {
		return CleanupError(s.dir, err)
	}
	return nil
}

func writeTSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err = w.WriteAll(rows); err != nil {
		f.Close()
		return WriteError(path, err)
	}
	if err = f.Close(); err != nil {
		return WriteError(path, err)
	}
	return nil
}

func id(i int64) string {
	return strconv.FormatInt(i, 10)
}

func datasetRows(ds []canned.Dataset) [][]string {
	res := [][]string{{
		"dataset_accession", "repository_fk", "dataset_title",
		"dataset_description", "dataset_landing_url", "id",
	}}
	for _, d := range ds {
		var repo string
		if d.RepositoryID != nil {
			repo = id(*d.RepositoryID)
		}
		res = append(res, []string{
			d.Accession, repo, d.Title, d.Description, d.LandingURL, id(d.ID),
		})
	}
	return res
}

func analysisRows(as []canned.Analysis) [][]string {
	res := [][]string{{
		"dataset_fk", "tool_fk", "canned_analysis_url", "id",
		"canned_analysis_title", "canned_analysis_description",
		"canned_analysis_preview_url",
	}}
	for _, a := range as {
		res = append(res, []string{
			id(a.DatasetID), id(a.ToolID), a.URL, id(a.ID),
			a.Title, a.Description, a.PreviewURL,
		})
	}
	return res
}

func metadataRows(ms []canned.MetadataRow) [][]string {
	res := [][]string{{"canned_analysis_fk", "term_fk", "value"}}
	for _, m := range ms {
		res = append(res, []string{id(m.AnalysisID), id(m.TermID), m.Value})
	}
	return res
}

func termRows(ts []canned.Term) [][]string {
	res := [][]string{{"term_name", "term_description", "id"}}
	for _, t := range ts {
		res = append(res, []string{t.Name, t.Description, id(t.ID)})
	}
	return res
}
