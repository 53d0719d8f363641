package canned

import (
	"maps"
	"slices"
)

// Resolve attaches tool and dataset identifiers to every analysis.
// Datasets that are not in refs stay unresolved. Tools are never created,
// so any unknown tool name fails the whole batch and the error lists every
// unknown name.
func Resolve(as []Analysis, refs References) ([]Analysis, error) {
	res := make([]Analysis, len(as))
	missing := make(map[string]struct{})
	for i, a := range as {
		id, ok := refs.Tools[Key(a.ToolName)]
		if !ok {
			missing[Key(a.ToolName)] = struct{}{}
		}
		a.ToolID = id
		a.DatasetID = refs.Datasets[Key(a.DatasetAccession)]
		res[i] = a
	}

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for k := range missing {
			names = append(names, k)
		}
		slices.Sort(names)
		return nil, MissingToolsError(names)
	}
	return res, nil
}

// MissingDatasets returns accessions of unresolved datasets, each once,
// in the order of first appearance.
func MissingDatasets(as []Analysis) []string {
	var res []string
	seen := make(map[string]struct{})
	for _, a := range as {
		if a.DatasetID != 0 {
			continue
		}
		k := Key(a.DatasetAccession)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, a.DatasetAccession)
	}
	return res
}

// NewDataset describes a dataset before insertion. The repository is
// looked up by its normalized name.
func NewDataset(
	accession string,
	ann Annotation,
	repositories map[string]int64,
) Dataset {
	res := Dataset{
		Accession:   accession,
		Title:       ann.Title,
		Description: ann.Summary,
		LandingURL:  ann.LandingURL,
	}
	if id, ok := repositories[RepositoryKey(ann.RepositoryName)]; ok {
		res.RepositoryID = &id
	}
	return res
}

// WithDatasetIDs returns analyses where unresolved datasets get the
// identifiers of newly inserted datasets.
func WithDatasetIDs(as []Analysis, ds []Dataset) []Analysis {
	ids := make(map[string]int64, len(ds))
	for _, d := range ds {
		ids[Key(d.Accession)] = d.ID
	}
	res := make([]Analysis, len(as))
	for i, a := range as {
		if a.DatasetID == 0 {
			a.DatasetID = ids[Key(a.DatasetAccession)]
		}
		res[i] = a
	}
	return res
}

// Unresolved returns analyses that still have no tool or dataset.
func Unresolved(as []Analysis) []Analysis {
	var res []Analysis
	for _, a := range as {
		if a.ToolID == 0 || a.DatasetID == 0 {
			res = append(res, a)
		}
	}
	return res
}

// WithIDs returns analyses with identifiers assigned after insertion.
// The ids slice must have the same length as as.
func WithIDs(as []Analysis, ids []int64) []Analysis {
	res := make([]Analysis, len(as))
	for i, a := range as {
		a.ID = ids[i]
		res[i] = a
	}
	return res
}

// MissingTerms returns new terms for attribute names not found in terms,
// each once, in the order of first appearance.
func MissingTerms(as []Analysis, terms map[string]int64) []Term {
	var res []Term
	seen := make(map[string]struct{})
	for _, a := range as {
		for _, attr := range a.Attributes {
			if _, ok := terms[attr.Name]; ok {
				continue
			}
			if _, ok := seen[attr.Name]; ok {
				continue
			}
			seen[attr.Name] = struct{}{}
			res = append(res, Term{Name: attr.Name})
		}
	}
	return res
}

// TermIDs merges existing term identifiers with identifiers of new terms.
func TermIDs(existing map[string]int64, added []Term) map[string]int64 {
	res := make(map[string]int64, len(existing)+len(added))
	maps.Copy(res, existing)
	for _, t := range added {
		res[Key(t.Name)] = t.ID
	}
	return res
}

// Flatten converts attributes of inserted analyses into metadata rows.
// It returns the names of attributes without a term identifier.
func Flatten(as []Analysis, terms map[string]int64) ([]MetadataRow, []string) {
	var res []MetadataRow
	var unknown []string
	for _, a := range as {
		for _, attr := range a.Attributes {
			id, ok := terms[attr.Name]
			if !ok {
				if !slices.Contains(unknown, attr.Name) {
					unknown = append(unknown, attr.Name)
				}
				continue
			}
			res = append(res, MetadataRow{
				AnalysisID: a.ID,
				TermID:     id,
				Value:      attr.Value,
			})
		}
	}
	return res, unknown
}

// Chunks splits metadata rows into slices of at most size rows.
func Chunks(rows []MetadataRow, size int) [][]MetadataRow {
	if size <= 0 {
		size = len(rows)
	}
	var res [][]MetadataRow
	for size > 0 && len(rows) > 0 {
		n := min(size, len(rows))
		res = append(res, rows[:n:n])
		rows = rows[n:]
	}
	return res
}
