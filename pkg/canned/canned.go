// Package canned contains the pure part of canned analysis reconciliation.
//
// A canned analysis is a precomputed result of an analysis tool applied to
// a dataset. Records come from external pipelines and refer to datasets and
// tools by name. Functions of this package validate records, resolve names
// to database identifiers, describe datasets that do not exist yet and
// flatten metadata into rows of the canned_analysis_metadata table.
//
// Every function returns new values and leaves its arguments untouched, so
// each reconciliation phase produces an immutable snapshot of the batch.
package canned

import (
	"strings"
)

// Record is one row of an input table as provided by an external pipeline.
type Record struct {
	// DatasetAccession identifies the dataset, for example GSE100.
	DatasetAccession string

	// ToolName must match an existing tool ignoring case.
	ToolName string

	// URL links to the analysis result.
	URL string

	Title       string
	Description string
	PreviewURL  string

	// Metadata is a JSON object with attributes of the analysis.
	Metadata string
}

// Attribute is one metadata entry of an analysis after normalization.
type Attribute struct {
	// Name is lower case and trimmed.
	Name string

	// Value is the string form of the JSON value.
	Value string
}

// Analysis is a Record accompanied by parsed metadata and identifiers
// resolved so far. Zero identifiers are not resolved yet.
type Analysis struct {
	Record

	// Attributes keep document order of the metadata keys.
	Attributes []Attribute

	ToolID    int64
	DatasetID int64

	// ID is assigned after the analysis is inserted.
	ID int64
}

// Dataset is a new dataset row created during reconciliation.
type Dataset struct {
	Accession   string
	Title       string
	Description string
	LandingURL  string

	// RepositoryID is nil when the repository is unknown.
	RepositoryID *int64

	ID int64
}

// Term is a new vocabulary term created during reconciliation.
type Term struct {
	Name        string
	Description string
	ID          int64
}

// MetadataRow is one row of the canned_analysis_metadata table.
type MetadataRow struct {
	AnalysisID int64
	TermID     int64
	Value      string
}

// References hold identifiers of rows that already exist in the database.
// Keys are normalized with Key, repository keys with RepositoryKey.
type References struct {
	Tools        map[string]int64
	Datasets     map[string]int64
	Terms        map[string]int64
	Repositories map[string]int64
}

// NewReferences creates References with empty maps.
func NewReferences() References {
	return References{
		Tools:        make(map[string]int64),
		Datasets:     make(map[string]int64),
		Terms:        make(map[string]int64),
		Repositories: make(map[string]int64),
	}
}

// Key normalizes tool names, dataset accessions and term names for
// case-insensitive matching.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RepositoryKey normalizes repository names. Repository names copied from
// web pages often contain non-breaking spaces.
func RepositoryKey(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return Key(s)
}
