// Package ioinput reads tab-separated tables of canned analyses produced
// by external pipelines.
package ioinput

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/d2tools/d2tdb/pkg/canned"
)

const nameSuffix = "-canned_analyses"

// Column names of an input table.
const (
	ColDatasetAccession = "dataset_accession"
	ColToolName         = "tool_name"
	ColURL              = "canned_analysis_url"
	ColTitle            = "canned_analysis_title"
	ColDescription      = "canned_analysis_description"
	ColPreviewURL       = "canned_analysis_preview_url"
	ColMetadata         = "metadata"
)

var required = []string{ColDatasetAccession, ColToolName, ColURL, ColMetadata}

// aliases map column names of older pipelines.
var aliases = map[string]string{
	"geo_id": ColDatasetAccession,
	"link":   ColURL,
	"tool":   ColToolName,
}

// Table is an input table ready for reconciliation.
type Table struct {
	canned.Input

	// Dropped are line numbers of rows skipped for missing values.
	Dropped []int
}

// Name derives the name of an input from its file path: the base name
// without extension and without the "-canned_analyses" suffix.
func Name(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimSuffix(base, nameSuffix)
}

// ReadFile reads an input table from a file.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	defer f.Close()

	return Read(Name(path), f)
}

// Read parses a tab-separated table with a header row.
func Read(name string, r io.Reader) (*Table, error) {
	tr := csv.NewReader(r)
	tr.Comma = '\t'
	tr.LazyQuotes = true
	tr.FieldsPerRecord = -1

	header, err := tr.Read()
	if errors.Is(err, io.EOF) {
		return nil, EmptyError(name)
	}
	if err != nil {
		return nil, ReadError(name, err)
	}

	idx, err := columns(name, header)
	if err != nil {
		return nil, err
	}

	res := &Table{Input: canned.Input{Name: name}}
	seen := make(map[canned.Record]int)
	var dups []int
	for {
		row, err := tr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ReadError(name, err)
		}
		line, _ := tr.FieldPos(0)

		rec := toRecord(row, idx)
		if !complete(rec) {
			slog.Warn("Dropping row with missing values",
				"input", name, "line", line)
			res.Dropped = append(res.Dropped, line)
			continue
		}
		if first, ok := seen[rec]; ok {
			dups = append(dups, first, line)
			continue
		}
		seen[rec] = line
		res.Records = append(res.Records, rec)
	}

	if len(dups) > 0 {
		return nil, DuplicateError(name, dups)
	}
	if len(res.Records) == 0 {
		return nil, EmptyError(name)
	}
	return res, nil
}

func columns(name string, header []string) (map[string]int, error) {
	res := make(map[string]int)
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if v, ok := aliases[h]; ok {
			h = v
		}
		if _, ok := res[h]; ok {
			continue
		}
		res[h] = i
	}

	var missing []string
	for _, c := range required {
		if _, ok := res[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, ColumnsError(name, missing)
	}
	return res, nil
}

func toRecord(row []string, idx map[string]int) canned.Record {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	return canned.Record{
		DatasetAccession: get(ColDatasetAccession),
		ToolName:         get(ColToolName),
		URL:              get(ColURL),
		Title:            get(ColTitle),
		Description:      get(ColDescription),
		PreviewURL:       get(ColPreviewURL),
		Metadata:         get(ColMetadata),
	}
}

func complete(r canned.Record) bool {
	return r.DatasetAccession != "" &&
		r.ToolName != "" &&
		r.URL != "" &&
		r.Metadata != ""
}
