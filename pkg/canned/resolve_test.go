package canned_test

import (
	"testing"

	"github.com/d2tools/d2tdb/pkg/canned"
	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRefs() canned.References {
	refs := canned.NewReferences()
	refs.Tools["enrichr"] = 1
	refs.Tools["paea"] = 2
	refs.Datasets["gse1"] = 10
	refs.Terms["organism"] = 100
	refs.Repositories[canned.GEORepository] = 7
	return refs
}

func analysis(acc, tool string, attrs ...canned.Attribute) canned.Analysis {
	return canned.Analysis{
		Record: canned.Record{
			DatasetAccession: acc,
			ToolName:         tool,
			URL:              "https://example.org/" + acc + "/" + tool,
		},
		Attributes: attrs,
	}
}

func TestResolve(t *testing.T) {
	t.Run("attaches tools and known datasets", func(t *testing.T) {
		as := []canned.Analysis{
			analysis("GSE1", "Enrichr"),
			analysis("gse2", "PAEA"),
		}
		res, err := canned.Resolve(as, testRefs())
		require.NoError(t, err)
		assert.Equal(t, int64(1), res[0].ToolID)
		assert.Equal(t, int64(10), res[0].DatasetID)
		assert.Equal(t, int64(2), res[1].ToolID)
		assert.Equal(t, int64(0), res[1].DatasetID)

		// input stays untouched
		assert.Equal(t, int64(0), as[0].ToolID)
	})

	t.Run("lists every unknown tool", func(t *testing.T) {
		as := []canned.Analysis{
			analysis("GSE1", "Zeta"),
			analysis("GSE1", "Enrichr"),
			analysis("GSE1", "alpha"),
			analysis("GSE2", "ZETA"),
		}
		res, err := canned.Resolve(as, testRefs())
		require.Error(t, err)
		assert.Nil(t, res)

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, "Error should be of type *gn.Error")
		assert.Equal(t, errcode.ReconcileMissingToolError, gnErr.Code)
		assert.Equal(t, []any{"alpha, zeta"}, gnErr.Vars)
	})
}

func TestMissingDatasets(t *testing.T) {
	as := []canned.Analysis{
		{Record: canned.Record{DatasetAccession: "GSE3"}},
		{Record: canned.Record{DatasetAccession: "GSE1"}, DatasetID: 10},
		{Record: canned.Record{DatasetAccession: "GSE2"}},
		{Record: canned.Record{DatasetAccession: "gse3"}},
	}
	assert.Equal(t, []string{"GSE3", "GSE2"}, canned.MissingDatasets(as))
	assert.Nil(t, canned.MissingDatasets(nil))
}

func TestNewDataset(t *testing.T) {
	repos := map[string]int64{canned.GEORepository: 7}

	ann := canned.Annotation{
		Title:          "Title",
		Summary:        "Summary",
		LandingURL:     canned.GEOLandingURL("GSE2"),
		RepositoryName: "Gene\u00a0Expression Omnibus",
	}
	d := canned.NewDataset("GSE2", ann, repos)
	assert.Equal(t, "GSE2", d.Accession)
	assert.Equal(t, "Title", d.Title)
	assert.Equal(t, "Summary", d.Description)
	require.NotNil(t, d.RepositoryID)
	assert.Equal(t, int64(7), *d.RepositoryID)

	d = canned.NewDataset("E-MTAB-1", canned.Placeholder("E-MTAB-1"), repos)
	assert.Nil(t, d.RepositoryID)
	assert.Empty(t, d.Title)
}

func TestWithDatasetIDs(t *testing.T) {
	as := []canned.Analysis{
		analysis("GSE2", "Enrichr"),
		analysis("gse2", "PAEA"),
		{Record: canned.Record{DatasetAccession: "GSE1"}, DatasetID: 10},
	}
	ds := []canned.Dataset{{Accession: "GSE2", ID: 11}}

	res := canned.WithDatasetIDs(as, ds)
	assert.Equal(t, int64(11), res[0].DatasetID)
	assert.Equal(t, int64(11), res[1].DatasetID)
	assert.Equal(t, int64(10), res[2].DatasetID)
	assert.Len(t, canned.Unresolved([]canned.Analysis{
		{ToolID: 1, DatasetID: 11},
		{ToolID: 1},
		{DatasetID: 11},
	}), 2)
}

func TestTermsAndFlatten(t *testing.T) {
	as := []canned.Analysis{
		analysis("GSE1", "Enrichr",
			canned.Attribute{Name: "organism", Value: "human"},
			canned.Attribute{Name: "cell_type", Value: "fibroblast"},
		),
		analysis("GSE1", "PAEA",
			canned.Attribute{Name: "cell_type", Value: "neuron"},
			canned.Attribute{Name: "geneset", Value: "up"},
		),
	}
	as = canned.WithIDs(as, []int64{501, 502})
	existing := testRefs().Terms

	missing := canned.MissingTerms(as, existing)
	assert.Equal(t, []canned.Term{{Name: "cell_type"}, {Name: "geneset"}},
		missing)

	_, unknown := canned.Flatten(as, existing)
	assert.Equal(t, []string{"cell_type", "geneset"}, unknown)

	missing[0].ID = 200
	missing[1].ID = 201
	terms := canned.TermIDs(existing, missing)
	assert.Len(t, existing, 1)

	rows, unknown := canned.Flatten(as, terms)
	assert.Empty(t, unknown)
	assert.Equal(t, []canned.MetadataRow{
		{AnalysisID: 501, TermID: 100, Value: "human"},
		{AnalysisID: 501, TermID: 200, Value: "fibroblast"},
		{AnalysisID: 502, TermID: 200, Value: "neuron"},
		{AnalysisID: 502, TermID: 201, Value: "up"},
	}, rows)
}

func TestChunks(t *testing.T) {
	rows := make([]canned.MetadataRow, 5)
	tests := []struct {
		msg  string
		size int
		lens []int
	}{
		{"even split", 5, []int{5}},
		{"remainder", 2, []int{2, 2, 1}},
		{"bigger than input", 10, []int{5}},
		{"non-positive size", 0, []int{5}},
	}

	for _, v := range tests {
		var lens []int
		for _, c := range canned.Chunks(rows, v.size) {
			lens = append(lens, len(c))
		}
		assert.Equal(t, v.lens, lens, v.msg)
	}
	assert.Empty(t, canned.Chunks(nil, 3))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "gse100", canned.Key(" GSE100 "))
	assert.Equal(t, "gene expression omnibus",
		canned.RepositoryKey("Gene\u00a0Expression\u00a0Omnibus\u00a0"))
}
