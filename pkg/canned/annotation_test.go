package canned_test

import (
	"testing"

	"github.com/d2tools/d2tdb/pkg/canned"
	"github.com/stretchr/testify/assert"
)

func TestIsGEO(t *testing.T) {
	tests := []struct {
		acc string
		res bool
	}{
		{"GSE100", true},
		{"GDS5", true},
		{"gse100", true},
		{" GSE1", true},
		{"GSM1", false},
		{"E-MTAB-1", false},
		{"", false},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, canned.IsGEO(v.acc), v.acc)
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t,
		canned.Annotation{RepositoryName: canned.GEORepository},
		canned.Placeholder("GSE100"))
	assert.Equal(t, canned.Annotation{}, canned.Placeholder("E-MTAB-1"))
	assert.Equal(t,
		"https://www.ncbi.nlm.nih.gov/geo/query/acc.cgi?acc=GSE100",
		canned.GEOLandingURL("GSE100"))
}

func TestSummarize(t *testing.T) {
	st := canned.Staged{
		Datasets: make([]canned.Dataset, 1),
		Analyses: make([]canned.Analysis, 2),
		Metadata: make([]canned.MetadataRow, 4),
		Terms:    make([]canned.Term, 3),
	}
	assert.Equal(t, canned.Summary{
		Name: "x", Analyses: 2, Datasets: 1, Terms: 3, Metadata: 4,
	}, st.Summarize("x"))
}
