package canned

import (
	"strings"
)

const (
	// GEORepository is the normalized name of the Gene Expression Omnibus
	// repository.
	GEORepository = "gene expression omnibus"

	geoLandingURL = "https://www.ncbi.nlm.nih.gov/geo/query/acc.cgi?acc="
)

var geoPrefixes = []string{"GDS", "GSE"}

// Annotation describes a dataset using an external catalog.
type Annotation struct {
	Title          string
	Summary        string
	LandingURL     string
	RepositoryName string
}

// IsGEO checks if an accession belongs to Gene Expression Omnibus.
func IsGEO(accession string) bool {
	acc := strings.ToUpper(strings.TrimSpace(accession))
	for _, p := range geoPrefixes {
		if strings.HasPrefix(acc, p) {
			return true
		}
	}
	return false
}

// GEOLandingURL returns the public page of a GEO dataset.
func GEOLandingURL(accession string) string {
	return geoLandingURL + strings.TrimSpace(accession)
}

// Placeholder is the annotation used when the catalog cannot describe a
// dataset. GEO datasets keep their repository, others get nothing.
func Placeholder(accession string) Annotation {
	if IsGEO(accession) {
		return Annotation{RepositoryName: GEORepository}
	}
	return Annotation{}
}
