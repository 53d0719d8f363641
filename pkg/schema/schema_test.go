package schema_test

import (
	"testing"

	"github.com/d2tools/d2tdb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, []string{
		"tool",
		"repository",
		"dataset",
		"term",
		"canned_analysis",
		"canned_analysis_metadata",
	}, schema.TableNames())
}

func TestModelsImplementIndexGenerator(t *testing.T) {
	for _, m := range schema.AllModels() {
		_, ok := m.(schema.IndexGenerator)
		assert.True(t, ok, "%T", m)
	}
}

func TestIndexDDL(t *testing.T) {
	ddl := schema.IndexDDL()
	assert.Len(t, ddl, 4)

	tests := []struct {
		msg, stmt string
	}{
		{
			"tool",
			"CREATE UNIQUE INDEX IF NOT EXISTS idx_tool_tool_name_lower " +
				"ON tool (lower(tool_name));",
		},
		{
			"repository",
			"CREATE UNIQUE INDEX IF NOT EXISTS " +
				"idx_repository_repository_name_lower " +
				"ON repository (lower(repository_name));",
		},
		{
			"dataset",
			"CREATE UNIQUE INDEX IF NOT EXISTS " +
				"idx_dataset_dataset_accession_lower " +
				"ON dataset (lower(dataset_accession));",
		},
		{
			"term",
			"CREATE UNIQUE INDEX IF NOT EXISTS idx_term_term_name_lower " +
				"ON term (lower(term_name));",
		},
	}

	for _, v := range tests {
		assert.Contains(t, ddl, v.stmt, v.msg)
	}
}

func TestCannedAnalysisHasNoExtraIndexes(t *testing.T) {
	assert.Empty(t, schema.CannedAnalysis{}.IndexDDL())
	assert.Empty(t, schema.CannedAnalysisMetadata{}.IndexDDL())
}
