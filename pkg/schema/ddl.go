package schema

import "fmt"

// lowerUniqueIndex creates a unique index on lower(column) so that names
// that differ only by case cannot coexist.
func lowerUniqueIndex(table, column string) string {
	return fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_%s_lower ON %s (lower(%s));",
		table, column, table, column,
	)
}

func (Tool) TableName() string {
	return "tool"
}

func (t Tool) IndexDDL() []string {
	return []string{lowerUniqueIndex(t.TableName(), "tool_name")}
}

func (Repository) TableName() string {
	return "repository"
}

func (r Repository) IndexDDL() []string {
	return []string{lowerUniqueIndex(r.TableName(), "repository_name")}
}

func (Dataset) TableName() string {
	return "dataset"
}

func (d Dataset) IndexDDL() []string {
	return []string{lowerUniqueIndex(d.TableName(), "dataset_accession")}
}

func (Term) TableName() string {
	return "term"
}

func (t Term) IndexDDL() []string {
	return []string{lowerUniqueIndex(t.TableName(), "term_name")}
}

func (CannedAnalysis) TableName() string {
	return "canned_analysis"
}

func (CannedAnalysis) IndexDDL() []string {
	return nil
}

func (CannedAnalysisMetadata) TableName() string {
	return "canned_analysis_metadata"
}

func (CannedAnalysisMetadata) IndexDDL() []string {
	return nil
}
