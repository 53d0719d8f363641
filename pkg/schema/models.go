// Package schema provides database schema models for the datasets2tools
// database. Table names are singular to stay compatible with existing
// datasets2tools clients.
package schema

// IndexGenerator defines models that need indexes GORM tags cannot express.
type IndexGenerator interface {
	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// Tool is an analysis tool, for example Enrichr or PAEA.
// Tools are seeded, never created while loading canned analyses.
type Tool struct {
	ID int64 `db:"id" gorm:"primaryKey"`

	// Name is unique ignoring case.
	Name string `db:"tool_name" gorm:"column:tool_name;type:text;not null"`

	IconURL string `db:"tool_icon_url" gorm:"column:tool_icon_url;type:text"`

	HomepageURL string `db:"tool_homepage_url" gorm:"column:tool_homepage_url;type:text"`

	Description string `db:"tool_description" gorm:"column:tool_description;type:text"`
}

// Repository is a public catalog that hosts datasets, for example
// Gene Expression Omnibus.
type Repository struct {
	ID int64 `db:"id" gorm:"primaryKey"`

	// Name is unique ignoring case.
	Name string `db:"repository_name" gorm:"column:repository_name;type:text;not null"`

	IconURL string `db:"repository_icon_url" gorm:"column:repository_icon_url;type:text"`

	Description string `db:"repository_description" gorm:"column:repository_description;type:text"`

	HomepageURL string `db:"repository_homepage_url" gorm:"column:repository_homepage_url;type:text"`
}

// Dataset is a scientific dataset identified by its accession.
type Dataset struct {
	ID int64 `db:"id" gorm:"primaryKey"`

	// Accession is unique ignoring case, for example GSE100.
	Accession string `db:"dataset_accession" gorm:"column:dataset_accession;type:text;not null"`

	Title string `db:"dataset_title" gorm:"column:dataset_title;type:text"`

	Description string `db:"dataset_description" gorm:"column:dataset_description;type:text"`

	LandingURL string `db:"dataset_landing_url" gorm:"column:dataset_landing_url;type:text"`

	// RepositoryFK is NULL when the hosting repository is unknown.
	RepositoryFK *int64 `db:"repository_fk" gorm:"column:repository_fk;index"`

	Repository *Repository `gorm:"foreignKey:RepositoryFK;references:ID;constraint:OnDelete:SET NULL"`
}

// Term is a metadata attribute name, for example "organism".
type Term struct {
	ID int64 `db:"id" gorm:"primaryKey"`

	// Name is lower case and unique ignoring case.
	Name string `db:"term_name" gorm:"column:term_name;type:text;not null"`

	Description string `db:"term_description" gorm:"column:term_description;type:text"`
}

// CannedAnalysis is a precomputed result of a tool applied to a dataset.
type CannedAnalysis struct {
	ID int64 `db:"id" gorm:"primaryKey"`

	DatasetFK int64 `db:"dataset_fk" gorm:"column:dataset_fk;not null;index"`

	ToolFK int64 `db:"tool_fk" gorm:"column:tool_fk;not null;index"`

	URL string `db:"canned_analysis_url" gorm:"column:canned_analysis_url;type:text;not null"`

	Title string `db:"canned_analysis_title" gorm:"column:canned_analysis_title;type:text"`

	Description string `db:"canned_analysis_description" gorm:"column:canned_analysis_description;type:text"`

	PreviewURL string `db:"canned_analysis_preview_url" gorm:"column:canned_analysis_preview_url;type:text"`

	Dataset *Dataset `gorm:"foreignKey:DatasetFK;references:ID;constraint:OnDelete:RESTRICT"`

	Tool *Tool `gorm:"foreignKey:ToolFK;references:ID;constraint:OnDelete:RESTRICT"`
}

// CannedAnalysisMetadata is one attribute value of a canned analysis.
// There is at most one value per analysis and term.
type CannedAnalysisMetadata struct {
	ID int64 `db:"id" gorm:"primaryKey"`

	CannedAnalysisFK int64 `db:"canned_analysis_fk" gorm:"column:canned_analysis_fk;not null;uniqueIndex:idx_canned_analysis_metadata_pair,priority:1"`

	TermFK int64 `db:"term_fk" gorm:"column:term_fk;not null;uniqueIndex:idx_canned_analysis_metadata_pair,priority:2;index"`

	Value string `db:"value" gorm:"column:value;type:text"`

	CannedAnalysis *CannedAnalysis `gorm:"foreignKey:CannedAnalysisFK;references:ID;constraint:OnDelete:CASCADE"`

	Term *Term `gorm:"foreignKey:TermFK;references:ID;constraint:OnDelete:RESTRICT"`
}
