package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Referenced tables come before the tables that refer to them.
func AllModels() []any {
	return []any{
		&Tool{},
		&Repository{},
		&Dataset{},
		&Term{},
		&CannedAnalysis{},
		&CannedAnalysisMetadata{},
	}
}

// TableNames returns names of all tables in creation order.
func TableNames() []string {
	models := AllModels()
	res := make([]string, 0, len(models))
	for _, m := range models {
		res = append(res, m.(IndexGenerator).TableName())
	}
	return res
}

// IndexDDL collects statements for indexes that GORM tags cannot
// describe.
func IndexDDL() []string {
	var res []string
	for _, m := range AllModels() {
		res = append(res, m.(IndexGenerator).IndexDDL()...)
	}
	return res
}

// Migrate runs GORM AutoMigrate to create the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
