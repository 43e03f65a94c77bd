// Package emit builds the MySQL-dialect statements of an export: table
// creation, row data and relationship constraints. Statements are built
// as text because the destination is a SQL document, not a live
// connection, and the document format is stable down to the byte.
package emit

import "github.com/jetware/jet2my/pkg/utils"

// Options carries the per-export tuning knobs that influence how
// individual columns and tables are emitted.
type Options struct {
	// DateOnlyColumns lists column names whose values carry no time
	// of day. They map to DATE instead of DATETIME and their
	// literals drop the time portion.
	DateOnlyColumns []string
	// SkipDataTables lists tables whose rows are never exported,
	// even when the export includes data.
	SkipDataTables []string
}

// IsDateOnly reports whether the named column is date-only. Matching is
// case-insensitive, like column names in the source.
func (o Options) IsDateOnly(column string) bool {
	return utils.ContainsFold(o.DateOnlyColumns, column)
}

// SkipData reports whether the named table's rows are excluded from
// the export.
func (o Options) SkipData(table string) bool {
	return utils.ContainsFold(o.SkipDataTables, table)
}
