package emit

import (
	"fmt"

	"github.com/jetware/jet2my/pkg/catalog"
)

// ColumnType maps a source column to its destination type clause: the
// type plus its nullability and default. The returned bool is false
// when the column's family has no explicit mapping and the VARCHAR(255)
// fallback was used, so callers can warn about it.
//
// Counter columns override whatever their family mapped to, and the
// primary key column carries its PRIMARY KEY attribute inline in the
// column definition.
func ColumnType(col catalog.Column, primaryKey string, opts Options) (string, bool) {
	clause, mapped := familyClause(col, opts)
	if col.AutoIncrement && col.Fixed {
		clause = "INT(11) NOT NULL AUTO_INCREMENT"
	}
	if primaryKey != "" && col.Name == primaryKey {
		clause += " PRIMARY KEY"
	}
	return clause, mapped
}

func familyClause(col catalog.Column, opts Options) (string, bool) {
	switch col.Type {
	case catalog.Boolean:
		return "BIT(1) DEFAULT 0", true
	case catalog.Byte, catalog.Integer, catalog.Long:
		return "INT(11) DEFAULT 0", true
	case catalog.Currency, catalog.Single, catalog.Double:
		return "DOUBLE DEFAULT 0", true
	case catalog.DateTime:
		if opts.IsDateOnly(col.Name) {
			return "DATE NULL DEFAULT NULL", true
		}
		return "DATETIME NULL DEFAULT NULL", true
	case catalog.Text:
		// Zero-length-friendly text admits NULL; text that rejects
		// the empty string is NOT NULL.
		if col.AllowZeroLength {
			return fmt.Sprintf("VARCHAR(%d) NULL DEFAULT NULL", col.Size), true
		}
		return fmt.Sprintf("VARCHAR(%d) NOT NULL", col.Size), true
	case catalog.Memo:
		return "LONGTEXT", true
	}
	return "VARCHAR(255)", false
}
