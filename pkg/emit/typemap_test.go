package emit

import (
	"testing"

	"github.com/jetware/jet2my/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestColumnTypeFamilies(t *testing.T) {
	clause, mapped := ColumnType(catalog.Column{Name: "Active", Type: catalog.Boolean}, "", Options{})
	assert.True(t, mapped)
	assert.Equal(t, "BIT(1) DEFAULT 0", clause)

	clause, _ = ColumnType(catalog.Column{Name: "n", Type: catalog.Integer}, "", Options{})
	assert.Equal(t, "INT(11) DEFAULT 0", clause)
	clause, _ = ColumnType(catalog.Column{Name: "n", Type: catalog.Long}, "", Options{})
	assert.Equal(t, "INT(11) DEFAULT 0", clause)
	clause, _ = ColumnType(catalog.Column{Name: "n", Type: catalog.Byte}, "", Options{})
	assert.Equal(t, "INT(11) DEFAULT 0", clause)

	clause, _ = ColumnType(catalog.Column{Name: "Salary", Type: catalog.Currency}, "", Options{})
	assert.Equal(t, "DOUBLE DEFAULT 0", clause)
	clause, _ = ColumnType(catalog.Column{Name: "ratio", Type: catalog.Single}, "", Options{})
	assert.Equal(t, "DOUBLE DEFAULT 0", clause)
	clause, _ = ColumnType(catalog.Column{Name: "ratio", Type: catalog.Double}, "", Options{})
	assert.Equal(t, "DOUBLE DEFAULT 0", clause)

	clause, _ = ColumnType(catalog.Column{Name: "ModifiedAt", Type: catalog.DateTime}, "", Options{})
	assert.Equal(t, "DATETIME NULL DEFAULT NULL", clause)

	// Columns on the date-only list lose their time of day.
	opts := Options{DateOnlyColumns: []string{"Born"}}
	clause, _ = ColumnType(catalog.Column{Name: "Born", Type: catalog.DateTime}, "", opts)
	assert.Equal(t, "DATE NULL DEFAULT NULL", clause)
	clause, _ = ColumnType(catalog.Column{Name: "born", Type: catalog.DateTime}, "", opts)
	assert.Equal(t, "DATE NULL DEFAULT NULL", clause)

	// Text that admits the empty string is nullable, text that
	// rejects it is NOT NULL.
	clause, _ = ColumnType(catalog.Column{Name: "Name", Type: catalog.Text, Size: 50, AllowZeroLength: true}, "", Options{})
	assert.Equal(t, "VARCHAR(50) NULL DEFAULT NULL", clause)
	clause, _ = ColumnType(catalog.Column{Name: "Name", Type: catalog.Text, Size: 50}, "", Options{})
	assert.Equal(t, "VARCHAR(50) NOT NULL", clause)

	clause, _ = ColumnType(catalog.Column{Name: "Notes", Type: catalog.Memo}, "", Options{})
	assert.Equal(t, "LONGTEXT", clause)

	// Unrecognized families fall back rather than fail the export.
	clause, mapped = ColumnType(catalog.Column{Name: "Photo", Type: catalog.Unknown, DeclaredType: "OLEOBJECT"}, "", Options{})
	assert.False(t, mapped)
	assert.Equal(t, "VARCHAR(255)", clause)
}

func TestColumnTypeOverrides(t *testing.T) {
	// A counter column discards its family mapping entirely.
	counter := catalog.Column{Name: "id", Type: catalog.Long, AutoIncrement: true, Fixed: true}
	clause, mapped := ColumnType(counter, "", Options{})
	assert.True(t, mapped)
	assert.Equal(t, "INT(11) NOT NULL AUTO_INCREMENT", clause)

	// The primary key attribute rides on the column definition.
	clause, _ = ColumnType(counter, "id", Options{})
	assert.Equal(t, "INT(11) NOT NULL AUTO_INCREMENT PRIMARY KEY", clause)

	// PRIMARY KEY applies to non-counter key columns too.
	code := catalog.Column{Name: "code", Type: catalog.Text, Size: 10}
	clause, _ = ColumnType(code, "code", Options{})
	assert.Equal(t, "VARCHAR(10) NOT NULL PRIMARY KEY", clause)

	// The override fires on the counter flags, not on the family.
	odd := catalog.Column{Name: "seq", Type: catalog.Text, Size: 8, AutoIncrement: true, Fixed: true}
	clause, _ = ColumnType(odd, "", Options{})
	assert.Equal(t, "INT(11) NOT NULL AUTO_INCREMENT", clause)

	// Auto-increment without the fixed flag is not a counter.
	loose := catalog.Column{Name: "n", Type: catalog.Long, AutoIncrement: true}
	clause, _ = ColumnType(loose, "", Options{})
	assert.Equal(t, "INT(11) DEFAULT 0", clause)

	// Fallback columns still pick up the key attribute.
	blob := catalog.Column{Name: "Photo", Type: catalog.Unknown}
	clause, mapped = ColumnType(blob, "Photo", Options{})
	assert.False(t, mapped)
	assert.Equal(t, "VARCHAR(255) PRIMARY KEY", clause)
}
