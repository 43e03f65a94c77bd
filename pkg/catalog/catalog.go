// Package catalog models the source desktop database: its tables,
// columns, indexes and relationships, and cursors over its row data.
// The model is source-agnostic; the SQLite container adapter in this
// package is the concrete reader, and tests substitute a mock.
package catalog

import "context"

// PrimaryKeyIndexName is the literal index name Jet-style catalogs give
// the primary key. Primary key detection matches on it and nothing else.
const PrimaryKeyIndexName = "PrimaryKey"

// Column describes one column of a source table.
type Column struct {
	Name string
	// Type is the classified family; DeclaredType keeps the raw
	// declaration (e.g. "VARCHAR(50)") for diagnostics.
	Type         TypeCode
	DeclaredType string
	// Size is the bounded-text capacity. Zero for other families.
	Size int
	// Required is true when the source rejects null for this column.
	Required bool
	// AllowZeroLength is true when a text column accepts the empty
	// string. Drives NULL-ability of the mapped definition.
	AllowZeroLength bool
	// AutoIncrement and Fixed together identify counter columns.
	AutoIncrement bool
	Fixed         bool
}

// Index is a named index over one or more columns, in order.
type Index struct {
	Name    string
	Columns []string
}

// Table is one source table with its columns in catalog order.
type Table struct {
	Name string
	// System marks bookkeeping tables owned by the engine itself.
	System  bool
	Columns []Column
	Indexes []Index
}

// PrimaryKey returns the first column of the index named PrimaryKey, or
// an empty string when the table has no such index. Additional primary
// key columns are not consulted.
func (t *Table) PrimaryKey() string {
	for _, idx := range t.Indexes {
		if idx.Name == PrimaryKeyIndexName && len(idx.Columns) > 0 {
			return idx.Columns[0]
		}
	}
	return ""
}

// ColumnNames returns the column names in catalog order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// ColumnPair joins one primary-side column to one foreign-side column
// of a relationship.
type ColumnPair struct {
	PrimaryColumn string
	ForeignColumn string
}

// Relationship is a referential constraint between two tables. Pairs
// holds the joined columns in declaration order.
type Relationship struct {
	PrimaryTable string
	ForeignTable string
	Pairs        []ColumnPair
}

// Cursor iterates the rows of one table. Values returns the raw column
// values of the current row in catalog column order. Callers must Close
// the cursor on every path, including early returns on error.
type Cursor interface {
	Next() bool
	Values() ([]any, error)
	Err() error
	Close() error
}

// Catalog is a read handle on one source database.
type Catalog interface {
	// Tables returns every table in catalog enumeration order,
	// including system tables. Filtering is the caller's concern.
	Tables(ctx context.Context) ([]Table, error)
	// Relationships returns every declared relationship in catalog
	// enumeration order.
	Relationships(ctx context.Context) ([]Relationship, error)
	// Rows opens a cursor over the table's data in storage order.
	Rows(ctx context.Context, table Table) (Cursor, error)
	Close() error
}
