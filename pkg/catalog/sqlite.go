package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCatalog reads a desktop database hosted in a SQLite container
// file. Conversions out of Jet keep the declared type names verbatim
// (CURRENCY, MEMO, COUNTER and friends), which SQLite accepts as-is, so
// the original column families survive the container format.
type SQLiteCatalog struct {
	db   *sql.DB
	path string
}

var _ Catalog = (*SQLiteCatalog)(nil)

// Open opens the container file read-only and verifies it is reachable.
// Failures here are reported before any export output is produced.
func Open(path string) (*SQLiteCatalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("source database not readable: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening source database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening source database %s: %w", path, err)
	}
	return &SQLiteCatalog{db: db, path: path}, nil
}

func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}

// Tables enumerates all tables in catalog order, i.e. the order the
// container records them in. Engine bookkeeping tables (sqlite_sequence
// etc.) are included with the System flag set.
func (c *SQLiteCatalog) Tables(ctx context.Context) ([]Table, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("enumerating tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("enumerating tables: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("enumerating tables: %w", err)
	}

	tables := make([]Table, 0, len(names))
	for _, name := range names {
		tbl, err := c.describeTable(ctx, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, tbl)
	}
	return tables, nil
}

func (c *SQLiteCatalog) describeTable(ctx context.Context, name string) (Table, error) {
	tbl := Table{
		Name:   name,
		System: strings.HasPrefix(name, "sqlite_"),
	}
	cols, pkCols, err := c.tableColumns(ctx, name)
	if err != nil {
		return Table{}, err
	}
	tbl.Columns = cols

	// Jet catalogs expose the primary key as an index literally named
	// PrimaryKey. Synthesize it first so it wins position-sensitive
	// lookups, then append the remaining named indexes.
	if len(pkCols) > 0 {
		tbl.Indexes = append(tbl.Indexes, Index{Name: PrimaryKeyIndexName, Columns: pkCols})
	}
	idxs, err := c.tableIndexes(ctx, name)
	if err != nil {
		return Table{}, err
	}
	tbl.Indexes = append(tbl.Indexes, idxs...)
	return tbl, nil
}

func (c *SQLiteCatalog) tableColumns(ctx context.Context, table string) ([]Column, []string, error) {
	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf("PRAGMA table_info(%s)", quoteSQLite(table)))
	if err != nil {
		return nil, nil, fmt.Errorf("describing %s: %w", table, err)
	}
	defer rows.Close()

	type pkCol struct {
		name string
		ord  int
	}
	var cols []Column
	var pk []pkCol
	for rows.Next() {
		var (
			cid, notNull, pkOrd int
			name, declared      string
			dflt                sql.NullString
		)
		if err := rows.Scan(&cid, &name, &declared, &notNull, &dflt, &pkOrd); err != nil {
			return nil, nil, fmt.Errorf("describing %s: %w", table, err)
		}
		code, size := ParseDeclaredType(declared)
		cols = append(cols, Column{
			Name:            name,
			Type:            code,
			DeclaredType:    declared,
			Size:            size,
			Required:        notNull != 0,
			AllowZeroLength: notNull == 0,
			Fixed:           code.FixedWidth(),
		})
		if pkOrd > 0 {
			pk = append(pk, pkCol{name: name, ord: pkOrd})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("describing %s: %w", table, err)
	}

	// pkOrd is 1-based declaration order within the key.
	pkCols := make([]string, 0, len(pk))
	for ord := 1; ord <= len(pk); ord++ {
		for _, p := range pk {
			if p.ord == ord {
				pkCols = append(pkCols, p.name)
			}
		}
	}

	for i := range cols {
		cols[i].AutoIncrement = isCounter(cols[i], pkCols)
	}
	return cols, pkCols, nil
}

// isCounter reports whether a column is an auto-assigned counter: either
// declared with the Jet counter names, or the single-column INTEGER
// primary key that SQLite aliases to the rowid.
func isCounter(col Column, pkCols []string) bool {
	base, _ := splitDeclared(col.DeclaredType)
	if base == "COUNTER" || base == "AUTOINCREMENT" {
		return true
	}
	return base == "INTEGER" && len(pkCols) == 1 && pkCols[0] == col.Name
}

func (c *SQLiteCatalog) tableIndexes(ctx context.Context, table string) ([]Index, error) {
	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf("PRAGMA index_list(%s)", quoteSQLite(table)))
	if err != nil {
		return nil, fmt.Errorf("listing indexes of %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var (
			seq, unique, partial int
			name, origin         string
		)
		if err := rows.Scan(&seq, &name, &unique, &origin, &partial); err != nil {
			return nil, fmt.Errorf("listing indexes of %s: %w", table, err)
		}
		// The primary key index is synthesized separately.
		if origin == "pk" {
			continue
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing indexes of %s: %w", table, err)
	}

	idxs := make([]Index, 0, len(names))
	for _, name := range names {
		cols, err := c.indexColumns(ctx, name)
		if err != nil {
			return nil, err
		}
		idxs = append(idxs, Index{Name: name, Columns: cols})
	}
	return idxs, nil
}

func (c *SQLiteCatalog) indexColumns(ctx context.Context, index string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf("PRAGMA index_info(%s)", quoteSQLite(index)))
	if err != nil {
		return nil, fmt.Errorf("describing index %s: %w", index, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var (
			seqno, cid int
			name       sql.NullString
		)
		if err := rows.Scan(&seqno, &cid, &name); err != nil {
			return nil, fmt.Errorf("describing index %s: %w", index, err)
		}
		// Expression index members have no column name.
		if name.Valid {
			cols = append(cols, name.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describing index %s: %w", index, err)
	}
	return cols, nil
}

// Relationships enumerates declared foreign keys in catalog order:
// tables in enumeration order, then constraints in declaration order,
// each with its column pairs in declaration order.
func (c *SQLiteCatalog) Relationships(ctx context.Context) ([]Relationship, error) {
	tables, err := c.Tables(ctx)
	if err != nil {
		return nil, err
	}
	pkByTable := make(map[string][]string, len(tables))
	for _, tbl := range tables {
		for _, idx := range tbl.Indexes {
			if idx.Name == PrimaryKeyIndexName {
				pkByTable[tbl.Name] = idx.Columns
				break
			}
		}
	}

	var rels []Relationship
	for _, tbl := range tables {
		found, err := c.tableRelationships(ctx, tbl.Name, pkByTable)
		if err != nil {
			return nil, err
		}
		rels = append(rels, found...)
	}
	return rels, nil
}

func (c *SQLiteCatalog) tableRelationships(ctx context.Context, table string, pkByTable map[string][]string) ([]Relationship, error) {
	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf("PRAGMA foreign_key_list(%s)", quoteSQLite(table)))
	if err != nil {
		return nil, fmt.Errorf("listing relationships of %s: %w", table, err)
	}
	defer rows.Close()

	var rels []Relationship
	byID := map[int]int{} // constraint id to index in rels
	for rows.Next() {
		var (
			id, seq                     int
			refTable, from              string
			to                          sql.NullString
			onUpdate, onDelete, matchBy string
		)
		if err := rows.Scan(&id, &seq, &refTable, &from, &to, &onUpdate, &onDelete, &matchBy); err != nil {
			return nil, fmt.Errorf("listing relationships of %s: %w", table, err)
		}
		pcol := to.String
		if !to.Valid {
			// Shorthand references name no columns and bind to the
			// referenced table's primary key by position.
			pk := pkByTable[refTable]
			if seq >= len(pk) {
				return nil, fmt.Errorf("relationship %s -> %s: cannot resolve referenced key column %d", table, refTable, seq)
			}
			pcol = pk[seq]
		}
		pair := ColumnPair{PrimaryColumn: pcol, ForeignColumn: from}
		if i, ok := byID[id]; ok {
			rels[i].Pairs = append(rels[i].Pairs, pair)
			continue
		}
		byID[id] = len(rels)
		rels = append(rels, Relationship{
			PrimaryTable: refTable,
			ForeignTable: table,
			Pairs:        []ColumnPair{pair},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing relationships of %s: %w", table, err)
	}
	return rels, nil
}

// Rows opens a cursor over the table's rows in storage order, columns
// in catalog order.
func (c *SQLiteCatalog) Rows(ctx context.Context, table Table) (Cursor, error) {
	cols := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		cols[i] = quoteSQLite(col.Name)
	}
	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), quoteSQLite(table.Name)))
	if err != nil {
		return nil, fmt.Errorf("reading rows of %s: %w", table.Name, err)
	}
	return &sqliteCursor{rows: rows, width: len(cols)}, nil
}

type sqliteCursor struct {
	rows  *sql.Rows
	width int
}

func (c *sqliteCursor) Next() bool {
	return c.rows.Next()
}

func (c *sqliteCursor) Values() ([]any, error) {
	vals := make([]any, c.width)
	ptrs := make([]any, c.width)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := c.rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	return vals, nil
}

func (c *sqliteCursor) Err() error {
	return c.rows.Err()
}

func (c *sqliteCursor) Close() error {
	return c.rows.Close()
}

// quoteSQLite quotes an identifier for use in queries against the
// container file. Double quotes inside the name are doubled.
func quoteSQLite(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
