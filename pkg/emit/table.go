package emit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jetware/jet2my/pkg/catalog"
	"github.com/jetware/jet2my/pkg/dbconn/sqlescape"
)

// TableEmitter builds the statement text for individual tables. One
// table produces one statement string: its CREATE TABLE, followed by a
// multi-row INSERT when data is requested and present.
type TableEmitter struct {
	cat    catalog.Catalog
	opts   Options
	logger *slog.Logger
}

// NewTableEmitter creates a TableEmitter reading row data from cat.
func NewTableEmitter(cat catalog.Catalog, opts Options) *TableEmitter {
	return &TableEmitter{
		cat:    cat,
		opts:   opts,
		logger: slog.Default(),
	}
}

func (e *TableEmitter) SetLogger(logger *slog.Logger) {
	e.logger = logger
}

// EmitTable returns the statement text for one table. When withData is
// false, or the table is on the skip-data list, or the table has no
// rows, the text is the CREATE TABLE alone.
func (e *TableEmitter) EmitTable(ctx context.Context, tbl catalog.Table, withData bool) (string, error) {
	create := e.createTable(tbl)
	if !withData || e.opts.SkipData(tbl.Name) {
		return create, nil
	}
	insert, err := e.insertRows(ctx, tbl)
	if err != nil {
		return "", err
	}
	if insert == "" {
		return create, nil
	}
	return create + "\n\n" + insert, nil
}

// createTable builds the CREATE TABLE statement. Column names are
// backtick-quoted; the table name is emitted bare, which is the format
// the document has always used.
func (e *TableEmitter) createTable(tbl catalog.Table) string {
	pk := tbl.PrimaryKey()
	defs := make([]string, 0, len(tbl.Columns))
	for _, col := range tbl.Columns {
		clause, mapped := ColumnType(col, pk, e.opts)
		if !mapped {
			e.logger.Warn("column type has no explicit mapping, using VARCHAR(255)",
				"table", tbl.Name,
				"column", col.Name,
				"declared", col.DeclaredType)
		}
		defs = append(defs, sqlescape.QuoteIdentifier(col.Name)+" "+clause)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s);", tbl.Name, strings.Join(defs, ", "))
}

// insertRows builds one multi-row INSERT covering every row of the
// table, or an empty string when the table has no rows. The cursor is
// released on every path out of here.
func (e *TableEmitter) insertRows(ctx context.Context, tbl catalog.Table) (_ string, err error) {
	cur, err := e.cat.Rows(ctx, tbl)
	if err != nil {
		return "", fmt.Errorf("opening cursor on %s: %w", tbl.Name, err)
	}
	defer func() {
		if cerr := cur.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing cursor on %s: %w", tbl.Name, cerr)
		}
	}()

	var tuples []string
	for cur.Next() {
		vals, verr := cur.Values()
		if verr != nil {
			return "", fmt.Errorf("reading row %d of %s: %w", len(tuples)+1, tbl.Name, verr)
		}
		if len(vals) != len(tbl.Columns) {
			return "", fmt.Errorf("reading %s: row has %d values for %d columns", tbl.Name, len(vals), len(tbl.Columns))
		}
		lits := make([]string, len(vals))
		for i, v := range vals {
			col := tbl.Columns[i]
			lits[i] = Literal(v, col.Type, e.opts.IsDateOnly(col.Name))
		}
		tuples = append(tuples, "("+strings.Join(lits, ", ")+")")
	}
	if cerr := cur.Err(); cerr != nil {
		return "", fmt.Errorf("scanning %s: %w", tbl.Name, cerr)
	}
	if len(tuples) == 0 {
		return "", nil
	}
	e.logger.Debug("emitting rows", "table", tbl.Name, "rows", len(tuples))
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES\n%s;",
		tbl.Name,
		strings.Join(tbl.ColumnNames(), ", "),
		strings.Join(tuples, ",\n")), nil
}
