// Package statement parses an export document back into its individual
// statements, so they can be replayed one at a time.
package statement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
)

// Kind identifies which of the document's statement forms a statement
// is. Export documents only ever contain these three.
type Kind int

const (
	KindCreateTable Kind = iota
	KindInsert
	KindAlterTable
)

func (k Kind) String() string {
	switch k {
	case KindCreateTable:
		return "CREATE TABLE"
	case KindInsert:
		return "INSERT"
	case KindAlterTable:
		return "ALTER TABLE"
	}
	return "UNKNOWN"
}

// Statement is one replayable statement from a document.
type Statement struct {
	// Text is the statement text without its trailing separator.
	Text string
	// Table is the table the statement touches.
	Table string
	Kind  Kind
}

var ErrNotSupportedStatement = errors.New("not a statement type export documents contain")

// Split parses a document into its statements, in order. Splitting on
// separators is the parser's job, not a string scan, because literals
// inside INSERT rows can contain separators and quotes.
func Split(document string) ([]Statement, error) {
	p := parser.New()
	stmtNodes, _, err := p.Parse(document, "", "")
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	stmts := make([]Statement, 0, len(stmtNodes))
	for _, node := range stmtNodes {
		stmt := Statement{
			Text: strings.TrimSuffix(strings.TrimSpace(node.Text()), ";"),
		}
		switch node := node.(type) {
		case *ast.CreateTableStmt:
			stmt.Kind = KindCreateTable
			stmt.Table = node.Table.Name.String()
		case *ast.InsertStmt:
			stmt.Kind = KindInsert
			stmt.Table = insertTable(node)
		case *ast.AlterTableStmt:
			stmt.Kind = KindAlterTable
			stmt.Table = node.Table.Name.String()
		default:
			return nil, fmt.Errorf("%w: %T", ErrNotSupportedStatement, node)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func insertTable(node *ast.InsertStmt) string {
	source, ok := node.Table.TableRefs.Left.(*ast.TableSource)
	if !ok {
		return ""
	}
	name, ok := source.Source.(*ast.TableName)
	if !ok {
		return ""
	}
	return name.Name.String()
}
