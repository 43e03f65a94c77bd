package catalog

import (
	"context"
	"errors"
)

var errMockCursor = errors.New("mock cursor read failure")

// MockCatalog provides a controllable catalog for testing emitters and
// the export pipeline without a source file on disk.
type MockCatalog struct {
	// Configuration
	tables        []Table
	relationships []Relationship
	rowsByTable   map[string][][]any

	// Control behavior
	tablesError        error
	relationshipsError error
	rowsError          map[string]error
	cursorFailAfter    map[string]int

	// Tracking
	cursors    []*MockCursor
	closeCalls int
}

var _ Catalog = &MockCatalog{}

// NewMockCatalog creates a mock catalog with no tables.
func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		rowsByTable:     make(map[string][][]any),
		rowsError:       make(map[string]error),
		cursorFailAfter: make(map[string]int),
	}
}

// AddTable registers a table and its row data in enumeration order.
func (m *MockCatalog) AddTable(tbl Table, rows ...[]any) {
	m.tables = append(m.tables, tbl)
	m.rowsByTable[tbl.Name] = rows
}

// AddRelationship registers a relationship in enumeration order.
func (m *MockCatalog) AddRelationship(rel Relationship) {
	m.relationships = append(m.relationships, rel)
}

func (m *MockCatalog) SetTablesError(err error) {
	m.tablesError = err
}

func (m *MockCatalog) SetRelationshipsError(err error) {
	m.relationshipsError = err
}

func (m *MockCatalog) SetRowsError(table string, err error) {
	m.rowsError[table] = err
}

// SetCursorFailAfter makes the table's cursor return an error from
// Values after n successful rows.
func (m *MockCatalog) SetCursorFailAfter(table string, n int) {
	m.cursorFailAfter[table] = n
}

// Cursors returns every cursor handed out so far, in order.
func (m *MockCatalog) Cursors() []*MockCursor {
	return m.cursors
}

// CloseCalls returns how many times Close was called on the catalog.
func (m *MockCatalog) CloseCalls() int {
	return m.closeCalls
}

func (m *MockCatalog) Tables(_ context.Context) ([]Table, error) {
	if m.tablesError != nil {
		return nil, m.tablesError
	}
	return m.tables, nil
}

func (m *MockCatalog) Relationships(_ context.Context) ([]Relationship, error) {
	if m.relationshipsError != nil {
		return nil, m.relationshipsError
	}
	return m.relationships, nil
}

func (m *MockCatalog) Rows(_ context.Context, table Table) (Cursor, error) {
	if err := m.rowsError[table.Name]; err != nil {
		return nil, err
	}
	cur := &MockCursor{
		rows:      m.rowsByTable[table.Name],
		failAfter: -1,
	}
	if n, ok := m.cursorFailAfter[table.Name]; ok {
		cur.failAfter = n
	}
	m.cursors = append(m.cursors, cur)
	return cur, nil
}

func (m *MockCatalog) Close() error {
	m.closeCalls++
	return nil
}

// MockCursor iterates a fixed set of rows and records whether it was
// closed, so tests can assert cursors are released on every path.
type MockCursor struct {
	rows      [][]any
	pos       int
	failAfter int
	err       error

	// Tracking
	CloseCalls int
}

var _ Cursor = &MockCursor{}

func (c *MockCursor) Next() bool {
	if c.err != nil {
		return false
	}
	return c.pos < len(c.rows)
}

func (c *MockCursor) Values() ([]any, error) {
	if c.failAfter >= 0 && c.pos >= c.failAfter {
		c.err = errMockCursor
		return nil, c.err
	}
	row := c.rows[c.pos]
	c.pos++
	return row, nil
}

func (c *MockCursor) Err() error {
	return c.err
}

func (c *MockCursor) Close() error {
	c.CloseCalls++
	return nil
}
